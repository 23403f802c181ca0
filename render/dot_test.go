package render_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/socialpath/bfs"
	"github.com/katalvlaran/socialpath/core"
	"github.com/katalvlaran/socialpath/render"
)

func triangleWithTail() *core.Graph {
	g := core.NewGraph()
	for _, name := range []string{"ann", "bob", "cy", "dee"} {
		g.AddUser(name)
	}
	_ = g.AddFriendship(1, 2)
	_ = g.AddFriendship(2, 3)
	_ = g.AddFriendship(3, 1)
	_ = g.AddFriendship(3, 4)
	return g
}

func TestGraphDOT(t *testing.T) {
	dot := render.GraphDOT(triangleWithTail(), render.Options{Labels: true, Highlight: 1})

	assert.True(t, strings.HasPrefix(dot, "graph social {\n"))
	assert.Contains(t, dot, `1 [label="ann", fillcolor=lightblue, penwidth=2];`)
	assert.Contains(t, dot, `4 [label="dee"];`)
	for _, e := range []string{"1 -- 2;", "1 -- 3;", "2 -- 3;", "3 -- 4;"} {
		assert.Contains(t, dot, e)
	}
	assert.Equal(t, 4, strings.Count(dot, " -- "))
}

func TestGraphDOT_IDLabels(t *testing.T) {
	dot := render.GraphDOT(triangleWithTail(), render.Options{})
	assert.Contains(t, dot, `2 [label="2"];`)
	assert.NotContains(t, dot, "lightblue")
}

func TestTreeDOT(t *testing.T) {
	tree, err := bfs.FindAllPaths(triangleWithTail(), 1, bfs.WithSortedNeighbors())
	require.NoError(t, err)

	dot := render.TreeDOT(tree, 1)
	assert.True(t, strings.HasPrefix(dot, "digraph paths {\n"))
	assert.Contains(t, dot, `1 [label="1 (0)", fillcolor=lightblue, penwidth=2];`)
	assert.Contains(t, dot, `4 [label="4 (2)"];`)
	for _, e := range []string{"1 -> 2;", "1 -> 3;", "3 -> 4;"} {
		assert.Contains(t, dot, e)
	}
	assert.Equal(t, 3, strings.Count(dot, " -> "), "a tree over 4 users has 3 links")
}

func TestSVG(t *testing.T) {
	if testing.Short() {
		t.Skip("graphviz rendering skipped in short mode")
	}
	svg, err := render.SVG(context.Background(), render.GraphDOT(triangleWithTail(), render.Options{}))
	require.NoError(t, err)
	assert.Contains(t, string(svg), "<svg")
}
