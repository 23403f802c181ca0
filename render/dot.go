package render

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/katalvlaran/socialpath/bfs"
	"github.com/katalvlaran/socialpath/core"
)

// Options configures DOT output.
type Options struct {
	// Labels shows user names instead of bare IDs.
	Labels bool
	// Highlight fills the given user (typically the BFS root). 0 disables it.
	Highlight int
}

// GraphDOT converts g to an undirected Graphviz graph.
func GraphDOT(g *core.Graph, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("graph social {\n")
	writeHeader(&buf)

	for _, u := range g.Users() {
		label := strconv.Itoa(u.ID)
		if opts.Labels {
			label = u.Name
		}
		writeNode(&buf, u.ID, label, u.ID == opts.Highlight)
	}

	buf.WriteString("\n")
	for _, p := range g.Friendships() {
		fmt.Fprintf(&buf, "  %d -- %d;\n", p[0], p[1])
	}

	buf.WriteString("}\n")
	return buf.String()
}

// TreeDOT converts a shortest-path tree to a Graphviz digraph rooted at root.
// Each node is labelled "id (d)" with d its degree of separation.
func TreeDOT(tree bfs.PathTree, root int) string {
	var buf bytes.Buffer
	buf.WriteString("digraph paths {\n")
	buf.WriteString("  rankdir=TB;\n")
	writeHeader(&buf)

	ids := tree.IDs()
	for _, id := range ids {
		writeNode(&buf, id, fmt.Sprintf("%d (%d)", id, tree[id].Len()), id == root)
	}

	buf.WriteString("\n")
	for _, id := range ids {
		p := tree[id]
		if len(p) < 2 {
			continue
		}
		fmt.Fprintf(&buf, "  %d -> %d;\n", p[len(p)-2], id)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func writeHeader(buf *bytes.Buffer) {
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=12];\n")
	buf.WriteString("\n")
}

func writeNode(buf *bytes.Buffer, id int, label string, highlight bool) {
	if highlight {
		fmt.Fprintf(buf, "  %d [label=%q, fillcolor=lightblue, penwidth=2];\n", id, label)
		return
	}
	fmt.Fprintf(buf, "  %d [label=%q];\n", id, label)
}

// SVG renders DOT text to SVG using Graphviz.
func SVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
