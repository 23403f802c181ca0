package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/socialpath/bfs"
	"github.com/katalvlaran/socialpath/core"
	"github.com/katalvlaran/socialpath/populate"
)

// buildGraph creates n users and the given friendships.
func buildGraph(t testing.TB, n int, pairs ...[2]int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		g.AddUser("u")
	}
	for _, p := range pairs {
		require.NoError(t, g.AddFriendship(p[0], p[1]))
	}
	return g
}

// TestFindAllPaths_Errors verifies that invalid inputs and options are rejected.
func TestFindAllPaths_Errors(t *testing.T) {
	_, err := bfs.FindAllPaths(nil, 1)
	require.ErrorIs(t, err, bfs.ErrGraphNil)

	g := buildGraph(t, 2)
	_, err = bfs.FindAllPaths(g, 3)
	require.ErrorIs(t, err, core.ErrUnknownUser)
	_, err = bfs.FindAllPaths(g, 0)
	require.ErrorIs(t, err, core.ErrUnknownUser)

	_, err = bfs.FindAllPaths(g, 1, bfs.WithMaxDepth(-1))
	require.ErrorIs(t, err, bfs.ErrOptionViolation)
}

// TestFindAllPaths_Isolated: a root without friends maps only to itself.
func TestFindAllPaths_Isolated(t *testing.T) {
	g := buildGraph(t, 3, [2]int{2, 3})
	tree, err := bfs.FindAllPaths(g, 1)
	require.NoError(t, err)
	assert.Equal(t, bfs.PathTree{1: {1}}, tree)
	assert.Equal(t, 0, tree.Reachable())
	assert.InDelta(t, 1.0, tree.AveragePathLength(), 1e-9)
}

// TestFindAllPaths_Chain: root–2–3 gives the three prefixes of the chain.
func TestFindAllPaths_Chain(t *testing.T) {
	g := buildGraph(t, 3, [2]int{1, 2}, [2]int{2, 3})
	tree, err := bfs.FindAllPaths(g, 1)
	require.NoError(t, err)
	assert.Equal(t, bfs.PathTree{
		1: {1},
		2: {1, 2},
		3: {1, 2, 3},
	}, tree)
	assert.Equal(t, 2, tree.Reachable())
	assert.InDelta(t, 2.0, tree.AveragePathLength(), 1e-9)
	assert.Equal(t, map[int]int{0: 1, 1: 1, 2: 1}, tree.Degrees())
}

// TestFindAllPaths_Disconnected ensures only the root's component is explored.
func TestFindAllPaths_Disconnected(t *testing.T) {
	g := buildGraph(t, 4, [2]int{1, 2}, [2]int{3, 4})
	tree, err := bfs.FindAllPaths(g, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4}, tree.IDs())

	_, err = tree.PathTo(1)
	require.ErrorIs(t, err, bfs.ErrNoPath)
	p, err := tree.PathTo(4)
	require.NoError(t, err)
	assert.Equal(t, bfs.Path{3, 4}, p)
}

// TestFindAllPaths_ShortestWins: two routes to 5, the shorter one is returned.
func TestFindAllPaths_ShortestWins(t *testing.T) {
	// 1–2–3–4–5 (4 hops) and 1–6–5 (2 hops)
	g := buildGraph(t, 6,
		[2]int{1, 2}, [2]int{2, 3}, [2]int{3, 4}, [2]int{4, 5},
		[2]int{1, 6}, [2]int{6, 5},
	)
	tree, err := bfs.FindAllPaths(g, 1)
	require.NoError(t, err)
	assert.Equal(t, bfs.Path{1, 6, 5}, tree[5])
	assert.Equal(t, 3, tree[4].Len()) // 1-2-3-4 and 1-6-5-4 tie
}

// TestFindAllPaths_SortedTieBreak: on a square both routes to the far corner
// are equally short; sorted neighbors always pick the lower ID.
func TestFindAllPaths_SortedTieBreak(t *testing.T) {
	g := buildGraph(t, 4, [2]int{1, 2}, [2]int{1, 3}, [2]int{2, 4}, [2]int{3, 4})
	for i := 0; i < 20; i++ {
		tree, err := bfs.FindAllPaths(g, 1, bfs.WithSortedNeighbors())
		require.NoError(t, err)
		require.Equal(t, bfs.Path{1, 2, 4}, tree[4])
	}
}

// TestFindAllPaths_MaxDepth stops after the requested number of friendships.
func TestFindAllPaths_MaxDepth(t *testing.T) {
	g := buildGraph(t, 4, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 4})
	tree, err := bfs.FindAllPaths(g, 1, bfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, tree.IDs())

	tree, err = bfs.FindAllPaths(g, 1, bfs.WithMaxDepth(0))
	require.NoError(t, err)
	assert.Len(t, tree, 4)
}

// TestFindAllPaths_OnVisit records visit order by level and propagates errors.
func TestFindAllPaths_OnVisit(t *testing.T) {
	g := buildGraph(t, 4, [2]int{1, 2}, [2]int{1, 3}, [2]int{3, 4})
	var depths []int
	_, err := bfs.FindAllPaths(g, 1, bfs.WithOnVisit(func(_ int, p bfs.Path) error {
		depths = append(depths, p.Len())
		return nil
	}))
	require.NoError(t, err)
	assert.IsNonDecreasing(t, depths)
	assert.Len(t, depths, 4)

	stop := errors.New("stop")
	_, err = bfs.FindAllPaths(g, 1, bfs.WithOnVisit(func(id int, _ bfs.Path) error {
		if id == 3 {
			return stop
		}
		return nil
	}))
	require.ErrorIs(t, err, stop)
}

// TestFindAllPaths_Cancellation verifies that a cancelled context halts the search.
func TestFindAllPaths_Cancellation(t *testing.T) {
	g := buildGraph(t, 3, [2]int{1, 2}, [2]int{2, 3})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.FindAllPaths(g, 1, bfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

// TestFindAllPaths_PopulatedProperties checks, on a random graph, that every
// path starts at the root, has no repeats, walks real friendships, and is
// exactly one longer than the path to its predecessor.
func TestFindAllPaths_PopulatedProperties(t *testing.T) {
	g := core.NewGraph()
	_, err := populate.NewExhaustive(populate.WithSeed(5)).Populate(g, 300, 3)
	require.NoError(t, err)

	tree, err := bfs.FindAllPaths(g, 1)
	require.NoError(t, err)
	require.Equal(t, bfs.Path{1}, tree[1])

	for id, p := range tree {
		require.Equal(t, 1, p[0])
		require.Equal(t, id, p.Last())

		seen := make(map[int]bool, len(p))
		for i, u := range p {
			require.False(t, seen[u], "path to %d repeats %d", id, u)
			seen[u] = true
			if i > 0 {
				require.True(t, g.AreFriends(p[i-1], u))
			}
		}
		if len(p) > 1 {
			prev := tree[p[len(p)-2]]
			require.Equal(t, prev.Len()+1, p.Len(), "path to %d is not shortest", id)
		}
	}

	// every friend of a reachable user is reachable too
	for id := range tree {
		friends, err := g.FriendIDs(id)
		require.NoError(t, err)
		for _, f := range friends {
			_, ok := tree[f]
			require.True(t, ok, "friend %d of reachable %d missing", f, id)
		}
	}
}

func TestPathTree_Empty(t *testing.T) {
	var tree bfs.PathTree
	assert.Zero(t, tree.Reachable())
	assert.Zero(t, tree.AveragePathLength())
	assert.Empty(t, tree.IDs())
	assert.Zero(t, bfs.Path(nil).Len())
}
