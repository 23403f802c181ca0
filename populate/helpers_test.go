package populate_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/socialpath/core"
)

// scriptedSource replays fixed values and fails the test if it runs dry
// or a value falls outside the requested range.
type scriptedSource struct {
	t      *testing.T
	values []int
	pos    int
}

func (s *scriptedSource) IntRange(lo, hi int) int {
	s.t.Helper()
	require.Less(s.t, s.pos, len(s.values), "scripted source exhausted")
	v := s.values[s.pos]
	s.pos++
	require.GreaterOrEqual(s.t, v, lo)
	require.LessOrEqual(s.t, v, hi)
	return v
}

// requireSimpleGraph checks symmetry, irreflexivity and pair uniqueness.
func requireSimpleGraph(t *testing.T, g *core.Graph) {
	t.Helper()
	seen := make(map[[2]int]bool)
	for _, p := range g.Friendships() {
		require.Less(t, p[0], p[1])
		require.False(t, seen[p], "pair %v listed twice", p)
		seen[p] = true
		require.True(t, g.AreFriends(p[1], p[0]))
	}
	require.Len(t, seen, g.FriendshipCount())
	for _, u := range g.Users() {
		require.False(t, g.AreFriends(u.ID, u.ID))
	}
}
