// exhaustive.go - candidate-list strategy.
//
// Contract:
//   - Candidates are every unordered pair (i,j), 1 ≤ i < j ≤ n, emitted i asc, j asc.
//   - Shuffle: for idx = 0..len-1 swap cands[idx] with cands[IntRange(0, len-1)].
//     This samples over the whole slice at each step, looser than canonical
//     Fisher–Yates but it reaches every permutation.
//   - The first min(pairsNeeded, len) candidates become friendships.
//
// Complexity:
//   - Time O(n²) candidate generation + O(n²) shuffle; Space O(n²).
//
// Determinism:
//   - Fixed candidate order and one draw per index ⇒ identical graphs for identical sources.

package populate

import (
	"fmt"

	"github.com/katalvlaran/socialpath/core"
)

const methodExhaustive = "Exhaustive"

// Exhaustive samples friendships uniformly from all possible pairs.
type Exhaustive struct {
	cfg config
}

// NewExhaustive builds the candidate-list strategy.
func NewExhaustive(opts ...Option) *Exhaustive {
	return &Exhaustive{cfg: newConfig(opts...)}
}

// Name returns "exhaustive".
func (e *Exhaustive) Name() string { return NameExhaustive }

// Populate resets g, creates numUsers users and materializes the first
// pairsNeeded pairs of a shuffled candidate list.
func (e *Exhaustive) Populate(g *core.Graph, numUsers, avgFriendships int) (Result, error) {
	if err := validate(methodExhaustive, numUsers, avgFriendships); err != nil {
		return Result{}, err
	}

	resetWithUsers(g, numUsers, e.cfg.nameFn)

	cands := candidatePairs(numUsers)
	shuffleLoose(cands, e.cfg.src)

	need := PairsNeeded(numUsers, avgFriendships)
	take := min(need, len(cands))
	for _, p := range cands[:take] {
		if err := g.AddFriendship(p[0], p[1]); err != nil {
			return Result{}, fmt.Errorf("%s: AddFriendship(%d,%d): %w", methodExhaustive, p[0], p[1], err)
		}
	}

	res := Result{
		Strategy:    NameExhaustive,
		Users:       numUsers,
		Friendships: g.FriendshipCount(),
		Requested:   need,
		Draws:       len(cands),
	}
	if take < need {
		e.cfg.logger.Warn("not enough distinct pairs", "users", numUsers, "requested", need, "available", len(cands))
	}
	e.cfg.logger.Debug("populated graph", "strategy", res.Strategy, "users", res.Users, "friendships", res.Friendships)

	return res, nil
}

// candidatePairs lists every unordered pair over IDs 1..n in (i asc, j asc) order.
func candidatePairs(n int) [][2]int {
	out := make([][2]int, 0, maxPairs(n))
	for i := 1; i <= n; i++ {
		for j := i + 1; j <= n; j++ {
			out = append(out, [2]int{i, j})
		}
	}
	return out
}

// shuffleLoose swaps every index with a uniformly chosen index over the whole slice.
func shuffleLoose(a [][2]int, src Source) {
	last := len(a) - 1
	for idx := range a {
		j := src.IntRange(0, last)
		a[idx], a[j] = a[j], a[idx]
	}
}
