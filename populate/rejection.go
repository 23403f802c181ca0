// rejection.go - generate-and-test strategy.
//
// Contract:
//   - Draw u, v uniformly in [1, n]; accept iff u != v and not already friends.
//   - Stop once pairsNeeded friendships were accepted.
//   - pairsNeeded > n(n-1)/2 can never terminate ⇒ ErrPopulationUnsatisfiable up front.
//   - With WithMaxAttempts(k>0), at most k draws of a pair are made.
//
// Complexity:
//   - Expected O(pairsNeeded) draws while the graph is sparse; the rejection
//     rate rises as the graph nears complete. Unbounded unless capped.

package populate

import (
	"fmt"

	"github.com/katalvlaran/socialpath/core"
)

const methodRejection = "Rejection"

// Rejection samples random pairs and discards self-pairs and repeats.
type Rejection struct {
	cfg config
}

// NewRejection builds the rejection-sampling strategy.
func NewRejection(opts ...Option) *Rejection {
	return &Rejection{cfg: newConfig(opts...)}
}

// Name returns "rejection".
func (r *Rejection) Name() string { return NameRejection }

// Populate resets g, creates numUsers users and draws pairs until
// pairsNeeded friendships exist.
func (r *Rejection) Populate(g *core.Graph, numUsers, avgFriendships int) (Result, error) {
	if err := validate(methodRejection, numUsers, avgFriendships); err != nil {
		return Result{}, err
	}
	need := PairsNeeded(numUsers, avgFriendships)
	if avail := maxPairs(numUsers); need > avail {
		return Result{}, fmt.Errorf("%s: %d friendships requested, only %d distinct pairs among %d users: %w",
			methodRejection, need, avail, numUsers, ErrPopulationUnsatisfiable)
	}

	resetWithUsers(g, numUsers, r.cfg.nameFn)

	res := Result{Strategy: NameRejection, Users: numUsers, Requested: need}
	made := 0
	for made < need {
		if r.cfg.maxAttempts > 0 && res.Draws >= r.cfg.maxAttempts {
			res.Friendships = g.FriendshipCount()
			return res, fmt.Errorf("%s: gave up after %d draws with %d/%d friendships: %w",
				methodRejection, res.Draws, made, need, ErrPopulationUnsatisfiable)
		}
		userID := r.cfg.src.IntRange(1, numUsers)
		friendID := r.cfg.src.IntRange(1, numUsers)
		res.Draws++

		if userID == friendID || g.AreFriends(userID, friendID) {
			res.Rejected++
			continue
		}
		if err := g.AddFriendship(userID, friendID); err != nil {
			return res, fmt.Errorf("%s: AddFriendship(%d,%d): %w", methodRejection, userID, friendID, err)
		}
		made++
	}

	res.Friendships = g.FriendshipCount()
	r.cfg.logger.Debug("populated graph", "strategy", res.Strategy, "users", res.Users,
		"friendships", res.Friendships, "draws", res.Draws, "rejected", res.Rejected)

	return res, nil
}
