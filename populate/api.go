// api.go - Strategy contract, Result summary, ByName lookup and the helpers
// both strategies share (validation, reset, user creation).

package populate

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/socialpath/core"
)

// Strategy names accepted by ByName.
const (
	NameExhaustive = "exhaustive"
	NameRejection  = "rejection"
)

// Strategy rebuilds g from scratch with numUsers users and roughly
// numUsers*avgFriendships/2 random friendships.
type Strategy interface {
	// Name returns the canonical strategy name.
	Name() string
	// Populate resets g and fills it. The graph is left partially built on error.
	Populate(g *core.Graph, numUsers, avgFriendships int) (Result, error)
}

// Result summarizes one population run.
type Result struct {
	Strategy    string // canonical strategy name
	Users       int    // users created
	Friendships int    // friendships in the graph afterwards
	Requested   int    // pairsNeeded
	Draws       int    // shuffle draws (Exhaustive) or candidate pairs drawn (Rejection)
	Rejected    int    // rejected candidate pairs (Rejection only)
}

// ByName resolves a strategy by name, case-insensitively.
// "shuffle" is an alias of "exhaustive", "linear" of "rejection".
func ByName(name string, opts ...Option) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case NameExhaustive, "shuffle":
		return NewExhaustive(opts...), nil
	case NameRejection, "linear":
		return NewRejection(opts...), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// PairsNeeded returns numUsers*avgFriendships/2 (integer division).
func PairsNeeded(numUsers, avgFriendships int) int {
	return numUsers * avgFriendships / 2
}

// maxPairs is the number of distinct unordered pairs among n users.
func maxPairs(n int) int {
	if n < 2 {
		return 0
	}
	return n * (n - 1) / 2
}

// validate enforces non-negative inputs before any mutation.
func validate(method string, numUsers, avgFriendships int) error {
	if numUsers < 0 {
		return fmt.Errorf("%s: numUsers=%d < 0: %w", method, numUsers, ErrInvalidParameter)
	}
	if avgFriendships < 0 {
		return fmt.Errorf("%s: avgFriendships=%d < 0: %w", method, avgFriendships, ErrInvalidParameter)
	}
	return nil
}

// resetWithUsers empties g and adds numUsers users labelled by nameFn.
// IDs come out as 1..numUsers.
func resetWithUsers(g *core.Graph, numUsers int, nameFn NameFn) {
	g.Reset()
	for i := 0; i < numUsers; i++ {
		g.AddUser(nameFn(i))
	}
}
