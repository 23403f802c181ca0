// File: types.go
// Role: User, Graph, GraphOption, sentinel errors and the NewGraph constructor.
// Concurrency:
//   - mu guards users, friends, lastID and friendshipCount together.

package core

import (
	"errors"
	"io"
	"sync"

	"github.com/charmbracelet/log"
)

// Sentinel errors for core graph operations.
var (
	// ErrUnknownUser indicates an operation referenced a user ID absent from the graph.
	ErrUnknownUser = errors.New("core: unknown user")

	// ErrSelfFriendship is the advisory raised when a user is befriended with itself.
	ErrSelfFriendship = errors.New("core: you cannot be friends with yourself")

	// ErrDuplicateFriendship is the advisory raised when the friendship already exists.
	ErrDuplicateFriendship = errors.New("core: friendship already exists")
)

// User is a member of the social graph.
//
// ID is assigned by AddUser and never changes. Name is an opaque label and
// need not be unique.
type User struct {
	ID   int
	Name string
}

// GraphOption configures a Graph before first use.
type GraphOption func(g *Graph)

// WithLogger routes advisory warnings to l. A nil logger is ignored.
func WithLogger(l *log.Logger) GraphOption {
	return func(g *Graph) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithWarningHook registers fn to receive every advisory condition
// (ErrSelfFriendship, ErrDuplicateFriendship, wrapped with the offending IDs).
// The hook runs after the graph lock is released.
func WithWarningHook(fn func(error)) GraphOption {
	return func(g *Graph) {
		if fn != nil {
			g.onWarning = fn
		}
	}
}

// Graph is the user directory plus the undirected friendship adjacency.
type Graph struct {
	mu sync.RWMutex

	lastID          int                      // last issued user ID; 0 on an empty graph
	users           map[int]*User            // user ID → record
	friends         map[int]map[int]struct{} // user ID → neighbor set
	friendshipCount int                      // unordered pairs

	logger    *log.Logger
	onWarning func(error)
}

// NewGraph creates an empty Graph.
// By default advisories are logged to a discarding logger and no hook is set.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		users:     make(map[int]*User),
		friends:   make(map[int]map[int]struct{}),
		logger:    log.New(io.Discard),
		onWarning: func(error) {},
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
