// Package bfs provides tunable options, error definitions and result types
// for the shortest-path-tree search over a core.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"
	"sort"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by PathTree.PathTo for users outside the tree.
	ErrNoPath = errors.New("bfs: no path")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when FindAllPaths is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize the search.
type Options struct {
	// Ctx allows cancellation and deadlines. Checked once per dequeue.
	Ctx context.Context

	// OnVisit is called when a user is recorded in the tree with its shortest path.
	// Returning an error aborts the search.
	OnVisit func(id int, path Path) error

	// MaxDepth, if > 0, stops extending paths beyond this many friendships.
	// A value of 0 disables any depth limit.
	MaxDepth int

	// SortedNeighbors enqueues neighbors in ascending ID order so that ties
	// between equally short paths are broken deterministically.
	SortedNeighbors bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no depth limit
//   - neighbor order as the graph yields it (unordered)
//   - no-op OnVisit.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: func(int, Path) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run when a user joins the tree.
// The path passed in must not be modified.
func WithOnVisit(fn func(id int, path Path) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits paths to at most d friendships.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithSortedNeighbors makes tie-breaks between equally short paths
// reproducible by visiting neighbors in ascending ID order.
func WithSortedNeighbors() Option {
	return func(o *Options) { o.SortedNeighbors = true }
}

// Path is a walk from the root to a user, root first, with no repeated IDs.
type Path []int

// Len returns the number of friendships on the path (nodes − 1).
func (p Path) Len() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// Last returns the destination user of the path.
func (p Path) Last() int { return p[len(p)-1] }

// PathTree maps every user reachable from the root (root included) to a
// shortest path from the root. Unreachable users are absent.
type PathTree map[int]Path

// PathTo returns the shortest path to dest, or ErrNoPath if dest was not reached.
func (t PathTree) PathTo(dest int) (Path, error) {
	p, ok := t[dest]
	if !ok {
		return nil, fmt.Errorf("%w to %d", ErrNoPath, dest)
	}
	return p, nil
}

// IDs returns the users in the tree in ascending order.
func (t PathTree) IDs() []int {
	ids := make([]int, 0, len(t))
	for id := range t {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Reachable returns the number of users reachable from the root, excluding the root.
func (t PathTree) Reachable() int {
	if len(t) == 0 {
		return 0
	}
	return len(t) - 1
}

// AveragePathLength returns the mean number of users per path over every
// entry, root included (a lone root gives 1). An empty tree gives 0.
func (t PathTree) AveragePathLength() float64 {
	if len(t) == 0 {
		return 0
	}
	total := 0
	for _, p := range t {
		total += len(p)
	}
	return float64(total) / float64(len(t))
}

// Degrees returns how many users sit at each degree of separation
// (0 for the root, 1 for direct friends, ...).
func (t PathTree) Degrees() map[int]int {
	out := make(map[int]int)
	for _, p := range t {
		out[p.Len()]++
	}
	return out
}
