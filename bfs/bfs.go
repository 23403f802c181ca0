// Package bfs computes shortest-friendship-path trees over a core.Graph.
package bfs

import (
	"context"
	"fmt"
	"slices"

	"github.com/katalvlaran/socialpath/core"
	"github.com/katalvlaran/socialpath/queue"
)

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  Options
	ctx   context.Context
	queue *queue.Queue[Path]
	tree  PathTree
}

// FindAllPaths runs breadth-first search on g from root and returns the
// shortest path to every reachable user.
// Returns ErrGraphNil, an error wrapping core.ErrUnknownUser for a missing
// root, ErrOptionViolation for bad options, ctx.Err() on cancellation, or
// any OnVisit error.
func FindAllPaths(g *core.Graph, root int, opts ...Option) (PathTree, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasUser(root) {
		return nil, fmt.Errorf("bfs: root %d: %w", root, core.ErrUnknownUser)
	}

	n := g.UserCount()
	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: queue.New[Path](n),
		tree:  make(PathTree, n),
	}
	w.queue.Enqueue(Path{root})

	if err := w.loop(); err != nil {
		return nil, err
	}
	return w.tree, nil
}

// loop drains the queue. A user is recorded the first time a path ending in
// it is dequeued; FIFO order guarantees that path is a shortest one.
// Neighbors are enqueued whether or not they were already visited.
func (w *walker) loop() error {
	for w.queue.Size() > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		path, err := w.queue.Dequeue()
		if err != nil {
			return err
		}
		current := path.Last()
		if _, seen := w.tree[current]; seen {
			continue
		}
		w.tree[current] = path
		if err := w.opts.OnVisit(current, path); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", current, err)
		}
		if err := w.enqueueNeighbors(path, current); err != nil {
			return err
		}
	}
	return nil
}

// enqueueNeighbors appends path+neighbor for each friend of current.
func (w *walker) enqueueNeighbors(path Path, current int) error {
	if w.opts.MaxDepth > 0 && path.Len() >= w.opts.MaxDepth {
		return nil
	}
	friends, err := w.graph.FriendIDs(current)
	if err != nil {
		return fmt.Errorf("bfs: friends of %d: %w", current, err)
	}
	if w.opts.SortedNeighbors {
		slices.Sort(friends)
	}
	for _, nbr := range friends {
		next := make(Path, len(path), len(path)+1)
		copy(next, path)
		w.queue.Enqueue(append(next, nbr))
	}
	return nil
}
