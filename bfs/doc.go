// Package bfs computes a shortest-path tree from one user of a core.Graph:
// for every user reachable through friendships, the path with the fewest
// friendships from the root.
//
// What
//
//   - FindAllPaths(g, root) returns a PathTree: user ID → Path, where the
//     Path starts at root and ends at that user. The root maps to [root].
//   - Users in other components are simply absent.
//   - PathTree helpers: PathTo, IDs, Reachable, AveragePathLength, Degrees.
//
// How
//
//	The queue holds whole paths, not single users. A path is dequeued, and
//	if its last user has not been recorded yet the path is stored for it;
//	then one extended path per friend is enqueued. Visitation is checked at
//	dequeue time only. Because paths grow by one friendship per enqueue and
//	the queue is FIFO, paths leave the queue in non-decreasing length, so the
//	first path seen for a user is a shortest one.
//
// Determinism
//
//	core.Graph.FriendIDs is unordered, so when several shortest paths exist
//	the one returned is unspecified. Pass WithSortedNeighbors() to enqueue
//	friends in ascending ID order, which makes the whole tree reproducible.
//
// Complexity
//
//   - Time:   O(V + E·L) where L is the path length copied per enqueue.
//   - Memory: O(E·L) for queued paths in the worst case.
//
// Usage
//
//	tree, err := bfs.FindAllPaths(g, 1)
//	if errors.Is(err, core.ErrUnknownUser) { /* no such root */ }
//
//	tree, err := bfs.FindAllPaths(g, 1,
//	    bfs.WithSortedNeighbors(),
//	    bfs.WithMaxDepth(3),
//	    bfs.WithContext(ctx),
//	    bfs.WithOnVisit(func(id int, p bfs.Path) error { return nil }),
//	)
//
// Errors
//
//   - ErrGraphNil          if the graph pointer is nil.
//   - core.ErrUnknownUser  (wrapped) if root is not in the graph.
//   - ErrOptionViolation   for invalid options (e.g. negative MaxDepth).
//   - ctx.Err()            if the context is cancelled mid-search.
//   - Wrapped OnVisit errors.
package bfs
