// Package queue provides a small generic FIFO container.
//
// The BFS engine in package bfs uses Queue[bfs.Path] to order frontier
// expansion: items leave in exactly the order they arrived, which is what
// makes the first path dequeued for a user a shortest one.
//
// Errors
//
//   - ErrEmptyQueue  if Dequeue or Peek is called on an empty queue.
//
// Concurrency
//
//	A Queue is NOT goroutine-safe. It is meant to be owned by a single
//	traversal; share it across goroutines only behind your own lock.
//
// Complexity
//
//   - Enqueue: amortized O(1).
//   - Dequeue: amortized O(1) (the backing slice is compacted lazily).
//   - Size, Peek: O(1).
package queue
