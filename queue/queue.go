package queue

import "errors"

// ErrEmptyQueue is returned by Dequeue and Peek when the queue holds no items.
var ErrEmptyQueue = errors.New("queue: dequeue from empty queue")

// compactThreshold is the minimum number of consumed head slots before
// the backing slice is considered for compaction.
const compactThreshold = 64

// Queue is a strict FIFO container. The zero value is an empty queue ready to use.
type Queue[T any] struct {
	items []T
	head  int // index of the current front element
}

// New returns an empty queue with room for capacity items before growing.
func New[T any](capacity int) *Queue[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Queue[T]{items: make([]T, 0, capacity)}
}

// Enqueue appends item to the back of the queue.
func (q *Queue[T]) Enqueue(item T) {
	q.items = append(q.items, item)
}

// Dequeue removes and returns the front item.
// Returns ErrEmptyQueue if the queue is empty.
func (q *Queue[T]) Dequeue() (T, error) {
	var zero T
	if q.Size() == 0 {
		return zero, ErrEmptyQueue
	}
	item := q.items[q.head]
	q.items[q.head] = zero // drop the reference so consumed items can be collected
	q.head++

	switch {
	case q.head == len(q.items):
		// fully drained: reuse the buffer from the start
		q.items = q.items[:0]
		q.head = 0
	case q.head >= compactThreshold && q.head*2 >= len(q.items):
		// consumed prefix dominates; shift the live tail down
		n := copy(q.items, q.items[q.head:])
		clear(q.items[n:])
		q.items = q.items[:n]
		q.head = 0
	}

	return item, nil
}

// Peek returns the front item without removing it.
// Returns ErrEmptyQueue if the queue is empty.
func (q *Queue[T]) Peek() (T, error) {
	if q.Size() == 0 {
		var zero T
		return zero, ErrEmptyQueue
	}
	return q.items[q.head], nil
}

// Size returns the number of items currently queued.
func (q *Queue[T]) Size() int {
	return len(q.items) - q.head
}
