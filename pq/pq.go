// Package pq implements a generic min-priority queue whose ordering is
// supplied by the caller.
//
// Elements that compare equal under less are popped in push order (FIFO),
// so algorithms built on Queue are deterministic even with tied keys.
//
// Complexity: Push and Pop are O(log n); Peek and Len are O(1).
package pq

import "container/heap"

// Queue is a min-priority queue ordered by a caller-supplied less function.
// The zero value is not usable; construct with New.
type Queue[T any] struct {
	h entries[T]
}

// New returns an empty Queue ordered by less.
// less(a, b) must report whether a should be popped before b.
func New[T any](less func(a, b T) bool) *Queue[T] {
	return &Queue[T]{h: entries[T]{less: less}}
}

// Len returns the number of queued elements.
func (q *Queue[T]) Len() int { return len(q.h.items) }

// Push adds x to the queue.
func (q *Queue[T]) Push(x T) {
	heap.Push(&q.h, entry[T]{value: x, seq: q.h.next})
	q.h.next++
}

// Pop removes and returns the minimum element.
// ok is false if the queue is empty.
func (q *Queue[T]) Pop() (x T, ok bool) {
	if len(q.h.items) == 0 {
		return x, false
	}

	return heap.Pop(&q.h).(entry[T]).value, true
}

// Peek returns the minimum element without removing it.
// ok is false if the queue is empty.
func (q *Queue[T]) Peek() (x T, ok bool) {
	if len(q.h.items) == 0 {
		return x, false
	}

	return q.h.items[0].value, true
}

// entry pairs a value with its push sequence number for FIFO tie-breaking.
type entry[T any] struct {
	value T
	seq   uint64
}

// entries implements heap.Interface over entry values.
type entries[T any] struct {
	items []entry[T]
	less  func(a, b T) bool
	next  uint64 // sequence number for the next Push
}

// Len returns the number of entries in the heap.
func (h entries[T]) Len() int { return len(h.items) }

// Less orders by the caller's less, then by push sequence.
func (h entries[T]) Less(i, j int) bool {
	a, b := h.items[i], h.items[j]
	if h.less(a.value, b.value) {
		return true
	}
	if h.less(b.value, a.value) {
		return false
	}

	return a.seq < b.seq
}

// Swap swaps elements at indices i and j.
func (h entries[T]) Swap(i, j int) { h.items[i], h.items[j] = h.items[j], h.items[i] }

// Push appends a new entry. Called by heap.Push.
func (h *entries[T]) Push(x any) { h.items = append(h.items, x.(entry[T])) }

// Pop removes the last entry. Called by heap.Pop.
func (h *entries[T]) Pop() any {
	old := h.items
	n := len(old)
	item := old[n-1]
	var zero entry[T]
	old[n-1] = zero // drop the reference for the GC
	h.items = old[:n-1]

	return item
}
