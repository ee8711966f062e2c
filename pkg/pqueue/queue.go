// pkg/pqueue/queue.go
package pqueue

import "cmp"

type node[T any, P cmp.Ordered] struct {
	value    T
	priority P
}

// Queue is a binary min-heap: the entry with the lowest priority is served
// first. There is no way to update or remove an entry by value; callers that
// need a new priority add a second entry and ignore the old one when it comes
// out. Entries with equal priority come out in no particular order.
type Queue[T any, P cmp.Ordered] struct {
	heap []node[T, P]
}

// New returns an empty queue.
func New[T any, P cmp.Ordered]() *Queue[T, P] {
	return &Queue[T, P]{}
}

// Add inserts value with the given priority.
// The complexity is O(log n) where n = q.Len().
func (q *Queue[T, P]) Add(value T, priority P) {
	q.heap = append(q.heap, node[T, P]{value: value, priority: priority})
	q.up(len(q.heap) - 1)
}

// Peek returns the value with the lowest priority without removing it.
func (q *Queue[T, P]) Peek() (T, bool) {
	if len(q.heap) == 0 {
		var zero T
		return zero, false
	}
	return q.heap[0].value, true
}

// Poll removes and returns the value with the lowest priority.
// The complexity is O(log n) where n = q.Len().
func (q *Queue[T, P]) Poll() (T, bool) {
	n := len(q.heap)
	if n == 0 {
		var zero T
		return zero, false
	}

	first := q.heap[0]
	q.swap(0, n-1)
	q.heap[n-1] = node[T, P]{}
	q.heap = q.heap[:n-1]
	q.down(0)

	return first.value, true
}

// Len returns the number of entries, stale ones included.
func (q *Queue[T, P]) Len() int {
	return len(q.heap)
}

// Clear drops every entry but keeps the backing array for reuse.
func (q *Queue[T, P]) Clear() {
	clear(q.heap)
	q.heap = q.heap[:0]
}

func (q *Queue[T, P]) up(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !(q.heap[i].priority < q.heap[parent].priority) {
			return
		}
		q.swap(i, parent)
		i = parent
	}
}

func (q *Queue[T, P]) down(i int) {
	n := len(q.heap)
	for {
		left := 2*i + 1
		if left >= n {
			return
		}

		// Правый потомок выбирается только при строго меньшем приоритете
		lowest := left
		if right := left + 1; right < n && q.heap[right].priority < q.heap[left].priority {
			lowest = right
		}

		if !(q.heap[i].priority > q.heap[lowest].priority) {
			return
		}
		q.swap(i, lowest)
		i = lowest
	}
}

func (q *Queue[T, P]) swap(i, j int) {
	q.heap[i], q.heap[j] = q.heap[j], q.heap[i]
}
