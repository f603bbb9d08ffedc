package aoc

// Queue is a FIFO queue.
type Queue[T any] struct {
	items []T
	head  int
}

func NewQueue[T any](in ...T) *Queue[T] {
	return &Queue[T]{items: in}
}

func (q *Queue[T]) Len() int { return len(q.items) - q.head }

func (q *Queue[T]) Push(v T) { q.items = append(q.items, v) }

func (q *Queue[T]) Pop() (T, bool) {
	var zero T
	if q.Len() == 0 {
		return zero, false
	}
	v := q.items[q.head]
	q.items[q.head] = zero
	q.head++
	// Reuse the backing array once it is fully drained.
	if q.head == len(q.items) {
		q.items, q.head = q.items[:0], 0
	}
	return v, true
}

// Stack is a LIFO stack.
type Stack[T any] []T

func (s *Stack[T]) Push(v T) { *s = append(*s, v) }

func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	n := len(*s)
	if n == 0 {
		return zero, false
	}
	v := (*s)[n-1]
	*s = (*s)[:n-1]
	return v, true
}
