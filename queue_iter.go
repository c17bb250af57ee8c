package xqueue

import "iter"

// All returns an iterator over the values of the queue from front to
// back. It is safe to remove the element holding the yielded value
// during iteration.
func (q *Queue) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		if !q.usable() {
			return
		}

		for link := range q.head.All() {
			if !yield(link.Elem().value) {
				return
			}
		}
	}
}

// Backward is like [Queue.All] but goes from back to front.
func (q *Queue) Backward() iter.Seq[string] {
	return func(yield func(string) bool) {
		if !q.usable() {
			return
		}

		for link := range q.head.Backward() {
			if !yield(link.Elem().value) {
				return
			}
		}
	}
}

// Values returns the values of the queue from front to back.
func (q *Queue) Values() []string {
	s := make([]string, 0, q.Size())
	for v := range q.All() {
		s = append(s, v)
	}
	return s
}
