package xqueue

import "strings"

// FilterAscend deletes every element that has an element with a
// strictly smaller value anywhere after it, leaving a queue that is in
// non-decreasing order. It returns the number of remaining elements.
func (q *Queue) FilterAscend() int {
	return q.filter(func(c int) bool { return c > 0 })
}

// FilterDescend deletes every element that has an element with a
// strictly larger value anywhere after it, leaving a queue that is in
// non-increasing order. It returns the number of remaining elements.
func (q *Queue) FilterDescend() int {
	return q.filter(func(c int) bool { return c < 0 })
}

// filter walks the queue from back to front, comparing each element
// with the extreme value kept so far, and deletes it if drop returns
// true for the result of the comparison.
func (q *Queue) filter(drop func(c int) bool) (n int) {
	if q.empty() {
		return 0
	}

	var extreme string
	for link := range q.head.Backward() {
		e := link.Elem()
		if n > 0 && drop(strings.Compare(e.value, extreme)) {
			q.delete(e)
			continue
		}

		extreme = e.value
		n++
	}
	return n
}
