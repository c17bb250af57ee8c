package xqueue

import "strings"

func compareElements(a, b *Element) int {
	return strings.Compare(a.value, b.value)
}

// Sort sorts the queue in place by byte-wise comparison of the
// values, in ascending order or, if descending is true, in descending
// order. Sorting is a merge sort that allocates no elements.
//
// Elements with equal values keep their relative order when sorting in
// ascending order. When sorting in descending order, ties between the
// two halves of each merge are taken from the second half first.
func (q *Queue) Sort(descending bool) {
	if q.empty() {
		return
	}
	q.head.Sort(compareElements, descending)
}
