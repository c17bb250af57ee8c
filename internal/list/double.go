// Package list implements an intrusive, circular, doubly-linked list.
//
// A [Link] is embedded in the value that it links and holds a pointer
// back to that value. A list is anchored by a sentinel Link that holds
// no value, so the list is empty exactly when the sentinel points at
// itself. None of the functions here validate the structure of the
// list that they are given.
package list

import "iter"

// Link is a node of a circular, doubly-linked list. The zero value is
// detached and must be initialized with [Link.Init] before it can be
// used as a sentinel.
type Link[E any] struct {
	next, prev *Link[E]
	elem       *E
}

// Init turns l into a single-node loop belonging to elem and returns
// l. A sentinel is initialized with a nil elem.
func (l *Link[E]) Init(elem *E) *Link[E] {
	l.next = l
	l.prev = l
	l.elem = elem
	return l
}

// Elem returns the value that embeds l, or nil for a sentinel.
func (l *Link[E]) Elem() *E {
	return l.elem
}

// Next returns the link following l.
func (l *Link[E]) Next() *Link[E] {
	return l.next
}

// Prev returns the link preceding l.
func (l *Link[E]) Prev() *Link[E] {
	return l.prev
}

// Detached reports whether l is not currently part of any list, either
// because it was never initialized or because it was unlinked.
func (l *Link[E]) Detached() bool {
	return l.next == nil
}

// Empty reports whether the list anchored at sentinel l has no nodes.
func (l *Link[E]) Empty() bool {
	return l.next == l
}

// Singular reports whether the list anchored at sentinel l has
// exactly one node.
func (l *Link[E]) Singular() bool {
	return l.next != l && l.next == l.prev
}

// InsertAfter links n directly after l.
func (l *Link[E]) InsertAfter(n *Link[E]) {
	n.prev = l
	n.next = l.next
	l.next.prev = n
	l.next = n
}

// InsertBefore links n directly before l.
func (l *Link[E]) InsertBefore(n *Link[E]) {
	l.prev.InsertAfter(n)
}

// Unlink removes l from its list. Afterwards l is detached until it is
// inserted somewhere else.
func (l *Link[E]) Unlink() {
	l.prev.next = l.next
	l.next.prev = l.prev
	l.next = nil
	l.prev = nil
}

// MoveAfter unlinks l and then links it directly after anchor.
func (l *Link[E]) MoveAfter(anchor *Link[E]) {
	l.Unlink()
	anchor.InsertAfter(l)
}

// Splice moves every node of the list anchored at sentinel src to
// directly after l, leaving src empty. It does not depend on the
// length of src.
func (l *Link[E]) Splice(src *Link[E]) {
	if src.Empty() {
		return
	}

	first, last := src.next, src.prev
	first.prev = l
	last.next = l.next
	l.next.prev = last
	l.next = first

	src.Init(src.elem)
}

// Len counts the nodes of the list anchored at sentinel l.
func (l *Link[E]) Len() (n int) {
	for cur := l.next; cur != l; cur = cur.next {
		n++
	}
	return n
}

// Middle returns the middle node of the list anchored at sentinel l,
// found with a slow and a fast cursor. For an even number of nodes it
// returns the later of the two central nodes. It returns l if the list
// is empty.
func (l *Link[E]) Middle() *Link[E] {
	slow, fast := l.next, l.next
	for fast != l && fast.next != l {
		slow = slow.next
		fast = fast.next.next
	}
	return slow
}

// Reverse reverses the list anchored at sentinel l by swapping the
// links of every node, the sentinel included.
func (l *Link[E]) Reverse() {
	cur := l
	for {
		cur.next, cur.prev = cur.prev, cur.next
		cur = cur.prev
		if cur == l {
			return
		}
	}
}

// All returns an iterator over the nodes of the list anchored at
// sentinel l, front to back. The following node is read before each
// node is yielded, so it is safe to unlink the yielded node.
func (l *Link[E]) All() iter.Seq[*Link[E]] {
	return func(yield func(*Link[E]) bool) {
		for cur, next := l.next, l.next.next; cur != l; cur, next = next, next.next {
			if !yield(cur) {
				return
			}
		}
	}
}

// Backward is like [Link.All] but goes back to front.
func (l *Link[E]) Backward() iter.Seq[*Link[E]] {
	return func(yield func(*Link[E]) bool) {
		for cur, prev := l.prev, l.prev.prev; cur != l; cur, prev = prev, prev.prev {
			if !yield(cur) {
				return
			}
		}
	}
}
