package list

// A chain is a detached, singly-linked run of nodes: only the forward
// links are meaningful and the last node's forward link is nil. The
// backward links of nodes in a chain are stale until the chain is
// attached to a sentinel again.

// Detach breaks the list anchored at sentinel l into a chain and
// returns its first node, or nil if the list was empty. The sentinel is
// left empty.
func (l *Link[E]) Detach() *Link[E] {
	if l.Empty() {
		return nil
	}

	head := l.next
	l.prev.next = nil
	l.Init(l.elem)
	return head
}

// Attach links the chain starting at head onto the back of the list
// anchored at sentinel l, restoring the backward links of every node.
func (l *Link[E]) Attach(head *Link[E]) {
	tail := l.prev
	for head != nil {
		next := head.next
		head.prev = tail
		tail.next = head
		tail = head
		head = next
	}
	tail.next = l
	l.prev = tail
}

// Merge merges the sorted chains a and b into a single chain and
// returns its first node. No nodes are allocated. Elements that
// compare equal are taken from a first when ascending and from b first
// when descending.
func Merge[E any](a, b *Link[E], cmp func(*E, *E) int, descending bool) *Link[E] {
	var head Link[E]
	tail := &head
	for a != nil && b != nil {
		fromA := cmp(a.elem, b.elem) <= 0
		if descending {
			fromA = !fromA
		}

		if fromA {
			tail.next = a
			a = a.next
		} else {
			tail.next = b
			b = b.next
		}
		tail = tail.next
	}

	if a != nil {
		tail.next = a
	} else {
		tail.next = b
	}
	return head.next
}

// MergeSort sorts the chain starting at head with a top-down merge sort
// and returns the new first node. The chain is split at its middle with
// a slow and a fast cursor.
func MergeSort[E any](head *Link[E], cmp func(*E, *E) int, descending bool) *Link[E] {
	if head == nil || head.next == nil {
		return head
	}

	slow, fast := head, head.next
	for fast != nil && fast.next != nil {
		slow = slow.next
		fast = fast.next.next
	}
	second := slow.next
	slow.next = nil

	return Merge(
		MergeSort(head, cmp, descending),
		MergeSort(second, cmp, descending),
		cmp,
		descending,
	)
}

// Sort sorts the list anchored at sentinel l in place according to
// cmp, reversing the order if descending is true. See [Merge] for how
// equal elements are ordered.
func (l *Link[E]) Sort(cmp func(*E, *E) int, descending bool) {
	if l.Empty() || l.Singular() {
		return
	}

	l.Attach(MergeSort(l.Detach(), cmp, descending))
}
