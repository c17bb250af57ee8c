package xqueue

import "deedles.dev/xqueue/internal/list"

// A Queue is an ordered collection of strings that can be edited at
// both ends. A Queue exclusively owns the elements linked into it.
//
// Methods on a nil or freed Queue do not panic. Queries return zero,
// false, or nil, mutations do nothing, and inserts return an error.
//
// The size of a Queue is not cached. [Queue.Size] walks the whole
// queue every time that it is called.
type Queue struct {
	_ noCopy

	head  list.Link[Element]
	alloc func() bool
	freed bool
}

// New returns a new, empty Queue. It returns nil only if an allocator
// installed with [WithAllocator] refuses the allocation.
func New(opts ...Option) *Queue {
	var q Queue
	for _, opt := range opts {
		opt(&q)
	}
	if !q.allocate() {
		return nil
	}

	q.head.Init(nil)
	return &q
}

func (q *Queue) allocate() bool {
	return q.alloc == nil || q.alloc()
}

func (q *Queue) usable() bool {
	return q != nil && !q.freed
}

func (q *Queue) empty() bool {
	return !q.usable() || q.head.Empty()
}

// Free releases every element of the queue. The queue can not be used
// afterwards. Calling Free on a nil or already freed queue does
// nothing.
func (q *Queue) Free() {
	if !q.usable() {
		return
	}

	for link := range q.head.All() {
		q.delete(link.Elem())
	}
	q.freed = true
}

func (q *Queue) insert(v string, at func(*list.Link[Element])) error {
	if q.freed {
		return ErrFreed
	}

	// One allocation for the element and another for its copy of the
	// string, either of which can fail.
	if !q.allocate() || !q.allocate() {
		return ErrAlloc
	}

	e := newElement(v)
	at(&e.link)
	return nil
}

// InsertHead adds a copy of v to the front of the queue. On error, the
// queue is left unchanged.
func (q *Queue) InsertHead(v string) error {
	if q == nil {
		return ErrNilQueue
	}
	return q.insert(v, q.head.InsertAfter)
}

// InsertTail adds a copy of v to the back of the queue. On error, the
// queue is left unchanged.
func (q *Queue) InsertTail(v string) error {
	if q == nil {
		return ErrNilQueue
	}
	return q.insert(v, q.head.InsertBefore)
}

func (q *Queue) push(e *Element, at func(*list.Link[Element])) error {
	if q.freed {
		return ErrFreed
	}
	if err := e.pushable(); err != nil {
		return err
	}

	at(&e.link)
	return nil
}

// PushHead links an element that was previously removed from a queue
// to the front of q, handing ownership of it back to a queue.
func (q *Queue) PushHead(e *Element) error {
	if q == nil {
		return ErrNilQueue
	}
	return q.push(e, q.head.InsertAfter)
}

// PushTail is like [Queue.PushHead] but links e at the back of q.
func (q *Queue) PushTail(e *Element) error {
	if q == nil {
		return ErrNilQueue
	}
	return q.push(e, q.head.InsertBefore)
}

func (q *Queue) remove(link *list.Link[Element], buf []byte) *Element {
	link.Unlink()
	e := link.Elem()
	copyOut(buf, e.value)
	return e
}

// RemoveHead unlinks the first element of the queue and returns it,
// or returns nil if the queue is empty. Ownership of the element
// passes to the caller.
//
// If buf is not empty, as much of the element's value as fits is
// copied into it, always leaving at least one terminating zero byte.
// Any remaining bytes of buf are zeroed.
func (q *Queue) RemoveHead(buf []byte) *Element {
	if q.empty() {
		return nil
	}
	return q.remove(q.head.Next(), buf)
}

// RemoveTail is like [Queue.RemoveHead] but removes the last element.
func (q *Queue) RemoveTail(buf []byte) *Element {
	if q.empty() {
		return nil
	}
	return q.remove(q.head.Prev(), buf)
}

// delete unlinks and releases e.
func (q *Queue) delete(e *Element) {
	e.link.Unlink()
	e.Release()
}

// Size returns the number of elements in the queue.
func (q *Queue) Size() int {
	if !q.usable() {
		return 0
	}
	return q.head.Len()
}

// DeleteMiddle deletes the middle element of the queue. For a queue
// with an even number of elements, the later of the two central
// elements is deleted. It returns false if the queue is empty.
func (q *Queue) DeleteMiddle() bool {
	if q.empty() {
		return false
	}

	q.delete(q.head.Middle().Elem())
	return true
}

// DeleteAdjacentDuplicates deletes every run of two or more
// neighbouring elements that have the same value, keeping none of the
// run. Duplicates that are not next to each other are left alone, so
// it is usually called on a sorted queue. It returns false only if the
// queue is empty.
func (q *Queue) DeleteAdjacentDuplicates() bool {
	if q.empty() {
		return false
	}

	inRun := false
	for link := range q.head.All() {
		e, next := link.Elem(), link.Next()
		switch {
		case next != &q.head && next.Elem().value == e.value:
			q.delete(e)
			inRun = true
		case inRun:
			q.delete(e)
			inRun = false
		}
	}
	return true
}

// SwapPairs swaps every two neighbouring elements, so that the first
// and second trade places, then the third and fourth, and so on. A
// trailing odd element stays where it is.
func (q *Queue) SwapPairs() {
	if q.empty() || q.head.Singular() {
		return
	}

	second := false
	for link := range q.head.All() {
		if second {
			link.MoveAfter(link.Prev().Prev())
		}
		second = !second
	}
}

// Reverse reverses the order of the queue in place.
func (q *Queue) Reverse() {
	if !q.usable() {
		return
	}
	q.head.Reverse()
}

// ReverseInBlocks reverses each successive block of k elements in
// place. A trailing block with fewer than k elements is left alone. It
// does nothing if k is less than 2 or larger than the queue.
func (q *Queue) ReverseInBlocks(k int) {
	if q.empty() || q.head.Singular() || k < 2 {
		return
	}

	anchor := &q.head
	for range q.head.Len() / k {
		first := anchor.Next()
		for range k - 1 {
			first.Next().MoveAfter(anchor)
		}
		anchor = first
	}
}
