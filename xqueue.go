// Package xqueue provides a queue of strings built on an intrusive,
// sentinel-anchored, circular doubly-linked list, along with a set of
// structural algorithms over it: editing at both ends, middle and
// duplicate deletion, pairwise swaps, full and block-wise reversal,
// stable merge sort, monotonic filtering, and merging of several
// queues into one sorted queue.
//
// None of the types in this package are safe for concurrent use. A
// caller that needs to share a [Queue] between goroutines can wrap it
// in a [Locked].
package xqueue

import "errors"

var (
	// ErrNilQueue is returned when inserting into a nil *Queue.
	ErrNilQueue = errors.New("xqueue: nil queue")

	// ErrFreed is returned when inserting into a Queue that has
	// already been freed.
	ErrFreed = errors.New("xqueue: queue has been freed")

	// ErrAlloc is returned when the Queue's allocator refuses to
	// provide storage for a new element. See [WithAllocator].
	ErrAlloc = errors.New("xqueue: allocation failed")

	// ErrLinked is returned when pushing an Element that is still a
	// member of a queue.
	ErrLinked = errors.New("xqueue: element is still linked")

	// ErrReleased is returned when pushing an Element that has already
	// been released.
	ErrReleased = errors.New("xqueue: element has been released")
)

type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
