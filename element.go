package xqueue

import (
	"strings"

	"deedles.dev/xqueue/internal/list"
)

// An Element is a single string value of a Queue. An Element returned
// by one of the remove methods of a Queue belongs to the caller, who
// should either push it back into a queue or release it.
type Element struct {
	link     list.Link[Element]
	value    string
	released bool
}

func newElement(v string) *Element {
	e := Element{value: strings.Clone(v)}
	e.link.Init(&e)
	return &e
}

// Value returns the element's value. It returns an empty string once
// the element has been released.
func (e *Element) Value() string {
	if e == nil {
		return ""
	}
	return e.value
}

// Release drops the element's value. It returns false, and does
// nothing, if e is nil, still linked into a queue, or already
// released.
func (e *Element) Release() bool {
	if e == nil || e.released || !e.link.Detached() {
		return false
	}

	e.value = ""
	e.released = true
	return true
}

// Released reports whether e has been released.
func (e *Element) Released() bool {
	return e != nil && e.released
}

func (e *Element) pushable() error {
	switch {
	case e == nil, e.released:
		return ErrReleased
	case !e.link.Detached():
		return ErrLinked
	default:
		return nil
	}
}

// copyOut copies as much of v into buf as fits while leaving room for
// a terminating zero byte. The rest of buf is zeroed.
func copyOut(buf []byte, v string) {
	if len(buf) == 0 {
		return
	}

	n := copy(buf[:len(buf)-1], v)
	clear(buf[n:])
}
