package xqueue

import "sync"

// Locked guards a Queue with a mutex so that it can be shared between
// goroutines. The Queue itself does no locking of its own, so every
// access to a shared Queue must go through the same Locked.
type Locked struct {
	_ noCopy

	m sync.Mutex
	q *Queue
}

// NewLocked returns a Locked that guards q.
func NewLocked(q *Queue) *Locked {
	return &Locked{q: q}
}

// Do calls f with the guarded Queue while holding the lock. The Queue
// must not be retained by f after it returns.
func (l *Locked) Do(f func(q *Queue)) {
	l.m.Lock()
	defer l.m.Unlock()

	f(l.q)
}

// InsertTail inserts v at the back of the guarded Queue.
func (l *Locked) InsertTail(v string) error {
	l.m.Lock()
	defer l.m.Unlock()

	return l.q.InsertTail(v)
}

// RemoveHead removes the first value of the guarded Queue, releasing
// its element. It returns false if the Queue was empty.
func (l *Locked) RemoveHead() (v string, ok bool) {
	l.m.Lock()
	defer l.m.Unlock()

	e := l.q.RemoveHead(nil)
	if e == nil {
		return "", false
	}

	v = e.Value()
	e.Release()
	return v, true
}
