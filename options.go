package xqueue

// An Option configures a Queue created by [New].
type Option func(*Queue)

// WithAllocator installs a function that is consulted before every
// allocation that the Queue makes, including the allocation of the
// Queue itself. If it returns false, the allocation is treated as
// having failed. This is mostly useful for simulating memory pressure
// in tests.
func WithAllocator(alloc func() bool) Option {
	return func(q *Queue) {
		q.alloc = alloc
	}
}
