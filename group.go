package xqueue

import (
	"iter"
	"log/slog"

	"deedles.dev/xqueue/internal/list"
)

// A Context is the entry of a single Queue in a [Group].
type Context struct {
	link  list.Link[Context]
	group *Group

	// Queue is the queue held by this entry.
	Queue *Queue

	// ID identifies the entry within its group. IDs are assigned in
	// increasing order as entries are added and are never reused.
	ID int
}

// Size returns the size of the entry's queue.
func (c *Context) Size() int {
	return c.Queue.Size()
}

// Next returns the entry following c in its group, wrapping around at
// the end. It returns nil if c is not in a group.
func (c *Context) Next() *Context {
	if c.group == nil {
		return nil
	}

	n := c.link.Next()
	if n == &c.group.head {
		n = n.Next()
	}
	return n.Elem()
}

// Prev is like [Context.Next] but goes backwards.
func (c *Context) Prev() *Context {
	if c.group == nil {
		return nil
	}

	p := c.link.Prev()
	if p == &c.group.head {
		p = p.Prev()
	}
	return p.Elem()
}

// A Group is an ordered chain of queues that can be merged into one.
// The zero value is an empty Group that is ready to use.
type Group struct {
	_ noCopy

	head   list.Link[Context]
	nextID int
}

func (g *Group) init() {
	if g.head.Detached() {
		g.head.Init(nil)
	}
}

// Add appends q to the end of the group and returns its new entry.
func (g *Group) Add(q *Queue) *Context {
	g.init()

	c := Context{group: g, Queue: q, ID: g.nextID}
	c.link.Init(&c)
	g.head.InsertBefore(&c.link)
	g.nextID++
	return &c
}

// Remove removes the entry c from the group. The entry's queue is not
// freed. It returns false if c is not a member of g.
func (g *Group) Remove(c *Context) bool {
	if c == nil || c.group != g {
		return false
	}

	c.link.Unlink()
	c.group = nil
	return true
}

// Len returns the number of entries in the group.
func (g *Group) Len() int {
	g.init()
	return g.head.Len()
}

// First returns the first entry of the group, or nil if the group is
// empty.
func (g *Group) First() *Context {
	g.init()
	return g.head.Next().Elem()
}

// Contexts returns an iterator over the entries of the group in order.
// It is safe to remove the yielded entry during iteration.
func (g *Group) Contexts() iter.Seq[*Context] {
	g.init()
	return func(yield func(*Context) bool) {
		for link := range g.head.All() {
			if !yield(link.Elem()) {
				return
			}
		}
	}
}

// Merge moves the elements of every queue in the group into the queue
// of the first entry and sorts the result. The other queues are left
// empty but are not freed, and their entries stay in the group. It
// returns the size of the merged queue.
//
// A group with a single entry is not sorted. Its size is returned as
// is.
func (g *Group) Merge(descending bool) int {
	g.init()
	if g.head.Empty() {
		return 0
	}

	first := g.First()
	if g.head.Singular() {
		return first.Size()
	}
	if !first.Queue.usable() {
		slog.Warn("first queue of group is unusable, not merging", "id", first.ID)
		return 0
	}

	dst := &first.Queue.head
	for c := range g.Contexts() {
		if c == first || c.Queue == first.Queue {
			continue
		}
		if !c.Queue.usable() {
			slog.Warn("skipping unusable queue during merge", "id", c.ID)
			continue
		}

		dst.Prev().Splice(&c.Queue.head)
	}

	first.Queue.Sort(descending)
	return first.Size()
}
