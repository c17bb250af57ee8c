package xqueue_test

import (
	"slices"
	"testing"

	"deedles.dev/xqueue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQueue(t testing.TB, values ...string) *xqueue.Queue {
	t.Helper()

	q := xqueue.New()
	require.NotNil(t, q)
	for _, v := range values {
		require.NoError(t, q.InsertTail(v))
	}
	return q
}

func TestInsertRemoveOrder(t *testing.T) {
	q := newQueue(t)
	for _, v := range []string{"a", "b", "c"} {
		require.NoError(t, q.InsertHead(v))
	}
	for _, want := range []string{"c", "b", "a"} {
		e := q.RemoveHead(nil)
		require.NotNil(t, e)
		require.Equal(t, want, e.Value())
		require.True(t, e.Release())
	}
	require.Nil(t, q.RemoveHead(nil))

	q = newQueue(t, "a", "b", "c")
	for _, want := range []string{"a", "b", "c"} {
		require.Equal(t, want, q.RemoveHead(nil).Value())
	}

	q = newQueue(t, "a", "b", "c")
	for _, want := range []string{"c", "b", "a"} {
		require.Equal(t, want, q.RemoveTail(nil).Value())
	}
	require.Nil(t, q.RemoveTail(nil))
}

func TestRemoveBuffer(t *testing.T) {
	q := newQueue(t, "hello", "hi")

	buf := []byte("xxxxxxxx")
	e := q.RemoveHead(buf[:4])
	require.NotNil(t, e)
	assert.Equal(t, "hello", e.Value())
	assert.Equal(t, []byte("hel\x00xxxx"), buf)

	buf = []byte("xxxxxxxx")
	q.RemoveTail(buf)
	assert.Equal(t, []byte("hi\x00\x00\x00\x00\x00\x00"), buf)

	require.NoError(t, q.InsertTail("x"))
	assert.NotNil(t, q.RemoveHead([]byte{}))
}

func TestSize(t *testing.T) {
	q := newQueue(t)
	assert.Equal(t, 0, q.Size())

	for i, v := range []string{"a", "b", "c", "d"} {
		require.NoError(t, q.InsertTail(v))
		assert.Equal(t, i+1, q.Size())
	}

	q.RemoveHead(nil)
	q.RemoveTail(nil)
	q.DeleteMiddle()
	assert.Equal(t, 1, q.Size())
}

func TestNilQueue(t *testing.T) {
	var q *xqueue.Queue
	assert.ErrorIs(t, q.InsertHead("a"), xqueue.ErrNilQueue)
	assert.ErrorIs(t, q.InsertTail("a"), xqueue.ErrNilQueue)
	assert.Nil(t, q.RemoveHead(nil))
	assert.Nil(t, q.RemoveTail(nil))
	assert.Equal(t, 0, q.Size())
	assert.False(t, q.DeleteMiddle())
	assert.False(t, q.DeleteAdjacentDuplicates())
	assert.Equal(t, 0, q.FilterAscend())
	assert.Equal(t, 0, q.FilterDescend())
	assert.Empty(t, q.Values())

	q.SwapPairs()
	q.Reverse()
	q.ReverseInBlocks(2)
	q.Sort(false)
	q.Free()
}

func TestFree(t *testing.T) {
	q := newQueue(t, "a", "b")
	q.Free()
	assert.Equal(t, 0, q.Size())
	assert.ErrorIs(t, q.InsertTail("c"), xqueue.ErrFreed)
	assert.Nil(t, q.RemoveHead(nil))
	q.Free()
}

func TestAllocFailure(t *testing.T) {
	require.Nil(t, xqueue.New(xqueue.WithAllocator(func() bool { return false })))

	var calls int
	fail := false
	q := xqueue.New(xqueue.WithAllocator(func() bool {
		calls++
		return !fail
	}))
	require.NotNil(t, q)
	require.NoError(t, q.InsertTail("a"))

	fail = true
	assert.ErrorIs(t, q.InsertTail("b"), xqueue.ErrAlloc)
	assert.ErrorIs(t, q.InsertHead("b"), xqueue.ErrAlloc)
	assert.Equal(t, []string{"a"}, q.Values())
	assert.Equal(t, 5, calls)
}

func TestElementOwnership(t *testing.T) {
	q := newQueue(t, "a", "b")
	other := newQueue(t)

	e := q.RemoveHead(nil)
	require.NotNil(t, e)
	require.NoError(t, other.PushTail(e))
	assert.ErrorIs(t, q.PushHead(e), xqueue.ErrLinked)
	assert.False(t, e.Release())
	assert.Equal(t, []string{"a"}, other.Values())

	e = other.RemoveTail(nil)
	require.True(t, e.Release())
	assert.True(t, e.Released())
	assert.False(t, e.Release())
	assert.Equal(t, "", e.Value())
	assert.ErrorIs(t, q.PushHead(e), xqueue.ErrReleased)
	assert.ErrorIs(t, q.PushHead(nil), xqueue.ErrReleased)

	e = q.RemoveTail(nil)
	require.NoError(t, q.PushHead(e))
	assert.Equal(t, []string{"b"}, q.Values())
}

func TestInsertCopies(t *testing.T) {
	b := []byte("abc")
	q := newQueue(t, string(b))
	b[0] = 'x'
	assert.Equal(t, []string{"abc"}, q.Values())
}

func TestDeleteMiddle(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		out  []string
	}{
		{name: "Single", in: []string{"a"}, out: []string{}},
		{name: "Even", in: []string{"a", "b"}, out: []string{"a"}},
		{name: "Odd", in: []string{"3", "1", "2"}, out: []string{"3", "2"}},
		{name: "Four", in: []string{"a", "b", "c", "d"}, out: []string{"a", "b", "d"}},
		{name: "Six", in: []string{"a", "b", "c", "d", "e", "f"}, out: []string{"a", "b", "c", "e", "f"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			q := newQueue(t, test.in...)
			require.True(t, q.DeleteMiddle())
			assert.Equal(t, test.out, q.Values())
		})
	}

	assert.False(t, newQueue(t).DeleteMiddle())
}

func TestDeleteAdjacentDuplicates(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		out  []string
	}{
		{name: "None", in: []string{"a", "b", "c"}, out: []string{"a", "b", "c"}},
		{name: "All", in: []string{"a", "a", "a"}, out: []string{}},
		{name: "Runs", in: []string{"a", "a", "b", "c", "c", "c", "d"}, out: []string{"b", "d"}},
		{name: "Tail", in: []string{"a", "b", "b"}, out: []string{"a"}},
		{name: "NotAdjacent", in: []string{"a", "b", "a"}, out: []string{"a", "b", "a"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			q := newQueue(t, test.in...)
			require.True(t, q.DeleteAdjacentDuplicates())
			assert.Equal(t, test.out, q.Values())
		})
	}

	assert.False(t, newQueue(t).DeleteAdjacentDuplicates())
}

func TestDeleteDuplicatesAfterSort(t *testing.T) {
	q := newQueue(t, "c", "a", "b", "a", "c", "d")
	q.Sort(false)
	q.DeleteAdjacentDuplicates()
	assert.Equal(t, []string{"b", "d"}, q.Values())
}

func TestSwapPairs(t *testing.T) {
	q := newQueue(t, "1", "2", "3", "4", "5")
	q.SwapPairs()
	assert.Equal(t, []string{"2", "1", "4", "3", "5"}, q.Values())

	q = newQueue(t, "1", "2", "3", "4")
	q.SwapPairs()
	assert.Equal(t, []string{"2", "1", "4", "3"}, q.Values())
	assert.Equal(t, []string{"3", "4", "1", "2"}, slices.Collect(q.Backward()))

	q = newQueue(t, "1")
	q.SwapPairs()
	assert.Equal(t, []string{"1"}, q.Values())
}

func TestReverse(t *testing.T) {
	q := newQueue(t, "a", "b", "c", "d")
	q.Reverse()
	assert.Equal(t, []string{"d", "c", "b", "a"}, q.Values())
	assert.Equal(t, []string{"a", "b", "c", "d"}, slices.Collect(q.Backward()))

	q.Reverse()
	assert.Equal(t, []string{"a", "b", "c", "d"}, q.Values())

	q = newQueue(t)
	q.Reverse()
	assert.Empty(t, q.Values())
}

func TestReverseInBlocks(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		k    int
		out  []string
	}{
		{name: "Pairs", in: []string{"1", "2", "3", "4", "5"}, k: 2, out: []string{"2", "1", "4", "3", "5"}},
		{name: "Triples", in: []string{"1", "2", "3", "4", "5", "6", "7"}, k: 3, out: []string{"3", "2", "1", "6", "5", "4", "7"}},
		{name: "Whole", in: []string{"1", "2", "3"}, k: 3, out: []string{"3", "2", "1"}},
		{name: "One", in: []string{"1", "2", "3"}, k: 1, out: []string{"1", "2", "3"}},
		{name: "TooLarge", in: []string{"1", "2", "3"}, k: 4, out: []string{"1", "2", "3"}},
		{name: "Zero", in: []string{"1", "2", "3"}, k: 0, out: []string{"1", "2", "3"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			q := newQueue(t, test.in...)
			q.ReverseInBlocks(test.k)
			assert.Equal(t, test.out, q.Values())
		})
	}
}

func TestValuesEarlyExit(t *testing.T) {
	q := newQueue(t, "a", "b", "c")
	for v := range q.All() {
		if v == "b" {
			break
		}
	}
	for v := range q.Backward() {
		if v == "b" {
			break
		}
	}
	assert.Equal(t, 3, q.Size())
}

func BenchmarkInsertRemove(b *testing.B) {
	q := xqueue.New()
	for range b.N {
		q.InsertTail("value")
		q.RemoveHead(nil).Release()
	}
}
