package stream_test

import (
	"testing"

	"github.com/borisskert/lazy-stream/stream"
	"github.com/borisskert/lazy-stream/types"
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ints(vs ...int) types.Slice {
	out := make(types.Slice, 0, len(vs))
	for _, v := range vs {
		out = append(out, v)
	}
	return out
}

func TestOf(t *testing.T) {
	assert.Equal(t, ints(1, 2, 3), stream.Of(1, 2, 3).ToSlice())
	assert.Equal(t, types.Slice{}, stream.Of().ToSlice())
}

func TestFromSlice(t *testing.T) {
	assert.Equal(t, ints(4, 5, 6), stream.FromSlice([]int{4, 5, 6}).ToSlice())
	assert.Equal(t, types.Slice{"a", "b"}, stream.FromSlice([]string{"a", "b"}).ToSlice())
	assert.Equal(t, types.Slice{}, stream.FromSlice(42).ToSlice())
	assert.Equal(t, types.Slice{}, stream.FromSlice(nil).ToSlice())
}

func TestFromList(t *testing.T) {
	list := arraylist.New("C", "B", "A")
	assert.Equal(t, types.Slice{"C", "B", "A"}, stream.FromList(list).ToSlice())
}

func TestIntRange(t *testing.T) {
	assert.Equal(t, ints(1, 2, 3, 4, 5), stream.IntRange(1, func(x int) bool { return x <= 5 }).ToSlice())

	doubling := func(x int) int { return x * 2 }
	assert.Equal(t, ints(1, 2, 4, 8), stream.IntRange(1, func(x int) bool { return x < 10 }, doubling).ToSlice())
}

func TestIntRangeChecksBeforeFirstYield(t *testing.T) {
	assert.Equal(t, types.Slice{}, stream.IntRange(10, func(x int) bool { return x < 10 }).ToSlice())
}

func TestEmpty(t *testing.T) {
	assert.Equal(t, types.Slice{}, stream.Empty().ToSlice())
	assert.True(t, stream.Empty().IsEmpty())
	assert.EqualValues(t, 0, stream.Empty().Count())
}

func TestNewFromSourceFactory(t *testing.T) {
	s := stream.New(func() types.Iterator {
		return ints(7, 8, 9).Iterator()
	})
	assert.Equal(t, ints(7, 8, 9), s.ToSlice())
	assert.Equal(t, ints(7, 8, 9), s.ToSlice())
}

func TestStreamIsRestartable(t *testing.T) {
	s := stream.IntRange(1, func(x int) bool { return x <= 6 }).
		Filter(func(e interface{}, _ int) bool { return e.(int)%2 == 0 })

	first := s.ToSlice()
	second := s.ToSlice()
	assert.Equal(t, ints(2, 4, 6), first)
	assert.Equal(t, first, second)
}

func TestOperationsDoNotMutateTheReceiver(t *testing.T) {
	s := stream.Of(1, 2, 3)
	_ = s.Take(1).ToSlice()
	_ = s.Drop(2).ToSlice()
	_ = s.Reverse().ToSlice()
	assert.Equal(t, ints(1, 2, 3), s.ToSlice())
}

func TestCursorStaysExhausted(t *testing.T) {
	c := stream.Of(1).Cursor()

	e, ok := c.Next()
	require.True(t, ok)
	assert.Equal(t, 1, e)

	for k := 0; k < 3; k++ {
		_, ok = c.Next()
		assert.False(t, ok)
	}
}

func TestCursorsAreIndependent(t *testing.T) {
	s := stream.Of(1, 2, 3)
	a := s.Cursor()
	b := s.Cursor()

	e, _ := a.Next()
	assert.Equal(t, 1, e)
	e, _ = a.Next()
	assert.Equal(t, 2, e)

	e, _ = b.Next()
	assert.Equal(t, 1, e)
}
