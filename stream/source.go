package stream

import (
	"reflect"

	"github.com/borisskert/lazy-stream/types"
	"github.com/emirpasic/gods/lists/arraylist"
)

// Source builds a fresh cursor over the same logical sequence on every
// invocation. A Stream stores the factory, never a live cursor, which
// is what makes a handle restartable: each traversal re-invokes the
// factory chain from scratch.
type Source func() types.Iterator

type stream struct {
	source Source
}

// New wraps a Source factory into a Stream. The factory must be pure
// and re-entrant: every call yields an independent cursor at position 0.
func New(source Source) Stream {
	return newStream(source)
}

func newStream(source Source) *stream {
	return &stream{source: source}
}

func (s *stream) Cursor() types.Iterator {
	return s.source()
}

// cursor is the state machine behind every combinator stage: pull
// produces the next element, done pins exhaustion so that Next keeps
// reporting false once the sequence ended.
type cursor struct {
	pull func() (interface{}, bool)
	done bool
}

func (c *cursor) Next() (interface{}, bool) {
	if c.done {
		return nil, false
	}
	e, ok := c.pull()
	if !ok {
		c.done = true
		return nil, false
	}
	return e, true
}

func Of(elems ...interface{}) Stream {
	slice := types.Slice(elems)
	return newStream(func() types.Iterator {
		return slice.Iterator()
	})
}

// FromSlice adopts any slice value via reflection without copying it;
// each traversal re-reads the backing slice. Non-slice input yields
// the empty stream.
func FromSlice(elems interface{}) Stream {
	if elems == nil || reflect.TypeOf(elems).Kind() != reflect.Slice {
		return Empty()
	}
	valueOfElems := reflect.ValueOf(elems)
	return newStream(func() types.Iterator {
		index := 0
		return &cursor{pull: func() (interface{}, bool) {
			if index >= valueOfElems.Len() {
				return nil, false
			}
			e := valueOfElems.Index(index).Interface()
			index++
			return e, true
		}}
	})
}

// FromList streams a gods array list in its natural order.
func FromList(list *arraylist.List) Stream {
	return newStream(func() types.Iterator {
		it := list.Iterator()
		return &cursor{pull: func() (interface{}, bool) {
			if !it.Next() {
				return nil, false
			}
			return it.Value(), true
		}}
	})
}

// IntRange produces a lazy integer sequence starting at start for as
// long as hasNext holds for the current value; hasNext is checked
// before every yield including the first, so the range can be empty.
// The optional step function defaults to the successor.
func IntRange(start int, hasNext func(int) bool, step ...func(int) int) Stream {
	succ := func(x int) int { return x + 1 }
	if len(step) > 0 && step[0] != nil {
		succ = step[0]
	}
	return newStream(func() types.Iterator {
		x := start
		return &cursor{pull: func() (interface{}, bool) {
			if !hasNext(x) {
				return nil, false
			}
			e := x
			x = succ(x)
			return e, true
		}}
	})
}

func Empty() Stream {
	return newStream(func() types.Iterator {
		return &cursor{pull: func() (interface{}, bool) {
			return nil, false
		}}
	})
}

// collect drains one full traversal into a realized slice.
func (s *stream) collect() types.Slice {
	out := make(types.Slice, 0)
	it := s.source()
	for e, ok := it.Next(); ok; e, ok = it.Next() {
		out = append(out, e)
	}
	return out
}
