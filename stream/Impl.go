package stream

import (
	"reflect"
	"sort"
	"sync"

	"github.com/borisskert/lazy-stream/types"
	"github.com/cornelk/hashmap"
	"github.com/emirpasic/gods/utils"
)

// Every stage below wraps the upstream Stream into a new Source
// factory. Per-traversal scratch state (indexes, seen-sets, lookahead
// buffers) lives inside the cursor produced by the factory, never in
// the stage itself, so distinct traversals of one handle cannot
// interfere with each other.

// stateless

func (s *stream) Filter(p types.Predicate) Stream {
	return newStream(func() types.Iterator {
		up := s.source()
		i := -1
		return &cursor{pull: func() (interface{}, bool) {
			for e, ok := up.Next(); ok; e, ok = up.Next() {
				i++
				if p(e, i) {
					return e, true
				}
			}
			return nil, false
		}}
	})
}

func (s *stream) Map(f types.Function) Stream {
	return newStream(func() types.Iterator {
		up := s.source()
		i := -1
		return &cursor{pull: func() (interface{}, bool) {
			e, ok := up.Next()
			if !ok {
				return nil, false
			}
			i++
			return f(e, i), true
		}}
	})
}

func (s *stream) FlatMap(f func(interface{}) Stream) Stream {
	return s.Map(func(e interface{}, _ int) interface{} {
		return f(e)
	}).Flatten()
}

// Flatten expects every upstream element to be a finite ordered
// collection: a Stream, a types.Slice, or any slice value. Each
// collection is drained in order before the upstream advances.
func (s *stream) Flatten() Stream {
	return newStream(func() types.Iterator {
		up := s.source()
		var inner types.Iterator
		return &cursor{pull: func() (interface{}, bool) {
			for {
				if inner != nil {
					if e, ok := inner.Next(); ok {
						return e, true
					}
					inner = nil
				}
				e, ok := up.Next()
				if !ok {
					return nil, false
				}
				inner = collectionIterator(e)
			}
		}}
	})
}

func collectionIterator(e interface{}) types.Iterator {
	switch c := e.(type) {
	case Stream:
		return c.Cursor()
	case types.Slice:
		return c.Iterator()
	default:
		if e == nil || reflect.TypeOf(e).Kind() != reflect.Slice {
			panic("stream: Flatten element is not a Stream or slice")
		}
		return FromSlice(e).Cursor()
	}
}

func (s *stream) Peek(f types.Consumer) Stream {
	return newStream(func() types.Iterator {
		up := s.source()
		i := -1
		return &cursor{pull: func() (interface{}, bool) {
			e, ok := up.Next()
			if !ok {
				return nil, false
			}
			i++
			f(e, i)
			return e, true
		}}
	})
}

// Intersperse places sep between every pair of adjacent elements.
// Zero- and one-element sequences come through unchanged.
func (s *stream) Intersperse(sep interface{}) Stream {
	return newStream(func() types.Iterator {
		up := s.source()
		first := true
		var queued interface{}
		hasQueued := false
		return &cursor{pull: func() (interface{}, bool) {
			if hasQueued {
				hasQueued = false
				return queued, true
			}
			e, ok := up.Next()
			if !ok {
				return nil, false
			}
			if first {
				first = false
				return e, true
			}
			queued, hasQueued = e, true
			return sep, true
		}}
	})
}

func (s *stream) Concat(other Stream) Stream {
	return newStream(func() types.Iterator {
		up := s.source()
		tailStarted := false
		return &cursor{pull: func() (interface{}, bool) {
			for {
				if e, ok := up.Next(); ok {
					return e, true
				}
				if tailStarted {
					return nil, false
				}
				up = other.Cursor()
				tailStarted = true
			}
		}}
	})
}

// stateful

func (s *stream) Distinct() Stream {
	return s.DistinctBy(func(e interface{}) interface{} { return e })
}

// DistinctBy yields an element the first time its key is seen. The
// seen-set is scoped to one traversal; re-traversing the resulting
// Stream recomputes distinctness from empty. Keys must be numeric,
// string or byte-slice values (hashmap's key domain).
func (s *stream) DistinctBy(key types.KeyFunc) Stream {
	return newStream(func() types.Iterator {
		up := s.source()
		seen := &hashmap.HashMap{}
		return &cursor{pull: func() (interface{}, bool) {
			for e, ok := up.Next(); ok; e, ok = up.Next() {
				if _, exist := seen.GetOrInsert(key(e), struct{}{}); !exist {
					return e, true
				}
			}
			return nil, false
		}}
	})
}

func (s *stream) Group() Stream {
	return s.GroupBy(func(a, b interface{}) bool { return a == b })
}

// GroupBy splits the sequence into runs of adjacent elements that are
// pairwise equal per eq, emitted as a Stream of Streams in input
// order. Each element is compared with its immediate predecessor, so
// non-adjacent equal elements form separate groups. Every emitted
// group is materialized at emission time and therefore independently
// re-traversable in any order.
func (s *stream) GroupBy(eq types.EqualFunc) Stream {
	return newStream(func() types.Iterator {
		up := s.source()
		var pending interface{}
		hasPending := false
		return &cursor{pull: func() (interface{}, bool) {
			if !hasPending {
				e, ok := up.Next()
				if !ok {
					return nil, false
				}
				pending = e
			}
			run := types.Slice{pending}
			hasPending = false
			for {
				e, ok := up.Next()
				if !ok {
					break
				}
				if eq(run[len(run)-1], e) {
					run = append(run, e)
					continue
				}
				pending, hasPending = e, true
				break
			}
			return Of(run...), true
		}}
	})
}

func (s *stream) Take(n int) Stream {
	return newStream(func() types.Iterator {
		up := s.source()
		taken := 0
		return &cursor{pull: func() (interface{}, bool) {
			if taken >= n {
				return nil, false
			}
			e, ok := up.Next()
			if !ok {
				return nil, false
			}
			taken++
			return e, true
		}}
	})
}

func (s *stream) TakeWhile(p types.Predicate) Stream {
	return newStream(func() types.Iterator {
		up := s.source()
		i := -1
		return &cursor{pull: func() (interface{}, bool) {
			e, ok := up.Next()
			if !ok {
				return nil, false
			}
			i++
			if !p(e, i) {
				return nil, false
			}
			return e, true
		}}
	})
}

func (s *stream) TakeUntil(p types.Predicate) Stream {
	return s.TakeWhile(func(e interface{}, i int) bool { return !p(e, i) })
}

func (s *stream) Drop(n int) Stream {
	return newStream(func() types.Iterator {
		up := s.source()
		dropped := false
		return &cursor{pull: func() (interface{}, bool) {
			if !dropped {
				dropped = true
				for k := 0; k < n; k++ {
					if _, ok := up.Next(); !ok {
						return nil, false
					}
				}
			}
			return up.Next()
		}}
	})
}

// DropWhile skips the prefix for which p holds and yields everything
// from the first disqualifying element onward, inclusive.
func (s *stream) DropWhile(p types.Predicate) Stream {
	return newStream(func() types.Iterator {
		up := s.source()
		i := -1
		dropping := true
		return &cursor{pull: func() (interface{}, bool) {
			for {
				e, ok := up.Next()
				if !ok {
					return nil, false
				}
				i++
				if dropping {
					if p(e, i) {
						continue
					}
					dropping = false
				}
				return e, true
			}
		}}
	})
}

func (s *stream) DropUntil(p types.Predicate) Stream {
	return s.DropWhile(func(e interface{}, i int) bool { return !p(e, i) })
}

// Partition splits into the elements accepted and declined by p. Both
// halves re-traverse the upstream independently from scratch when
// consumed; they share no cursor state.
func (s *stream) Partition(p types.Predicate) (Stream, Stream) {
	accepted := s.Filter(p)
	declined := s.Filter(func(e interface{}, i int) bool { return !p(e, i) })
	return accepted, declined
}

// Inits yields the empty prefix, then every successively longer
// prefix, ending with the full sequence: n+1 outputs for n inputs.
// The upstream is realized once per traversal and the prefixes are
// slices of that snapshot, keeping the whole walk linear instead of
// stacking wrapper chains.
func (s *stream) Inits() Stream {
	return newStream(func() types.Iterator {
		snapshot := s.collect()
		k := 0
		return &cursor{pull: func() (interface{}, bool) {
			if k > len(snapshot) {
				return nil, false
			}
			prefix := Of(snapshot[:k]...)
			k++
			return prefix, true
		}}
	})
}

// Tails yields the full sequence, then every successively shorter
// suffix, ending with the empty one.
func (s *stream) Tails() Stream {
	return newStream(func() types.Iterator {
		snapshot := s.collect()
		k := 0
		return &cursor{pull: func() (interface{}, bool) {
			if k > len(snapshot) {
				return nil, false
			}
			suffix := Of(snapshot[k:]...)
			k++
			return suffix, true
		}}
	})
}

func (s *stream) Replicate(n int) Stream {
	if n < 0 {
		n = 0
	}
	return s.repeat(n)
}

// Cycle repeats the sequence without bound; combine with Take or
// TakeWhile to terminate. Cycling an empty stream yields an empty
// stream rather than spinning.
func (s *stream) Cycle() Stream {
	return s.repeat(-1)
}

// repeat re-invokes the upstream factory n times back to back; n < 0
// means without bound. A pass that produces no elements exhausts the
// cursor, which is what keeps Cycle of an empty upstream finite.
func (s *stream) repeat(n int) Stream {
	return newStream(func() types.Iterator {
		remaining := n
		var up types.Iterator
		produced := false
		return &cursor{pull: func() (interface{}, bool) {
			for {
				if up == nil {
					if remaining == 0 {
						return nil, false
					}
					if remaining > 0 {
						remaining--
					}
					up = s.source()
					produced = false
				}
				if e, ok := up.Next(); ok {
					produced = true
					return e, true
				}
				if !produced {
					return nil, false
				}
				up = nil
			}
		}}
	})
}

// eager boundaries

// Sorted realizes the upstream, sorts it stably (ties keep their
// realized order) and streams the cached result. The comparator
// defaults to types.NaturalComparator. The upstream pipeline is
// evaluated exactly once, on the first traversal; later traversals
// reuse the cached backing slice.
func (s *stream) Sorted(cmp ...utils.Comparator) Stream {
	c := types.NaturalComparator
	if len(cmp) > 0 && cmp[0] != nil {
		c = cmp[0]
	}
	return s.realizeOnce(func(buf types.Slice) types.Slice {
		sort.SliceStable(buf, func(i, j int) bool {
			return c(buf[i], buf[j]) < 0
		})
		return buf
	})
}

// Reverse realizes the upstream once and streams it back to front.
func (s *stream) Reverse() Stream {
	return s.realizeOnce(func(buf types.Slice) types.Slice {
		for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
			buf[i], buf[j] = buf[j], buf[i]
		}
		return buf
	})
}

func (s *stream) realizeOnce(rearrange func(types.Slice) types.Slice) Stream {
	var once sync.Once
	var realized types.Slice
	return newStream(func() types.Iterator {
		once.Do(func() {
			realized = rearrange(s.collect())
		})
		return realized.Iterator()
	})
}
