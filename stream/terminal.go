package stream

import (
	"github.com/borisskert/lazy-stream/optional"
	"github.com/borisskert/lazy-stream/types"
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/sets/hashset"
	"github.com/emirpasic/gods/utils"
)

// termination

func (s *stream) ToSlice() types.Slice {
	return s.collect()
}

func (s *stream) ToSet() *hashset.Set {
	set := hashset.New()
	s.ForEach(func(e interface{}, _ int) {
		set.Add(e)
	})
	return set
}

// ToMap realizes the sequence into a map; on duplicate keys the later
// element wins.
func (s *stream) ToMap(key, val types.KeyFunc) types.Map {
	m := make(types.Map)
	s.ForEach(func(e interface{}, _ int) {
		m[key(e)] = val(e)
	})
	return m
}

// ToSortedMap realizes the sequence into a treemap ordered by cmp
// (types.NaturalComparator when nil); later duplicate keys win.
func (s *stream) ToSortedMap(key, val types.KeyFunc, cmp utils.Comparator) *treemap.Map {
	if cmp == nil {
		cmp = types.NaturalComparator
	}
	m := treemap.NewWith(cmp)
	s.ForEach(func(e interface{}, _ int) {
		m.Put(key(e), val(e))
	})
	return m
}

func (s *stream) ToObject(key func(interface{}) string, val types.KeyFunc) map[string]interface{} {
	m := make(map[string]interface{})
	s.ForEach(func(e interface{}, _ int) {
		m[key(e)] = val(e)
	})
	return m
}

func (s *stream) ForEach(f types.Consumer) {
	it := s.source()
	i := -1
	for e, ok := it.Next(); ok; e, ok = it.Next() {
		i++
		f(e, i)
	}
}

// Reduce left-folds without a seed: the first element seeds the
// accumulator and folding starts from the second, so a one-element
// stream returns that element with f never invoked. An empty stream
// reduces to None.
func (s *stream) Reduce(f types.BinaryOperator) optional.Optional {
	it := s.source()
	acc, ok := it.Next()
	if !ok {
		return optional.None{}
	}
	i := 0
	for e, ok := it.Next(); ok; e, ok = it.Next() {
		i++
		acc = f(acc, e, i)
	}
	return optional.Some{Value: acc}
}

func (s *stream) ReduceFrom(init interface{}, f types.BinaryOperator) interface{} {
	acc := init
	s.ForEach(func(e interface{}, i int) {
		acc = f(acc, e, i)
	})
	return acc
}

func (s *stream) Count() int64 {
	var cnt int64
	it := s.source()
	for _, ok := it.Next(); ok; _, ok = it.Next() {
		cnt++
	}
	return cnt
}

func (s *stream) First() optional.Optional {
	it := s.source()
	if e, ok := it.Next(); ok {
		return optional.Some{Value: e}
	}
	return optional.None{}
}

func (s *stream) Last() optional.Optional {
	it := s.source()
	var last interface{}
	found := false
	for e, ok := it.Next(); ok; e, ok = it.Next() {
		last = e
		found = true
	}
	if !found {
		return optional.None{}
	}
	return optional.Some{Value: last}
}

// At pulls exactly i+1 elements.
func (s *stream) At(i int) optional.Optional {
	if i < 0 {
		return optional.None{}
	}
	it := s.source()
	for k := 0; ; k++ {
		e, ok := it.Next()
		if !ok {
			return optional.None{}
		}
		if k == i {
			return optional.Some{Value: e}
		}
	}
}

func (s *stream) IsEmpty() bool {
	it := s.source()
	_, ok := it.Next()
	return !ok
}

func (s *stream) AllMatch(p types.Predicate) bool {
	it := s.source()
	i := -1
	for e, ok := it.Next(); ok; e, ok = it.Next() {
		i++
		if !p(e, i) {
			return false
		}
	}
	return true
}

func (s *stream) AnyMatch(p types.Predicate) bool {
	it := s.source()
	i := -1
	for e, ok := it.Next(); ok; e, ok = it.Next() {
		i++
		if p(e, i) {
			return true
		}
	}
	return false
}

func (s *stream) NoneMatch(p types.Predicate) bool {
	return !s.AnyMatch(p)
}

func (s *stream) FindFirstMatch(p types.Predicate) optional.Optional {
	return s.Filter(p).First()
}
