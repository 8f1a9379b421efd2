package stream

import (
	"github.com/borisskert/lazy-stream/optional"
	"github.com/borisskert/lazy-stream/types"
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/sets/hashset"
	"github.com/emirpasic/gods/utils"
)

// Stream is an immutable, re-traversable handle over a lazily produced
// sequence. Every operation returns a new Stream (or a realized value)
// and never mutates the receiver; traversing the same handle twice
// yields the same elements in the same order as long as the backing
// source is deterministic.
type Stream interface {
	// stateless (per-element, order preserving)
	Filter(p types.Predicate) Stream
	Map(f types.Function) Stream
	FlatMap(f func(interface{}) Stream) Stream
	Flatten() Stream
	Peek(f types.Consumer) Stream
	Intersperse(sep interface{}) Stream
	Concat(other Stream) Stream

	// stateful (per-traversal bookkeeping, allocated fresh per cursor)
	Distinct() Stream
	DistinctBy(key types.KeyFunc) Stream
	Group() Stream // Stream of Stream, adjacent runs
	GroupBy(eq types.EqualFunc) Stream
	Take(n int) Stream
	TakeWhile(p types.Predicate) Stream
	TakeUntil(p types.Predicate) Stream
	Drop(n int) Stream
	DropWhile(p types.Predicate) Stream
	DropUntil(p types.Predicate) Stream
	Partition(p types.Predicate) (accepted, declined Stream)
	Inits() Stream // Stream of Stream, prefixes short to long
	Tails() Stream // Stream of Stream, suffixes long to short
	Replicate(n int) Stream
	Cycle() Stream

	// eager boundaries (realize the upstream once, cache the result)
	Sorted(cmp ...utils.Comparator) Stream // stable
	Reverse() Stream

	// termination
	ToSlice() types.Slice
	ToSet() *hashset.Set
	ToMap(key, val types.KeyFunc) types.Map
	ToSortedMap(key, val types.KeyFunc, cmp utils.Comparator) *treemap.Map
	ToObject(key func(interface{}) string, val types.KeyFunc) map[string]interface{}
	ForEach(f types.Consumer)
	Reduce(f types.BinaryOperator) optional.Optional
	ReduceFrom(init interface{}, f types.BinaryOperator) interface{}
	Count() int64
	First() optional.Optional
	Last() optional.Optional
	At(i int) optional.Optional
	IsEmpty() bool
	AllMatch(p types.Predicate) bool
	AnyMatch(p types.Predicate) bool
	NoneMatch(p types.Predicate) bool
	FindFirstMatch(p types.Predicate) optional.Optional

	// Cursor starts a fresh single-use traversal of this Stream.
	Cursor() types.Iterator
}
