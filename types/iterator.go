package types

// Iterator is a single-use cursor over one traversal of a sequence.
// Next reports and produces the next element in one call; once it
// returns false it keeps returning false.
type Iterator interface {
	Next() (interface{}, bool)
}

type sliceIterator struct {
	index int
	slice Slice
}

func (s Slice) Iterator() Iterator {
	return &sliceIterator{slice: s}
}

func (it *sliceIterator) Next() (interface{}, bool) {
	if it.index >= len(it.slice) {
		return nil, false
	}
	e := it.slice[it.index]
	it.index++
	return e, true
}
