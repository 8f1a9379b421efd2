package types_test

import (
	"testing"

	"github.com/borisskert/lazy-stream/types"
	"github.com/stretchr/testify/assert"
)

func TestSliceIterator(t *testing.T) {
	it := types.Slice{"a", "b"}.Iterator()

	e, ok := it.Next()
	assert.True(t, ok)
	assert.Equal(t, "a", e)

	e, ok = it.Next()
	assert.True(t, ok)
	assert.Equal(t, "b", e)

	_, ok = it.Next()
	assert.False(t, ok)
	_, ok = it.Next()
	assert.False(t, ok)
}

func TestSliceIteratorsAreIndependent(t *testing.T) {
	s := types.Slice{1, 2}
	a := s.Iterator()
	b := s.Iterator()

	e, _ := a.Next()
	assert.Equal(t, 1, e)
	e, _ = b.Next()
	assert.Equal(t, 1, e)
}
