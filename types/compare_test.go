package types_test

import (
	"testing"
	"time"

	"github.com/borisskert/lazy-stream/types"
	"github.com/stretchr/testify/assert"
)

func TestNaturalComparator(t *testing.T) {
	assert.Negative(t, types.NaturalComparator(1, 2))
	assert.Positive(t, types.NaturalComparator(2, 1))
	assert.Zero(t, types.NaturalComparator(3, 3))

	assert.Negative(t, types.NaturalComparator("a", "b"))
	assert.Negative(t, types.NaturalComparator(1.5, 2.5))
	assert.Negative(t, types.NaturalComparator(int64(1), int64(2)))
	assert.Negative(t, types.NaturalComparator(uint(1), uint(2)))

	earlier := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	later := earlier.Add(time.Hour)
	assert.Negative(t, types.NaturalComparator(earlier, later))
}

func TestNaturalComparatorRejectsUnsupportedTypes(t *testing.T) {
	assert.Panics(t, func() {
		types.NaturalComparator(struct{}{}, struct{}{})
	})
}
