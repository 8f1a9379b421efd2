package types

import (
	"time"

	"github.com/emirpasic/gods/utils"
)

// NaturalComparator orders numbers, strings and times ascending,
// delegating to the matching gods comparator. Both operands must be
// of the same type; anything unsupported panics, so callers with
// custom element types must pass their own comparator.
var NaturalComparator utils.Comparator = func(a, b interface{}) int {
	switch a.(type) {
	case int:
		return utils.IntComparator(a, b)
	case int8:
		return utils.Int8Comparator(a, b)
	case int16:
		return utils.Int16Comparator(a, b)
	case int32:
		return utils.Int32Comparator(a, b)
	case int64:
		return utils.Int64Comparator(a, b)
	case uint:
		return utils.UInt64Comparator(uint64(a.(uint)), uint64(b.(uint)))
	case uint8:
		return utils.UInt8Comparator(a, b)
	case uint16:
		return utils.UInt16Comparator(a, b)
	case uint32:
		return utils.UInt32Comparator(a, b)
	case uint64:
		return utils.UInt64Comparator(a, b)
	case float32:
		return utils.Float32Comparator(a, b)
	case float64:
		return utils.Float64Comparator(a, b)
	case string:
		return utils.StringComparator(a, b)
	case time.Time:
		return utils.TimeComparator(a, b)
	default:
		panic("types: no natural ordering for this element type, supply a comparator")
	}
}
