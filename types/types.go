package types

type (
	T interface{}

	Slice []interface{}

	Map map[interface{}]interface{}

	// Predicate and Function receive the element together with its
	// 0-based position in the upstream sequence, not the position in
	// whatever the stage emits.
	Predicate func(e interface{}, i int) bool

	Function func(e interface{}, i int) interface{}

	Consumer func(e interface{}, i int)

	KeyFunc func(e interface{}) interface{}

	EqualFunc func(a, b interface{}) bool

	// BinaryOperator folds the accumulator with the element at index i.
	BinaryOperator func(acc, e interface{}, i int) interface{}
)
