package optional_test

import (
	"testing"

	"github.com/borisskert/lazy-stream/optional"
	"github.com/stretchr/testify/assert"
)

func TestSome(t *testing.T) {
	var o optional.Optional = optional.Some{Value: 7}
	assert.False(t, o.IsNone())
	assert.Equal(t, 7, o.Get())
	assert.Equal(t, 7, o.OrElse(0))
}

func TestNone(t *testing.T) {
	var o optional.Optional = optional.None{}
	assert.True(t, o.IsNone())
	assert.Equal(t, 0, o.OrElse(0))
}

func TestSomeReceiver(t *testing.T) {
	var receiver interface{}
	optional.Some{Value: "v"}.Some(&receiver)
	assert.Equal(t, "v", receiver)
}
