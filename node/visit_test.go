package node

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVisitSet(t *testing.T) {
	t.Parallel()

	var s visitSet

	a := visitKey{ptr: 1, typ: reflect.TypeFor[*int]()}
	b := visitKey{ptr: 1, typ: reflect.TypeFor[*string]()}

	assert.True(t, s.enter(a))
	assert.False(t, s.enter(a), "active key")
	assert.True(t, s.enter(b), "same address, other type")

	s.leave(a)
	assert.True(t, s.enter(a), "left key")
}
