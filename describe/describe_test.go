package describe_test

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"literal-generator/describe"
	"literal-generator/lit"
)

type point struct{ X, Y int }

type both struct{}

func (both) LiteralShape() describe.Shape { return describe.Unit("both", "Both") }
func (both) DebugLiteral() string         { return "Both" }

type debugOnly struct{}

func (debugOnly) DebugLiteral() string { return "D" }

func TestResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		typ  reflect.Type
		want describe.Capability
	}{
		{nil, describe.CapabilityStructural},
		{reflect.TypeFor[int](), describe.CapabilityStructural},
		{reflect.TypeFor[point](), describe.CapabilityStructural},
		{reflect.TypeFor[both](), describe.CapabilityStructural},
		{reflect.TypeFor[debugOnly](), describe.CapabilityDebugOnly},
		{reflect.TypeFor[describe.Cow[int]](), describe.CapabilityStructural},
		{reflect.TypeFor[func()](), describe.CapabilityNone},
		{reflect.TypeFor[chan int](), describe.CapabilityNone},
		{reflect.TypeFor[complex64](), describe.CapabilityNone},
		{reflect.TypeFor[uintptr](), describe.CapabilityNone},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, describe.Resolve(tt.typ), "%v", tt.typ)
	}

	assert.True(t, describe.Implements(reflect.TypeFor[debugOnly]()))
	assert.False(t, describe.Implements(reflect.TypeFor[point]()))
	assert.False(t, describe.Implements(nil))
	assert.Equal(t, "debug-only", describe.CapabilityDebugOnly.String())
}

func TestCow(t *testing.T) {
	t.Parallel()

	owned := describe.Owned("v")
	assert.True(t, owned.IsOwned())
	assert.Equal(t, "v", owned.Get())

	s := owned.LiteralShape()
	assert.Equal(t, describe.ShapeDuality, s.Kind)
	assert.False(t, s.Borrowed)
	assert.Equal(t, []any{"v"}, s.Elems)
	assert.Equal(t, "literal-generator/describe.Cow[string]", s.Type)

	src := 5
	borrowed := describe.Borrowed(&src)
	assert.True(t, borrowed.IsBorrowed())
	assert.True(t, borrowed.LiteralShape().Borrowed)
	assert.Empty(t, borrowed.LiteralShape().Elems)

	p := borrowed.ToMut()
	*p = 7

	assert.True(t, borrowed.IsOwned())
	assert.Equal(t, 7, borrowed.IntoOwned())
	assert.Equal(t, 5, src, "ToMut must not write through the reference")
}

func TestOption(t *testing.T) {
	t.Parallel()

	var opt describe.Option[int] = describe.Some[int]{V: 3}

	v, ok := opt.Value()
	require.True(t, ok)
	assert.Equal(t, 3, v)

	s := opt.LiteralShape()
	assert.Equal(t, "Some", s.Tag)
	assert.Equal(t, lit.PayloadTuple, s.Payload)
	assert.Equal(t, "literal-generator/describe.Option[int]", s.Type)

	opt = describe.None[int]{}

	_, ok = opt.Value()
	assert.False(t, ok)
	assert.Equal(t, "None", opt.LiteralShape().Tag)
	assert.Equal(t, lit.PayloadNone, opt.LiteralShape().Payload)
}

func TestTypeName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		typ  reflect.Type
		want string
	}{
		{reflect.TypeFor[int](), "int"},
		{reflect.TypeFor[time.Duration](), "time.Duration"},
		{reflect.TypeFor[[]*point](), "[]*literal-generator/describe_test.point"},
		{reflect.TypeFor[[3]string](), "[3]string"},
		{reflect.TypeFor[map[string]any](), "map[string]any"},
		{reflect.TypeFor[describe.Some[int]](), "literal-generator/describe.Some[int]"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, describe.TypeName(tt.typ))
	}

	assert.Equal(t, "", describe.TypeName(nil))
}

func TestBaseName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Pair", describe.BaseName("example.com/geo.Pair[int,string]"))
	assert.Equal(t, "Duration", describe.BaseName("time.Duration"))
	assert.Equal(t, "Point", describe.BaseName("Point"))
}

func TestSplitName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in              string
		pkg, name, args string
	}{
		{"example.com/geo.Pair[int]", "example.com/geo", "Pair", "[int]"},
		{"time.Duration", "time", "Duration", ""},
		{"Point", "", "Point", ""},
		{"example.com/v1.2/x.Y", "example.com/v1.2/x", "Y", ""},
	}

	for _, tt := range tests {
		pkg, name, args := describe.SplitName(tt.in)
		assert.Equal(t, tt.pkg, pkg, tt.in)
		assert.Equal(t, tt.name, name, tt.in)
		assert.Equal(t, tt.args, args, tt.in)
	}
}

func TestDuality(t *testing.T) {
	t.Parallel()

	path := lit.Root().Field("c")

	called := false
	n := describe.Duality(path, "Cow", true, func() lit.Node {
		called = true
		return lit.String("x")
	})

	require.True(t, describe.Poisoned(n))
	assert.False(t, called)
	assert.Equal(t, &lit.Unsupported{Reason: describe.ReasonBorrowed, Path: "$.c"}, n)

	n = describe.Duality(path, "Cow", false, func() lit.Node { return lit.String("x") })
	assert.Equal(t, &lit.Wrapped{Wrapper: lit.WrapCow, Type: "Cow", Inner: lit.String("x")}, n)

	poison := lit.Poison("inner", path.Deref())
	n = describe.Duality(path, "Cow", false, func() lit.Node { return poison })
	assert.Same(t, poison, n)
}
