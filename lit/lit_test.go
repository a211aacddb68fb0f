package lit_test

import (
	"errors"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"literal-generator/lit"
	"literal-generator/primitive"
)

func point(x, y int64) *lit.Keyed {
	return lit.Struct("Point",
		lit.F("x", lit.Int(primitive.KindInt32, x)),
		lit.F("y", lit.Int(primitive.KindInt32, y)),
	)
}

func TestEqual(t *testing.T) {
	t.Parallel()

	t.Run("identical trees", func(t *testing.T) {
		t.Parallel()

		a := lit.Array(point(1, 2), lit.String("x"), lit.Unit("Color", "Red"))
		b := lit.Array(point(1, 2), lit.String("x"), lit.Unit("Color", "Red"))
		assert.True(t, lit.Equal(a, b), spew.Sdump(a, b))
	})

	t.Run("field order matters", func(t *testing.T) {
		t.Parallel()

		a := point(1, 2)
		b := lit.Struct("Point", a.Fields[1], a.Fields[0])
		assert.False(t, lit.Equal(a, b))
	})

	t.Run("kind matters", func(t *testing.T) {
		t.Parallel()

		assert.False(t, lit.Equal(lit.Int(primitive.KindInt32, 1), lit.Int(primitive.KindInt64, 1)))
		assert.False(t, lit.Equal(lit.Array(), lit.Tuple()))
	})

	t.Run("payload shape matters", func(t *testing.T) {
		t.Parallel()

		assert.False(t, lit.Equal(lit.Unit("E", "A"), lit.TupleVariant("E", "A")))
		assert.False(t, lit.Equal(lit.TupleVariant("E", "A"), lit.NamedVariant("E", "A")))
	})
}

func TestValidate(t *testing.T) {
	t.Parallel()

	t.Run("clean tree", func(t *testing.T) {
		t.Parallel()

		require.NoError(t, lit.Validate(lit.Array(point(1, 2))))
	})

	t.Run("poison deep inside", func(t *testing.T) {
		t.Parallel()

		tree := lit.Struct("Table",
			lit.F("rows", lit.Array(
				lit.Array(lit.String("ok")),
				lit.Wrap(lit.WrapCow, &lit.Unsupported{Reason: "borrowed"}),
			)),
		)

		err := lit.Validate(tree)
		require.Error(t, err)
		assert.True(t, errors.Is(err, lit.ErrUnrepresentable))

		var le *lit.Error
		require.ErrorAs(t, err, &le)
		assert.Equal(t, "$.rows[1]*", le.Path)
		assert.Equal(t, "borrowed", le.Reason)
	})

	t.Run("poison keeps builder path", func(t *testing.T) {
		t.Parallel()

		err := lit.Validate(lit.Array(lit.Poison("cyclic reference", lit.Root().Field("next").Deref())))

		var le *lit.Error
		require.ErrorAs(t, err, &le)
		assert.Equal(t, "$.next*", le.Path)
	})

	t.Run("nil child is internal", func(t *testing.T) {
		t.Parallel()

		err := lit.Validate(lit.Array(lit.String("a"), nil))
		assert.True(t, errors.Is(err, lit.ErrInternal))
		assert.False(t, errors.Is(err, lit.ErrUnrepresentable))
	})

	t.Run("variant payload must match its shape", func(t *testing.T) {
		t.Parallel()

		one := lit.String("x")

		for _, v := range []*lit.Variant{
			{Type: "Option", Tag: "None", Payload: lit.PayloadNone, Elems: []lit.Node{one}},
			{Type: "Shape", Tag: "Dot", Payload: lit.PayloadNone, Fields: []lit.Field{lit.F("r", one)}},
			{Type: "Option", Tag: "Some", Payload: lit.PayloadTuple, Fields: []lit.Field{lit.F("v", one)}},
			{Type: "Shape", Tag: "Circle", Payload: lit.PayloadNamed, Elems: []lit.Node{one}},
		} {
			err := lit.Validate(lit.Array(v))
			require.ErrorIs(t, err, lit.ErrInternal, v.Tag)

			var le *lit.Error
			require.ErrorAs(t, err, &le)
			assert.Contains(t, le.Reason, "variant "+v.Tag+" payload does not match its shape at $[0]")
		}

		require.NoError(t, lit.Validate(lit.TupleVariant("Option", "Some", one)))
		require.NoError(t, lit.Validate(lit.NamedVariant("Shape", "Circle", lit.F("r", one))))
		require.NoError(t, lit.Validate(lit.Unit("Color", "Red")))
	})
}

func TestPath(t *testing.T) {
	t.Parallel()

	p := lit.Root().Field("table").Index(3).Variant("Some").Index(0).Deref().Key(`"k"`)
	assert.Equal(t, `$.table[3]::Some[0]*["k"]`, p.String())
	assert.Equal(t, 6, p.Depth())
	assert.Equal(t, "$", lit.Root().String())

	// branches do not share state
	base := lit.Root().Field("a")
	left, right := base.Index(0), base.Index(1)
	assert.Equal(t, "$.a[0]", left.String())
	assert.Equal(t, "$.a[1]", right.String())
}

func TestError_Message(t *testing.T) {
	t.Parallel()

	err := lit.Malformed(lit.Span{Start: 4, End: 6}, `\q`, "unknown escape sequence")
	assert.Equal(t, `malformed debug text at 4:6 ("\\q"): unknown escape sequence`, err.Error())
	assert.True(t, errors.Is(err, lit.ErrMalformedDebugText))

	err = lit.Unrepresentable("$.x", "borrowed-reference value cannot be embedded as a literal")
	assert.Equal(t, "unrepresentable value at $.x: borrowed-reference value cannot be embedded as a literal", err.Error())
}
