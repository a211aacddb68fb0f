package manifest

import (
	"math"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"literal-generator/lit"
	"literal-generator/primitive"
)

func literalOf(t *testing.T, src string) (lit.Node, error) {
	t.Helper()

	var v Value
	require.NoError(t, yaml.Unmarshal([]byte(src), &v))

	return v.Literal()
}

func TestValue_Literal(t *testing.T) {
	t.Parallel()

	i64 := func(v int64) lit.Node { return lit.Int(primitive.KindInt64, v) }

	tests := []struct {
		name string
		src  string
		want lit.Node
	}{
		{"int", `42`, i64(42)},
		{"hex int", `0x10`, i64(16)},
		{"big uint", `18446744073709551615`, lit.Uint(primitive.KindUint64, math.MaxUint64)},
		{"float", `1.5`, lit.Float(primitive.KindFloat64, 1.5)},
		{"inf", `-.inf`, lit.Float(primitive.KindFloat64, math.Inf(-1))},
		{"bool", `true`, lit.Bool(true)},
		{"string", `hello`, lit.String("hello")},
		{"quoted number", `"42"`, lit.String("42")},
		{"null", `[~]`, lit.Array(&lit.Nil{})},
		{"tagged u8", `!u8 200`, lit.Uint(primitive.KindUint8, 200)},
		{"tagged i32", `!i32 -0x10`, lit.Int(primitive.KindInt32, -16)},
		{"tagged f32", `!f32 0.1`, lit.Float(primitive.KindFloat32, float64(float32(0.1)))},
		{"char", `!char x`, lit.Char('x')},
		{"sequence", `[1, [2]]`, lit.Array(i64(1), lit.Array(i64(2)))},
		{
			name: "struct keeps field order",
			src:  `{$type: Point, y: 2, x: 1}`,
			want: lit.Struct("Point", lit.F("y", i64(2)), lit.F("x", i64(1))),
		},
		{
			name: "map",
			src:  `{b: 1, a: 2}`,
			want: &lit.Mapping{Entries: []lit.Entry{
				{Key: lit.String("b"), Value: i64(1)},
				{Key: lit.String("a"), Value: i64(2)},
			}},
		},
		{"unit variant", `{$type: Option, $variant: None}`, lit.Unit("Option", "None")},
		{"tuple variant", `{$variant: Some, $args: [5]}`, lit.TupleVariant("", "Some", i64(5))},
		{
			name: "named variant",
			src:  `{$type: Shape, $variant: Circle, r: 1.5}`,
			want: lit.NamedVariant("Shape", "Circle", lit.F("r", lit.Float(primitive.KindFloat64, 1.5))),
		},
		{"tuple", `{$tuple: [1, a]}`, lit.Tuple(i64(1), lit.String("a"))},
		{"list", `{$type: "[]int", $list: [1]}`, &lit.Sequence{Kind: lit.SeqList, Type: "[]int", Elems: []lit.Node{i64(1)}}},
		{"box", `{$box: 1}`, &lit.Wrapped{Wrapper: lit.WrapBox, Inner: i64(1)}},
		{"cow", `{$cow: s}`, &lit.Wrapped{Wrapper: lit.WrapCow, Inner: lit.String("s")}},
		{"alias", `{a: &x [1], b: *x}`, &lit.Mapping{Entries: []lit.Entry{
			{Key: lit.String("a"), Value: lit.Array(i64(1))},
			{Key: lit.String("b"), Value: lit.Array(i64(1))},
		}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := literalOf(t, tt.src)
			require.NoError(t, err)

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("literal mismatch (-want +got):\n%s\n%s", diff, spew.Sdump(got))
			}
		})
	}
}

func TestValue_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		msg  string
	}{
		{"u8 overflow", `!u8 300`, "line 1:1: literal 300 out of range for u8"},
		{"bad number", `!i32 abc`, `line 1:1: invalid i32 literal "abc"`},
		{"bad char", `!char xy`, `line 1:1: !char needs exactly one character, got "xy"`},
		{"unknown tag", `!frob 1`, "line 1:1: unsupported tag !frob"},
		{"unknown directive", `{$nope: 1}`, "line 1:2: unknown directive $nope"},
		{"misspelled directive", `{$varaint: Some}`, `line 1:2: unknown directive $varaint (did you mean "$variant"?)`},
		{"args without variant", `{$args: [1]}`, "line 1:1: $args needs $variant"},
		{"args with fields", `{$variant: V, $args: [1], x: 2}`, "line 1:1: $args cannot be combined with named fields"},
		{"list needs sequence", `{$list: 1}`, "line 1:9: $list needs a sequence"},
		{"wrapper with fields", `{$box: 1, x: 2}`, "line 1:1: $box cannot be combined with other keys"},
		{"nested error", "a:\n  - !u8 -1", "line 2:5: invalid u8 literal \"-1\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := literalOf(t, tt.src)

			var ve *ValueError
			require.ErrorAs(t, err, &ve)
			assert.EqualError(t, err, tt.msg)
		})
	}

	_, err := Value{}.Literal()
	require.ErrorIs(t, err, ErrMissingValue)
}
