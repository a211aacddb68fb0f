package reparse

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"literal-generator/describe"
	"literal-generator/lit"
	"literal-generator/primitive"
)

func ui(text string) *lit.Primitive {
	return lit.Untyped(primitive.KindUntypedInt, text)
}

func uf(text string) *lit.Primitive {
	return lit.Untyped(primitive.KindUntypedFloat, text)
}

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  lit.Node
	}{
		{
			name:  "positional variant with mixed payload",
			input: `Foo(1, [2, 3], "x")`,
			want:  lit.TupleVariant("", "Foo", ui("1"), lit.Array(ui("2"), ui("3")), lit.String("x")),
		},
		{
			name:  "keyed",
			input: `Point { x: 1, y: -2 }`,
			want:  lit.Struct("Point", lit.F("x", ui("1")), lit.F("y", ui("-2"))),
		},
		{
			name:  "empty keyed",
			input: `Empty {}`,
			want:  lit.Struct("Empty"),
		},
		{
			name:  "empty positional",
			input: `Foo()`,
			want:  lit.TupleVariant("", "Foo"),
		},
		{
			name:  "path qualified variants",
			input: `[Option::Some(5), Option::None, Shape::Circle { r: 1.5 }]`,
			want: lit.Array(
				lit.TupleVariant("Option", "Some", ui("5")),
				lit.Unit("Option", "None"),
				lit.NamedVariant("Shape", "Circle", lit.F("r", uf("1.5"))),
			),
		},
		{
			name:  "bare unit and keywords",
			input: `(Red, true, false, None)`,
			want:  lit.Tuple(lit.Unit("", "Red"), lit.Bool(true), lit.Bool(false), &lit.Nil{}),
		},
		{
			name:  "tuples",
			input: `((), (1,), ((2)))`,
			want:  lit.Tuple(lit.Tuple(), lit.Tuple(ui("1")), ui("2")),
		},
		{
			name:  "vec macro",
			input: `vec![1, 2]`,
			want:  lit.Seq(lit.SeqList, ui("1"), ui("2")),
		},
		{
			name:  "empty sequences",
			input: `([], vec![])`,
			want:  lit.Tuple(lit.Array(), lit.Seq(lit.SeqList)),
		},
		{
			name:  "suffixed numbers",
			input: `[5u64, -7i8, 1.5f32, 2f64, 1e21]`,
			want: lit.Array(
				&lit.Primitive{Kind: primitive.KindUint64, Text: "5"},
				&lit.Primitive{Kind: primitive.KindInt8, Text: "-7"},
				&lit.Primitive{Kind: primitive.KindFloat32, Text: "1.5"},
				&lit.Primitive{Kind: primitive.KindFloat64, Text: "2.0"},
				uf("1e21"),
			),
		},
		{
			name:  "special floats",
			input: `[NaN, inf, -inf, f32::NAN, f64::NEG_INFINITY]`,
			want: lit.Array(
				uf("NaN"), uf("inf"), uf("-inf"),
				&lit.Primitive{Kind: primitive.KindFloat32, Text: "NaN"},
				&lit.Primitive{Kind: primitive.KindFloat64, Text: "-inf"},
			),
		},
		{
			name:  "string escapes",
			input: `"say \"hi\"\n\t\\ \0 \x7f \u{1f600} \' é"`,
			want:  lit.String("say \"hi\"\n\t\\ \x00 \x7f \U0001F600 ' é"),
		},
		{
			name:  "comma inside string does not split",
			input: `["a, b", "[c]"]`,
			want:  lit.Array(lit.String("a, b"), lit.String("[c]")),
		},
		{
			name:  "chars",
			input: `('a', '\n', '\'', 'ж')`,
			want:  lit.Tuple(lit.Char('a'), lit.Char('\n'), lit.Char('\''), lit.Char('ж')),
		},
		{
			name:  "map",
			input: `{"a": 1, "b": [2]}`,
			want: &lit.Mapping{Entries: []lit.Entry{
				{Key: lit.String("a"), Value: ui("1")},
				{Key: lit.String("b"), Value: lit.Array(ui("2"))},
			}},
		},
		{
			name:  "reference",
			input: `&[1]`,
			want:  lit.Wrap(lit.WrapRef, lit.Array(ui("1"))),
		},
		{
			name:  "owned duality wrapper",
			input: `UnevalCow::Borrowed(&[UnevalCow::Borrowed(&[1, 2]), UnevalCow::Owned("s")])`,
			want: lit.Wrap(lit.WrapCow, lit.Array(
				lit.Wrap(lit.WrapCow, lit.Array(ui("1"), ui("2"))),
				lit.Wrap(lit.WrapCow, lit.String("s")),
			)),
		},
		{
			name:  "borrowed duality wrapper",
			input: `Cow::Borrowed("s")`,
			want:  &lit.Unsupported{Reason: describe.ReasonBorrowed},
		},
		{
			name:  "constructors",
			input: `[Box::new(1), Arc::new("x"), Wrapper(2)]`,
			want: lit.Array(
				lit.Wrap(lit.WrapBox, ui("1")),
				&lit.Wrapped{Wrapper: lit.WrapCall, Ctor: "Arc::new", Inner: lit.String("x")},
				lit.TupleVariant("", "Wrapper", ui("2")),
			),
		},
		{
			name: "pretty form with trailing commas",
			input: `FftDomain {
    some_table: [
        1,
        2,
    ],
}`,
			want: lit.Struct("FftDomain", lit.F("some_table", lit.Array(ui("1"), ui("2")))),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Parse(tt.input)
			require.NoError(t, err)

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestParse_Malformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		span  lit.Span
		msg   string
	}{
		{`Foo { a: 1`, lit.Span{Start: 4, End: 10}, `unbalanced delimiter: missing '}'`},
		{`[1, 2`, lit.Span{Start: 0, End: 5}, `unbalanced delimiter: missing ']'`},
		{`[1]]`, lit.Span{Start: 3, End: 4}, "unexpected trailing text"},
		{`]`, lit.Span{Start: 0, End: 1}, "unbalanced closing delimiter"},
		{`[1 2]`, lit.Span{Start: 3, End: 4}, `expected ',' or ']'`},
		{`"a\qb"`, lit.Span{Start: 2, End: 4}, "unknown escape sequence"},
		{`"abc`, lit.Span{Start: 0, End: 4}, "unterminated string"},
		{`5u7`, lit.Span{Start: 1, End: 3}, "unknown numeric suffix"},
		{`300u8`, lit.Span{Start: 0, End: 5}, "literal out of range for u8"},
		{`1.5i32`, lit.Span{Start: 0, End: 6}, "float literal with integer suffix"},
		{`Foo { 1: 2 }`, lit.Span{Start: 6, End: 7}, "expected field name"},
		{`#`, lit.Span{Start: 0, End: 1}, "unexpected character"},
		{``, lit.Span{Start: 0, End: 0}, "unexpected end of text"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, err := Parse(tt.input)
			require.Error(t, err)
			assert.Nil(t, got)
			assert.ErrorIs(t, err, lit.ErrMalformedDebugText)

			var se *SyntaxError
			require.True(t, errors.As(err, &se))
			assert.Equal(t, tt.span, se.Span)
			assert.Equal(t, tt.msg, se.Msg)

			var le *lit.Error
			require.True(t, errors.As(err, &le))
			assert.Equal(t, lit.ErrorMalformedDebugText, le.Kind)
			assert.Equal(t, &tt.span, le.Span)
		})
	}
}

func TestParseDepth(t *testing.T) {
	t.Parallel()

	_, err := ParseDepth(`[[[1]]]`, 2)
	require.ErrorIs(t, err, lit.ErrMalformedDebugText)
	assert.Contains(t, err.Error(), "nesting depth exceeds 2")

	_, err = ParseDepth(`[[[1]]]`, 3)
	require.NoError(t, err)
}
