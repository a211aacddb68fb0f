package analyze

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"literal-generator/lit"
	"literal-generator/primitive"
)

func geo(name string) string {
	return geoPkg + "." + name
}

func TestResolver_Check(t *testing.T) {
	t.Parallel()

	r := NewResolver("", "literal-generator/examples/tables")

	one := lit.Int(primitive.KindInt, 1)

	tests := []struct {
		name string
		node lit.Node
		want []Problem
	}{
		{
			name: "valid struct",
			node: lit.Struct(geo("Segment"),
				lit.F("From", lit.Struct(geo("Point"), lit.F("X", one))),
				lit.F("Heading", &lit.Primitive{Kind: primitive.KindFloat64, Text: "45", Type: geo("Degrees")}),
			),
		},
		{
			name: "unqualified types are not checked",
			node: lit.Struct("Point", lit.F("x", one)),
		},
		{
			name: "unknown type",
			node: lit.Array(lit.Struct(geo("Pont"))),
			want: []Problem{{
				Path:    "$[0]",
				Code:    CodeUnknownType,
				Message: `type literal-generator/examples/geo.Pont not found (did you mean "Point"?)`,
			}},
		},
		{
			name: "unknown field",
			node: lit.Struct(geo("Route"), lit.F("Stop", lit.Array())),
			want: []Problem{{
				Path:    "$.Stop",
				Code:    CodeUnknownField,
				Message: `type literal-generator/examples/geo.Route has no field Stop (did you mean "Stops"?)`,
			}},
		},
		{
			name: "unexported field",
			node: lit.Struct(geo("Point"), lit.F("label", lit.String("a"))),
			want: []Problem{{
				Path:    "$.label",
				Code:    CodeUnexportedField,
				Message: "field label of type literal-generator/examples/geo.Point is not exported",
			}},
		},
		{
			name: "unexported type",
			node: lit.Struct(geo("grid")),
			want: []Problem{{
				Path:    "$",
				Code:    CodeUnexportedType,
				Message: "type literal-generator/examples/geo.grid is not exported",
			}},
		},
		{
			name: "not a struct",
			node: lit.Struct(geo("Degrees")),
			want: []Problem{{
				Path:    "$",
				Code:    CodeNotAStruct,
				Message: "type literal-generator/examples/geo.Degrees is a basic type, not a struct",
			}},
		},
		{
			name: "scalar named type",
			node: &lit.Primitive{Kind: primitive.KindFloat64, Text: "1", Type: geo("Radians")},
			want: []Problem{{
				Path:    "$",
				Code:    CodeUnknownType,
				Message: "type literal-generator/examples/geo.Radians not found",
			}},
		},
		{
			name: "variant tag type",
			node: lit.NamedVariant(geo("Shape"), "Segment", lit.F("Fromm", one)),
			want: []Problem{{
				Path:    "$.Fromm",
				Code:    CodeUnknownField,
				Message: `type literal-generator/examples/geo.Segment has no field Fromm (did you mean "From"?)`,
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := r.Check(context.Background(), tt.node)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolver_SamePackage(t *testing.T) {
	t.Parallel()

	r := NewResolver("", geoPkg)

	got, err := r.Check(context.Background(), lit.Struct(geo("grid"),
		lit.F("Width", lit.Int(primitive.KindInt, 8)),
	))
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = r.Check(context.Background(), lit.Struct(geo("Point"), lit.F("label", lit.String("a"))))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestResolver_LoadError(t *testing.T) {
	t.Parallel()

	r := NewResolver("", "")

	_, err := r.Check(context.Background(), lit.Struct("literal-generator/examples/nope.Point"))
	require.Error(t, err)
}
