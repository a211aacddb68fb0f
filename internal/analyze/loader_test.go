package analyze

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const geoPkg = "literal-generator/examples/geo"

func TestAnalyzer_LoadPackages(t *testing.T) {
	analyzer := NewAnalyzer("")
	graph, err := analyzer.LoadPackages(context.Background(), geoPkg)
	require.NoError(t, err)
	require.NotNil(t, graph)

	assert.Contains(t, graph.Packages, geoPkg)
	assert.Equal(t, "geo", graph.Packages[geoPkg].Name)

	point := graph.GetType(TypeID{PkgPath: geoPkg, Name: "Point"})
	require.NotNil(t, point)
	assert.Equal(t, TypeKindStruct, point.Kind)
	assert.True(t, point.Exported)
	assert.Equal(t, []FieldInfo{
		{Name: "X", Exported: true},
		{Name: "Y", Exported: true},
		{Name: "label"},
	}, point.Fields)
	assert.Equal(t, []string{"X", "Y"}, point.FieldNames())

	degrees := graph.GetType(TypeID{PkgPath: geoPkg, Name: "Degrees"})
	require.NotNil(t, degrees)
	assert.Equal(t, TypeKindBasic, degrees.Kind)

	route := graph.GetType(TypeID{PkgPath: geoPkg, Name: "Route"})
	require.NotNil(t, route)
	assert.Equal(t, TypeKindStruct, route.Kind)

	grid := graph.GetType(TypeID{PkgPath: geoPkg, Name: "grid"})
	require.NotNil(t, grid)
	assert.False(t, grid.Exported)

	assert.Nil(t, graph.GetType(TypeID{PkgPath: geoPkg, Name: "DefaultGrid"}), "variables are not types")
}

func TestAnalyzer_LoadPackagesOnce(t *testing.T) {
	analyzer := NewAnalyzer("")

	first, err := analyzer.LoadPackages(context.Background(), geoPkg)
	require.NoError(t, err)

	info := first.GetType(TypeID{PkgPath: geoPkg, Name: "Point"})

	second, err := analyzer.LoadPackages(context.Background(), geoPkg)
	require.NoError(t, err)
	assert.Same(t, info, second.GetType(TypeID{PkgPath: geoPkg, Name: "Point"}))
}

func TestAnalyzer_MissingPackage(t *testing.T) {
	analyzer := NewAnalyzer("")

	_, err := analyzer.LoadPackages(context.Background(), "literal-generator/examples/nope")
	require.Error(t, err)
	assert.NotContains(t, analyzer.Graph().Packages, "literal-generator/examples/nope")
}

func TestParseTypeID(t *testing.T) {
	tests := []struct {
		in     string
		want   TypeID
		wantOK bool
	}{
		{"example.com/geo.Point", TypeID{"example.com/geo", "Point"}, true},
		{"example.com/geo.Pair[int,string]", TypeID{"example.com/geo", "Pair"}, true},
		{"time.Duration", TypeID{"time", "Duration"}, true},
		{"Point", TypeID{}, false},
		{"int", TypeID{}, false},
		{"[]example.com/geo.Point", TypeID{}, false},
		{"*example.com/geo.Point", TypeID{}, false},
		{"map[string]example.com/geo.Point", TypeID{}, false},
		{"FftDomain<'static, i32>", TypeID{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseTypeID(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
