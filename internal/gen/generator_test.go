package gen

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"literal-generator/internal/analyze"
	"literal-generator/internal/diagnostic"
	"literal-generator/internal/manifest"
	"literal-generator/lit"
)

const rustManifest = `
version: "1"
outputs:
  - file: good.rs
    tables:
      - name: FFT_TABLE
        type: "FftDomain<'static, i32>"
        debug: "FftDomain { some_table: vec![1, 2, 3] }"
      - name: ORIGIN
        type: Point
        value: {$type: Point, x: 0, y: -1}
  - file: nested/bad.rs
    tables:
      - name: BROKEN
        type: Foo
        debug: "Foo {"
      - name: BORROWED
        type: Foo
        debug: "Cow::Borrowed(&1)"
      - name: FINE
        type: i32
        debug: "1"
`

const goManifest = `
version: "1"
dialect: go
package: tables
outputs:
  - file: tables.go
    tables:
      - name: Origin
        type: example.com/geo.Point
        value: {$type: example.com/geo.Point, X: 1}
      - name: Nums
        debug: "[1, 2]"
`

func loadManifest(t *testing.T, src string) *manifest.File {
	t.Helper()

	mf, err := manifest.Parse([]byte(src))
	require.NoError(t, err)
	require.True(t, manifest.Validate(mf).IsValid())

	return mf
}

func TestGenerate_Rust(t *testing.T) {
	t.Parallel()

	g := NewGenerator(GeneratorConfig{Concurrency: 2, Logger: zaptest.NewLogger(t)})

	files, diags, err := g.Generate(context.Background(), loadManifest(t, rustManifest))
	require.NoError(t, err)

	require.Len(t, files, 1)
	assert.Equal(t, "good.rs", files[0].Filename)
	assert.Equal(t, `// Code generated by literal-generator. DO NOT EDIT.

const FFT_TABLE: FftDomain<'static, i32> = FftDomain { some_table: [1, 2, 3] };

const ORIGIN: Point = Point { x: 0, y: -1 };
`, string(files[0].Content))

	require.Len(t, diags.Errors, 2)
	assert.Equal(t, diagnostic.CodeMalformed, diags.Errors[0].Code)
	assert.Equal(t, "BROKEN", diags.Errors[0].Table)
	assert.Equal(t, "nested/bad.rs", diags.Errors[0].Output)

	assert.Equal(t, diagnostic.CodeUnrepresentable, diags.Errors[1].Code)
	assert.Equal(t, "BORROWED", diags.Errors[1].Table)
	assert.Equal(t, "$", diags.Errors[1].Path)

	require.Len(t, diags.Infos, 1)
	assert.Equal(t, "output_skipped", diags.Infos[0].Code)
}

func TestGenerate_Go(t *testing.T) {
	t.Parallel()

	files, diags, err := NewGenerator(GeneratorConfig{}).Generate(context.Background(), loadManifest(t, goManifest))
	require.NoError(t, err)
	require.True(t, diags.IsValid(), diags.Error())

	require.Len(t, files, 1)
	assert.Equal(t, `// Code generated by literal-generator. DO NOT EDIT.

package tables

import "example.com/geo"

var Origin geo.Point = geo.Point{X: 1}

var Nums = [...]any{1, 2}
`, string(files[0].Content))
}

type fakeTypes struct {
	checked int
}

func (f *fakeTypes) Check(_ context.Context, n lit.Node) ([]analyze.Problem, error) {
	f.checked++

	if k, ok := n.(*lit.Keyed); ok && k.Type == "example.com/geo.Point" {
		return []analyze.Problem{{Path: "$.X", Code: analyze.CodeUnknownField, Message: "no field X"}}, nil
	}

	return nil, nil
}

func TestGenerate_TypeProblems(t *testing.T) {
	t.Parallel()

	types := &fakeTypes{}
	g := NewGenerator(GeneratorConfig{Concurrency: 1, Types: types})

	files, diags, err := g.Generate(context.Background(), loadManifest(t, goManifest))
	require.NoError(t, err)
	assert.Empty(t, files)
	assert.Equal(t, 2, types.checked)

	require.Len(t, diags.Errors, 1)
	assert.Equal(t, diagnostic.Diagnostic{
		Severity: diagnostic.DiagnosticError,
		Code:     analyze.CodeUnknownField,
		Message:  "no field X",
		Output:   "tables.go",
		Table:    "Origin",
		Path:     "$.X",
	}, diags.Errors[0])

	// Rust tables are never resolved.
	_, _, err = g.Generate(context.Background(), loadManifest(t, rustManifest))
	require.NoError(t, err)
	assert.Equal(t, 2, types.checked)
}

func TestGenerate_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := NewGenerator(GeneratorConfig{}).Generate(ctx, loadManifest(t, rustManifest))
	require.ErrorIs(t, err, context.Canceled)
}

func TestGenerate_Deterministic(t *testing.T) {
	t.Parallel()

	mf := loadManifest(t, rustManifest)
	g := NewGenerator(GeneratorConfig{})

	first, _, err := g.Generate(context.Background(), mf)
	require.NoError(t, err)

	for range 5 {
		again, _, err := g.Generate(context.Background(), mf)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestWriteDebugUnformatted(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	require.NoError(t, writeDebugUnformatted(dir, "sub/tables.go", []byte("package")))

	got, err := os.ReadFile(filepath.Join(dir, "sub", "tables.unformatted.go"))
	require.NoError(t, err)
	assert.Equal(t, "package", string(got))

	require.NoError(t, writeDebugUnformatted("", "tables.go", []byte("x")))
}
