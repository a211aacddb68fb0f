package gen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFiles(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "out")
	files := []GeneratedFile{
		{Filename: "a.rs", Content: []byte("const A: i32 = 1;\n")},
		{Filename: "sub/b.rs", Content: []byte("const B: i32 = 2;\n")},
	}

	res, err := WriteFiles(files, dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.rs", "sub/b.rs"}, res.Written)
	assert.Empty(t, res.Unchanged)

	got, err := os.ReadFile(filepath.Join(dir, "sub", "b.rs"))
	require.NoError(t, err)
	assert.Equal(t, "const B: i32 = 2;\n", string(got))

	files[1].Content = []byte("const B: i32 = 3;\n")

	res, err = WriteFiles(files, dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"sub/b.rs"}, res.Written)
	assert.Equal(t, []string{"a.rs"}, res.Unchanged)
}

func TestSameContent(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "a.rs")

	same, err := sameContent(path, []byte("x"))
	require.NoError(t, err)
	assert.False(t, same)

	require.NoError(t, os.WriteFile(path, []byte("const A: i32 = 1;\n"), 0o644))

	for content, want := range map[string]bool{
		"const A: i32 = 1;\n": true,
		"const A: i32 = 2;\n": false,
		"const A: i32 = 1;":   false,
		"":                    false,
	} {
		same, err := sameContent(path, []byte(content))
		require.NoError(t, err)
		assert.Equal(t, want, same, content)
	}
}

func TestGeneratedFile_Digest(t *testing.T) {
	t.Parallel()

	a := GeneratedFile{Filename: "a.rs", Content: []byte("const A: i32 = 1;\n")}
	b := GeneratedFile{Filename: "b.rs", Content: []byte("const A: i32 = 1;\n")}
	c := GeneratedFile{Filename: "a.rs", Content: []byte("const A: i32 = 2;\n")}

	assert.Equal(t, "ef46db3751d8e999", GeneratedFile{}.Digest())
	assert.Len(t, a.Digest(), 16)
	assert.Equal(t, a.Digest(), b.Digest())
	assert.NotEqual(t, a.Digest(), c.Digest())
}

func TestCheck(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.rs"), []byte("// header\nconst A: i32 = 1;\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "c.rs"), []byte("same\n"), 0o644))

	stale, err := Check([]GeneratedFile{
		{Filename: "a.rs", Content: []byte("// header\nconst A: i32 = 2;\n")},
		{Filename: "b.rs", Content: []byte("new\n")},
		{Filename: "c.rs", Content: []byte("same\n")},
	}, dir)
	require.NoError(t, err)

	require.Len(t, stale, 2)
	assert.Equal(t, Stale{
		Filename: "a.rs",
		Diff:     " // header\n-const A: i32 = 1;\n+const A: i32 = 2;\n",
	}, stale[0])
	assert.Equal(t, Stale{Filename: "b.rs", Missing: true}, stale[1])

	_, err = os.Stat(filepath.Join(dir, "b.rs"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLineDiff(t *testing.T) {
	t.Parallel()

	assert.Equal(t, " a\n-b\n+c\n", LineDiff("a\nb\n", "a\nc\n"))
	assert.Equal(t, " x\n+y\n", LineDiff("x\n", "x\ny\n"))
	assert.Equal(t, "", LineDiff("", ""))
}
