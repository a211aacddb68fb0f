package diagnostic_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"literal-generator/internal/diagnostic"
	"literal-generator/lit"
	"literal-generator/reparse"
)

func TestFromError(t *testing.T) {
	t.Parallel()

	_, parseErr := reparse.Parse(`Foo { a: 1`)
	require.Error(t, parseErr)

	tests := []struct {
		name string
		err  error
		want diagnostic.Diagnostic
	}{
		{
			name: "unrepresentable",
			err:  fmt.Errorf("table: %w", lit.Unrepresentable("$.items[2]", "cyclic reference")),
			want: diagnostic.Diagnostic{
				Severity: diagnostic.DiagnosticError,
				Code:     diagnostic.CodeUnrepresentable,
				Message:  "cyclic reference",
				Output:   "tables.rs",
				Table:    "FFT",
				Path:     "$.items[2]",
			},
		},
		{
			name: "malformed",
			err:  parseErr,
			want: diagnostic.Diagnostic{
				Severity: diagnostic.DiagnosticError,
				Code:     diagnostic.CodeMalformed,
				Message:  `unbalanced delimiter: missing '}' near "{ a: 1"`,
				Output:   "tables.rs",
				Table:    "FFT",
				Path:     "4:10",
			},
		},
		{
			name: "plain",
			err:  errors.New("disk full"),
			want: diagnostic.Diagnostic{
				Severity: diagnostic.DiagnosticError,
				Code:     diagnostic.CodeIO,
				Message:  "disk full",
				Output:   "tables.rs",
				Table:    "FFT",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, diagnostic.FromError("tables.rs", "FFT", tt.err))
		})
	}
}

func TestDiagnostics(t *testing.T) {
	t.Parallel()

	var d diagnostic.Diagnostics

	assert.True(t, d.IsValid())
	require.NoError(t, d.Error())

	d.AddWarning("unused", "table is never referenced", "T", "")
	d.Add(diagnostic.FromError("a.rs", "T", lit.Unrepresentable("$", "func values have no literal form")))

	var other diagnostic.Diagnostics
	other.AddError(diagnostic.CodeManifest, "duplicate table name", "T", "")
	d.Merge(other)

	assert.True(t, d.HasErrors())
	assert.Len(t, d.Warnings, 1)
	assert.EqualError(t, d.Error(),
		"a.rs [T] $: [unrepresentable] func values have no literal form; [T]: [manifest] duplicate table name")
}

func ExampleDiagnostic_String() {
	d := diagnostic.Diagnostic{
		Code:    diagnostic.CodeUnrepresentable,
		Message: "cyclic reference",
		Output:  "tables.rs",
		Table:   "FFT_TABLE",
		Path:    "$.items[2]",
	}

	fmt.Println(d)
	fmt.Println(diagnostic.DiagnosticWarning)

	// Output:
	// tables.rs [FFT_TABLE] $.items[2]: [unrepresentable] cyclic reference
	// warning
}
