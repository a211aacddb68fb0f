package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"literal-generator/internal/common"
	"literal-generator/lit"
)

// Diagnostic codes of serialization failures.
const (
	CodeUnrepresentable = "unrepresentable"
	CodeMalformed       = "malformed_debug_text"
	CodeInternal        = "internal"
	CodeManifest        = "manifest"
	CodeIO              = "io"
)

// Diagnostics holds all diagnostic information of a run.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity DiagnosticSeverity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Output is the generated file this relates to (if any).
	Output string
	// Table is the manifest table this relates to (if any).
	Table string
	// Path locates the offending value inside the table (if any), either a
	// value path like "$.items[2]" or a debug text span like "4:10".
	Path string
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticInfo DiagnosticSeverity = iota
	DiagnosticWarning
	DiagnosticError
)

// String returns a human-readable severity name.
func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticInfo:
		return "info"
	case DiagnosticWarning:
		return "warning"
	case DiagnosticError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// FromError classifies a failure of table inside output. Serialization errors
// keep their kind and location; any other error is reported as is.
func FromError(output, table string, err error) Diagnostic {
	d := Diagnostic{
		Severity: DiagnosticError,
		Code:     CodeIO,
		Message:  err.Error(),
		Output:   output,
		Table:    table,
	}

	var le *lit.Error
	if !errors.As(err, &le) {
		return d
	}

	d.Message = le.Reason
	if d.Message == "" && le.Err != nil {
		d.Message = le.Err.Error()
	}

	switch le.Kind {
	case lit.ErrorUnrepresentable:
		d.Code = CodeUnrepresentable
		d.Path = le.Path
	case lit.ErrorMalformedDebugText:
		d.Code = CodeMalformed
		d.Path = le.Path
		if le.Span != nil {
			d.Path = strings.TrimPrefix(d.Path+" "+le.Span.String(), " ")
		}
		if le.Text != "" {
			d.Message = fmt.Sprintf("%s near %q", d.Message, le.Text)
		}
	default:
		d.Code = CodeInternal
		d.Message = le.Error()
	}

	return d
}

// Add adds a diagnostic by its severity.
func (d *Diagnostics) Add(diag Diagnostic) {
	switch diag.Severity {
	case DiagnosticError:
		d.Errors = append(d.Errors, diag)
	case DiagnosticWarning:
		d.Warnings = append(d.Warnings, diag)
	default:
		d.Infos = append(d.Infos, diag)
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, table, path string) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity: DiagnosticError,
		Code:     code,
		Message:  message,
		Table:    table,
		Path:     path,
	})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, table, path string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity: DiagnosticWarning,
		Code:     code,
		Message:  message,
		Table:    table,
		Path:     path,
	})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, table, path string) {
	d.Infos = append(d.Infos, Diagnostic{
		Severity: DiagnosticInfo,
		Code:     code,
		Message:  message,
		Table:    table,
		Path:     path,
	})
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string:
//
//	tables.rs [FFT_TABLE] $.items[2]: [unrepresentable] cyclic reference
func (d Diagnostic) String() string {
	var prefix []string
	if d.Output != "" {
		prefix = append(prefix, d.Output)
	}

	if d.Table != "" {
		prefix = append(prefix, "["+d.Table+"]")
	}

	if d.Path != "" {
		prefix = append(prefix, d.Path)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
