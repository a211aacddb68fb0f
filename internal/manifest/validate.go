package manifest

import (
	"errors"
	"fmt"
	"go/token"
	"path"
	"path/filepath"
	"strings"

	"literal-generator/internal/diagnostic"
	"literal-generator/internal/match"
	"literal-generator/options"
)

// Validate checks the structure of a manifest: known version, dialect and
// flags, unique output files, unique well-formed table names and exactly one
// value per table. Values themselves are checked when they are converted.
func Validate(f *File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("manifest_is_nil", "manifest is nil", "", "")
		return res
	}

	if f.Version != CurrentVersion {
		res.AddError("unsupported_version", fmt.Sprintf("unsupported manifest version %q", f.Version), "", "")
	}

	dialect, err := options.ParseDialect(f.Dialect)
	if err != nil {
		res.AddError("unknown_dialect", err.Error()+match.Hint(f.Dialect, options.DialectNames()), "", "")
	}

	for _, name := range f.Flags {
		if _, err := options.ParseFlags([]string{name}); err != nil {
			res.AddError("unknown_flag", err.Error()+match.Hint(name, options.FlagNames()), "", "")
		}
	}

	if dialect == options.DialectGo && !token.IsIdentifier(f.Package) {
		res.AddError("invalid_package", fmt.Sprintf("go output needs a package name, got %q", f.Package), "", "")
	}

	if len(f.Outputs) == 0 {
		res.AddWarning("no_outputs", "manifest has no outputs", "", "")
	}

	seenFiles := map[string]struct{}{}

	for i := range f.Outputs {
		out := &f.Outputs[i]

		if err := validateFile(out.File); err != nil {
			res.Add(diagnostic.Diagnostic{
				Severity: diagnostic.DiagnosticError,
				Code:     "invalid_file",
				Message:  err.Error(),
				Output:   out.File,
			})
			continue
		}

		clean := path.Clean(filepath.ToSlash(out.File))
		if _, ok := seenFiles[clean]; ok {
			res.Add(diagnostic.Diagnostic{
				Severity: diagnostic.DiagnosticError,
				Code:     "duplicate_file",
				Message:  fmt.Sprintf("duplicate output file %q", out.File),
				Output:   out.File,
			})
			continue
		}

		seenFiles[clean] = struct{}{}

		validateTables(res, out, dialect)
	}

	return res
}

func validateFile(name string) error {
	if name == "" {
		return errors.New("output file name is empty")
	}

	if filepath.IsAbs(name) || path.IsAbs(filepath.ToSlash(name)) {
		return fmt.Errorf("output file %q must be relative to the output directory", name)
	}

	clean := path.Clean(filepath.ToSlash(name))
	if clean == ".." || strings.HasPrefix(clean, "../") {
		return fmt.Errorf("output file %q escapes the output directory", name)
	}

	return nil
}

func validateTables(res *diagnostic.Diagnostics, out *Output, dialect options.DialectEnum) {
	if len(out.Tables) == 0 {
		res.Add(diagnostic.Diagnostic{
			Severity: diagnostic.DiagnosticWarning,
			Code:     "empty_output",
			Message:  "output has no tables",
			Output:   out.File,
		})
	}

	seen := map[string]struct{}{}

	for i := range out.Tables {
		t := &out.Tables[i]

		add := func(code, msg string) {
			res.Add(diagnostic.Diagnostic{
				Severity: diagnostic.DiagnosticError,
				Code:     code,
				Message:  msg,
				Output:   out.File,
				Table:    t.Name,
			})
		}

		if !token.IsIdentifier(t.Name) {
			add("invalid_table_name", fmt.Sprintf("table name %q is not an identifier", t.Name))
		} else if _, ok := seen[t.Name]; ok {
			add("duplicate_table", fmt.Sprintf("duplicate table %q", t.Name))
		}

		seen[t.Name] = struct{}{}

		switch {
		case t.IsDebug() && !t.Value.IsZero():
			add("ambiguous_value", "table has both debug text and a value")
		case !t.IsDebug() && t.Value.IsZero():
			add("missing_value", "table has neither debug text nor a value")
		}

		if t.Type == "" && dialect != options.DialectGo {
			add("missing_type", "rust output needs a table type")
		}
	}
}
