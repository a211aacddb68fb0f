package manifest

import (
	"literal-generator/options"
)

// CurrentVersion is the only supported schema version.
const CurrentVersion = "1"

// File represents the root of a YAML manifest.
type File struct {
	// Version of the manifest schema.
	Version string `yaml:"version,omitempty"`

	// Dialect is the output grammar, rust or go.
	Dialect string `yaml:"dialect,omitempty"`

	// Package is the package clause of generated Go files.
	Package string `yaml:"package,omitempty"`

	// ImportPath is the import path of the generated Go package. Types of this
	// package are written unqualified.
	ImportPath string `yaml:"import_path,omitempty"`

	// Flags are rendering flags by name, see options.ParseFlags.
	Flags []string `yaml:"flags,omitempty"`

	// Outputs lists the files to generate, in order.
	Outputs []Output `yaml:"outputs"`
}

// Output is one generated file.
type Output struct {
	// File is the path of the generated file, relative to the output directory.
	File string `yaml:"file"`

	// Tables are written to the file in order.
	Tables []Table `yaml:"tables"`
}

// Table is one named constant.
type Table struct {
	Name string `yaml:"name"`

	// Type is the declared type. It is required in rust output; in Go output
	// an empty type lets the compiler infer it from the literal.
	Type string `yaml:"type,omitempty"`

	// Debug is a debug rendering of the value. Exactly one of Debug and Value
	// is set.
	Debug string `yaml:"debug,omitempty"`

	// Value is the value written as YAML.
	Value Value `yaml:"value,omitempty"`
}

// IsDebug reports whether the table value is given as debug text.
func (t *Table) IsDebug() bool {
	return t.Debug != ""
}

// Config returns the render configuration of the manifest. The manifest must
// be valid.
func (f *File) Config() (options.Config, error) {
	dialect, err := options.ParseDialect(f.Dialect)
	if err != nil {
		return options.Config{}, err
	}

	flags, err := options.ParseFlags(f.Flags)
	if err != nil {
		return options.Config{}, err
	}

	return options.New(
		options.WithDialect(dialect),
		options.WithFlags(flags),
		options.WithPackage(f.ImportPath),
	), nil
}
