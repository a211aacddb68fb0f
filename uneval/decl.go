package uneval

import (
	"errors"
	"fmt"
	"go/token"
	"reflect"

	"literal-generator/describe"
	"literal-generator/lit"
	"literal-generator/options"
	"literal-generator/primitive"
	"literal-generator/render"
)

var (
	ErrInvalidName = errors.New("invalid declaration name")
	ErrNoType      = errors.New("declaration type cannot be derived")
)

// Decl is a rendered constant declaration.
type Decl struct {
	Dialect options.DialectEnum
	Name    string
	// Type is written in the output dialect. It may be empty in Go output.
	Type string
	Expr string
	// Imports lists the packages referenced by Type and Expr in Go output.
	Imports []render.Import
}

// String returns the declaration source:
//
//	const NAME: TYPE = EXPR;  // rust
//	var NAME TYPE = EXPR      // go
func (d Decl) String() string {
	if d.Dialect == options.DialectGo {
		if d.Type == "" {
			return fmt.Sprintf("var %s = %s", d.Name, d.Expr)
		}

		return fmt.Sprintf("var %s %s = %s", d.Name, d.Type, d.Expr)
	}

	return fmt.Sprintf("const %s: %s = %s;", d.Name, d.Type, d.Expr)
}

// Declare renders the tree n as a declaration named name of type typ. Go type
// names may carry their import path ("example.com/geo.Point"); they are
// qualified with the aliases r uses inside expressions. Imports holds every
// package r has referenced so far.
func Declare(r *render.Renderer, name string, n lit.Node, typ string) (Decl, error) {
	cfg := r.Config()

	if !token.IsIdentifier(name) {
		return Decl{}, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	if typ == "" && cfg.Dialect != options.DialectGo {
		return Decl{}, fmt.Errorf("%w: %s needs an explicit type", ErrNoType, name)
	}

	if err := lit.Validate(n); err != nil {
		return Decl{}, err
	}

	expr, err := r.Render(n)
	if err != nil {
		return Decl{}, err
	}

	d := Decl{Dialect: cfg.Dialect, Name: name, Expr: expr}
	if typ != "" {
		d.Type = r.Type(typ)
	}

	d.Imports = r.Imports()

	return d, nil
}

// ToString renders v as a constant declaration. When typ is empty the type is
// derived from v: its Go type name in Go output, the matching Rust type
// otherwise.
func ToString(name string, v any, typ string, opts ...options.Option) (string, error) {
	cfg := options.New(opts...)

	d, err := declareValue(name, v, typ, cfg)
	if err != nil {
		return "", err
	}

	return d.String(), nil
}

func declareValue(name string, v any, typ string, cfg options.Config) (Decl, error) {
	n, err := Build(v, cfg)
	if err != nil {
		return Decl{}, err
	}

	if typ == "" {
		typ = typeOf(reflect.ValueOf(v), cfg.Dialect)
	}

	return Declare(render.New(cfg), name, n, typ)
}

func typeOf(v reflect.Value, dialect options.DialectEnum) string {
	if dialect == options.DialectGo {
		if !v.IsValid() {
			return "any"
		}

		return describe.TypeName(v.Type())
	}

	if !v.IsValid() {
		return ""
	}

	// The top level length of a slice is known, so it becomes a fixed array.
	if v.Kind() == reflect.Slice && v.Type().Name() == "" {
		if elem := rustType(v.Type().Elem()); elem != "" {
			return fmt.Sprintf("[%s; %d]", elem, v.Len())
		}

		return ""
	}

	return rustType(v.Type())
}

// rustType spells a Go type as the Rust type of its rendered literal. Types
// without a fixed Rust counterpart give an empty string.
func rustType(t reflect.Type) string {
	if t.Name() != "" && t.PkgPath() != "" {
		return describe.BaseName(describe.TypeName(t))
	}

	switch t.Kind() {
	case reflect.String:
		return "&'static str"
	case reflect.Array:
		if elem := rustType(t.Elem()); elem != "" {
			return fmt.Sprintf("[%s; %d]", elem, t.Len())
		}
		return ""
	case reflect.Ptr:
		if elem := rustType(t.Elem()); elem != "" {
			return "Box<" + elem + ">"
		}
		return ""
	}

	return primitive.FromReflectType(t).RustName()
}
