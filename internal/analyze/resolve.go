package analyze

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"

	"literal-generator/describe"
	"literal-generator/internal/match"
	"literal-generator/lit"
)

// Problem codes.
const (
	CodeUnknownType     = "unknown_type"
	CodeUnexportedType  = "unexported_type"
	CodeNotAStruct      = "not_a_struct"
	CodeUnknownField    = "unknown_field"
	CodeUnexportedField = "unexported_field"
)

// Problem is a type reference that would not compile.
type Problem struct {
	Path    string
	Code    string
	Message string
}

func (p Problem) String() string {
	return fmt.Sprintf("%s: [%s] %s", p.Path, p.Code, p.Message)
}

// ref is a use of a named type inside a literal tree.
type ref struct {
	path lit.Path
	id   TypeID
	// composite is set when the type is written as a composite literal and
	// must be a struct.
	composite bool
	fields    []string
}

// references lists the qualified named types used by n in pre-order.
func references(n lit.Node) []ref {
	var refs []ref

	add := func(path lit.Path, typeName string) {
		if id, ok := ParseTypeID(typeName); ok {
			refs = append(refs, ref{path: path, id: id})
		}
	}

	lit.Walk(n, func(path lit.Path, n lit.Node) bool {
		switch node := n.(type) {
		case *lit.Keyed:
			if id, ok := ParseTypeID(node.Type); ok {
				refs = append(refs, ref{path: path, id: id, composite: true, fields: fieldNames(node.Fields)})
			}
		case *lit.Variant:
			// A Go variant is written as a struct of the tag type, declared in
			// the package of the variant's type.
			pkg, _, _ := describe.SplitName(node.Type)
			if id, ok := ParseTypeID(pkg + "." + node.Tag); ok && pkg != "" {
				refs = append(refs, ref{path: path, id: id, composite: true, fields: fieldNames(node.Fields)})
			}
		case *lit.Primitive:
			add(path, node.Type)
		case *lit.Str:
			add(path, node.Type)
		case *lit.Sequence:
			add(path, node.Type)
		case *lit.Mapping:
			add(path, node.Type)
		case *lit.Nil:
			add(path, node.Type)
		}

		return true
	})

	return refs
}

func fieldNames(fields []lit.Field) []string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}

	return names
}

// Resolver checks literal trees against the packages they reference. It is
// safe for concurrent use; packages are loaded once.
type Resolver struct {
	mu       sync.Mutex
	analyzer *Analyzer
	pkgPath  string
}

// NewResolver creates a resolver loading packages from dir for output
// generated into the package pkgPath. Unexported names of pkgPath are
// accessible.
func NewResolver(dir, pkgPath string) *Resolver {
	return &Resolver{analyzer: NewAnalyzer(dir), pkgPath: pkgPath}
}

// Check loads the packages n refers to and reports every named type or field
// that does not exist or cannot be used from the output package. The error is
// set when a package cannot be loaded.
func (r *Resolver) Check(ctx context.Context, n lit.Node) ([]Problem, error) {
	refs := references(n)
	if len(refs) == 0 {
		return nil, nil
	}

	pkgs := map[string]struct{}{}
	for _, ref := range refs {
		pkgs[ref.id.PkgPath] = struct{}{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	graph, err := r.analyzer.LoadPackages(ctx, slices.Sorted(maps.Keys(pkgs))...)
	if err != nil {
		return nil, err
	}

	return graph.check(refs, r.pkgPath), nil
}

func (g *TypeGraph) check(refs []ref, pkgPath string) []Problem {
	var problems []Problem

	report := func(path lit.Path, code, format string, args ...any) {
		problems = append(problems, Problem{Path: path.String(), Code: code, Message: fmt.Sprintf(format, args...)})
	}

	for _, ref := range refs {
		info := g.GetType(ref.id)
		if info == nil {
			report(ref.path, CodeUnknownType, "type %s not found%s",
				ref.id, match.Hint(ref.id.Name, g.TypeNames(ref.id.PkgPath)))
			continue
		}

		local := ref.id.PkgPath == pkgPath

		if !info.Exported && !local {
			report(ref.path, CodeUnexportedType, "type %s is not exported", ref.id)
			continue
		}

		if !ref.composite {
			continue
		}

		if info.Kind != TypeKindStruct {
			report(ref.path, CodeNotAStruct, "type %s is a %s type, not a struct", ref.id, info.Kind)
			continue
		}

		for _, name := range ref.fields {
			f, ok := info.Field(name)

			switch {
			case !ok:
				report(ref.path.Field(name), CodeUnknownField, "type %s has no field %s%s",
					ref.id, name, match.Hint(name, info.FieldNames()))
			case !f.Exported && !local:
				report(ref.path.Field(name), CodeUnexportedField, "field %s of type %s is not exported", name, ref.id)
			}
		}
	}

	return problems
}
