package analyze

import (
	"context"
	"errors"
	"fmt"
	"go/types"

	"golang.org/x/tools/go/packages"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName | packages.NeedTypes

// Analyzer loads Go packages and builds a type graph.
type Analyzer struct {
	graph *TypeGraph
	// Dir is the directory packages are resolved from. Empty uses the current
	// directory.
	Dir string
}

// NewAnalyzer creates a new Analyzer resolving packages from dir.
func NewAnalyzer(dir string) *Analyzer {
	return &Analyzer{
		graph: NewTypeGraph(),
		Dir:   dir,
	}
}

// LoadPackages loads the given import paths and adds their types to the
// graph. Paths already in the graph are skipped.
func (a *Analyzer) LoadPackages(ctx context.Context, paths ...string) (*TypeGraph, error) {
	var missing []string

	for _, p := range paths {
		if _, ok := a.graph.Packages[p]; !ok {
			missing = append(missing, p)
		}
	}

	if len(missing) == 0 {
		return a.graph, nil
	}

	cfg := &packages.Config{
		Mode:    LoadMode,
		Context: ctx,
		Dir:     a.Dir,
	}

	pkgs, err := packages.Load(cfg, missing...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %w", errors.Join(errs...))
	}

	for _, pkg := range pkgs {
		a.processPackage(pkg)
	}

	return a.graph, nil
}

// Graph returns the current type graph.
func (a *Analyzer) Graph() *TypeGraph {
	return a.graph
}

// processPackage records every named type declared at package scope,
// exported or not: outputs generated into the package may use both.
func (a *Analyzer) processPackage(pkg *packages.Package) {
	pkgInfo := &PackageInfo{
		Path: pkg.PkgPath,
		Name: pkg.Name,
	}

	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		typeName, ok := scope.Lookup(name).(*types.TypeName)
		if !ok {
			continue
		}

		id := TypeID{PkgPath: pkg.PkgPath, Name: name}
		info := analyzeType(typeName.Type())
		info.ID = id
		info.Exported = typeName.Exported()

		a.graph.Types[id] = info
		pkgInfo.Types = append(pkgInfo.Types, id)
	}

	a.graph.Packages[pkg.PkgPath] = pkgInfo
}

func analyzeType(t types.Type) *TypeInfo {
	info := &TypeInfo{}

	switch ut := t.Underlying().(type) {
	case *types.Struct:
		info.Kind = TypeKindStruct

		for i := range ut.NumFields() {
			f := ut.Field(i)
			info.Fields = append(info.Fields, FieldInfo{
				Name:     f.Name(),
				Exported: f.Exported(),
				Embedded: f.Embedded(),
			})
		}
	case *types.Basic:
		info.Kind = TypeKindBasic
	default:
		info.Kind = TypeKindOther
	}

	return info
}
