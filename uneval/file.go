package uneval

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"

	"golang.org/x/tools/imports"

	"literal-generator/internal/common"
	"literal-generator/options"
	"literal-generator/render"
)

const filePerm = 0o644

// ToFile writes the declaration of v to path. Rust output is the bare
// declaration, ready to be included; Go output is a complete source file in
// the package named after cfg.PkgPath, or after the directory of path.
// Nothing is written when serialization fails.
func ToFile(path, name string, v any, typ string, opts ...options.Option) error {
	cfg := options.New(opts...)

	d, err := declareValue(name, v, typ, cfg)
	if err != nil {
		return err
	}

	content := []byte(d.String() + "\n")

	if cfg.Dialect == options.DialectGo {
		f := GoFile{Name: filepath.Base(path), Package: packageName(path, cfg), Decls: []Decl{d}}

		content, err = f.Source()
		if err != nil {
			return err
		}
	}

	if err := os.WriteFile(path, content, filePerm); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return nil
}

// GoFile is a Go source file of declarations.
type GoFile struct {
	// Name is the file name, used in formatting errors.
	Name string
	// Header lines are written as line comments above the package clause.
	Header  []string
	Package string
	Decls   []Decl
}

type goFileData struct {
	Header  []string
	Package string
	Imports []render.Import
	Decls   []string
}

var goFileTemplate = template.Must(template.New("file").Funcs(template.FuncMap{
	"single":   common.IsSingle[[]render.Import],
	"multiple": common.IsMultiple[[]render.Import],
}).Parse(
	`{{range .Header}}// {{.}}
{{end}}
package {{.Package}}
{{if single .Imports}}{{with index .Imports 0}}
import {{if .Alias}}{{.Alias}} {{end}}{{printf "%q" .Path}}
{{end}}{{else if multiple .Imports}}
import (
{{range .Imports}}	{{if .Alias}}{{.Alias}} {{end}}{{printf "%q" .Path}}
{{end}})
{{end}}{{range .Decls}}
{{.}}
{{end}}`))

// Source renders and formats the file. Imports of all declarations are merged;
// declarations rendered with one render.Renderer agree on their aliases.
func (f GoFile) Source() ([]byte, error) {
	data := goFileData{Header: f.Header, Package: f.Package}

	seen := make(map[string]struct{})
	for _, d := range f.Decls {
		data.Decls = append(data.Decls, d.String())

		for _, imp := range d.Imports {
			if _, ok := seen[imp.Path]; ok {
				continue
			}
			seen[imp.Path] = struct{}{}

			if imp.Alias == common.PkgAlias(imp.Path) {
				imp.Alias = ""
			}

			data.Imports = append(data.Imports, imp)
		}
	}

	sort.Slice(data.Imports, func(i, j int) bool { return data.Imports[i].Path < data.Imports[j].Path })

	var buf bytes.Buffer
	if err := goFileTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	src, err := imports.Process(f.Name, buf.Bytes(), &imports.Options{
		FormatOnly: true,
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
	})
	if err != nil {
		return buf.Bytes(), fmt.Errorf("formatting code: %w", err)
	}

	return src, nil
}

func packageName(path string, cfg options.Config) string {
	if cfg.PkgPath != "" {
		return common.PkgAlias(cfg.PkgPath)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "main"
	}

	name := common.PkgAlias(filepath.Base(filepath.Dir(abs)))
	if name == "" || strings.Trim(name, "_") == "" {
		return "main"
	}

	return name
}
