package render

import (
	"strings"

	"literal-generator/internal/common"
	"literal-generator/options"
)

// Type writes a Go type expression with the renderer's import aliases and
// records its imports. Rust types are returned as written.
func (r *Renderer) Type(typ string) string {
	if r.cfg.Dialect != options.DialectGo {
		return typ
	}

	return r.qualify(typ)
}

// qualify rewrites every "import/path.Name" inside a type expression to
// "alias.Name" and records the import. Names of the target package stay
// unqualified.
func (r *Renderer) qualify(typ string) string {
	if typ == "" {
		return ""
	}

	var sb strings.Builder

	for i := 0; i < len(typ); {
		if !isNameStart(typ[i]) {
			sb.WriteByte(typ[i])
			i++
			continue
		}

		j := i
		for j < len(typ) && isNameByte(typ[j]) {
			j++
		}

		tok := typ[i:j]
		if dot := strings.LastIndexByte(tok, '.'); dot > 0 {
			tok = r.qualifyName(tok[:dot], tok[dot+1:])
		}

		sb.WriteString(tok)
		i = j
	}

	return sb.String()
}

func (r *Renderer) qualifyName(pkgPath, name string) string {
	if pkgPath == r.cfg.PkgPath {
		return name
	}

	return r.importAlias(pkgPath) + "." + name
}

// importAlias returns the alias of pkgPath, registering the import on first
// use. Clashing aliases are numbered.
func (r *Renderer) importAlias(pkgPath string) string {
	if alias, ok := r.imports[pkgPath]; ok {
		return alias
	}

	alias := common.NewStem(common.PkgAlias(pkgPath), r.aliases).Next()
	r.imports[pkgPath] = alias

	return alias
}

func isNameStart(c byte) bool {
	return c == '_' || 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

func isNameByte(c byte) bool {
	return isNameStart(c) || '0' <= c && c <= '9' || c == '.' || c == '/' || c == '-'
}
