package render

import (
	"go/parser"
	"reflect"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"

	"literal-generator/describe"
	"literal-generator/lit"
	"literal-generator/primitive"
)

// describePkg hosts the Go constructors of duality wrappers.
var describePkg = reflect.TypeFor[describe.Shape]().PkgPath()

// goCtx is the static type information of the position a literal is written to.
type goCtx struct {
	// dynamic is set for interface typed positions where a bare constant would
	// take its default type.
	dynamic bool
}

func (r *Renderer) goNode(path lit.Path, n lit.Node, ctx goCtx) error {
	switch node := n.(type) {
	case *lit.Primitive:
		if node == nil {
			break
		}
		r.p.write(r.goPrimitive(node, ctx))
		return nil
	case *lit.Str:
		if node == nil {
			break
		}
		text := primitive.Quote(node.Text, primitive.QuoteGo)
		if ctx.dynamic && node.Type != "" {
			text = r.qualify(node.Type) + "(" + text + ")"
		}
		r.p.write(text)
		return nil
	case *lit.Sequence:
		if node == nil {
			break
		}
		return r.goSequence(path, node)
	case *lit.Keyed:
		if node == nil {
			break
		}
		return r.goKeyed(path, node)
	case *lit.Variant:
		if node == nil {
			break
		}
		return r.goVariant(path, node)
	case *lit.Wrapped:
		if node == nil {
			break
		}
		return r.goWrapped(path, node)
	case *lit.Mapping:
		if node == nil {
			break
		}
		return r.goMapping(path, node)
	case *lit.Nil:
		if node == nil {
			break
		}
		if ctx.dynamic && node.Type != "" {
			r.p.write("(" + r.qualify(node.Type) + ")(nil)")
		} else {
			r.p.write("nil")
		}
		return nil
	}

	return invariant(path, n)
}

func (r *Renderer) goPrimitive(p *lit.Primitive, ctx goCtx) string {
	text := p.Text
	typ := r.goScalarType(p)

	switch {
	case p.Kind == primitive.KindChar:
		c, _ := utf8.DecodeRuneInString(p.Text)
		text = primitive.QuoteChar(c, primitive.QuoteGo)
	case p.Kind.IsFloat() && primitive.IsSpecialFloat(p.Text):
		math := r.importAlias("math")
		switch p.Text {
		case primitive.TextNaN:
			text = math + ".NaN()"
		case primitive.TextInf:
			text = math + ".Inf(1)"
		default:
			text = math + ".Inf(-1)"
		}
		// math functions return float64 values, not constants.
		if typ != "" && typ != "float64" {
			return typ + "(" + text + ")"
		}
		return text
	case p.Kind == primitive.KindUntypedInt && ctx.dynamic && !primitive.FitsKind(p.Text, primitive.KindInt64):
		return "uint64(" + text + ")"
	}

	if ctx.dynamic && typ != "" && typ != defaultGoType(p.Kind) {
		return typ + "(" + text + ")"
	}

	return text
}

// goScalarType returns the Go type of a primitive, empty for untyped ones.
func (r *Renderer) goScalarType(p *lit.Primitive) string {
	if p.Type != "" {
		return r.qualify(p.Type)
	}

	return p.Kind.GoName()
}

// defaultGoType is the type an untyped constant of the kind defaults to.
func defaultGoType(k primitive.KindEnum) string {
	switch {
	case k == primitive.KindBool:
		return "bool"
	case k == primitive.KindChar:
		return "rune"
	case k.IsFloat():
		return "float64"
	default:
		return "int"
	}
}

func (r *Renderer) goSequence(path lit.Path, s *lit.Sequence) error {
	typ := "[...]any"
	switch {
	case s.Type != "":
		typ = r.qualify(s.Type)
	case s.Kind == lit.SeqList:
		typ = "[]any"
	}

	ctx := goCtx{dynamic: s.Dynamic || s.Type == ""}

	return r.p.group(typ+"{", "}", false, len(s.Elems), func(i int) error {
		return r.goNode(path.Index(i), s.Elems[i], ctx)
	})
}

func (r *Renderer) goKeyed(path lit.Path, k *lit.Keyed) error {
	if k.Type == "" {
		return r.p.group("map[string]any{", "}", false, len(k.Fields), func(i int) error {
			r.p.write(primitive.Quote(k.Fields[i].Name, primitive.QuoteGo) + ": ")
			return r.goNode(path.Field(k.Fields[i].Name), k.Fields[i].Value, goCtx{dynamic: true})
		})
	}

	return r.goFields(path, r.qualify(k.Type)+"{", k.Fields)
}

func (r *Renderer) goFields(path lit.Path, open string, fields []lit.Field) error {
	return r.p.group(open, "}", false, len(fields), func(i int) error {
		r.p.write(fields[i].Name + ": ")
		return r.goNode(path.Field(fields[i].Name), fields[i].Value, goCtx{dynamic: fields[i].Dynamic})
	})
}

// goVariant writes a variant as a struct of the tag type, declared next to
// the variant's type: geo.Shape::Circle{r} becomes geo.Circle{R: r}.
func (r *Renderer) goVariant(path lit.Path, v *lit.Variant) error {
	pkg, _, args := describe.SplitName(v.Type)

	name := v.Tag
	if pkg != "" {
		name = r.qualifyName(pkg, v.Tag)
	}
	name += r.qualify(args)

	vp := path.Variant(v.Tag)

	switch v.Payload {
	case lit.PayloadTuple:
		return r.p.group(name+"{", "}", false, len(v.Elems), func(i int) error {
			return r.goNode(vp.Index(i), v.Elems[i], goCtx{})
		})
	case lit.PayloadNamed:
		return r.goFields(vp, name+"{", v.Fields)
	default:
		r.p.write(name + "{}")
		return nil
	}
}

func (r *Renderer) goWrapped(path lit.Path, w *lit.Wrapped) error {
	inner := func(ctx goCtx) error { return r.goNode(path.Deref(), w.Inner, ctx) }

	switch w.Wrapper {
	case lit.WrapCow:
		pkg, _, args := describe.SplitName(w.Type)
		if pkg == "" {
			pkg = describePkg
		}

		r.p.write(r.qualifyName(pkg, "Owned") + r.qualify(args) + "(")
		if err := inner(goCtx{dynamic: args == ""}); err != nil {
			return err
		}
		r.p.write(")")

		return nil
	case lit.WrapCall:
		if w.Ctor == "" {
			return lit.Internal("constructor wrapper without a constructor at "+path.String(), nil)
		}

		r.p.write(r.qualify(strings.ReplaceAll(w.Ctor, "::", ".")) + "(")
		if err := inner(goCtx{}); err != nil {
			return err
		}
		r.p.write(")")

		return nil
	}

	if isComposite(w.Inner) {
		r.p.write("&")
		return inner(goCtx{})
	}

	// Scalars are not addressable: take the address of a local copy.
	elem := r.goTypeOf(w.Inner)
	if strings.HasPrefix(w.Type, "*") {
		elem = r.qualify(w.Type[1:])
	}

	r.p.write("func() *" + elem + " { var v " + elem + " = ")
	if err := inner(goCtx{}); err != nil {
		return err
	}
	r.p.write("; return &v }()")

	return nil
}

func (r *Renderer) goMapping(path lit.Path, m *lit.Mapping) error {
	typ := "map[any]any"
	if m.Type != "" {
		typ = r.qualify(m.Type)
	}

	keyCtx := goCtx{dynamic: strings.HasPrefix(typ, "map[any]") || strings.HasPrefix(typ, "map[interface {}]")}
	valCtx := goCtx{dynamic: m.Dynamic || m.Type == ""}

	return r.p.group(typ+"{", "}", false, len(m.Entries), func(i int) error {
		kp := path.Index(i)
		if err := r.goNode(kp, m.Entries[i].Key, keyCtx); err != nil {
			return err
		}
		r.p.write(": ")
		return r.goNode(kp, m.Entries[i].Value, valCtx)
	})
}

func isComposite(n lit.Node) bool {
	switch n.(type) {
	case *lit.Keyed, *lit.Sequence, *lit.Mapping, *lit.Variant:
		return true
	default:
		return false
	}
}

// goTypeOf guesses the Go type of a literal that carries no pointer type.
func (r *Renderer) goTypeOf(n lit.Node) string {
	switch node := n.(type) {
	case *lit.Primitive:
		if typ := r.goScalarType(node); typ != "" {
			return typ
		}
		return defaultGoType(node.Kind)
	case *lit.Str:
		if node.Type != "" {
			return r.qualify(node.Type)
		}
		return "string"
	case *lit.Wrapped:
		if node.Type != "" {
			return r.qualify(node.Type)
		}
		return "*" + r.goTypeOf(node.Inner)
	case *lit.Nil:
		if node.Type != "" {
			return r.qualify(node.Type)
		}
	}

	return "any"
}

func checkGoExpr(expr string) error {
	if _, err := parser.ParseExpr(expr); err != nil {
		return lit.Internal("rendered Go expression does not parse", errors.WithStack(err))
	}

	return nil
}
