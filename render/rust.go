package render

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"literal-generator/describe"
	"literal-generator/lit"
	"literal-generator/options"
	"literal-generator/primitive"
)

func (r *Renderer) rustNode(path lit.Path, n lit.Node) error {
	switch node := n.(type) {
	case *lit.Primitive:
		if node == nil {
			break
		}
		r.p.write(r.rustPrimitive(node))
		return nil
	case *lit.Str:
		if node == nil {
			break
		}
		r.p.write(primitive.Quote(node.Text, primitive.QuoteRust))
		return nil
	case *lit.Sequence:
		if node == nil {
			break
		}
		return r.rustSequence(path, node)
	case *lit.Keyed:
		if node == nil {
			break
		}
		name, err := rustName(path, node.Type)
		if err != nil {
			return err
		}
		return r.rustFields(path, braceOpen(name), node.Fields)
	case *lit.Variant:
		if node == nil {
			break
		}
		return r.rustVariant(path, node)
	case *lit.Wrapped:
		if node == nil {
			break
		}
		return r.rustWrapped(path, node)
	case *lit.Mapping:
		if node == nil {
			break
		}
		return r.rustMapping(path, node)
	case *lit.Nil:
		if node == nil {
			break
		}
		if node.Collection {
			r.p.write("[]")
		} else {
			r.p.write("None")
		}
		return nil
	}

	return invariant(path, n)
}

// rustPrimitive applies the suffix rule: a typed integer carries its suffix
// when it does not fit i32, the default integer type; every typed number
// carries it with FlagTypeSuffixes. Untyped numbers never do.
func (r *Renderer) rustPrimitive(p *lit.Primitive) string {
	suffixes := r.cfg.Flags.Has(options.FlagTypeSuffixes)

	switch {
	case p.Kind == primitive.KindChar:
		c, _ := utf8.DecodeRuneInString(p.Text)
		return primitive.QuoteChar(c, primitive.QuoteRust)
	case p.Kind.IsFloat():
		if primitive.IsSpecialFloat(p.Text) {
			return r.rustSpecialFloat(p)
		}
		if suffixes && !p.Kind.IsUntyped() {
			return p.Text + p.Kind.RustName()
		}
		return p.Text
	case p.Kind.IsInteger():
		if p.Kind.IsUntyped() {
			return p.Text
		}
		if suffixes || !primitive.FitsDefaultInt(p.Text) {
			return p.Text + p.Kind.RustName()
		}
		return p.Text
	default:
		return p.Text
	}
}

func (r *Renderer) rustSpecialFloat(p *lit.Primitive) string {
	if r.debug && p.Kind.IsUntyped() {
		return p.Text
	}

	prefix := "f64::"
	if p.Kind == primitive.KindFloat32 {
		prefix = "f32::"
	}

	switch p.Text {
	case primitive.TextNaN:
		return prefix + "NAN"
	case primitive.TextInf:
		return prefix + "INFINITY"
	default:
		return prefix + "NEG_INFINITY"
	}
}

func (r *Renderer) rustSequence(path lit.Path, s *lit.Sequence) error {
	item := func(i int) error { return r.rustNode(path.Index(i), s.Elems[i]) }

	switch s.Kind {
	case lit.SeqTuple:
		if len(s.Elems) == 1 && !r.p.pretty {
			r.p.write("(")
			if err := item(0); err != nil {
				return err
			}
			r.p.write(",)")
			return nil
		}
		return r.p.group("(", ")", false, len(s.Elems), item)
	case lit.SeqList:
		if r.cfg.Flags.Has(options.FlagVecMacro) {
			return r.p.group("vec![", "]", false, len(s.Elems), item)
		}
	}

	return r.p.group("[", "]", false, len(s.Elems), item)
}

func (r *Renderer) rustFields(path lit.Path, open string, fields []lit.Field) error {
	return r.p.group(open, "}", true, len(fields), func(i int) error {
		r.p.write(fields[i].Name)
		r.p.write(": ")
		return r.rustNode(path.Field(fields[i].Name), fields[i].Value)
	})
}

func (r *Renderer) rustVariant(path lit.Path, v *lit.Variant) error {
	typ, err := rustName(path, v.Type)
	if err != nil {
		return err
	}

	name := v.Tag
	if typ != "" {
		name = typ + "::" + v.Tag
	}

	vp := path.Variant(v.Tag)

	switch v.Payload {
	case lit.PayloadTuple:
		return r.p.group(name+"(", ")", false, len(v.Elems), func(i int) error {
			return r.rustNode(vp.Index(i), v.Elems[i])
		})
	case lit.PayloadNamed:
		return r.rustFields(vp, braceOpen(name), v.Fields)
	default:
		r.p.write(name)
		return nil
	}
}

func (r *Renderer) rustWrapped(path lit.Path, w *lit.Wrapped) error {
	inner := func() error { return r.rustNode(path.Deref(), w.Inner) }

	switch w.Wrapper {
	case lit.WrapCow:
		r.p.write("UnevalCow::Borrowed(")
		// A string literal is already a reference.
		if _, ok := w.Inner.(*lit.Str); !ok {
			r.p.write("&")
		}
	case lit.WrapBox:
		r.p.write("Box::new(")
	case lit.WrapRef:
		r.p.write("&")
		return inner()
	default:
		if w.Ctor == "" {
			return lit.Internal("constructor wrapper without a constructor at "+path.String(), nil)
		}
		r.p.write(w.Ctor + "(")
	}

	if err := inner(); err != nil {
		return err
	}

	r.p.write(")")

	return nil
}

// rustMapping writes a map as a const table of pairs, or as {k: v} in debug
// notation.
func (r *Renderer) rustMapping(path lit.Path, m *lit.Mapping) error {
	entry := func(i int) error {
		e := m.Entries[i]
		kp := path.Index(i)

		if r.debug {
			if err := r.rustNode(kp, e.Key); err != nil {
				return err
			}
			r.p.write(": ")
			return r.rustNode(kp, e.Value)
		}

		r.p.write("(")
		if err := r.rustNode(kp, e.Key); err != nil {
			return err
		}
		r.p.write(", ")
		if err := r.rustNode(kp, e.Value); err != nil {
			return err
		}
		r.p.write(")")

		return nil
	}

	if r.debug {
		return r.p.group("{", "}", false, len(m.Entries), entry)
	}

	return r.p.group("[", "]", false, len(m.Entries), entry)
}

// rustType drops Go import paths and type arguments from a type name; Rust
// paths are kept as written.
func rustType(typ string) string {
	if strings.Contains(typ, "::") {
		return typ
	}

	return describe.BaseName(typ)
}

// rustName is rustType for names written as a path in the output. A type that
// has no Rust path, such as an anonymous struct, is unrepresentable.
func rustName(path lit.Path, typ string) (string, error) {
	name := rustType(typ)
	if name == "" || isRustPath(name) {
		return name, nil
	}

	return "", lit.Unrepresentable(path.String(), fmt.Sprintf("type %s has no Rust name", typ))
}

func isRustPath(name string) bool {
	for i, seg := range strings.Split(name, "::") {
		if seg == "" && i == 0 {
			continue // ::std::...
		}

		if !isIdent(seg) {
			return false
		}
	}

	return true
}

func isIdent(s string) bool {
	for i, c := range s {
		if c != '_' && !unicode.IsLetter(c) && (i == 0 || !unicode.IsDigit(c)) {
			return false
		}
	}

	return s != ""
}

func braceOpen(name string) string {
	if name == "" {
		return "{"
	}

	return name + " {"
}
