package lit

import (
	"fmt"
)

// WalkFunc is called for every node in pre-order. Returning false skips the
// node's children.
type WalkFunc func(path Path, n Node) bool

// Walk traverses the tree rooted at n in pre-order.
func Walk(n Node, fn WalkFunc) {
	walk(Root(), n, fn)
}

func walk(path Path, n Node, fn WalkFunc) {
	if !fn(path, n) {
		return
	}

	switch node := n.(type) {
	case *Sequence:
		for i, e := range node.Elems {
			walk(path.Index(i), e, fn)
		}
	case *Keyed:
		for _, f := range node.Fields {
			walk(path.Field(f.Name), f.Value, fn)
		}
	case *Variant:
		vp := path.Variant(node.Tag)
		for i, e := range node.Elems {
			walk(vp.Index(i), e, fn)
		}
		for _, f := range node.Fields {
			walk(vp.Field(f.Name), f.Value, fn)
		}
	case *Wrapped:
		walk(path.Deref(), node.Inner, fn)
	case *Mapping:
		for i, e := range node.Entries {
			kp := path.Index(i)
			walk(kp, e.Key, fn)
			walk(kp, e.Value, fn)
		}
	}
}

// FindUnsupported returns the first Unsupported node in pre-order and the path
// it was found at.
func FindUnsupported(n Node) (*Unsupported, Path, bool) {
	var (
		found *Unsupported
		at    Path
	)

	Walk(n, func(path Path, n Node) bool {
		if found != nil {
			return false
		}

		if u, ok := n.(*Unsupported); ok {
			found, at = u, path
			return false
		}

		return true
	})

	return found, at, found != nil
}

// Validate checks that the tree can be rendered. Any Unsupported node poisons
// the whole tree and yields an ErrorUnrepresentable error. A nil child, or a
// variant whose payload disagrees with its elements and fields, is a defect of
// the tree builder and yields an ErrorInternal error.
func Validate(n Node) error {
	if n == nil {
		return Internal("nil root node", nil)
	}

	var defect error

	Walk(n, func(path Path, n Node) bool {
		switch {
		case defect != nil:
		case isNil(n):
			defect = Internal(fmt.Sprintf("nil node at %s", path), nil)
		default:
			if v, ok := n.(*Variant); ok && !payloadMatches(v) {
				defect = Internal(fmt.Sprintf("variant %s payload does not match its shape at %s", v.Tag, path), nil)
			}
		}

		return defect == nil
	})

	if defect != nil {
		return defect
	}

	if u, at, ok := FindUnsupported(n); ok {
		path := u.Path
		if path == "" {
			path = at.String()
		}

		return Unrepresentable(path, u.Reason)
	}

	return nil
}

// payloadMatches reports whether the variant carries only what its payload
// kind allows.
func payloadMatches(v *Variant) bool {
	switch v.Payload {
	case PayloadNone:
		return len(v.Elems) == 0 && len(v.Fields) == 0
	case PayloadTuple:
		return len(v.Fields) == 0
	case PayloadNamed:
		return len(v.Elems) == 0
	default:
		return false
	}
}

func isNil(n Node) bool {
	switch node := n.(type) {
	case nil:
		return true
	case *Primitive:
		return node == nil
	case *Str:
		return node == nil
	case *Sequence:
		return node == nil
	case *Keyed:
		return node == nil
	case *Variant:
		return node == nil
	case *Wrapped:
		return node == nil
	case *Mapping:
		return node == nil
	case *Nil:
		return node == nil
	case *Unsupported:
		return node == nil
	default:
		return false
	}
}
