package node

import (
	"errors"
	"fmt"
	"reflect"

	"literal-generator/describe"
	"literal-generator/lit"
	"literal-generator/options"
	"literal-generator/primitive"
	"literal-generator/reparse"
)

// Builder describes Go values as literal trees. Subtrees without a literal form
// become lit.Unsupported nodes that bubble up to the root; malformed debug text
// fails the build with an error.
//
// A Builder is not safe for concurrent use, create one per request.
type Builder struct {
	cfg    options.Config
	visits visitSet
}

// NewBuilder creates a builder for the configuration.
func NewBuilder(cfg options.Config) *Builder {
	if cfg.MaxDepth <= 0 {
		cfg.MaxDepth = options.DefaultMaxDepth
	}

	return &Builder{cfg: cfg}
}

// Build describes v. The capability of v's type, Structural or DebugOnly, is
// resolved here and at every nested value.
func (b *Builder) Build(v any) (lit.Node, error) {
	return b.value(lit.Root(), reflect.ValueOf(v), 0)
}

// Dispatch selects the reflection strategy for a type without its own
// description.
func Dispatch(t reflect.Type) DispatcherEnum {
	switch t.Kind() {
	case reflect.String:
		return DispatcherString
	case reflect.Interface:
		return DispatcherInterface
	case reflect.Slice, reflect.Array:
		return DispatcherSlice
	case reflect.Map:
		return DispatcherMap
	case reflect.Struct:
		return DispatcherStruct
	case reflect.Ptr:
		return DispatcherPointer
	}

	if primitive.FromReflectType(t) != 0 {
		return DispatcherPrimitive
	}

	return DispatcherUnknown
}

func (b *Builder) any(path lit.Path, v any, depth int) (lit.Node, error) {
	return b.value(path, reflect.ValueOf(v), depth)
}

func (b *Builder) value(path lit.Path, v reflect.Value, depth int) (lit.Node, error) {
	if depth > b.cfg.MaxDepth {
		return lit.Poison(fmt.Sprintf("nesting depth exceeds %d", b.cfg.MaxDepth), path), nil
	}

	if !v.IsValid() {
		return &lit.Nil{}, nil
	}

	t := v.Type()

	if t.Kind() == reflect.Interface {
		if v.IsNil() {
			return &lit.Nil{Type: describe.TypeName(t)}, nil
		}

		return b.value(path, v.Elem(), depth)
	}

	if describe.Resolve(t) == describe.CapabilityNone {
		return lit.Poison(t.Kind().String()+" values have no literal form", path), nil
	}

	if isNilRef(v) {
		return &lit.Nil{Type: describe.TypeName(t), Collection: t.Kind() != reflect.Ptr}, nil
	}

	// A pointer keeps its own layer; the element resolves its capability below.
	if t.Kind() != reflect.Ptr {
		if n, ok, err := b.self(path, v, t, depth); ok {
			return n, err
		}
	}

	switch Dispatch(t) {
	case DispatcherPrimitive:
		return scalar(v), nil
	case DispatcherString:
		return &lit.Str{Text: v.String(), Type: namedType(t)}, nil
	case DispatcherSlice:
		return b.sequence(path, v, depth)
	case DispatcherMap:
		return b.mapping(path, v, depth)
	case DispatcherStruct:
		return b.keyed(path, v, depth)
	case DispatcherPointer:
		return b.pointer(path, v, depth)
	default:
		return lit.Poison(t.String()+" values have no literal form", path), nil
	}
}

// self describes v through its own Structural or DebugOnly implementation,
// naming the literal after t. It reports false when v describes itself through
// reflection.
func (b *Builder) self(path lit.Path, v reflect.Value, t reflect.Type, depth int) (lit.Node, bool, error) {
	if !describe.Implements(v.Type()) || !v.CanInterface() {
		return nil, false, nil
	}

	switch x := v.Interface().(type) {
	case describe.Structural:
		n, err := b.shape(path, x.LiteralShape(), t, depth)
		return n, true, err
	case describe.DebugOnly:
		n, err := b.debug(path, x.DebugLiteral())
		return n, true, err
	}

	return nil, false, nil
}

// debug reparses the debug text of a DebugOnly value.
func (b *Builder) debug(path lit.Path, text string) (lit.Node, error) {
	n, err := reparse.ParseDepth(text, b.cfg.MaxDepth)
	if err != nil {
		var le *lit.Error
		if errors.As(err, &le) {
			le.Path = path.String()
		}

		return nil, err
	}

	return n, nil
}

func (b *Builder) pointer(path lit.Path, v reflect.Value, depth int) (lit.Node, error) {
	key := visitKey{ptr: v.Pointer(), typ: v.Type()}
	if !b.visits.enter(key) {
		return lit.Poison("cyclic reference", path), nil
	}
	defer b.visits.leave(key)

	elem := v.Type().Elem()

	var (
		inner lit.Node
		ok    bool
		err   error
	)

	// Methods declared on *T describe the pointee.
	if !describe.Implements(elem) {
		inner, ok, err = b.self(path.Deref(), v, elem, depth+1)
	}

	if !ok {
		inner, err = b.value(path.Deref(), v.Elem(), depth+1)
	}

	if err != nil || describe.Poisoned(inner) {
		return inner, err
	}

	return &lit.Wrapped{Wrapper: lit.WrapBox, Type: describe.TypeName(v.Type()), Inner: inner}, nil
}
