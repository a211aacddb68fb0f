package manifest

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"literal-generator/describe"
	"literal-generator/internal/match"
	"literal-generator/lit"
	"literal-generator/options"
	"literal-generator/primitive"
)

// Directive keys of value mappings.
const (
	keyType    = "$type"
	keyVariant = "$variant"
	keyArgs    = "$args"
	keyTuple   = "$tuple"
	keyList    = "$list"
	keyBox     = "$box"
	keyCow     = "$cow"
)

var directiveKeys = []string{keyType, keyVariant, keyArgs, keyTuple, keyList, keyBox, keyCow}

var ErrMissingValue = errors.New("missing value")

// ValueError is a conversion failure located in the manifest.
type ValueError struct {
	Line, Column int
	Msg          string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("line %d:%d: %s", e.Line, e.Column, e.Msg)
}

func valueErr(n *yaml.Node, format string, args ...any) error {
	return &ValueError{Line: n.Line, Column: n.Column, Msg: fmt.Sprintf(format, args...)}
}

// Value is a table value written as YAML. It keeps the YAML node so that
// conversion errors can point at their line.
type Value struct {
	node *yaml.Node
}

// NewValue wraps a YAML node.
func NewValue(n *yaml.Node) Value {
	return Value{node: n}
}

// UnmarshalYAML implements custom YAML unmarshaling for Value.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	v.node = node
	return nil
}

// MarshalYAML implements custom YAML marshaling for Value.
func (v Value) MarshalYAML() (any, error) {
	return v.node, nil
}

// IsZero reports a missing value, so that omitempty drops it.
func (v Value) IsZero() bool {
	return v.node == nil
}

// Literal converts the value to a literal tree.
func (v Value) Literal() (lit.Node, error) {
	if v.node == nil {
		return nil, ErrMissingValue
	}

	return convert(v.node, 0)
}

func convert(n *yaml.Node, depth int) (lit.Node, error) {
	if depth > options.DefaultMaxDepth {
		return nil, valueErr(n, "nesting depth exceeds %d", options.DefaultMaxDepth)
	}

	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 1 {
			return convert(n.Content[0], depth)
		}
	case yaml.AliasNode:
		if n.Alias != nil {
			return convert(n.Alias, depth+1)
		}
	case yaml.ScalarNode:
		return scalar(n)
	case yaml.SequenceNode:
		elems, err := convertAll(n.Content, depth)
		if err != nil {
			return nil, err
		}
		return &lit.Sequence{Kind: lit.SeqArray, Elems: elems}, nil
	case yaml.MappingNode:
		return mapping(n, depth)
	}

	return nil, valueErr(n, "unsupported YAML node")
}

func convertAll(nodes []*yaml.Node, depth int) ([]lit.Node, error) {
	out := make([]lit.Node, 0, len(nodes))

	for _, c := range nodes {
		e, err := convert(c, depth+1)
		if err != nil {
			return nil, err
		}

		out = append(out, e)
	}

	return out, nil
}

func scalar(n *yaml.Node) (lit.Node, error) {
	switch tag := n.ShortTag(); tag {
	case "!!null":
		return &lit.Nil{}, nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, valueErr(n, "invalid bool %q", n.Value)
		}
		return lit.Bool(b), nil
	case "!!int":
		var i int64
		if err := n.Decode(&i); err == nil {
			return lit.Int(primitive.KindInt64, i), nil
		}
		var u uint64
		if err := n.Decode(&u); err == nil {
			return lit.Uint(primitive.KindUint64, u), nil
		}
		return nil, valueErr(n, "integer %s out of range", n.Value)
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return nil, valueErr(n, "invalid float %q", n.Value)
		}
		return lit.Float(primitive.KindFloat64, f), nil
	case "!!str", "!str":
		return lit.String(n.Value), nil
	case "!char":
		r, size := utf8.DecodeRuneInString(n.Value)
		if size == 0 || size != len(n.Value) || r == utf8.RuneError {
			return nil, valueErr(n, "!char needs exactly one character, got %q", n.Value)
		}
		return lit.Char(r), nil
	default:
		if strings.HasPrefix(tag, "!") && !strings.HasPrefix(tag, "!!") {
			if kind := primitive.FromSuffix(tag[1:]); kind != 0 {
				return number(n, kind)
			}
		}
		return nil, valueErr(n, "unsupported tag %s", tag)
	}
}

// number parses a scalar tagged with a primitive kind, e.g. `!u8 200`.
func number(n *yaml.Node, kind primitive.KindEnum) (lit.Node, error) {
	var err error

	switch {
	case kind.IsFloat():
		var f float64
		if f, err = strconv.ParseFloat(n.Value, kind.Bits()); err == nil {
			return lit.Float(kind, f), nil
		}
	case kind.IsSigned():
		var i int64
		if i, err = strconv.ParseInt(n.Value, 0, kind.Bits()); err == nil {
			return lit.Int(kind, i), nil
		}
	default:
		var u uint64
		if u, err = strconv.ParseUint(n.Value, 0, kind.Bits()); err == nil {
			return lit.Uint(kind, u), nil
		}
	}

	if errors.Is(err, strconv.ErrRange) {
		return nil, valueErr(n, "literal %s out of range for %s", n.Value, kind.RustName())
	}

	return nil, valueErr(n, "invalid %s literal %q", kind.RustName(), n.Value)
}

type pair struct {
	key, value *yaml.Node
}

// mapping converts a YAML mapping: directive keys select structs, variants
// and wrappers, anything else is a map.
func mapping(n *yaml.Node, depth int) (lit.Node, error) {
	var (
		pairs      []pair
		directives = map[string]*yaml.Node{}
	)

	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]

		if k.Kind == yaml.ScalarNode && k.ShortTag() == "!!str" && strings.HasPrefix(k.Value, "$") {
			switch k.Value {
			case keyType, keyVariant, keyArgs, keyTuple, keyList, keyBox, keyCow:
				directives[k.Value] = v
				continue
			default:
				return nil, valueErr(k, "unknown directive %s%s", k.Value, match.Hint(k.Value, directiveKeys))
			}
		}

		pairs = append(pairs, pair{key: k, value: v})
	}

	typeName, err := directiveString(directives, keyType)
	if err != nil {
		return nil, err
	}

	for _, key := range []string{keyTuple, keyList, keyBox, keyCow} {
		if v, ok := directives[key]; ok {
			if len(pairs) > 0 || len(directives) > 2 || len(directives) == 2 && typeName == "" {
				return nil, valueErr(n, "%s cannot be combined with other keys", key)
			}
			return wrapper(key, typeName, v, depth)
		}
	}

	if _, ok := directives[keyVariant]; ok {
		return variant(n, typeName, directives, pairs, depth)
	}

	if _, ok := directives[keyArgs]; ok {
		return nil, valueErr(n, "%s needs %s", keyArgs, keyVariant)
	}

	if typeName != "" {
		fields, err := fieldsOf(pairs, depth)
		if err != nil {
			return nil, err
		}
		return &lit.Keyed{Type: typeName, Fields: fields}, nil
	}

	m := &lit.Mapping{Entries: make([]lit.Entry, 0, len(pairs))}
	for _, p := range pairs {
		k, err := convert(p.key, depth+1)
		if err != nil {
			return nil, err
		}

		v, err := convert(p.value, depth+1)
		if err != nil {
			return nil, err
		}

		m.Entries = append(m.Entries, lit.Entry{Key: k, Value: v})
	}

	return m, nil
}

func wrapper(key, typeName string, v *yaml.Node, depth int) (lit.Node, error) {
	switch key {
	case keyTuple, keyList:
		if v.Kind != yaml.SequenceNode {
			return nil, valueErr(v, "%s needs a sequence", key)
		}

		elems, err := convertAll(v.Content, depth)
		if err != nil {
			return nil, err
		}

		kind := lit.SeqTuple
		if key == keyList {
			kind = lit.SeqList
		}

		return &lit.Sequence{Kind: kind, Type: typeName, Elems: elems}, nil
	}

	inner, err := convert(v, depth+1)
	if err != nil {
		return nil, err
	}

	if key == keyBox {
		return &lit.Wrapped{Wrapper: lit.WrapBox, Type: typeName, Inner: inner}, nil
	}

	return describe.Duality(lit.Root(), typeName, false, func() lit.Node { return inner }), nil
}

func variant(n *yaml.Node, typeName string, directives map[string]*yaml.Node, pairs []pair, depth int) (lit.Node, error) {
	tag, err := directiveString(directives, keyVariant)
	if err != nil {
		return nil, err
	}

	if tag == "" {
		return nil, valueErr(n, "%s needs a tag name", keyVariant)
	}

	if args, ok := directives[keyArgs]; ok {
		if len(pairs) > 0 {
			return nil, valueErr(n, "%s cannot be combined with named fields", keyArgs)
		}

		if args.Kind != yaml.SequenceNode {
			return nil, valueErr(args, "%s needs a sequence", keyArgs)
		}

		elems, err := convertAll(args.Content, depth)
		if err != nil {
			return nil, err
		}

		return lit.TupleVariant(typeName, tag, elems...), nil
	}

	if len(pairs) == 0 {
		return lit.Unit(typeName, tag), nil
	}

	fields, err := fieldsOf(pairs, depth)
	if err != nil {
		return nil, err
	}

	return lit.NamedVariant(typeName, tag, fields...), nil
}

func fieldsOf(pairs []pair, depth int) ([]lit.Field, error) {
	fields := make([]lit.Field, 0, len(pairs))

	for _, p := range pairs {
		if p.key.Kind != yaml.ScalarNode || p.key.Value == "" {
			return nil, valueErr(p.key, "field name must be a non-empty string")
		}

		v, err := convert(p.value, depth+1)
		if err != nil {
			return nil, err
		}

		fields = append(fields, lit.F(p.key.Value, v))
	}

	return fields, nil
}

func directiveString(directives map[string]*yaml.Node, key string) (string, error) {
	v, ok := directives[key]
	if !ok {
		return "", nil
	}

	if v.Kind != yaml.ScalarNode {
		return "", valueErr(v, "%s needs a string", key)
	}

	return v.Value, nil
}
