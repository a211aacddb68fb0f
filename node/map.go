package node

import (
	"cmp"
	"math/big"
	"reflect"
	"slices"
	"strconv"

	"literal-generator/describe"
	"literal-generator/lit"
	"literal-generator/options"
	"literal-generator/primitive"
	"literal-generator/render"
)

// mapping describes a map with its entries sorted by key, so that equal maps
// always render to the same text.
func (b *Builder) mapping(path lit.Path, v reflect.Value, depth int) (lit.Node, error) {
	t := v.Type()

	key := visitKey{ptr: v.Pointer(), typ: t}
	if !b.visits.enter(key) {
		return lit.Poison("cyclic reference", path), nil
	}
	defer b.visits.leave(key)

	entries := make([]sortEntry, 0, v.Len())

	iter := v.MapRange()
	for iter.Next() {
		k, err := b.value(path, iter.Key(), depth+1)
		if err != nil || describe.Poisoned(k) {
			return k, err
		}

		text := keyText(k)

		val, err := b.value(path.Key(text), iter.Value(), depth+1)
		if err != nil || describe.Poisoned(val) {
			return val, err
		}

		entries = append(entries, sortEntry{Entry: lit.Entry{Key: k, Value: val}, text: text})
	}

	sortEntries(entries)

	m := &lit.Mapping{
		Type:    describe.TypeName(t),
		Entries: make([]lit.Entry, len(entries)),
		Dynamic: t.Elem().Kind() == reflect.Interface,
	}

	for i, e := range entries {
		m.Entries[i] = e.Entry
	}

	return m, nil
}

type sortEntry struct {
	lit.Entry
	text string
}

// sortEntries orders map entries: absent keys first, then booleans, numbers in
// numeric order, strings in byte order, and every other key by its debug text.
func sortEntries(entries []sortEntry) {
	slices.SortStableFunc(entries, func(a, b sortEntry) int {
		if c := cmp.Compare(keyRank(a.Key), keyRank(b.Key)); c != 0 {
			return c
		}

		if c := compareNumbers(a.Key, b.Key); c != 0 {
			return c
		}

		if c := cmp.Compare(a.text, b.text); c != 0 {
			return c
		}

		return cmp.Compare(keyKind(a.Key), keyKind(b.Key))
	})
}

func keyText(n lit.Node) string {
	if s, ok := n.(*lit.Str); ok {
		return strconv.Quote(s.Text)
	}

	text, err := render.Debug(n)
	if err == nil {
		return text
	}

	// Keys without a Rust spelling, such as anonymous structs.
	text, err = render.Render(n, options.New(options.WithDialect(options.DialectGo)))
	if err != nil {
		return "?"
	}

	return text
}

func keyRank(n lit.Node) int {
	switch node := n.(type) {
	case *lit.Nil:
		return 0
	case *lit.Primitive:
		switch {
		case node.Kind == primitive.KindBool:
			return 1
		case node.Kind.IsNumber():
			return 2
		default:
			return 3
		}
	case *lit.Str:
		return 4
	default:
		return 5
	}
}

func keyKind(n lit.Node) primitive.KindEnum {
	if p, ok := n.(*lit.Primitive); ok {
		return p.Kind
	}

	return 0
}

// compareNumbers compares numeric keys by value. Non-numeric keys and NaN
// compare equal so the caller falls back to the text order.
func compareNumbers(a, b lit.Node) int {
	x, ok := numberOf(a)
	if !ok {
		return 0
	}

	y, ok := numberOf(b)
	if !ok {
		return 0
	}

	return x.Cmp(y)
}

func numberOf(n lit.Node) (*big.Float, bool) {
	p, ok := n.(*lit.Primitive)
	if !ok || !p.Kind.IsNumber() {
		return nil, false
	}

	switch p.Text {
	case primitive.TextNaN:
		return nil, false
	case primitive.TextInf:
		return new(big.Float).SetInf(false), true
	case primitive.TextNegInf:
		return new(big.Float).SetInf(true), true
	}

	f, _, err := big.ParseFloat(p.Text, 10, 128, big.ToNearestEven)
	if err != nil {
		return nil, false
	}

	return f, true
}
