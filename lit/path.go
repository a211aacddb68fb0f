package lit

import (
	"strconv"
	"strings"
)

// Path locates a node inside a value. It is immutable, every builder method
// returns a new Path.
// Examples:
//   - "$" for the root value
//   - "$.some_table" for a struct field
//   - "$.some_table[2]" for a sequence element
//   - "$::Some[0]" for a variant payload element
//   - "$[\"key\"]" for a map value
type Path struct {
	parts []string
}

// Root returns the path of the top-level value.
func Root() Path {
	return Path{}
}

func (p Path) with(part string) Path {
	parts := make([]string, len(p.parts), len(p.parts)+1)
	copy(parts, p.parts)

	return Path{parts: append(parts, part)}
}

// Field appends a field name to the path.
func (p Path) Field(name string) Path {
	return p.with("." + name)
}

// Index appends a positional index to the path.
func (p Path) Index(i int) Path {
	return p.with("[" + strconv.Itoa(i) + "]")
}

// Key appends a map key, given as literal text, to the path.
func (p Path) Key(text string) Path {
	return p.with("[" + text + "]")
}

// Variant appends a variant tag to the path.
func (p Path) Variant(tag string) Path {
	return p.with("::" + tag)
}

// Deref appends a pointer/wrapper dereference to the path.
func (p Path) Deref() Path {
	return p.with("*")
}

// Depth returns the number of steps from the root.
func (p Path) Depth() int {
	return len(p.parts)
}

// String returns the full path string.
func (p Path) String() string {
	return "$" + strings.Join(p.parts, "")
}
