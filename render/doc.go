// Package render turns a literal tree into source text.
//
// Two dialects are supported: rust (the default) emits Rust constant
// expressions, go emits Go composite literals. Rendering is deterministic and
// total over trees that passed lit.Validate; an Unsupported node reaching the
// renderer is an internal invariant violation.
//
// Debug renders the host debug notation read back by package reparse.
package render
