// Package describe is the protocol a value exposes to be serialized as a literal.
//
// A value is serializable through exactly one capability, resolved once at the
// point where serialization begins:
//   - Structural: the value describes its own shape (struct fields, variant tag
//     and payload, sequence elements, wrappers). Types implement Structural
//     explicitly; plain Go values get a structural description derived by
//     reflection in package node.
//   - DebugOnly: the value only offers a debug rendering, which is reparsed by
//     package reparse.
//
// The package also provides Cow, an owned/borrowed duality wrapper, and Option.
package describe
