// Package lit is the in-memory model of a literal expression.
//
// A tree of lit nodes is built fresh for every serialization request, consumed
// once by a renderer and then discarded. Trees are acyclic and never shared.
//
// Node kinds:
//   - Primitive: integers, floats, booleans and chars with canonical text
//   - Str: opaque string content
//   - Sequence: arrays, growable lists and tuples
//   - Keyed: struct-like values with ordered fields
//   - Variant: tagged union values with no, positional or named payload
//   - Wrapped: owning wrappers rendered as a constructor around the inner literal
//   - Mapping and Nil: map literals and absent values
//   - Unsupported: poison marker, any occurrence fails the whole tree
package lit
