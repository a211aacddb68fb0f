// Package reparse recovers a literal tree from debug text written in the host
// debug notation:
//
//	Point { x: 1, y: 2 }        keyed
//	Foo(1, [2, 3], "x")         positional variant or tuple struct
//	Shape::Circle { r: 1.5 }    path qualified variant
//	[1, 2, 3]  vec![1]  (1, 'c')  {"k": 1}  &x  None  NaN
//
// The parser is a single-pass recursive descent over the text. It knows no
// types beyond what the text spells out: unsuffixed numbers come back untyped.
// Any text not matching a production fails with a *lit.Error of kind
// lit.ErrorMalformedDebugText carrying the offending span; no partial tree is
// ever returned.
package reparse
