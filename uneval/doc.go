// Package uneval serializes in-memory values into source text that, once
// compiled, reconstructs an equal value as a constant.
//
// Values are described through package describe (Structural or DebugOnly, with
// plain Go values described by reflection), checked for shapes that have no
// literal form and rendered by package render in the configured dialect:
//
//	uneval.Serialize(Point{X: 1, Y: 2})
//	// Point { X: 1, Y: 2 }
//
//	uneval.ToString("ORIGIN", Point{}, "Point")
//	// const ORIGIN: Point = Point { X: 0, Y: 0 };
//
// Every entry point either returns the complete text or a *lit.Error; partial
// output is never produced.
package uneval
