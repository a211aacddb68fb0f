// Package manifest provides the YAML schema, parsing and validation of
// generation manifests: which constant tables go into which output files.
//
// # Schema Overview
//
//	version: "1"
//	dialect: rust            # or go
//	package: tables          # go dialect: package clause of every output
//	import_path: example.com/app/tables  # go dialect: types of this package stay unqualified
//	flags: [pretty]          # pretty, type_suffixes, vec_macro, same_package
//	outputs:
//	  - file: tables.rs
//	    tables:
//	      - name: FFT_TABLE
//	        type: "FftDomain<'static, i32>"
//	        debug: "FftDomain { some_table: [1, 2, 3] }"
//	      - name: ORIGIN
//	        type: Point
//	        value: {$type: Point, x: 0, y: 0}
//
// # Values
//
// A table holds either debug text, reparsed like the debug rendering of a
// value, or a YAML value converted to a literal:
//
//   - mappings with $type are structs, fields in written order
//   - $variant selects a variant tag: $args holds a positional payload, other
//     keys a named one, neither a unit variant
//   - $tuple and $list hold tuples and growable lists, $box and $cow wrap
//     their value
//   - other mappings are maps, sequences are arrays
//   - plain scalars are i64, f64, bool, strings and None; tags like !u8,
//     !f32 and !char select the primitive kind
package manifest
