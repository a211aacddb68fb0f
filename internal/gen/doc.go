// Package gen generates constant table files from a manifest.
//
// Every output file is rendered with its own renderer, so that Go import
// aliases agree across the tables of one file. Outputs are rendered in
// parallel and returned in manifest order. A table that fails to serialize
// is reported as a diagnostic and its output file is not generated at all;
// the other outputs are unaffected.
//
// Rust outputs are plain declaration lists meant to be included into a
// module. Go outputs are complete source files formatted with
// golang.org/x/tools/imports.
package gen
