// Package cli implements the literal-generator command line: gen, check and
// parse.
package cli
