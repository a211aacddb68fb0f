// Package analyze checks the Go type names of literal trees against the
// packages that declare them, before any code is written.
//
// It uses golang.org/x/tools/go/packages with go/types to build a small
// model of the named types of each referenced package.
//
// Key types:
//   - TypeID: package import path + type name
//   - TypeInfo: kind of a named type and, for structs, its fields
//   - Resolver: loads packages on demand and reports Problems
package analyze
