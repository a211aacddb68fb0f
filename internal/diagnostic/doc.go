// Package diagnostic collects structured errors and warnings of a generation
// run, one per failed table, so that a single run reports every problem of a
// manifest instead of stopping at the first.
//
// Key capabilities:
//   - Classification of serialization failures by kind
//   - Location by output file, table name and value path or text span
//   - Aggregation into a single error
package diagnostic
