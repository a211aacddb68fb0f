// Package match finds the closest known name to a misspelled one, so that
// errors about unknown flags, dialects and directives can suggest a fix.
//
// Key functions:
//   - NormalizeIdent: folds case and separators before comparing
//   - Levenshtein: computes edit distance between strings
//   - Closest: picks the most similar candidate above a threshold
package match
