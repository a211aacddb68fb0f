package match

import (
	"strings"
	"unicode"
)

// NormalizeIdent folds an identifier for fuzzy comparison: lower case,
// without separators and without a leading '$'.
//
//	"TypeSuffixes" -> "typesuffixes"
//	"type-suffixes" -> "typesuffixes"
//	"$Type" -> "type"
func NormalizeIdent(s string) string {
	s = strings.TrimPrefix(s, "$")

	var sb strings.Builder

	sb.Grow(len(s))

	for _, r := range s {
		if isSeparator(r) {
			continue
		}

		sb.WriteRune(unicode.ToLower(r))
	}

	return sb.String()
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' ' || r == '.'
}
