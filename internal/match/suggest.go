package match

import (
	"fmt"
)

// MinSimilarity is the score below which no suggestion is made.
const MinSimilarity = 0.6

// Closest returns the candidate most similar to name after normalization.
// Ties keep the earlier candidate. It reports false when no candidate reaches
// MinSimilarity.
func Closest(name string, candidates []string) (string, bool) {
	norm := NormalizeIdent(name)

	var (
		best      string
		bestScore float64
	)

	for _, c := range candidates {
		score := Similarity(norm, NormalizeIdent(c))
		if score > bestScore {
			best, bestScore = c, score
		}
	}

	if bestScore < MinSimilarity {
		return "", false
	}

	return best, true
}

// Hint returns ` (did you mean "x"?)` for the closest candidate, or an empty
// string.
func Hint(name string, candidates []string) string {
	c, ok := Closest(name, candidates)
	if !ok || c == name {
		return ""
	}

	return fmt.Sprintf(" (did you mean %q?)", c)
}
