// Package suggest picks the closest candidate for a misspelled name, used
// to enrich unknown-reference errors with a "did you mean" hint.
package suggest

import "strings"

// scoreFloor is the minimum normalized similarity for a suggestion; below
// it the names are too far apart for a hint to help.
const scoreFloor = 0.5

// Closest returns the candidate most similar to name, or "" when no
// candidate is close enough. Comparison is case-insensitive.
func Closest(name string, candidates []string) string {
	best := ""
	bestScore := scoreFloor

	for _, c := range candidates {
		score := similarity(strings.ToLower(name), strings.ToLower(c))
		if score > bestScore {
			best = c
			bestScore = score
		}
	}

	return best
}

// similarity is a normalized Levenshtein score between 0 and 1, where 1.0
// means identical strings.
func similarity(a, b string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1.0
	}

	maxLen := max(len(a), len(b))

	return 1.0 - float64(distance(a, b))/float64(maxLen)
}

// distance computes the Levenshtein edit distance between two strings
// using two rows instead of the full matrix.
func distance(a, b string) int {
	if a == b {
		return 0
	}

	if len(a) == 0 {
		return len(b)
	}

	if len(b) == 0 {
		return len(a)
	}

	// Keep a as the shorter string so the rows stay small.
	if len(a) > len(b) {
		a, b = b, a
	}

	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(b); j++ {
		curr[0] = j

		for i := 1; i <= len(a); i++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}

			curr[i] = min(
				prev[i]+1,      // deletion
				curr[i-1]+1,    // insertion
				prev[i-1]+cost, // substitution
			)
		}

		prev, curr = curr, prev
	}

	return prev[len(a)]
}
