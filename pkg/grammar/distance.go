// SPDX-License-Identifier: MPL-2.0

package grammar

import "unicode/utf8"

// MaxSuggestLength caps the input length considered for suggestions. Longer
// inputs and candidates get no suggestion.
const MaxSuggestLength = 64

// Distance returns the Damerau-Levenshtein distance between a and b in the
// optimal string alignment variant: insertions, deletions, substitutions and
// transpositions of adjacent runes each cost 1, and no substring is edited twice.
func Distance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	n, m := len(ra), len(rb)
	if n == 0 {
		return m
	}
	if m == 0 {
		return n
	}

	// Three rolling rows: two back (transpositions), previous and current.
	prev2 := make([]int, m+1)
	prev := make([]int, m+1)
	cur := make([]int, m+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= n; i++ {
		cur[0] = i
		for j := 1; j <= m; j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			best := min(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
			if i > 1 && j > 1 && ra[i-1] == rb[j-2] && ra[i-2] == rb[j-1] {
				best = min(best, prev2[j-2]+1)
			}
			cur[j] = best
		}
		prev2, prev, cur = prev, cur, prev2
	}
	return prev[m]
}

// SuggestionBound returns the largest distance a suggestion for input may
// have: ceil(len(input) / 3), counted in runes.
func SuggestionBound(input string) int {
	return (utf8.RuneCountInString(input) + 2) / 3
}

// Closest returns the candidate nearest to input within SuggestionBound.
// Ties go to the earliest candidate. It returns false when nothing qualifies
// or input exceeds MaxSuggestLength.
func Closest(input string, candidates []string) (string, bool) {
	if utf8.RuneCountInString(input) > MaxSuggestLength {
		return "", false
	}
	bound := SuggestionBound(input)
	best, bestDist := "", bound+1
	for _, c := range candidates {
		if utf8.RuneCountInString(c) > MaxSuggestLength {
			continue
		}
		if d := Distance(input, c); d < bestDist {
			best, bestDist = c, d
		}
	}
	if bestDist > bound {
		return "", false
	}
	return best, true
}
