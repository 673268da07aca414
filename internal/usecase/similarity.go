package usecase

import "strings"

// Scoring weights for word similarity
const (
	containmentScore = 3.0 // text contains the full query as a substring
	exactTokenScore  = 2.0 // query token exactly equals a text token
	prefixTokenScore = 0.5 // query token is a prefix of a text token
	minTokenLength   = 3   // tokens shorter than this are ignored
	minPrefixLength  = 4   // prefix matches only count for tokens this long
)

// editDistance calculates the Levenshtein distance between two strings:
// the minimum number of single-character insertions, deletions, or
// substitutions required to turn one into the other.
func editDistance(s1, s2 string) int {
	if len(s1) == 0 {
		return len([]rune(s2))
	}
	if len(s2) == 0 {
		return len([]rune(s1))
	}

	r1 := []rune(s1)
	r2 := []rune(s2)
	m := len(r1)
	n := len(r2)

	// Use two rows instead of the full matrix for space efficiency
	prev := make([]int, n+1)
	curr := make([]int, n+1)

	for j := 0; j <= n; j++ {
		prev[j] = j
	}

	for i := 1; i <= m; i++ {
		curr[0] = i
		for j := 1; j <= n; j++ {
			cost := 0
			if r1[i-1] != r2[j-1] {
				cost = 1
			}
			curr[j] = min(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[n]
}

// normalizedEditDistance scales the edit distance by the longer string's
// rune length, yielding 0.0 for identical strings and 1.0 for completely
// different ones. Two empty strings have distance 0.
func normalizedEditDistance(s1, s2 string) float64 {
	maxLen := len([]rune(s1))
	if l := len([]rune(s2)); l > maxLen {
		maxLen = l
	}
	if maxLen == 0 {
		return 0
	}
	return float64(editDistance(s1, s2)) / float64(maxLen)
}

// wordSimilarity scores how well query matches text. Containment of the
// full query in the text is the strongest signal and short-circuits the
// token walk. Otherwise both sides are split on whitespace and each query
// token of 3+ characters contributes: 2 for an exact token match, 0.5
// when it is a 4+-character prefix of some text token. Contributions
// accumulate across query tokens, so the score is unbounded above.
func wordSimilarity(text, query string) float64 {
	if strings.Contains(text, query) {
		return containmentScore
	}

	textWords := strings.Fields(text)
	queryWords := strings.Fields(query)

	var score float64
	for _, qWord := range queryWords {
		if len(qWord) < minTokenLength {
			continue
		}

		exact := false
		for _, word := range textWords {
			if word == qWord {
				exact = true
				break
			}
		}
		if exact {
			score += exactTokenScore
			continue
		}

		if len(qWord) >= minPrefixLength {
			for _, word := range textWords {
				if strings.HasPrefix(word, qWord) {
					score += prefixTokenScore
					break
				}
			}
		}
	}

	return score
}
