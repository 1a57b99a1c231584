// Package textmatch provides the small string-similarity primitives used to
// classify free-text planning tasks.
package textmatch

import "strings"

const (
	// MinTokenLength is the shortest token kept by Tokenize.
	MinTokenLength = 3
	// MaxTokenDistance is the largest edit distance at which two tokens still match.
	MaxTokenDistance = 2
)

// Levenshtein returns the edit distance between a and b with unit cost for
// insertion, deletion and substitution. It operates on runes.
func Levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)

	matrix := make([][]int, len(rb)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(ra)+1)
		matrix[i][0] = i
	}
	for j := 0; j <= len(ra); j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= len(rb); i++ {
		for j := 1; j <= len(ra); j++ {
			if rb[i-1] == ra[j-1] {
				matrix[i][j] = matrix[i-1][j-1]
				continue
			}
			matrix[i][j] = min(
				matrix[i-1][j-1]+1, // substitution
				matrix[i][j-1]+1,   // insertion
				matrix[i-1][j]+1,   // deletion
			)
		}
	}

	return matrix[len(rb)][len(ra)]
}

// Tokenize splits s on single spaces and drops tokens shorter than MinTokenLength.
func Tokenize(s string) []string {
	parts := strings.Split(s, " ")
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		if len([]rune(p)) >= MinTokenLength {
			tokens = append(tokens, p)
		}
	}
	return tokens
}

// Similarity scores how much of a is covered by b on a 0..1 scale.
// A token of a matches when some token of b contains it, is contained by it,
// or is within MaxTokenDistance edits. Inputs are compared as given; callers
// lowercase them first.
func Similarity(a, b string) float64 {
	tokensA := Tokenize(a)
	tokensB := Tokenize(b)
	if len(tokensA) == 0 || len(tokensB) == 0 {
		return 0
	}

	matched := 0
	for _, ta := range tokensA {
		for _, tb := range tokensB {
			if TokensMatch(ta, tb) {
				matched++
				break
			}
		}
	}

	return float64(matched) / float64(max(len(tokensA), len(tokensB)))
}

// TokensMatch reports whether two tokens are considered the same word.
func TokensMatch(a, b string) bool {
	if strings.Contains(a, b) || strings.Contains(b, a) {
		return true
	}
	return Levenshtein(a, b) <= MaxTokenDistance
}
