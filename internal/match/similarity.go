// Package match scores normalized-string pairs and picks the best
// candidate for a query. Inputs are expected to be pre-normalized
// (see textnorm); the scores are only meaningful on normalized text.
package match

import "strings"

// Default thresholds. Entity resolution tolerates looser matches than
// artist-identity merging, where a wrong match conflates two artists.
const (
	DefaultResolveThreshold = 0.6
	DefaultMergeThreshold   = 0.75
)

// Similarity returns a score in [0,1] for two normalized strings.
// If one non-empty string contains the other the score is 1.0;
// catalog names are short, so containment is treated as an exact hit
// ("son tung" inside "ca si son tung mtp"). Otherwise the score is a
// Levenshtein ratio over runes.
func Similarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	if a == "" || b == "" {
		return 0.0
	}
	if strings.Contains(a, b) || strings.Contains(b, a) {
		return 1.0
	}

	ra := []rune(a)
	rb := []rune(b)
	maxLen := len(ra)
	if len(rb) > maxLen {
		maxLen = len(rb)
	}

	return 1.0 - float64(levenshtein(ra, rb))/float64(maxLen)
}

// BestMatch scans candidates in order and returns the index and score
// of the best one. Ties keep the first-seen candidate, so the result
// is deterministic for a fixed candidate order. ok is false when no
// candidate reaches the threshold.
func BestMatch(query string, candidates []string, threshold float64) (index int, score float64, ok bool) {
	index = -1
	for i, candidate := range candidates {
		if s := Similarity(query, candidate); s > score {
			score = s
			index = i
		}
	}
	if index < 0 || score < threshold {
		return -1, score, false
	}
	return index, score, true
}

// levenshtein computes the edit distance between two rune slices using
// the two-row formulation.
func levenshtein(a, b []rune) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}
			curr[j] = minOf(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		copy(prev, curr)
	}

	return prev[len(b)]
}

func minOf(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
