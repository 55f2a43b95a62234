package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimilarity_Identity(t *testing.T) {
	assert.Equal(t, 1.0, Similarity("son tung mtp", "son tung mtp"))
	assert.Equal(t, 1.0, Similarity("", ""))
}

func TestSimilarity_Symmetry(t *testing.T) {
	pairs := [][2]string{
		{"ha con vuong nang", "ha con vuong"},
		{"taylor swift", "taylor swift 1989"},
		{"abc", "xyz"},
		{"", "anything"},
		{"nhac tre", "nhac vang"},
	}

	for _, p := range pairs {
		assert.Equal(t, Similarity(p[0], p[1]), Similarity(p[1], p[0]),
			"similarity(%q,%q) must be symmetric", p[0], p[1])
	}
}

func TestSimilarity_Containment(t *testing.T) {
	// Either direction of containment short-circuits to 1.0.
	assert.Equal(t, 1.0, Similarity("bai hat ha con vuong nang", "ha con vuong nang"))
	assert.Equal(t, 1.0, Similarity("son tung", "ca si son tung mtp"))
}

func TestSimilarity_EmptyIsNeverContained(t *testing.T) {
	assert.Equal(t, 0.0, Similarity("", "something"))
	assert.Equal(t, 0.0, Similarity("something", ""))
}

func TestSimilarity_Disjoint(t *testing.T) {
	assert.Equal(t, 0.0, Similarity("abc", "xyz"))
}

func TestSimilarity_Range(t *testing.T) {
	pairs := [][2]string{
		{"son tung m tp", "son tung mtp"},
		{"ha con vuong nang", "ha con thuong nho"},
		{"a", "ab"},
	}

	for _, p := range pairs {
		s := Similarity(p[0], p[1])
		assert.GreaterOrEqual(t, s, 0.0)
		assert.LessOrEqual(t, s, 1.0)
	}
}

func TestSimilarity_CloseNames(t *testing.T) {
	// One missing space: edit distance 1 over 13 runes.
	s := Similarity("son tung m tp", "son tung mtp")
	assert.Greater(t, s, 0.9)
}

func TestBestMatch(t *testing.T) {
	candidates := []string{"ha con vuong nang", "noi nay co anh", "chung ta cua hien tai"}

	idx, score, ok := BestMatch("ha con vuong nang", candidates, 0.6)
	assert.True(t, ok)
	assert.Equal(t, 0, idx)
	assert.Equal(t, 1.0, score)
}

func TestBestMatch_BelowThreshold(t *testing.T) {
	idx, _, ok := BestMatch("zzzzzz", []string{"abc", "def"}, 0.6)
	assert.False(t, ok)
	assert.Equal(t, -1, idx)
}

func TestBestMatch_NoCandidates(t *testing.T) {
	idx, score, ok := BestMatch("anything", nil, 0.6)
	assert.False(t, ok)
	assert.Equal(t, -1, idx)
	assert.Equal(t, 0.0, score)
}

func TestBestMatch_TieKeepsFirst(t *testing.T) {
	// Both candidates contain the query, so both score 1.0; the scan
	// must keep the first one.
	candidates := []string{"son tung mtp", "son tung mtp official"}

	idx, score, ok := BestMatch("son tung", candidates, 0.6)
	assert.True(t, ok)
	assert.Equal(t, 0, idx)
	assert.Equal(t, 1.0, score)
}
