package textnorm

import (
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "lowercases ASCII",
			input:    "Taylor Swift",
			expected: "taylor swift",
		},
		{
			name:     "strips Vietnamese diacritics",
			input:    "Sơn Tùng M-TP",
			expected: "son tung mtp",
		},
		{
			name:     "strips song title accents",
			input:    "Hạ Còn Vương Nắng",
			expected: "ha con vuong nang",
		},
		{
			name:     "removes punctuation",
			input:    "What's up?! (feat. Someone)",
			expected: "whats up feat someone",
		},
		{
			name:     "collapses whitespace",
			input:    "  nhạc   trẻ \t buồn  ",
			expected: "nhac tre buon",
		},
		{
			name:     "keeps digits and underscores",
			input:    "MTP_2024 remix",
			expected: "mtp_2024 remix",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "punctuation only",
			input:    "?!...",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"Sơn Tùng M-TP",
		"Hạ Còn Vương Nắng",
		"already normalized text",
		"",
		"Mixed CASE with Đủ thứ dấu!",
	}

	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "normalize must be idempotent for %q", in)
	}
}

func TestNormalize_NoUppercaseNoMarks(t *testing.T) {
	out := Normalize("ĐÂY Là MỘT Câu CÓ DẤU, và ký-tự đặc biệt!")

	for _, r := range out {
		assert.False(t, unicode.IsUpper(r), "unexpected uppercase rune %q", r)
		assert.False(t, unicode.Is(unicode.Mn, r), "unexpected combining mark %q", r)
		assert.False(t, unicode.IsPunct(r), "unexpected punctuation %q", r)
	}
}
