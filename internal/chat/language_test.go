package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"what songs do you have", "en"},
		{"artist Taylor Swift", "en"},
		{"bài hát Hạ Còn Vương Nắng", "vi"},
		{"cho mình xin playlist nhạc trẻ", "vi"},
		// No Latin letters at all defaults to Vietnamese.
		{"🎵🎵", "vi"},
		{"", "vi"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, detectLanguage(tt.input), "input %q", tt.input)
	}
}

func TestCannedAnswer(t *testing.T) {
	answer, ok := cannedAnswer("cho hỏi trang web này dùng để làm gì thế?", "vi")
	assert.True(t, ok)
	assert.Contains(t, answer, "VibeSync")

	answer, ok = cannedAnswer("ai làm website này vậy", "en")
	assert.True(t, ok)
	assert.Contains(t, answer, "VibeSync team")

	_, ok = cannedAnswer("bài hát Hạ Còn Vương Nắng", "vi")
	assert.False(t, ok)
}
