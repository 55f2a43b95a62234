package chat

import "regexp"

var (
	latinPattern      = regexp.MustCompile(`[a-zA-Z]`)
	vietnamesePattern = regexp.MustCompile(`[à-ỹÀ-Ỹ]`)
)

// detectLanguage guesses between the two supported reply languages.
// Latin letters without any Vietnamese diacritic reads as English;
// everything else defaults to Vietnamese.
func detectLanguage(text string) string {
	if latinPattern.MatchString(text) && !vietnamesePattern.MatchString(text) {
		return "en"
	}
	return "vi"
}
