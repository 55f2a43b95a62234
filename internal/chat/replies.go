package chat

import (
	"fmt"
	"strings"

	"vibesync/internal/catalog"
	"vibesync/internal/resolve"
)

// maxBioRunes bounds the artist bio embedded in a generator prompt so
// a long bio cannot blow up the downstream request.
const maxBioRunes = 400

// buildEnrichmentPrompt composes a kind-specific prompt embedding what
// the catalog already knows about the matched entity.
func buildEnrichmentPrompt(res resolve.Resolution, lang string) string {
	entry := res.Entry
	var b strings.Builder

	switch res.Kind {
	case catalog.KindArtist:
		if lang == "en" {
			fmt.Fprintf(&b, "Tell me about the artist %s.", entry.DisplayName)
		} else {
			fmt.Fprintf(&b, "Giới thiệu về nghệ sĩ %s.", entry.DisplayName)
		}
		if entry.Artist != nil && entry.Artist.Bio != "" {
			if lang == "en" {
				fmt.Fprintf(&b, " Known biography: %s", truncateRunes(entry.Artist.Bio, maxBioRunes))
			} else {
				fmt.Fprintf(&b, " Tiểu sử: %s", truncateRunes(entry.Artist.Bio, maxBioRunes))
			}
		}
	case catalog.KindSong:
		if lang == "en" {
			fmt.Fprintf(&b, "Tell me about the song %s", entry.DisplayName)
		} else {
			fmt.Fprintf(&b, "Giới thiệu về bài hát %s", entry.DisplayName)
		}
		if entry.Song != nil {
			if entry.Song.Artist != "" {
				if lang == "en" {
					fmt.Fprintf(&b, " by %s", entry.Song.Artist)
				} else {
					fmt.Fprintf(&b, " của ca sĩ %s", entry.Song.Artist)
				}
			}
			if entry.Song.ReleaseYear > 0 {
				fmt.Fprintf(&b, " (%d)", entry.Song.ReleaseYear)
			}
			if len(entry.Song.Genre) > 0 {
				if lang == "en" {
					fmt.Fprintf(&b, ", genre: %s", strings.Join(entry.Song.Genre, ", "))
				} else {
					fmt.Fprintf(&b, ", thể loại: %s", strings.Join(entry.Song.Genre, ", "))
				}
			}
		}
		b.WriteString(".")
	case catalog.KindAlbum:
		if lang == "en" {
			fmt.Fprintf(&b, "Tell me about the album %s", entry.DisplayName)
		} else {
			fmt.Fprintf(&b, "Giới thiệu về album %s", entry.DisplayName)
		}
		if entry.Album != nil && entry.Album.ReleaseYear > 0 {
			fmt.Fprintf(&b, " (%d)", entry.Album.ReleaseYear)
		}
		b.WriteString(".")
	}

	return b.String()
}

// deepLinkLine is the "see more" footer appended after a confident
// entity match.
func deepLinkLine(entry *catalog.SearchEntry, lang string) string {
	if lang == "en" {
		return fmt.Sprintf("👉 See more about: [%s](%s)", entry.DisplayName, entry.URL)
	}
	return fmt.Sprintf("👉 Bạn có thể xem thêm về: [%s](%s)", entry.DisplayName, entry.URL)
}

func apology(lang string) string {
	if lang == "en" {
		return "I can't handle that request right now. Please try again later."
	}
	return "Hiện tại tôi không thể xử lý yêu cầu. Vui lòng thử lại sau."
}

func guidance(lang string) string {
	if lang == "en" {
		return "❗ Your question is unclear. Please specify whether you're looking for a *song*, *artist*, or *music genre* 🎵.\n" +
			"Example: *'song Love Someone Like You'* or *'artist Taylor Swift'*."
	}
	return "❗ Câu hỏi của bạn chưa rõ ràng. Vui lòng nói rõ bạn đang tìm *bài hát*, *ca sĩ*, hoặc thể loại nhạc nào 🎵.\n" +
		"Ví dụ: *'bài hát Yêu Một Người Có Lẽ'* hoặc *'ca sĩ Sơn Tùng M-TP'*."
}

func musicOnlySuffix(lang string) string {
	if lang == "en" {
		return "❗ Our website focuses on music. Please ask questions about playlists, artists, genres, or songs you want to hear 🎵."
	}
	return "❗ Website của chúng tôi chuyên về âm nhạc. Vui lòng đặt câu hỏi liên quan đến playlist, ca sĩ, thể loại nhạc hoặc bài hát bạn muốn nghe 🎵."
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "…"
}
