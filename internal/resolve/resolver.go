// Package resolve maps free-text user input to the catalog entity it
// most likely denotes.
package resolve

import (
	"log/slog"
	"strings"

	"vibesync/internal/catalog"
	"vibesync/internal/match"
	"vibesync/internal/textnorm"
)

// Resolution is the outcome of resolving free text against the
// catalog. Entry is nil when Kind is KindUnknown.
type Resolution struct {
	Kind  catalog.Kind         `json:"kind"`
	Entry *catalog.SearchEntry `json:"entry,omitempty"`
	Score float64              `json:"score"`
}

// Music-domain keywords in both supported languages, normalized. Free
// text mentioning none of these and only a handful of tokens is small
// talk, not a lookup.
var musicKeywords = []string{
	"bai hat", "ca si", "nhac", "nghe si",
	"song", "artist", "music",
}

// Keywords signalling list/collection intent. These restrict the
// candidate scope to albums; album matching is mutually exclusive
// with song/artist matching to avoid cross-kind ambiguity.
var albumKeywords = []string{
	"album", "playlist", "danh sach", "tuyen tap", "nhieu bai hat", "list",
}

const vagueTokenLimit = 5

// Resolver scores chat input against the catalog index
type Resolver struct {
	index           *catalog.Index
	threshold       float64
	artistThreshold float64
}

// NewResolver creates a resolver over the given index. threshold
// gates general entity resolution; artistThreshold is the stricter
// gate used for artist-name lookups.
func NewResolver(index *catalog.Index, threshold, artistThreshold float64) *Resolver {
	if threshold <= 0 {
		threshold = match.DefaultResolveThreshold
	}
	if artistThreshold <= 0 {
		artistThreshold = match.DefaultMergeThreshold
	}
	return &Resolver{
		index:           index,
		threshold:       threshold,
		artistThreshold: artistThreshold,
	}
}

// Resolve determines whether text denotes a song, an artist, or an
// album. It never fails: ambiguous or low-confidence input resolves
// to KindUnknown.
func (r *Resolver) Resolve(text string) Resolution {
	norm := textnorm.Normalize(text)
	if norm == "" {
		return unknown()
	}

	scope := r.scopeFor(norm)
	best := unknown()
	for _, entry := range scope {
		// A candidate's effective score is the max over its keywords;
		// strict > keeps the first-seen entry on ties.
		for _, kw := range entry.Keywords {
			if score := match.Similarity(norm, kw); score > best.Score {
				best = Resolution{Kind: entry.Kind, Entry: entry, Score: score}
			}
		}
	}

	if best.Score >= r.threshold {
		slog.Debug("Resolved entity",
			"kind", best.Kind,
			"entry", best.Entry.DisplayName,
			"score", best.Score)
		return best
	}
	return unknown()
}

// ResolveArtist looks up an artist entry by name using the stricter
// merge threshold. Used where a wrong match merges artist identities.
func (r *Resolver) ResolveArtist(name string) (*catalog.SearchEntry, bool) {
	norm := textnorm.Normalize(name)
	if norm == "" {
		return nil, false
	}

	var bestEntry *catalog.SearchEntry
	bestScore := 0.0
	for _, entry := range r.index.Entries(catalog.KindArtist) {
		for _, kw := range entry.Keywords {
			if score := match.Similarity(norm, kw); score > bestScore {
				bestScore = score
				bestEntry = entry
			}
		}
	}

	if bestEntry == nil || bestScore < r.artistThreshold {
		return nil, false
	}
	return bestEntry, true
}

// Vague reports whether text is too short to be a lookup and mentions
// no music-domain keyword. Such input should get clarification
// guidance rather than a catalog scan or a generator call.
func (r *Resolver) Vague(text string) bool {
	norm := textnorm.Normalize(text)
	if norm == "" {
		return true
	}
	if len(strings.Fields(norm)) > vagueTokenLimit {
		return false
	}
	return !containsAny(norm, musicKeywords)
}

// scopeFor picks the candidate set: list/collection intent scans
// albums only, everything else scans the union of artists and songs.
func (r *Resolver) scopeFor(norm string) []*catalog.SearchEntry {
	if containsAny(norm, albumKeywords) {
		return r.index.Entries(catalog.KindAlbum)
	}
	return r.index.Entries(catalog.KindArtist, catalog.KindSong)
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

func unknown() Resolution {
	return Resolution{Kind: catalog.KindUnknown}
}
