// Package catalog maintains an in-memory snapshot of songs, artists,
// and albums projected into lightweight search entries. The snapshot
// is rebuilt wholesale from the catalog store and swapped atomically,
// so concurrent resolutions always see one consistent snapshot.
package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"vibesync/internal/models"
	"vibesync/internal/textnorm"
)

// Store is the catalog read surface the index is built from.
type Store interface {
	ListSongs(ctx context.Context) ([]models.Song, error)
	ListArtists(ctx context.Context) ([]models.Artist, error)
	ListAlbums(ctx context.Context) ([]models.Album, error)
}

// Index holds the current search-entry snapshot. The zero snapshot is
// empty; resolution degrades to "unknown" until the first successful
// Rebuild.
type Index struct {
	store   Store
	baseURL string

	snapshot atomic.Pointer[snapshot]
}

type snapshot struct {
	entries []*SearchEntry // artists, then songs, then albums
	byKind  map[Kind][]*SearchEntry
	builtAt time.Time
}

// NewIndex creates an empty index over the given store. baseURL is the
// frontend origin used to build entity deep links.
func NewIndex(store Store, baseURL string) *Index {
	idx := &Index{store: store, baseURL: baseURL}
	idx.snapshot.Store(&snapshot{byKind: map[Kind][]*SearchEntry{}})
	return idx
}

// Rebuild fetches all catalog records, projects them into search
// entries, and swaps the snapshot. Any fetch error aborts the rebuild
// and retains the previous snapshot so a transient store failure never
// empties the index.
func (idx *Index) Rebuild(ctx context.Context) error {
	artists, err := idx.store.ListArtists(ctx)
	if err != nil {
		return fmt.Errorf("catalog rebuild: list artists: %w", err)
	}
	songs, err := idx.store.ListSongs(ctx)
	if err != nil {
		return fmt.Errorf("catalog rebuild: list songs: %w", err)
	}
	albums, err := idx.store.ListAlbums(ctx)
	if err != nil {
		return fmt.Errorf("catalog rebuild: list albums: %w", err)
	}

	next := &snapshot{
		byKind:  make(map[Kind][]*SearchEntry, 3),
		builtAt: time.Now(),
	}
	for _, a := range artists {
		if entry := idx.projectArtist(a); entry != nil {
			next.entries = append(next.entries, entry)
			next.byKind[KindArtist] = append(next.byKind[KindArtist], entry)
		}
	}
	for _, s := range songs {
		if entry := idx.projectSong(s); entry != nil {
			next.entries = append(next.entries, entry)
			next.byKind[KindSong] = append(next.byKind[KindSong], entry)
		}
	}
	for _, al := range albums {
		if entry := idx.projectAlbum(al); entry != nil {
			next.entries = append(next.entries, entry)
			next.byKind[KindAlbum] = append(next.byKind[KindAlbum], entry)
		}
	}

	idx.snapshot.Swap(next)
	slog.Info("Catalog index rebuilt",
		"artists", len(next.byKind[KindArtist]),
		"songs", len(next.byKind[KindSong]),
		"albums", len(next.byKind[KindAlbum]))
	return nil
}

// Entries returns the entries of the given kinds in snapshot order
// (artists, then songs, then albums). With no kinds it returns all
// entries. The returned slice must not be mutated.
func (idx *Index) Entries(kinds ...Kind) []*SearchEntry {
	snap := idx.snapshot.Load()
	if len(kinds) == 0 {
		return snap.entries
	}

	var out []*SearchEntry
	for _, k := range kinds {
		out = append(out, snap.byKind[k]...)
	}
	return out
}

// Len returns the number of entries in the current snapshot
func (idx *Index) Len() int {
	return len(idx.snapshot.Load().entries)
}

// LastBuilt returns when the current snapshot was built; the zero time
// means no rebuild has succeeded yet.
func (idx *Index) LastBuilt() time.Time {
	return idx.snapshot.Load().builtAt
}

func (idx *Index) projectArtist(a models.Artist) *SearchEntry {
	keywords := keywordSet(append([]string{a.Name}, a.Aliases...)...)
	if a.Name == "" || len(keywords) == 0 {
		return nil
	}

	return &SearchEntry{
		Kind:        KindArtist,
		ID:          a.ID.Hex(),
		DisplayName: a.Name,
		Keywords:    keywords,
		URL:         fmt.Sprintf("%s/artist/%s", idx.baseURL, a.ID.Hex()),
		Artist: &ArtistMeta{
			Bio:       a.Bio,
			Image:     a.Image,
			Followers: a.Followers,
		},
	}
}

func (idx *Index) projectSong(s models.Song) *SearchEntry {
	keywords := keywordSet(s.Title)
	if s.Title == "" || len(keywords) == 0 {
		return nil
	}

	return &SearchEntry{
		Kind:        KindSong,
		ID:          s.ID.Hex(),
		DisplayName: s.Title,
		Keywords:    keywords,
		URL:         fmt.Sprintf("%s/song/%s", idx.baseURL, s.ID.Hex()),
		Song: &SongMeta{
			Artist:      s.Artist,
			Album:       s.Album,
			ReleaseYear: s.ReleaseYear,
			Genre:       s.Genre,
			CoverArt:    s.CoverArt,
			AudioURL:    s.AudioURL,
		},
	}
}

func (idx *Index) projectAlbum(al models.Album) *SearchEntry {
	keywords := keywordSet(al.Title)
	if al.Title == "" || len(keywords) == 0 {
		return nil
	}

	entry := &SearchEntry{
		Kind:        KindAlbum,
		ID:          al.ID.Hex(),
		DisplayName: al.Title,
		Keywords:    keywords,
		URL:         fmt.Sprintf("%s/album/%s", idx.baseURL, al.ID.Hex()),
		Album: &AlbumMeta{
			ReleaseYear: al.ReleaseYear,
			CoverImage:  al.CoverImage,
		},
	}
	if !al.ArtistID.IsZero() {
		entry.Album.ArtistID = al.ArtistID.Hex()
	}
	return entry
}

// keywordSet normalizes the given names, dropping empties and
// duplicates while preserving first-seen order.
func keywordSet(names ...string) []string {
	seen := make(map[string]struct{}, len(names))
	var out []string
	for _, name := range names {
		kw := textnorm.Normalize(name)
		if kw == "" {
			continue
		}
		if _, dup := seen[kw]; dup {
			continue
		}
		seen[kw] = struct{}{}
		out = append(out, kw)
	}
	return out
}
