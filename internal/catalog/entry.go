package catalog

// Kind tags a SearchEntry with the catalog entity it projects.
type Kind string

const (
	KindUnknown Kind = "unknown"
	KindSong    Kind = "song"
	KindArtist  Kind = "artist"
	KindAlbum   Kind = "album"
)

// SearchEntry is a read-only projection of a catalog record used for
// matching. Keywords is never empty and holds only normalized,
// deduplicated strings. Entries are owned by one index snapshot and
// never mutated after projection.
type SearchEntry struct {
	Kind        Kind
	ID          string
	DisplayName string
	Keywords    []string
	URL         string

	// Exactly one of these is set, matching Kind.
	Artist *ArtistMeta
	Song   *SongMeta
	Album  *AlbumMeta
}

// ArtistMeta carries artist fields used by reply enrichment
type ArtistMeta struct {
	Bio       string
	Image     string
	Followers int
}

// SongMeta carries song fields used by reply enrichment
type SongMeta struct {
	Artist      string
	Album       string
	ReleaseYear int
	Genre       []string
	CoverArt    string
	AudioURL    string
}

// AlbumMeta carries album fields used by reply enrichment
type AlbumMeta struct {
	ArtistID    string
	ReleaseYear int
	CoverImage  string
}
