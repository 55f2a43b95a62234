package resolve

import (
	"context"
	"testing"

	"vibesync/internal/catalog"
	"vibesync/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type staticStore struct {
	songs   []models.Song
	artists []models.Artist
	albums  []models.Album
}

func (s *staticStore) ListSongs(context.Context) ([]models.Song, error)     { return s.songs, nil }
func (s *staticStore) ListArtists(context.Context) ([]models.Artist, error) { return s.artists, nil }
func (s *staticStore) ListAlbums(context.Context) ([]models.Album, error)   { return s.albums, nil }

func testResolver(t *testing.T) *Resolver {
	t.Helper()

	store := &staticStore{
		artists: []models.Artist{
			{ID: primitive.NewObjectID(), Name: "Sơn Tùng M-TP", Aliases: []string{"M-TP"}, Bio: "Ca sĩ, nhạc sĩ người Việt Nam."},
			{ID: primitive.NewObjectID(), Name: "Taylor Swift"},
		},
		songs: []models.Song{
			{ID: primitive.NewObjectID(), Title: "Hạ Còn Vương Nắng", Artist: "DatKaa", ReleaseYear: 2020},
			{ID: primitive.NewObjectID(), Title: "Nơi Này Có Anh", Artist: "Sơn Tùng M-TP", ReleaseYear: 2017},
		},
		albums: []models.Album{
			{ID: primitive.NewObjectID(), Title: "Sky Tour", ReleaseYear: 2019},
			{ID: primitive.NewObjectID(), Title: "Chúng Ta", ReleaseYear: 2022},
		},
	}

	idx := catalog.NewIndex(store, "http://localhost:3000")
	require.NoError(t, idx.Rebuild(context.Background()))
	return NewResolver(idx, 0.6, 0.75)
}

func TestResolver_BlankInput(t *testing.T) {
	r := testResolver(t)

	for _, input := range []string{"", "   ", "\t\n", "?!"} {
		res := r.Resolve(input)
		assert.Equal(t, catalog.KindUnknown, res.Kind, "input %q", input)
		assert.Nil(t, res.Entry)
	}
}

func TestResolver_AccentInsensitiveArtist(t *testing.T) {
	r := testResolver(t)

	res := r.Resolve("Sơn Tùng M TP")
	require.Equal(t, catalog.KindArtist, res.Kind)
	assert.Equal(t, "Sơn Tùng M-TP", res.Entry.DisplayName)
	assert.GreaterOrEqual(t, res.Score, 0.6)
}

func TestResolver_SongByTitlePhrase(t *testing.T) {
	r := testResolver(t)

	res := r.Resolve("bài hát Hạ Còn Vương Nắng")
	require.Equal(t, catalog.KindSong, res.Kind)
	assert.Equal(t, "Hạ Còn Vương Nắng", res.Entry.DisplayName)
	// Keyword is contained in the normalized prompt.
	assert.Equal(t, 1.0, res.Score)
}

func TestResolver_AlbumScopeIsExclusive(t *testing.T) {
	r := testResolver(t)

	// Album intent restricts the scan to album entries, so an artist
	// name in the same message cannot win.
	res := r.Resolve("album Sky Tour")
	require.Equal(t, catalog.KindAlbum, res.Kind)
	assert.Equal(t, "Sky Tour", res.Entry.DisplayName)

	// Without the album keyword the same title matches nothing in the
	// artist+song scope.
	res = r.Resolve("cho tôi nghe mấy bài trong Sky Tour đi bạn ơi")
	assert.Equal(t, catalog.KindUnknown, res.Kind)
}

func TestResolver_SmallTalkIsUnknown(t *testing.T) {
	r := testResolver(t)

	for _, input := range []string{"xin chào bạn", "how are you today", "cảm ơn nhé"} {
		res := r.Resolve(input)
		assert.Equal(t, catalog.KindUnknown, res.Kind, "input %q", input)
	}
}

func TestResolver_EmptyIndex(t *testing.T) {
	idx := catalog.NewIndex(&staticStore{}, "http://localhost:3000")
	r := NewResolver(idx, 0.6, 0.75)

	res := r.Resolve("bài hát Hạ Còn Vương Nắng")
	assert.Equal(t, catalog.KindUnknown, res.Kind)
}

func TestResolver_Vague(t *testing.T) {
	r := testResolver(t)

	assert.True(t, r.Vague("hello"))
	assert.True(t, r.Vague("bạn khỏe không"))
	assert.True(t, r.Vague(""))
	// Music keyword present.
	assert.False(t, r.Vague("nhạc buồn"))
	assert.False(t, r.Vague("song please"))
	// Long enough to be a real query.
	assert.False(t, r.Vague("cho minh xin ten ca khuc mo dau phim do"))
}

func TestResolver_ResolveArtist(t *testing.T) {
	r := testResolver(t)

	entry, ok := r.ResolveArtist("son tung mtp")
	require.True(t, ok)
	assert.Equal(t, "Sơn Tùng M-TP", entry.DisplayName)

	// Below the stricter merge threshold.
	_, ok = r.ResolveArtist("someone else entirely")
	assert.False(t, ok)

	_, ok = r.ResolveArtist("")
	assert.False(t, ok)
}

func TestResolver_TieKeepsFirstEntry(t *testing.T) {
	store := &staticStore{
		artists: []models.Artist{
			{ID: primitive.NewObjectID(), Name: "Đen"},
			{ID: primitive.NewObjectID(), Name: "Đen Vâu"},
		},
	}
	idx := catalog.NewIndex(store, "http://localhost:3000")
	require.NoError(t, idx.Rebuild(context.Background()))
	r := NewResolver(idx, 0.6, 0.75)

	// Both keywords are contained in the query, both score 1.0; the
	// first entry in snapshot order wins.
	res := r.Resolve("nhạc của đen vâu")
	require.Equal(t, catalog.KindArtist, res.Kind)
	assert.Equal(t, "Đen", res.Entry.DisplayName)
}
