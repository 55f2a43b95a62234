package catalog

import (
	"context"
	"errors"
	"testing"

	"vibesync/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeStore returns fixed slices, or an error when failing is set.
type fakeStore struct {
	songs   []models.Song
	artists []models.Artist
	albums  []models.Album
	failing bool
}

var errStoreDown = errors.New("store down")

func (f *fakeStore) ListSongs(context.Context) ([]models.Song, error) {
	if f.failing {
		return nil, errStoreDown
	}
	return f.songs, nil
}

func (f *fakeStore) ListArtists(context.Context) ([]models.Artist, error) {
	if f.failing {
		return nil, errStoreDown
	}
	return f.artists, nil
}

func (f *fakeStore) ListAlbums(context.Context) ([]models.Album, error) {
	if f.failing {
		return nil, errStoreDown
	}
	return f.albums, nil
}

func testStore() *fakeStore {
	return &fakeStore{
		artists: []models.Artist{
			{ID: primitive.NewObjectID(), Name: "Sơn Tùng M-TP", Aliases: []string{"Son Tung", "M-TP"}, Bio: "Ca sĩ nhạc trẻ."},
			{ID: primitive.NewObjectID(), Name: "Taylor Swift"},
			{ID: primitive.NewObjectID(), Name: ""}, // unusable, skipped
		},
		songs: []models.Song{
			{ID: primitive.NewObjectID(), Title: "Hạ Còn Vương Nắng", Artist: "DatKaa", ReleaseYear: 2020},
			{ID: primitive.NewObjectID(), Title: "Nơi Này Có Anh", Artist: "Sơn Tùng M-TP", ReleaseYear: 2017},
		},
		albums: []models.Album{
			{ID: primitive.NewObjectID(), Title: "Sky Tour", ReleaseYear: 2019},
		},
	}
}

func TestIndex_Rebuild(t *testing.T) {
	store := testStore()
	idx := NewIndex(store, "http://localhost:3000")

	require.NoError(t, idx.Rebuild(context.Background()))

	assert.Equal(t, 5, idx.Len()) // empty-name artist skipped
	assert.Len(t, idx.Entries(KindArtist), 2)
	assert.Len(t, idx.Entries(KindSong), 2)
	assert.Len(t, idx.Entries(KindAlbum), 1)
	assert.False(t, idx.LastBuilt().IsZero())
}

func TestIndex_EntryProjection(t *testing.T) {
	store := testStore()
	idx := NewIndex(store, "http://localhost:3000")
	require.NoError(t, idx.Rebuild(context.Background()))

	artist := idx.Entries(KindArtist)[0]
	assert.Equal(t, KindArtist, artist.Kind)
	assert.Equal(t, "Sơn Tùng M-TP", artist.DisplayName)
	// Name plus aliases, normalized; "son tung mtp" first, alias
	// "son tung" kept, duplicate-normalizing alias "M-TP" deduped
	// against nothing so it stays.
	assert.Equal(t, []string{"son tung mtp", "son tung", "mtp"}, artist.Keywords)
	assert.Equal(t, "http://localhost:3000/artist/"+artist.ID, artist.URL)
	require.NotNil(t, artist.Artist)
	assert.Equal(t, "Ca sĩ nhạc trẻ.", artist.Artist.Bio)
	assert.Nil(t, artist.Song)

	song := idx.Entries(KindSong)[0]
	assert.Equal(t, []string{"ha con vuong nang"}, song.Keywords)
	require.NotNil(t, song.Song)
	assert.Equal(t, "DatKaa", song.Song.Artist)
}

func TestIndex_KeywordsAlwaysNormalized(t *testing.T) {
	store := testStore()
	idx := NewIndex(store, "http://localhost:3000")
	require.NoError(t, idx.Rebuild(context.Background()))

	for _, entry := range idx.Entries() {
		require.NotEmpty(t, entry.Keywords, "entry %q must have keywords", entry.DisplayName)
		seen := map[string]bool{}
		for _, kw := range entry.Keywords {
			assert.False(t, seen[kw], "duplicate keyword %q on %q", kw, entry.DisplayName)
			seen[kw] = true
		}
	}
}

func TestIndex_RebuildFailureRetainsSnapshot(t *testing.T) {
	store := testStore()
	idx := NewIndex(store, "http://localhost:3000")
	require.NoError(t, idx.Rebuild(context.Background()))
	before := idx.Entries()

	store.failing = true
	err := idx.Rebuild(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, errStoreDown)

	// Stale snapshot still served.
	assert.Equal(t, before, idx.Entries())
}

func TestIndex_EmptyBeforeFirstRebuild(t *testing.T) {
	idx := NewIndex(&fakeStore{failing: true}, "http://localhost:3000")

	assert.Empty(t, idx.Entries())
	assert.Equal(t, 0, idx.Len())
	assert.True(t, idx.LastBuilt().IsZero())
}
