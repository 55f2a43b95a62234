package testutil

import (
	"context"
	"testing"

	"vibesync/internal/catalog"
	"vibesync/internal/models"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StaticCatalog is an in-memory catalog.Store for tests.
type StaticCatalog struct {
	Songs   []models.Song
	Artists []models.Artist
	Albums  []models.Album
}

func (s *StaticCatalog) ListSongs(context.Context) ([]models.Song, error)     { return s.Songs, nil }
func (s *StaticCatalog) ListArtists(context.Context) ([]models.Artist, error) { return s.Artists, nil }
func (s *StaticCatalog) ListAlbums(context.Context) ([]models.Album, error)   { return s.Albums, nil }

// FixtureCatalog returns a small Vietnamese/English catalog used
// across tests.
func FixtureCatalog() *StaticCatalog {
	return &StaticCatalog{
		Artists: []models.Artist{
			{
				ID:        primitive.NewObjectID(),
				Name:      "Sơn Tùng M-TP",
				Aliases:   []string{"M-TP"},
				Bio:       "Ca sĩ, nhạc sĩ và nhà sản xuất âm nhạc người Việt Nam.",
				Followers: 1200000,
			},
			{ID: primitive.NewObjectID(), Name: "Taylor Swift", Followers: 90000000},
		},
		Songs: []models.Song{
			{
				ID:          primitive.NewObjectID(),
				Title:       "Hạ Còn Vương Nắng",
				Artist:      "DatKaa",
				ReleaseYear: 2020,
				Genre:       []string{"ballad"},
			},
			{
				ID:          primitive.NewObjectID(),
				Title:       "Nơi Này Có Anh",
				Artist:      "Sơn Tùng M-TP",
				ReleaseYear: 2017,
				Genre:       []string{"pop"},
			},
		},
		Albums: []models.Album{
			{ID: primitive.NewObjectID(), Title: "Sky Tour", ReleaseYear: 2019},
		},
	}
}

// NewFixtureIndex builds and rebuilds an index over FixtureCatalog.
func NewFixtureIndex(t testing.TB, baseURL string) *catalog.Index {
	t.Helper()
	idx := catalog.NewIndex(FixtureCatalog(), baseURL)
	require.NoError(t, idx.Rebuild(context.Background()))
	return idx
}
