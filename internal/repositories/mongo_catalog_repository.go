// Package repositories contains the MongoDB-backed implementations of
// the catalog, behavior, and chat store interfaces.
package repositories

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"vibesync/internal/models"
)

// MongoCatalogRepository reads songs, artists, and albums. It
// satisfies catalog.Store and recommend.CatalogStore.
type MongoCatalogRepository struct {
	songs   *mongo.Collection
	artists *mongo.Collection
	albums  *mongo.Collection
}

// NewMongoCatalogRepository creates a MongoDB-backed catalog repository
func NewMongoCatalogRepository(db *models.Database) *MongoCatalogRepository {
	return &MongoCatalogRepository{
		songs:   db.DB.Collection("songs"),
		artists: db.DB.Collection("artists"),
		albums:  db.DB.Collection("albums"),
	}
}

// ListSongs returns every song in the catalog
func (r *MongoCatalogRepository) ListSongs(ctx context.Context) ([]models.Song, error) {
	return findSongs(ctx, r.songs, bson.M{}, nil)
}

// ListArtists returns every artist in the catalog
func (r *MongoCatalogRepository) ListArtists(ctx context.Context) ([]models.Artist, error) {
	cursor, err := r.artists.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list artists: %w", err)
	}
	defer cursor.Close(ctx)

	var artists []models.Artist
	if err := cursor.All(ctx, &artists); err != nil {
		return nil, fmt.Errorf("failed to decode artists: %w", err)
	}
	return artists, nil
}

// ListAlbums returns every album in the catalog
func (r *MongoCatalogRepository) ListAlbums(ctx context.Context) ([]models.Album, error) {
	cursor, err := r.albums.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list albums: %w", err)
	}
	defer cursor.Close(ctx)

	var albums []models.Album
	if err := cursor.All(ctx, &albums); err != nil {
		return nil, fmt.Errorf("failed to decode albums: %w", err)
	}
	return albums, nil
}

// FindSongsByIDs returns the songs matching the given ids
func (r *MongoCatalogRepository) FindSongsByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Song, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return findSongs(ctx, r.songs, bson.M{"_id": bson.M{"$in": ids}}, nil)
}

// FindArtistsByIDs returns the artists matching the given ids
func (r *MongoCatalogRepository) FindArtistsByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Artist, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	cursor, err := r.artists.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("failed to find artists: %w", err)
	}
	defer cursor.Close(ctx)

	var artists []models.Artist
	if err := cursor.All(ctx, &artists); err != nil {
		return nil, fmt.Errorf("failed to decode artists: %w", err)
	}
	return artists, nil
}

// FindByAffinity returns songs whose artist, genre, or tag matches any
// of the given values, capped at limit, in store-query order.
func (r *MongoCatalogRepository) FindByAffinity(ctx context.Context, artists, genres, tags []string, limit int) ([]models.Song, error) {
	var clauses []bson.M
	if len(artists) > 0 {
		clauses = append(clauses, bson.M{"artist": bson.M{"$in": artists}})
	}
	if len(genres) > 0 {
		clauses = append(clauses, bson.M{"genre": bson.M{"$in": genres}})
	}
	if len(tags) > 0 {
		clauses = append(clauses, bson.M{"tags": bson.M{"$in": tags}})
	}
	if len(clauses) == 0 {
		return nil, nil
	}

	opts := options.Find().SetLimit(int64(limit))
	return findSongs(ctx, r.songs, bson.M{"$or": clauses}, opts)
}

// MostRecentByReleaseYear returns the n newest songs by release year
func (r *MongoCatalogRepository) MostRecentByReleaseYear(ctx context.Context, n int) ([]models.Song, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "release_year", Value: -1}}).
		SetLimit(int64(n))
	return findSongs(ctx, r.songs, bson.M{}, opts)
}

// RandomSample returns up to n songs sampled uniformly at random
func (r *MongoCatalogRepository) RandomSample(ctx context.Context, n int) ([]models.Song, error) {
	if n <= 0 {
		return nil, nil
	}

	pipeline := mongo.Pipeline{
		{{Key: "$sample", Value: bson.D{{Key: "size", Value: n}}}},
	}
	cursor, err := r.songs.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to sample songs: %w", err)
	}
	defer cursor.Close(ctx)

	var songs []models.Song
	if err := cursor.All(ctx, &songs); err != nil {
		return nil, fmt.Errorf("failed to decode sampled songs: %w", err)
	}
	return songs, nil
}

func findSongs(ctx context.Context, coll *mongo.Collection, filter bson.M, opts *options.FindOptions) ([]models.Song, error) {
	var cursor *mongo.Cursor
	var err error
	if opts != nil {
		cursor, err = coll.Find(ctx, filter, opts)
	} else {
		cursor, err = coll.Find(ctx, filter)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find songs: %w", err)
	}
	defer cursor.Close(ctx)

	var songs []models.Song
	if err := cursor.All(ctx, &songs); err != nil {
		return nil, fmt.Errorf("failed to decode songs: %w", err)
	}
	return songs, nil
}
