// Package recommend produces personalized song recommendations from
// listening, like, and follow history, with layered fallbacks that
// keep the result non-empty whenever the catalog has songs.
package recommend

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"vibesync/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrInvalidUserID is returned for a userID that is not a valid
// object id. It is the engine's only hard failure; missing data never
// raises.
var ErrInvalidUserID = errors.New("invalid user id")

// CatalogStore is the song/artist read surface the engine draws
// candidates from.
type CatalogStore interface {
	FindSongsByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Song, error)
	FindArtistsByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Artist, error)
	// FindByAffinity returns songs whose artist, genre, or tag matches
	// any of the given values, capped at limit, in store-query order.
	FindByAffinity(ctx context.Context, artists, genres, tags []string, limit int) ([]models.Song, error)
	MostRecentByReleaseYear(ctx context.Context, n int) ([]models.Song, error)
	RandomSample(ctx context.Context, n int) ([]models.Song, error)
}

// BehaviorStore is the listening/like/follow read surface.
type BehaviorStore interface {
	// ListenHistory returns the user's listen events newest first.
	ListenHistory(ctx context.Context, userID primitive.ObjectID) ([]models.ListenEvent, error)
	LikedArtistIDs(ctx context.Context, userID primitive.ObjectID) ([]primitive.ObjectID, error)
	FollowedArtistIDs(ctx context.Context, userID primitive.ObjectID) ([]primitive.ObjectID, error)
}

// Config holds the product-tuned engine parameters.
type Config struct {
	RecentWindow int // most recent listens feeding the affinity signal
	RepeatCap    int // play count at which a song is suppressed
	OverFetch    int // candidate over-fetch factor (limit × OverFetch)
	DefaultLimit int
}

// DefaultConfig returns the tuning the product shipped with.
func DefaultConfig() Config {
	return Config{
		RecentWindow: 5,
		RepeatCap:    3,
		OverFetch:    4,
		DefaultLimit: 10,
	}
}

// affinity is the derived per-request preference signal.
type affinity struct {
	recentSongIDs map[primitive.ObjectID]bool
	playCounts    map[primitive.ObjectID]int
	artists       []string
	genres        []string
	tags          []string
}

func (a *affinity) empty() bool {
	return len(a.artists) == 0 && len(a.genres) == 0 && len(a.tags) == 0
}

// Engine computes recommendations. It performs no writes of its own.
type Engine struct {
	catalog  CatalogStore
	behavior BehaviorStore
	cfg      Config
}

// NewEngine creates an engine over the given stores.
func NewEngine(catalog CatalogStore, behavior BehaviorStore, cfg Config) *Engine {
	def := DefaultConfig()
	if cfg.RecentWindow <= 0 {
		cfg.RecentWindow = def.RecentWindow
	}
	if cfg.RepeatCap <= 0 {
		cfg.RepeatCap = def.RepeatCap
	}
	if cfg.OverFetch <= 0 {
		cfg.OverFetch = def.OverFetch
	}
	if cfg.DefaultLimit <= 0 {
		cfg.DefaultLimit = def.DefaultLimit
	}
	return &Engine{catalog: catalog, behavior: behavior, cfg: cfg}
}

// Recommend returns up to limit songs for the user, without
// duplicates and never including the user's most recent listens.
// Store failures past input validation degrade to smaller (possibly
// empty) results rather than hard errors.
func (e *Engine) Recommend(ctx context.Context, userID string, limit int) ([]models.Song, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidUserID, userID)
	}
	if limit <= 0 {
		limit = e.cfg.DefaultLimit
	}

	signal := e.buildAffinity(ctx, uid)

	picked := make([]models.Song, 0, limit)
	seen := make(map[primitive.ObjectID]bool)

	// Candidate tier: affinity-matched songs in store-query order,
	// minus just-heard songs and over-played ones.
	if !signal.empty() {
		candidates, err := e.catalog.FindByAffinity(ctx, signal.artists, signal.genres, signal.tags, limit*e.cfg.OverFetch)
		if err != nil {
			slog.Warn("Affinity query failed, falling back", "userID", userID, "error", err)
		}
		for _, song := range candidates {
			if len(picked) >= limit {
				break
			}
			if seen[song.ID] || signal.recentSongIDs[song.ID] {
				continue
			}
			if signal.playCounts[song.ID] >= e.cfg.RepeatCap {
				continue
			}
			seen[song.ID] = true
			picked = append(picked, song)
		}
	}

	// Fallback tier A: globally newest releases.
	if len(picked) < limit {
		latest, err := e.catalog.MostRecentByReleaseYear(ctx, limit*e.cfg.OverFetch)
		if err != nil {
			slog.Warn("Latest-release fallback failed", "userID", userID, "error", err)
		}
		picked = fill(picked, latest, limit, seen, signal.recentSongIDs)
	}

	// Fallback tier B: random sample. Last on purpose: repeated calls
	// differ only in this tail.
	if len(picked) < limit {
		sample, err := e.catalog.RandomSample(ctx, limit-len(picked)+len(seen))
		if err != nil {
			slog.Warn("Random-sample fallback failed", "userID", userID, "error", err)
		}
		picked = fill(picked, sample, limit, seen, signal.recentSongIDs)
	}

	return picked, nil
}

// buildAffinity aggregates the user's recent listens plus liked and
// followed artists. Behavior-store failures yield a (partially) empty
// signal; the fallback tiers still produce a result.
func (e *Engine) buildAffinity(ctx context.Context, uid primitive.ObjectID) *affinity {
	signal := &affinity{
		recentSongIDs: make(map[primitive.ObjectID]bool),
		playCounts:    make(map[primitive.ObjectID]int),
	}

	history, err := e.behavior.ListenHistory(ctx, uid)
	if err != nil {
		slog.Warn("Listen history unavailable", "userID", uid.Hex(), "error", err)
		history = nil
	}

	artists := make(map[string]bool)
	genres := make(map[string]bool)
	tags := make(map[string]bool)

	if len(history) > 0 {
		for _, ev := range history {
			signal.playCounts[ev.SongID]++
		}

		window := e.cfg.RecentWindow
		if window > len(history) {
			window = len(history)
		}
		recentIDs := make([]primitive.ObjectID, 0, window)
		for _, ev := range history[:window] {
			if !signal.recentSongIDs[ev.SongID] {
				recentIDs = append(recentIDs, ev.SongID)
			}
			signal.recentSongIDs[ev.SongID] = true
		}

		recentSongs, err := e.catalog.FindSongsByIDs(ctx, recentIDs)
		if err != nil {
			slog.Warn("Recent songs lookup failed", "userID", uid.Hex(), "error", err)
		}
		for _, song := range recentSongs {
			if song.Artist != "" {
				artists[song.Artist] = true
			}
			for _, g := range song.Genre {
				genres[g] = true
			}
			for _, tg := range song.Tags {
				tags[tg] = true
			}
		}
	}

	// Liked and followed artists join the affinity set regardless of
	// listen history.
	var artistIDs []primitive.ObjectID
	if liked, err := e.behavior.LikedArtistIDs(ctx, uid); err != nil {
		slog.Warn("Liked artists unavailable", "userID", uid.Hex(), "error", err)
	} else {
		artistIDs = append(artistIDs, liked...)
	}
	if followed, err := e.behavior.FollowedArtistIDs(ctx, uid); err != nil {
		slog.Warn("Followed artists unavailable", "userID", uid.Hex(), "error", err)
	} else {
		artistIDs = append(artistIDs, followed...)
	}
	if len(artistIDs) > 0 {
		if named, err := e.catalog.FindArtistsByIDs(ctx, dedupe(artistIDs)); err != nil {
			slog.Warn("Affinity artists lookup failed", "userID", uid.Hex(), "error", err)
		} else {
			for _, artist := range named {
				if artist.Name != "" {
					artists[artist.Name] = true
				}
			}
		}
	}

	signal.artists = keys(artists)
	signal.genres = keys(genres)
	signal.tags = keys(tags)
	return signal
}

// fill appends songs from candidates until limit is reached, skipping
// duplicates and excluded ids. Order within candidates is preserved.
func fill(picked []models.Song, candidates []models.Song, limit int, seen, excluded map[primitive.ObjectID]bool) []models.Song {
	for _, song := range candidates {
		if len(picked) >= limit {
			break
		}
		if seen[song.ID] || excluded[song.ID] {
			continue
		}
		seen[song.ID] = true
		picked = append(picked, song)
	}
	return picked
}

func dedupe(ids []primitive.ObjectID) []primitive.ObjectID {
	seen := make(map[primitive.ObjectID]bool, len(ids))
	out := ids[:0]
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

func keys(set map[string]bool) []string {
	if len(set) == 0 {
		return nil
	}
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	return out
}
