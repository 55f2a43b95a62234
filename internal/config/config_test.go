package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("MONGODB_URL", "mongodb://localhost:27017")
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "vibesync", cfg.MongodbName)
	assert.Equal(t, "http://localhost:3000", cfg.FrontendBaseURL)
	assert.Equal(t, "gemini-2.0-flash", cfg.GeminiModel)
	assert.Equal(t, 15*time.Second, cfg.GeminiTimeout())
	assert.Equal(t, 10*time.Minute, cfg.ReindexInterval())

	assert.Equal(t, 0.6, cfg.Matching.ResolveThreshold)
	assert.Equal(t, 0.75, cfg.Matching.ArtistMergeThreshold)
	assert.Equal(t, 5, cfg.Recommend.RecentWindow)
	assert.Equal(t, 3, cfg.Recommend.RepeatCap)
	assert.Equal(t, 4, cfg.Recommend.OverFetch)
	assert.Equal(t, 10, cfg.Recommend.DefaultLimit)
	assert.Equal(t, 2*time.Minute, cfg.RecommendCacheTTL())
}

func TestLoad_RequiresMongoURL(t *testing.T) {
	// t.Setenv registers the restore; the variable must be absent, not
	// merely empty, for envconfig's required check to fire.
	t.Setenv("MONGODB_URL", "placeholder")
	os.Unsetenv("MONGODB_URL")
	t.Setenv("JWT_SECRET", "test-secret")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("MONGODB_URL", "mongodb://localhost:27017")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("RESOLVE_THRESHOLD", "0.7")
	t.Setenv("RECOMMEND_RECENT_WINDOW", "8")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 0.7, cfg.Matching.ResolveThreshold)
	assert.Equal(t, 8, cfg.Recommend.RecentWindow)
}
