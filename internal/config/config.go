package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all configuration for the application
type Config struct {
	// Application settings
	Port            string `envconfig:"PORT" default:"8080"`
	GinMode         string `envconfig:"GIN_MODE" default:"debug"`
	MongodbURL      string `envconfig:"MONGODB_URL" required:"true"`
	MongodbName     string `envconfig:"MONGODB_NAME" default:"vibesync"`
	ValkeyURL       string `envconfig:"VALKEY_URL"`
	FrontendBaseURL string `envconfig:"FRONTEND_BASE_URL" default:"http://localhost:3000"`
	JWTSecret       string `envconfig:"JWT_SECRET" required:"true"`

	// Generator (Gemini) settings
	GeminiAPIKey         string `envconfig:"GOOGLE_API_KEY"`
	GeminiModel          string `envconfig:"GEMINI_MODEL" default:"gemini-2.0-flash"`
	GeminiTimeoutSeconds int    `envconfig:"GEMINI_TIMEOUT_SECONDS" default:"15"`

	// Catalog index refresh
	ReindexIntervalMinutes int `envconfig:"REINDEX_INTERVAL_MINUTES" default:"10"`

	Matching  MatchingConfig
	Recommend RecommendConfig
}

// MatchingConfig holds the similarity thresholds. The defaults are the
// product-tuned values; they are configuration, not invariants.
type MatchingConfig struct {
	// ResolveThreshold gates general entity resolution.
	ResolveThreshold float64 `envconfig:"RESOLVE_THRESHOLD" default:"0.6"`
	// ArtistMergeThreshold gates artist-name lookups, stricter since a
	// wrong match merges artist identities.
	ArtistMergeThreshold float64 `envconfig:"ARTIST_MERGE_THRESHOLD" default:"0.75"`
}

// RecommendConfig holds the recommendation tuning parameters.
type RecommendConfig struct {
	RecentWindow    int `envconfig:"RECOMMEND_RECENT_WINDOW" default:"5"`
	RepeatCap       int `envconfig:"RECOMMEND_REPEAT_CAP" default:"3"`
	OverFetch       int `envconfig:"RECOMMEND_OVERFETCH" default:"4"`
	DefaultLimit    int `envconfig:"RECOMMEND_DEFAULT_LIMIT" default:"10"`
	CacheTTLSeconds int `envconfig:"RECOMMEND_CACHE_TTL_SECONDS" default:"120"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// GeminiTimeout returns the generator timeout as a duration
func (c *Config) GeminiTimeout() time.Duration {
	return time.Duration(c.GeminiTimeoutSeconds) * time.Second
}

// ReindexInterval returns the catalog refresh period as a duration
func (c *Config) ReindexInterval() time.Duration {
	return time.Duration(c.ReindexIntervalMinutes) * time.Minute
}

// RecommendCacheTTL returns how long cached recommendations live
func (c *Config) RecommendCacheTTL() time.Duration {
	return time.Duration(c.Recommend.CacheTTLSeconds) * time.Second
}
