package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"vibesync/internal/auth"
	"vibesync/internal/cache"
	"vibesync/internal/catalog"
	"vibesync/internal/chat"
	"vibesync/internal/config"
	"vibesync/internal/handlers"
	"vibesync/internal/models"
	"vibesync/internal/recommend"
	"vibesync/internal/repositories"
	"vibesync/internal/resolve"
	"vibesync/internal/services"
)

func main() {
	// Load .env file for local development
	_ = godotenv.Load()

	// Initialize structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize database
	db, err := models.NewDatabase(ctx, cfg.MongodbURL, cfg.MongodbName)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close(context.Background())

	if err := db.CreateIndexes(ctx); err != nil {
		slog.Warn("Failed to create database indexes", "error", err)
	}

	// Initialize cache, falling back to in-memory when Valkey is not
	// configured
	var appCache cache.Cache
	if cfg.ValkeyURL != "" {
		appCache, err = cache.NewValkeyCache(cfg.ValkeyURL)
		if err != nil {
			slog.Warn("Valkey unavailable, using in-memory cache", "error", err)
			appCache = cache.NewSimpleCache()
		}
	} else {
		appCache = cache.NewSimpleCache()
	}
	defer appCache.Close()

	// Repositories
	catalogRepo := repositories.NewMongoCatalogRepository(db)
	behaviorRepo := repositories.NewMongoBehaviorRepository(db)
	chatRepo := repositories.NewMongoChatRepository(db)

	// Catalog index. A failed initial build leaves the index empty;
	// the refresh loop and the admin endpoint can fill it later.
	index := catalog.NewIndex(catalogRepo, cfg.FrontendBaseURL)
	if err := index.Rebuild(ctx); err != nil {
		slog.Error("Initial catalog index build failed", "error", err)
	} else {
		slog.Info("Catalog index built", "entries", index.Len())
	}
	go refreshIndex(ctx, index, cfg.ReindexInterval())

	// Core services
	resolver := resolve.NewResolver(index, cfg.Matching.ResolveThreshold, cfg.Matching.ArtistMergeThreshold)
	gemini := services.NewGeminiService(cfg.GeminiAPIKey, cfg.GeminiModel, cfg.GeminiTimeout())
	orchestrator := chat.NewOrchestrator(resolver, gemini, chatRepo)
	engine := recommend.NewEngine(catalogRepo, behaviorRepo, recommend.Config{
		RecentWindow: cfg.Recommend.RecentWindow,
		RepeatCap:    cfg.Recommend.RepeatCap,
		OverFetch:    cfg.Recommend.OverFetch,
		DefaultLimit: cfg.Recommend.DefaultLimit,
	})

	// Handlers
	chatHandler := handlers.NewChatHandler(orchestrator)
	recsHandler := handlers.NewRecommendationsHandler(engine, appCache, cfg.RecommendCacheTTL())
	resolveHandler := handlers.NewResolveHandler(resolver, index)
	listensHandler := handlers.NewListensHandler(behaviorRepo)
	healthHandler := handlers.NewHealthHandler(appCache, index)

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	router.GET("/health", healthHandler.Health)

	api := router.Group("/api", auth.Middleware(cfg.JWTSecret))
	{
		api.POST("/chat", chatHandler.Chat)
		api.GET("/chat/history", chatHandler.History)
		api.DELETE("/chat/history", chatHandler.ClearHistory)

		api.GET("/recommendations", recsHandler.Recommendations)

		api.GET("/resolve", resolveHandler.Resolve)
		api.GET("/resolve/artist", resolveHandler.ResolveArtist)

		api.POST("/listens", listensHandler.RecordListen)
		api.GET("/listens/:songId/repeats", listensHandler.RepeatCount)

		api.POST("/admin/reindex", resolveHandler.Reindex)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		slog.Info("Starting server", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown failed", "error", err)
	}
}

// refreshIndex periodically rebuilds the catalog index until ctx is
// cancelled. A failed rebuild keeps the previous snapshot.
func refreshIndex(ctx context.Context, index *catalog.Index, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := index.Rebuild(ctx); err != nil {
				slog.Warn("Catalog index refresh failed", "error", err)
				continue
			}
			slog.Debug("Catalog index refreshed", "entries", index.Len())
		}
	}
}
