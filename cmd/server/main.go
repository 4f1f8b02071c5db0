package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"atrium/internal/categories"
	"atrium/internal/config"
	"atrium/internal/handler"
	"atrium/internal/kvstore"
	"atrium/internal/middleware"
	"atrium/internal/repository"
	"atrium/internal/service"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	cfg := config.Load()

	// Setup structured logging
	logLevel := slog.LevelInfo
	if cfg.Environment == "dev" {
		logLevel = slog.LevelDebug
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"auth_enabled", cfg.APIToken != "",
	)

	// Create the key-value store. Without DATABASE_URL the server runs on an
	// in-memory store; fine for local development, nothing survives restart.
	ctx := context.Background()
	var store kvstore.Store
	if cfg.DatabaseURL != "" {
		pgStore, err := kvstore.NewPostgresStore(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to connect to store: %v", err)
		}
		defer pgStore.Close()
		store = pgStore
		logger.Info("store connected", "backend", "postgres")
	} else {
		store = kvstore.NewMemoryStore()
		logger.Warn("DATABASE_URL not set, using in-memory store")
	}

	// Category registry (embedded config)
	registry, err := categories.NewRegistry()
	if err != nil {
		log.Fatalf("Failed to load category registry: %v", err)
	}

	// Create repositories
	docRepo := repository.NewDocumentRepository(store, logger)
	structureRepo := repository.NewStructureRepository(store, logger)
	postRepo := repository.NewPostRepository(store, logger)

	// Create services
	docService := service.NewDocumentService(docRepo, registry, logger)
	structureService := service.NewStructureService(structureRepo, logger)
	communityService := service.NewCommunityService(postRepo, logger)

	// Create handlers
	docHandler := handler.NewDocumentHandler(docService, logger)
	structureHandler := handler.NewStructureHandler(structureService, logger)
	communityHandler := handler.NewCommunityHandler(communityService, logger)

	logger.Info("services initialized")

	mux := handler.NewRouter(docHandler, structureHandler, communityHandler)

	// Build middleware chain (applied in reverse order, they wrap each other)
	var h http.Handler = mux
	h = middleware.BearerAuth(cfg.APIToken)(h)
	h = middleware.Recovery(logger)(h)

	// CORS - must wrap auth so OPTIONS pre-flight requests pass
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
	})
	h = corsHandler.Handler(h)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      h,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("listening", "port", cfg.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to start server: %v", err)
	}
}
