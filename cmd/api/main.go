package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/jeremyjsx/journal/internal/backend"
	"github.com/jeremyjsx/journal/internal/config"
	"github.com/jeremyjsx/journal/internal/events"
	"github.com/jeremyjsx/journal/internal/handlers"
	"github.com/jeremyjsx/journal/internal/images"
	"github.com/jeremyjsx/journal/internal/middleware"
	"github.com/jeremyjsx/journal/internal/posts"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg := config.Load()

	backends, err := backend.Resolve(context.Background(), cfg, logger)
	if err != nil {
		logger.Error("resolving backends failed", "error", err)
		os.Exit(1)
	}

	var repo posts.Repository
	if backends.HasDB() {
		repo = posts.NewSQLRepository(backends.DB, backends.Driver)
	} else {
		logger.Warn("no database configured, using in-memory fallback store")
		repo = posts.NewFallbackStore()
	}

	imageStore := images.NewStore(backends.Blob, cfg.PublicBaseURL)
	if !backends.HasBlob() {
		logger.Warn("no blob storage configured, images will be inlined")
	}

	var publisher events.Publisher = events.NoopPublisher{}
	if cfg.RabbitMQURL != "" {
		rmq, err := events.NewRabbitMQPublisher(cfg.RabbitMQURL)
		if err != nil {
			logger.Error("connecting to rabbitmq failed", "error", err)
			os.Exit(1)
		}
		defer rmq.Close()
		publisher = rmq
	}

	svc := posts.NewService(repo, imageStore, publisher, logger)

	authHandler := handlers.NewAuthHandler(cfg.AdminPassword, cfg.IsProduction(), logger)
	postsHandler := handlers.NewPostsHandler(svc, logger, !cfg.IsProduction())
	imagesHandler := handlers.NewImagesHandler(imageStore, logger)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth", authHandler.Login())
	mux.HandleFunc("GET /api/posts", postsHandler.List())
	mux.Handle("POST /api/posts", middleware.RequireSession(postsHandler.Create()))
	mux.HandleFunc("GET /api/images/{filename}", imagesHandler.Get())
	mux.HandleFunc("GET /health", handlers.Health(&handlers.HealthDeps{
		Backends:    backends,
		RabbitMQURL: cfg.RabbitMQURL,
	}))

	handler := middleware.RequestID(middleware.Logging(logger)(mux))

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: handler,
	}

	logger.Info("journal: server started", "port", cfg.Port, "env", cfg.Env)
	if err := server.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
