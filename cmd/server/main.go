package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/forgo/todos/api/internal/config"
	"github.com/forgo/todos/api/internal/database"
	"github.com/forgo/todos/api/internal/handler"
	"github.com/forgo/todos/api/internal/middleware"
	"github.com/forgo/todos/api/internal/repository"
	"github.com/forgo/todos/api/pkg/token"
)

func main() {
	// Initialize structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection. The server refuses to start without
	// a reachable store.
	db := database.NewSurrealDB(database.Config{
		Host:      cfg.Database.Host,
		Port:      cfg.Database.Port,
		User:      cfg.Database.User,
		Password:  cfg.Database.Password,
		Namespace: cfg.Database.Namespace,
		Database:  cfg.Database.Database,
	})

	ctx := context.Background()
	if err := db.Connect(ctx); err != nil {
		slog.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	slog.Info("connected to database",
		slog.String("host", cfg.Database.Host),
		slog.String("database", cfg.Database.Database),
	)

	// Initialize token verification
	tokenService, err := token.NewService(token.Config{
		PublicKeyPath: cfg.JWT.PublicKeyPath,
		Issuer:        cfg.JWT.Issuer,
	})
	if err != nil {
		slog.Error("failed to initialize token service", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize repositories and handlers
	todoRepo := repository.NewTodoRepository(db)
	todoHandler := handler.NewTodoHandler(todoRepo)

	docsHandler, err := handler.NewDocsHandler()
	if err != nil {
		slog.Error("failed to build API docs", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Create router and register routes
	mux := http.NewServeMux()

	// Health check and docs (public)
	mux.HandleFunc("GET /health", handler.Health)
	mux.HandleFunc("GET /api-docs", docsHandler.UI)
	mux.HandleFunc("GET /api-docs/openapi.json", docsHandler.Spec)

	// Todo endpoints (protected)
	authMiddleware := middleware.Auth(tokenService)
	mux.Handle("GET /todos", authMiddleware(http.HandlerFunc(todoHandler.List)))
	mux.Handle("POST /todos", authMiddleware(http.HandlerFunc(todoHandler.Create)))
	mux.Handle("GET /todos/{todoId}", authMiddleware(http.HandlerFunc(todoHandler.Get)))
	mux.Handle("PUT /todos/{todoId}", authMiddleware(http.HandlerFunc(todoHandler.Update)))
	mux.Handle("DELETE /todos/{todoId}", authMiddleware(http.HandlerFunc(todoHandler.Delete)))

	// Apply global middleware
	wrapped := middleware.Chain(
		mux,
		middleware.RequestID,
		middleware.Logger,
		middleware.Recovery,
		middleware.CORS(cfg.Server.AllowedOrigins),
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      wrapped,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Server.Port),
			slog.String("env", cfg.Server.Env),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", slog.String("error", err.Error()))
	}

	slog.Info("server exited")
}
