// Package main initializes and starts the TechPulse server, setting up
// configuration, logging, the JSON file store, repositories, services,
// and handlers.
package main

import (
	"cmp"
	"fmt"

	nethttp "net/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/prokashpul/techpulse/internal/assist"
	"github.com/prokashpul/techpulse/internal/config"
	"github.com/prokashpul/techpulse/internal/logger"
	"github.com/prokashpul/techpulse/internal/repository"
	"github.com/prokashpul/techpulse/internal/server/handler/http"
	"github.com/prokashpul/techpulse/internal/service"
	"github.com/prokashpul/techpulse/internal/storage"
)

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

func main() {
	// Parse command-line and environment configuration.
	options := config.Parse()

	// Print build metadata (or "N/A" if unset).
	fmt.Printf("Build version: %s\n", cmp.Or(version, "N/A"))
	fmt.Printf("Build date: %s\n", cmp.Or(buildDate, "N/A"))

	// Initialize structured logging.
	log := logger.New()
	defer func() { _ = log.Log.Sync() }()
	if err := log.Init(options.LogLevel); err != nil {
		log.Log.Fatal("failed to init logger", zap.Error(err))
	}
	zapLogger := log.Log

	// Initialize the JSON file store. Seed data is written lazily on
	// the first read of an empty slot.
	store := storage.New(options.DataDir, options.SeedPosts)

	// Initialize the file-backed repositories.
	postRepo := repository.NewFilePostRepository(store)
	userRepo := repository.NewFileUserRepository(store)
	commentRepo := repository.NewFileCommentRepository(store)
	sessionRepo := repository.NewFileSessionRepository(store)

	// Initialize business-logic services.
	postService := service.NewPostService(postRepo)
	authService := service.NewAuthService(userRepo, sessionRepo)
	commentService := service.NewCommentService(commentRepo, service.CommentScope(options.CommentScope))

	// The generative assist wrapper; per-user API keys override the
	// configured one.
	generator := assist.New(options.GeminiAPIKey, zapLogger)

	// Create HTTP handlers.
	validate := validator.New()
	postHandler := &http.PostHandler{PostService: postService, Validate: validate}
	authHandler := &http.AuthHandler{AuthService: authService, Validate: validate}
	commentHandler := &http.CommentHandler{CommentService: commentService, Validate: validate}
	adminHandler := &http.AdminHandler{AdminService: authService, StatsService: postService}
	assistHandler := &http.AssistHandler{Generator: generator, Validate: validate}

	// Build the router with middleware and routes.
	router := http.NewRouter(postHandler, authHandler, commentHandler, adminHandler, assistHandler, authService, zapLogger)

	server := &nethttp.Server{
		Addr:    options.Addr,
		Handler: router,
	}

	zapLogger.Info("starting HTTP server",
		zap.String("addr", options.Addr),
		zap.String("data_dir", options.DataDir),
	)
	if err := server.ListenAndServe(); err != nil {
		zapLogger.Fatal("failed to start HTTP server", zap.Error(err))
	}
}
