package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/MauGud/amanda-project/application/services"
	"github.com/MauGud/amanda-project/infrastructure/config"
	"github.com/MauGud/amanda-project/infrastructure/media"
	"github.com/MauGud/amanda-project/infrastructure/supabase"
	"github.com/MauGud/amanda-project/interfaces/http/rest"
)

func main() {
	// Load .env if present; real environments set variables directly
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	client, err := supabase.NewClient(cfg.SupabaseURL, cfg.SupabaseAnonKey)
	if err != nil {
		logger.Fatal("Failed to connect to data store", zap.Error(err))
	}

	photos := supabase.NewPhotoStore(client, cfg.StorageBucket)
	gateway := supabase.NewGateway(client, photos, logger)
	pipeline := media.NewPipeline()

	phraseService := services.NewPhraseService(gateway, logger)
	memoryService := services.NewMemoryService(gateway, photos, pipeline, logger)
	reminderService := services.NewReminderService(gateway, logger)

	router := rest.NewRouter(
		phraseService,
		memoryService,
		memoryService,
		reminderService,
		cfg.MaxUploadBytes,
		cfg.EnableCORS,
		logger,
	)

	srv := &http.Server{
		Addr:         cfg.ServerAddress,
		Handler:      router.Setup(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting server",
			zap.String("address", cfg.ServerAddress),
			zap.String("environment", cfg.Environment),
			zap.String("bucket", cfg.StorageBucket),
		)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", zap.Error(err))
	}

	_ = logger.Sync()
	log.Println("Server stopped")
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
