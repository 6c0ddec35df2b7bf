// Package main is the entry point for the Lead Management API.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/white/lead-management/config"
	_ "github.com/white/lead-management/docs"
	"github.com/white/lead-management/internal/events"
	"github.com/white/lead-management/internal/handlers"
	"github.com/white/lead-management/internal/repositories"
	"github.com/white/lead-management/pkg/kafka"
	"github.com/white/lead-management/pkg/logger"
	"github.com/white/lead-management/pkg/mongodb"
	"go.uber.org/zap"
)

// @title Lead Management API
// @version 1.0
// @description Sales agents, leads, tags, comments and lead reports.
// @BasePath /
func main() {
	// Load environment variables (ignore error in dev)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()
	zap.ReplaceGlobals(zapLogger)

	mongoClient, err := mongodb.NewClient(mongodb.Config{
		URI:         cfg.MongoDB.URI,
		Database:    cfg.MongoDB.Database,
		MaxPoolSize: cfg.MongoDB.MaxPoolSize,
		MinPoolSize: cfg.MongoDB.MinPoolSize,
		MaxRetries:  cfg.MongoDB.MaxRetries,
		TLSCAFile:   cfg.MongoDB.TLSCAFile,
	}, zapLogger)
	if err != nil {
		zapLogger.Fatal("failed to connect to mongodb", zap.Error(err))
	}

	indexCtx, cancelIndexes := context.WithTimeout(context.Background(), 30*time.Second)
	if err := repositories.EnsureIndexes(indexCtx, mongoClient); err != nil {
		zapLogger.Fatal("failed to ensure indexes", zap.Error(err))
	}
	cancelIndexes()

	// Lead events are only published when brokers are configured
	var producer *kafka.Producer
	var eventProducer events.Producer
	if cfg.Kafka.Enabled() {
		producer, err = kafka.NewProducer(cfg.Kafka, zapLogger)
		if err != nil {
			zapLogger.Fatal("failed to create kafka producer", zap.Error(err))
		}
		eventProducer = producer
	}
	publisher := events.NewLeadPublisher(eventProducer, cfg.Kafka.Topics.LeadEvents, zapLogger)

	agentRepo := repositories.NewMongoAgentRepository(mongoClient)
	leadRepo := repositories.NewMongoLeadRepository(mongoClient)
	tagRepo := repositories.NewMongoTagRepository(mongoClient)
	commentRepo := repositories.NewMongoCommentRepository(mongoClient)
	reportRepo := repositories.NewMongoReportRepository(mongoClient)

	router := handlers.NewRouter(handlers.RouterConfig{
		Agents:         handlers.NewAgentHandler(agentRepo),
		Leads:          handlers.NewLeadHandler(leadRepo, publisher),
		Tags:           handlers.NewTagHandler(tagRepo),
		Comments:       handlers.NewCommentHandler(commentRepo),
		Reports:        handlers.NewReportHandler(reportRepo),
		Health:         handlers.NewHealthHandler(mongoClient, cfg.Server.Version),
		Logger:         zapLogger,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
	})

	// HTTP server configuration
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start server
	go func() {
		zapLogger.Info("server running",
			zap.String("addr", srv.Addr),
			zap.String("environment", cfg.Server.Environment))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("server failed to start", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Error("server forced to shutdown", zap.Error(err))
	}
	if producer != nil {
		producer.Close()
	}
	if err := mongoClient.Disconnect(ctx); err != nil {
		zapLogger.Error("failed to disconnect from mongodb", zap.Error(err))
	}

	zapLogger.Info("server stopped")
}
