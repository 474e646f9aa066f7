// ABOUTME: Main entry point for the Headmeta API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"headmeta-api/api"
	"headmeta-api/api/handlers"
	coreconfig "headmeta-api/core/config"
	"headmeta-api/core/interfaces"
	"headmeta-api/core/services"
	"headmeta-api/infrastructure/cache/memory"
	"headmeta-api/infrastructure/cache/redis"
	"headmeta-api/infrastructure/headstore/document"
	logruslogger "headmeta-api/infrastructure/logger/logrus"
	"headmeta-api/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Create logger
	logger := logruslogger.NewLoggerWithLevel(cfg.LogLevel)
	logger.Info("Starting Headmeta API", map[string]interface{}{
		"port":       cfg.Server.Port,
		"cache_type": cfg.Cache.Type,
	})

	// Create render cache
	var cache interfaces.Cache
	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.Cache.Redis)
		if err != nil {
			logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			cache = memory.NewMemoryCache(
				time.Duration(cfg.Cache.Memory.DefaultExpiration)*time.Second,
				time.Duration(cfg.Cache.Memory.CleanupInterval)*time.Second,
			)
		} else {
			cache = redisCache
			logger.Info("Using Redis cache", map[string]interface{}{
				"address": cfg.Cache.Redis.Address,
			})
		}
	default:
		cache = memory.NewMemoryCache(
			time.Duration(cfg.Cache.Memory.DefaultExpiration)*time.Second,
			time.Duration(cfg.Cache.Memory.CleanupInterval)*time.Second,
		)
		logger.Info("Using memory cache", nil)
	}

	// Create dependencies container
	deps := interfaces.Dependencies{
		Cache:  cache,
		Logger: logger,
	}

	// Create services
	renderService := services.NewRenderService(
		deps,
		document.NewParser(),
		coreconfig.WithCacheTTL(time.Duration(cfg.Cache.TTL)*time.Second),
	)

	// Create API with middleware
	apiConfig := api.APIConfig{
		Logger:    logger,
		RateLimit: cfg.RateLimit.RequestsPerMinute,
		RateBurst: cfg.RateLimit.Burst,
	}
	humaAPI, router := api.NewAPIWithMiddleware(apiConfig)

	// Create and register handlers
	renderHandler := handlers.NewRenderHandler(renderService)
	renderHandler.RegisterRoutes(humaAPI)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
	}

	logger.Info("Server exited", nil)
}
