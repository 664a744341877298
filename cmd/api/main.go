package main

// @title Route Scout API
// @version 1.0.0
// @description Service for searching points of interest along uploaded routes. Accepts KML and GPX route files, queries the Google Places API along the route, and ranks results by their distance to the route.
// @description
// @description Main features:
// @description - KML/GPX route upload and parsing
// @description - Free-text place search along a stored route
// @description - Distance, rating, price and open-now filtering
// @description - Results ranked by distance to the route

// @contact.name API Support
// @contact.email support@route-scout.dev

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/route-scout/docs/swagger"
	"github.com/route-scout/internal/config"
	httpDelivery "github.com/route-scout/internal/delivery/http"
	"github.com/route-scout/internal/delivery/http/handler"
	"github.com/route-scout/internal/infrastructure/places"
	"github.com/route-scout/internal/pkg/logger"
	"github.com/route-scout/internal/repository/cache"
	"github.com/route-scout/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Route Scout")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()
	log.Info("Redis connected")

	// 4. Health check
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	// 5. Initialize repositories
	routeRepo := cache.NewRouteRepository(redisClient)
	cacheRepo := cache.NewCacheRepository(redisClient)
	placesRepo := places.NewPlacesClient(&cfg.Places, log)

	log.Info("Repositories initialized")

	// 6. Initialize use cases
	routeUC := usecase.NewRouteUseCase(routeRepo, log, cfg.Cache.RouteTTL)

	searchUC := usecase.NewSearchUseCase(
		routeRepo,
		placesRepo,
		cacheRepo,
		log,
		usecase.SamplerConfig{
			SpacingMeters: cfg.Sampler.SpacingMeters,
			MaxSamples:    cfg.Sampler.MaxSamples,
		},
		cfg.Cache.SearchCacheTTL,
		cfg.Places.MaxResults,
	)

	log.Info("Use cases initialized")

	// 7. Initialize HTTP handlers
	routeHandler := handler.NewRouteHandler(routeUC, log)
	searchHandler := handler.NewSearchHandler(searchUC, log)

	// 8. Initialize HTTP server
	server := httpDelivery.NewServer(cfg, log, routeHandler, searchHandler, redisClient)

	// 9. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 10. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
