package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/route-scout/internal/config"
	"github.com/route-scout/internal/delivery/http/handler"
	"github.com/route-scout/internal/delivery/http/middleware"
)

// HealthChecker reports the health of a backing dependency
type HealthChecker interface {
	Health(ctx context.Context) error
}

// Server - Fiber based HTTP server
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	routeHandler  *handler.RouteHandler
	searchHandler *handler.SearchHandler
	storage       HealthChecker
}

func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	routeHandler *handler.RouteHandler,
	searchHandler *handler.SearchHandler,
	storage HealthChecker,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Route Scout",
		BodyLimit:    16 << 20,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:           app,
		config:        cfg,
		logger:        logger,
		routeHandler:  routeHandler,
		searchHandler: searchHandler,
		storage:       storage,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api/v1")

	api.Get("/health", s.health)

	// Route upload and retrieval
	api.Post("/routes", s.routeHandler.Upload)
	api.Get("/routes/:id", s.routeHandler.Get)

	// Place search along a route
	api.Post("/routes/:id/search", s.searchHandler.Search)
}

// health godoc
// @Summary Service health
// @Description Reports service status and storage connectivity
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /api/v1/health [get]
func (s *Server) health(c *fiber.Ctx) error {
	if err := s.storage.Health(c.Context()); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "degraded",
			"error":  err.Error(),
			"time":   time.Now(),
		})
	}

	return c.JSON(fiber.Map{
		"status": "healthy",
		"time":   time.Now(),
	})
}

// Start - blocking listen on the configured address
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "INTERNAL_SERVER_ERROR",
				"message": err.Error(),
			},
		})
	}
}
