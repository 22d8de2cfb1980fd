package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/lbs-gateway/internal/config"
	"github.com/lbs-gateway/internal/delivery/http/handler"
	"github.com/lbs-gateway/internal/delivery/http/middleware"
	"github.com/lbs-gateway/internal/pkg/errors"
	"github.com/lbs-gateway/internal/pkg/utils"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"
)

// Handlers - обработчики API
type Handlers struct {
	Place    *handler.PlaceHandler
	Geocoder *handler.GeocoderHandler
	Address  *handler.AddressHandler
	Route    *handler.RouteHandler
	District *handler.DistrictHandler
	Location *handler.LocationHandler
	Health   *handler.HealthHandler
}

// Server - HTTP сервер на основе Fiber
type Server struct {
	app      *fiber.App
	config   *config.Config
	logger   *zap.Logger
	handlers Handlers
	gatherer prometheus.Gatherer
}

// NewServer - создание HTTP сервера. gatherer == nil отключает /metrics.
func NewServer(cfg *config.Config, logger *zap.Logger, handlers Handlers, gatherer prometheus.Gatherer) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "LBS Gateway",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:      app,
		config:   cfg,
		logger:   logger,
		handlers: handlers,
		gatherer: gatherer,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.RequestID())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

func (s *Server) setupRoutes() {
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	if s.gatherer != nil {
		s.app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})))
	}

	api := s.app.Group("/api/v1")
	h := s.handlers

	api.Get("/health", h.Health.Health)

	// статические пути регистрируются раньше параметризованных
	place := api.Group("/place")
	place.Get("/search", h.Place.Search)
	place.Get("/explore", h.Place.Explore)
	place.Get("/suggestion", h.Place.Suggestion)
	place.Get("/:id", h.Place.Detail)

	api.Get("/geocoder", h.Geocoder.Geocode)
	api.Get("/geocoder/reverse", h.Geocoder.Reverse)
	api.Get("/geocoder/smart", h.Geocoder.Smart)

	address := api.Group("/address")
	address.Get("/truth", h.Address.Truth)
	address.Get("/complete", h.Address.Complete)
	address.Get("/abnormal", h.Address.Abnormal)
	address.Get("/name", h.Address.NameAddress)
	address.Get("/place", h.Address.Place)

	api.Get("/direction/trucking", h.Route.Trucking)
	api.Get("/direction/:mode", h.Route.Direction)
	api.Get("/distance/matrix", h.Route.Matrix)

	district := api.Group("/district")
	district.Get("/", h.District.List)
	district.Get("/search", h.District.Search)
	district.Get("/:id/children", h.District.Children)
	district.Get("/:id", h.District.Get)

	api.Get("/coord/translate", h.Location.CoordTranslate)
	api.Get("/location/ip", h.Location.IP)
	api.Post("/location/network", h.Location.Network)
}

// App - fiber приложение (тесты)
func (s *Server) App() *fiber.App {
	return s.app
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - ошибки fiber (404, 405, ...) в формате API
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		if code >= fiber.StatusInternalServerError {
			logger.Error("HTTP Error",
				zap.String("path", c.Path()),
				zap.Int("status", code),
				zap.Error(err),
			)
		}

		return c.Status(code).JSON(utils.ErrorResponse{
			Error: errors.New(fiberCode(code), err.Error(), code),
		})
	}
}

func fiberCode(status int) string {
	switch status {
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	default:
		return "INTERNAL_SERVER_ERROR"
	}
}
