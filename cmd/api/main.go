package main

// @title LBS Gateway API
// @version 1.0.0
// @description HTTP-шлюз к веб-сервису геолокации (apis.map.qq.com): поиск мест, геокодирование,
// @description маршруты, административное деление, преобразование координат и IP-геолокация.
// @description Идемпотентные запросы кэшируются в Redis, справочник районов хранится в PostgreSQL.

// @contact.name API Support

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

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	_ "github.com/lbs-gateway/docs"
	"github.com/lbs-gateway/internal/config"
	httpDelivery "github.com/lbs-gateway/internal/delivery/http"
	"github.com/lbs-gateway/internal/delivery/http/handler"
	"github.com/lbs-gateway/internal/domain/repository"
	"github.com/lbs-gateway/internal/pkg/logger"
	"github.com/lbs-gateway/internal/pkg/metrics"
	"github.com/lbs-gateway/internal/repository/cache"
	"github.com/lbs-gateway/internal/repository/postgres"
	"github.com/lbs-gateway/internal/usecase"
	"github.com/lbs-gateway/pkg/lbs"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, "lbs-gateway-api")
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting LBS Gateway")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("lbs_base_url", cfg.LBS.BaseURL),
	)

	// 3. Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	lbsMetrics := metrics.NewLBSMetrics(registry)

	// 4. LBS client
	client, err := lbs.New(cfg.LBS.Key, lbs.Config{
		BaseURL:  cfg.LBS.BaseURL,
		Timeout:  cfg.LBS.Timeout,
		Headers:  cfg.LBS.Headers,
		Observer: lbsMetrics,
	}, log)
	if err != nil {
		log.Fatal("Failed to create LBS client", zap.Error(err))
	}

	// 5. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	checks := map[string]handler.HealthChecker{"redis": redisClient}

	// 6. PostgreSQL (справочник районов) - необязателен
	var (
		db           *postgres.DB
		districtRepo repository.DistrictRepository
	)
	if cfg.Database.Host != "" {
		db, err = postgres.New(&cfg.Database, log)
		if err != nil {
			log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		err = db.Migrate(ctx)
		cancel()
		if err != nil {
			log.Fatal("Failed to apply migrations", zap.Error(err))
		}

		districtRepo = postgres.NewDistrictRepository(db)
		checks["postgres"] = db
	} else {
		log.Warn("DB_HOST is not set, district lookups go to upstream only")
	}

	// 7. Initialize Use Cases
	cacheRepo := cache.NewCacheRepository(redisClient)
	lookup := usecase.NewLookup(cacheRepo, lbsMetrics, log, cfg.Cache.LookupCacheTTL)
	districtLookup := usecase.NewLookup(cacheRepo, lbsMetrics, log, cfg.Cache.DistrictCacheTTL)

	placeUC := usecase.NewPlaceUseCase(client, lookup)
	geocoderUC := usecase.NewGeocoderUseCase(client, lookup)
	addressUC := usecase.NewAddressUseCase(client, lookup)
	routeUC := usecase.NewRouteUseCase(client, lookup)
	locationUC := usecase.NewLocationUseCase(client, lookup)
	districtUC := usecase.NewDistrictUseCase(client, districtRepo, districtLookup, log)

	log.Info("Use cases initialized")

	// 8. HTTP Server
	server := httpDelivery.NewServer(cfg, log, httpDelivery.Handlers{
		Place:    handler.NewPlaceHandler(placeUC),
		Geocoder: handler.NewGeocoderHandler(geocoderUC),
		Address:  handler.NewAddressHandler(addressUC),
		Route:    handler.NewRouteHandler(routeUC),
		District: handler.NewDistrictHandler(districtUC),
		Location: handler.NewLocationHandler(locationUC),
		Health:   handler.NewHealthHandler(checks),
	}, registry)

	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully", zap.String("address", cfg.GetServerAddr()))

	// 9. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	if db != nil {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL", zap.Error(err))
		}
	}

	if err := redisClient.Close(); err != nil {
		log.Error("Failed to close Redis", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
