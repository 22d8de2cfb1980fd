package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/lbs-gateway/internal/config"
	"github.com/lbs-gateway/internal/pkg/logger"
	"github.com/lbs-gateway/internal/repository/cache"
	"github.com/lbs-gateway/internal/repository/postgres"
	redisRepo "github.com/lbs-gateway/internal/repository/redis"
	"github.com/lbs-gateway/internal/usecase"
	"github.com/lbs-gateway/internal/worker"
	"github.com/lbs-gateway/internal/worker/district"
	"github.com/lbs-gateway/internal/worker/geocode"
	"github.com/lbs-gateway/pkg/lbs"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	if !cfg.Worker.Enabled && !cfg.Worker.DistrictSyncEnabled {
		fmt.Println("All workers are disabled. Set WORKER_ENABLED=true or DISTRICT_SYNC_ENABLED=true to enable.")
		os.Exit(0)
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, "lbs-gateway-worker")
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting LBS workers",
		zap.Bool("geocode", cfg.Worker.Enabled),
		zap.Bool("district_sync", cfg.Worker.DistrictSyncEnabled),
		zap.String("consumer_group", cfg.Worker.ConsumerGroup),
		zap.Int("batch_size", cfg.Worker.BatchSize),
		zap.Duration("district_sync_interval", cfg.Worker.DistrictSyncInterval))

	// 3. LBS client
	client, err := lbs.New(cfg.LBS.Key, lbs.Config{
		BaseURL: cfg.LBS.BaseURL,
		Timeout: cfg.LBS.Timeout,
		Headers: cfg.LBS.Headers,
	}, log)
	if err != nil {
		log.Fatal("Failed to create LBS client", zap.Error(err))
	}

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	cacheRepo := cache.NewCacheRepository(redisClient)
	lookup := usecase.NewLookup(cacheRepo, nil, log, cfg.Cache.LookupCacheTTL)

	workerManager := worker.NewWorkerManager(log)

	// 5. Geocode stream worker
	if cfg.Worker.Enabled {
		streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)
		geocodeUC := usecase.NewGeocodeStreamUseCase(usecase.NewGeocoderUseCase(client, lookup), log)

		workerManager.Register(geocode.NewWorker(
			streamRepo,
			geocodeUC,
			cfg.Worker.ConsumerGroup,
			cfg.Worker.BatchSize,
			log,
		))
	}

	// 6. District sync worker (нужен PostgreSQL)
	if cfg.Worker.DistrictSyncEnabled {
		if cfg.Database.Host == "" {
			log.Warn("DB_HOST is not set, district sync is skipped")
		} else {
			db, err := postgres.New(&cfg.Database, log)
			if err != nil {
				log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
			}
			defer func() {
				if err := db.Close(); err != nil {
					log.Error("Failed to close PostgreSQL connection", zap.Error(err))
				}
			}()

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			err = db.Migrate(ctx)
			cancel()
			if err != nil {
				log.Fatal("Failed to apply migrations", zap.Error(err))
			}

			districtUC := usecase.NewDistrictUseCase(client, postgres.NewDistrictRepository(db), nil, log)
			workerManager.Register(district.NewSyncWorker(districtUC, cfg.Worker.DistrictSyncInterval, log))
		}
	}

	// 7. Start workers
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := workerManager.Start(ctx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	log.Info("Received shutdown signal")

	cancel()

	if err := workerManager.Stop(); err != nil {
		log.Error("Error stopping workers", zap.Error(err))
	}

	log.Info("Worker shutdown complete")
}
