package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/neexbeast/tripmuse/internal/api"
	"github.com/neexbeast/tripmuse/internal/cache"
	"github.com/neexbeast/tripmuse/internal/config"
	"github.com/neexbeast/tripmuse/internal/engine"
	"github.com/neexbeast/tripmuse/internal/generator"
	"github.com/neexbeast/tripmuse/internal/storage"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	if err := run(log); err != nil {
		log.Error("server exited with error", "err", err)
		os.Exit(1)
	}
}

func run(log *slog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	ctx := context.Background()

	// Connect to PostgreSQL and apply migrations.
	pool, err := storage.Connect(ctx, cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer pool.Close()

	if err := storage.RunMigrations(ctx, pool, cfg.Database.MigrationsDir); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	log.Info("migrations applied")

	// Redis is optional; without it the pool-cache fallback rung is skipped.
	var redisClient *redis.Client
	var poolCache engine.PoolCache
	if cfg.Redis.URL != "" {
		redisClient, err = cache.Connect(ctx, cfg.Redis.URL)
		if err != nil {
			return fmt.Errorf("connecting to redis: %w", err)
		}
		defer func() { _ = redisClient.Close() }()
		poolCache = cache.NewPoolCache(redisClient)
	} else {
		log.Warn("redis url not configured, pool cache disabled")
	}

	// Wire dependencies.
	gen := generator.NewClient(generator.Config{
		BaseURL:        cfg.Generator.BaseURL,
		APIKey:         cfg.Generator.APIKey,
		PrimaryModel:   cfg.Generator.PrimaryModel,
		SecondaryModel: cfg.Generator.SecondaryModel,
		Temperature:    cfg.Generator.Temperature,
	})

	safety := engine.NewSafetyList(cfg.Safety.BlockedCountries, cfg.Safety.BlockedCities)
	recency := engine.NewRecencyCache(cfg.Engine.RecencyCapacity)

	floors := engine.DefaultRegionFloors()
	for region, hours := range cfg.Engine.RegionFloors {
		floors[engine.ParseRegion(region)] = hours
	}

	eng := engine.New(gen, safety, recency, log, engine.Options{
		Pools:           poolCache,
		UpstreamTimeout: cfg.Generator.Timeout,
		RegionFloors:    floors,
	})

	repo := storage.NewRepository(pool)
	handlers := api.NewHandlers(eng, gen, repo, log)

	var redisPinger api.Pinger
	if redisClient != nil {
		redisPinger = &redisPingerAdapter{client: redisClient}
	}
	router := api.NewRouter(handlers, cfg.Server.BearerToken, cfg.Server.RateLimitPerMinute, pool, redisPinger, log)

	srv := &http.Server{
		Addr:        ":" + cfg.Server.Port,
		Handler:     router,
		ReadTimeout: 15 * time.Second,
		// The fallback ladder may spend up to three bounded generator calls
		// on one request; the write timeout must outlast the worst case.
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Error("server goroutine panicked", "recover", r)
				errCh <- fmt.Errorf("server panicked: %v", r)
			}
		}()
		log.Info("server starting", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("listening: %w", err)
		}
	}()

	select {
	case sig := <-quit:
		log.Info("shutdown signal received", "signal", sig)
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}

	log.Info("server shut down cleanly")
	return nil
}

// redisPingerAdapter adapts redis.Client to the api.Pinger interface.
type redisPingerAdapter struct {
	client *redis.Client
}

func (r *redisPingerAdapter) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
