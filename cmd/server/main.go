package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/mercaditolabs/recommendation-service/internal/cache"
	"github.com/mercaditolabs/recommendation-service/internal/config"
	"github.com/mercaditolabs/recommendation-service/internal/engine"
	"github.com/mercaditolabs/recommendation-service/internal/handler"
	"github.com/mercaditolabs/recommendation-service/internal/metrics"
	"github.com/mercaditolabs/recommendation-service/internal/repository"
	"github.com/mercaditolabs/recommendation-service/internal/router"
	"github.com/mercaditolabs/recommendation-service/internal/service"
	"github.com/mercaditolabs/recommendation-service/seeds"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}

	ctx := context.Background()

	// ------------ PostgreSQL ---------------
	poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to parse database config")
	}
	poolConfig.MaxConns = int32(cfg.DBPoolSize)
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()

	if err := waitForDB(ctx, pool, logger); err != nil {
		logger.Fatal().Err(err).Msg("database not ready")
	}
	logger.Info().Msg("connected to PostgreSQL")

	// ------------ Run Migrations ---------------
	// for migrate-down using CLI command
	if len(os.Args) > 1 && os.Args[1] == "migrate-down" {
		if err := migrateDown(ctx, pool); err != nil {
			logger.Fatal().Err(err).Msg("failed to migrate down")
		}
		logger.Info().Msg("migrations dropped")
		return
	}

	if err := migrateUp(ctx, pool); err != nil {
		logger.Fatal().Err(err).Msg("failed to migrate up")
	}
	logger.Info().Msg("migrations applied")

	// ------------ Setup Seed Data ---------------
	if err := checkSeed(ctx, pool, logger); err != nil {
		logger.Fatal().Err(err).Msg("failed to check seed")
	}

	// ------------ Redis ---------------
	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to parse redis URL")
	}
	redisClient := redis.NewClient(redisOpts)
	defer redisClient.Close()

	recCache := cache.NewCache(redisClient, cfg.CacheTTL)
	if err := recCache.Ping(ctx); err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to redis")
	}
	logger.Info().Msg("connected to Redis")

	// ------------ Wiring ---------------
	metrics.Init()

	repo := repository.NewRepository(pool)
	eng := engine.New(repo, repo, repo, repo, engine.Config{
		Mapping:       cfg.CategoryMapping(),
		WindowDays:    cfg.ActivityWindowDays,
		MaxActivities: cfg.ActivityMaxRecords,
	}, logger)
	svc := service.NewService(repo, recCache, eng, logger)
	h := handler.NewHandler(svc)

	// ---------------- Server --------------------
	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: router.Setup(h, logger),
	}
	logger.Info().Str("addr", cfg.Addr()).Msg("server running")
	if err := srv.ListenAndServe(); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}

func waitForDB(ctx context.Context, pool *pgxpool.Pool, logger zerolog.Logger) error {
	for i := 0; i < 30; i++ {
		if err := pool.Ping(ctx); err == nil {
			return nil
		}
		logger.Info().Int("attempt", i+1).Msg("waiting for database...")
		time.Sleep(1 * time.Second)
	}
	return fmt.Errorf("database connection timeout after 30s")
}

func migrateDown(ctx context.Context, pool *pgxpool.Pool) error {
	sql, err := os.ReadFile("migrations/create_tables.down.sql")
	if err != nil {
		return fmt.Errorf("read migration file: %w", err)
	}
	if _, err := pool.Exec(ctx, string(sql)); err != nil {
		return fmt.Errorf("execute migration: %w", err)
	}
	return nil
}

func migrateUp(ctx context.Context, pool *pgxpool.Pool) error {
	sql, err := os.ReadFile("migrations/create_tables.up.sql")
	if err != nil {
		return fmt.Errorf("read migration file: %w", err)
	}
	if _, err := pool.Exec(ctx, string(sql)); err != nil {
		return fmt.Errorf("execute migration: %w", err)
	}
	return nil
}

func checkSeed(ctx context.Context, pool *pgxpool.Pool, logger zerolog.Logger) error {
	var count int
	if err := pool.QueryRow(ctx, "SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return fmt.Errorf("check users count: %w", err)
	}
	if count > 0 {
		logger.Info().Int("users", count).Msg("database already seeded, skipping")
		return nil
	}
	return seeds.Setup(ctx, pool)
}
