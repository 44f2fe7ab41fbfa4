package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mercaditolabs/recommendation-service/internal/cache"
	"github.com/mercaditolabs/recommendation-service/internal/domain"
	"github.com/mercaditolabs/recommendation-service/internal/engine"
	"github.com/mercaditolabs/recommendation-service/internal/metrics"
	"github.com/mercaditolabs/recommendation-service/internal/repository"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const (
	maxLimit         = 50
	batchConcurrency = 10
	batchRecLimit    = engine.DefaultLimit
)

type Service struct {
	repo   *repository.Repository
	cache  *cache.Cache
	engine *engine.Engine
	log    zerolog.Logger
}

func NewService(repo *repository.Repository, cache *cache.Cache, eng *engine.Engine, logger zerolog.Logger) *Service {
	return &Service{
		repo:   repo,
		cache:  cache,
		engine: eng,
		log:    logger.With().Str("component", "service").Logger(),
	}
}

func (s *Service) GetRecommendations(ctx context.Context, userID int64, limit int) (*domain.RecommendationResult, error) {
	if limit <= 0 {
		limit = engine.DefaultLimit
	} else if limit > maxLimit {
		limit = maxLimit
	}
	metrics.RecommendRequests.Inc()
	start := time.Now()
	defer func() { metrics.RecommendLatency.Observe(time.Since(start).Seconds()) }()

	// The engine tolerates unknown users (cold start); the API contract
	// does not, so check existence up front.
	if _, err := s.repo.GetUserByID(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("fetch user: %w", err)
	}

	// Check cache
	cached, found, err := s.cache.Get(ctx, userID, limit)
	if err != nil {
		s.log.Warn().Err(err).Int64("user_id", userID).Msg("cache get failed")
	}

	if found {
		metrics.RecommendCacheHits.Inc()
		return &domain.RecommendationResult{
			Recommendations: cached,
			CacheHit:        true,
		}, nil
	}

	// Cache miss -> generate recommendations
	recs, err := s.engine.Recommend(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("generate recommendations: %w", err)
	}

	if cacheErr := s.cache.Set(ctx, userID, limit, recs); cacheErr != nil {
		s.log.Warn().Err(cacheErr).Int64("user_id", userID).Msg("cache set failed")
	}

	return &domain.RecommendationResult{
		Recommendations: recs,
		CacheHit:        false,
	}, nil
}

func (s *Service) GetBatchRecommendations(ctx context.Context, page, limit int) (*domain.BatchResponse, error) {
	start := time.Now()

	userIDs, err := s.repo.GetUserIDsPaginated(ctx, page, limit)
	if err != nil {
		return nil, fmt.Errorf("fetch user ids: %w", err)
	}

	totalUsers, err := s.repo.CountUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	// Process users concurrently with a bounded pool; each slot is
	// written by exactly one goroutine.
	results := make([]domain.BatchUserResult, len(userIDs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(batchConcurrency)
	for i, userID := range userIDs {
		i, userID := i, userID
		g.Go(func() error {
			results[i] = s.processUserForBatch(gctx, userID)
			return nil
		})
	}
	_ = g.Wait()

	successCount := 0
	failedCount := 0
	for _, r := range results {
		if r.Status == domain.StatusSuccess {
			successCount++
		} else {
			failedCount++
		}
	}

	return &domain.BatchResponse{
		Page:       page,
		Limit:      limit,
		TotalUsers: totalUsers,
		Results:    results,
		Summary: domain.BatchSummary{
			SuccessCount:     successCount,
			FailedCount:      failedCount,
			ProcessingTimeMs: time.Since(start).Milliseconds(),
		},
		Metadata: domain.BatchMeta{
			GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		},
	}, nil
}

// Generates recommendations for a single user, capturing errors.
func (s *Service) processUserForBatch(ctx context.Context, userID int64) domain.BatchUserResult {
	result, err := s.GetRecommendations(ctx, userID, batchRecLimit)
	if err != nil {
		s.log.Warn().Err(err).Int64("user_id", userID).Msg("batch generation failed")
		code, msg := categorizeError(err)
		return domain.BatchUserResult{
			UserID:  userID,
			Status:  domain.StatusFailed,
			Error:   code,
			Message: msg,
		}
	}

	return domain.BatchUserResult{
		UserID:          userID,
		Recommendations: result.Recommendations,
		Status:          domain.StatusSuccess,
	}
}

// AddActivity records an interaction and clears the user's cached lists,
// so the next request reflects the new signal.
func (s *Service) AddActivity(ctx context.Context, a domain.Activity) error {
	if err := s.repo.AddActivity(ctx, a); err != nil {
		return err
	}
	if err := s.cache.ClearUserCache(ctx, a.UserID); err != nil {
		s.log.Warn().Err(err).Int64("user_id", a.UserID).Msg("cache invalidation failed")
	}
	return nil
}

// Handle response error
func categorizeError(err error) (string, string) {
	if errors.Is(err, domain.ErrUserNotFound) {
		return "user_not_found", "user not found"
	}
	return "internal_error", "an unexpected error occurred"
}
