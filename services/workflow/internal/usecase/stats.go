package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/PritamDhobale/CreatorHub/pkg/logger"
	"github.com/PritamDhobale/CreatorHub/services/workflow/internal/entity"
	"github.com/PritamDhobale/CreatorHub/services/workflow/internal/repo/persistent"

	"github.com/redis/go-redis/v9"
)

const (
	statusCountsCacheKey = "workflow:status_counts"
	statusCountsCacheTTL = 30 * time.Second
)

type StatsUseCase interface {
	StatusCounts(ctx context.Context) (map[entity.VideoStatus]int64, error)
}

type statsUseCase struct {
	repo        persistent.ProductionRepository
	redisClient *redis.Client
	logger      *logger.Logger
}

func NewStatsUseCase(repo persistent.ProductionRepository, redisClient *redis.Client, l *logger.Logger) StatsUseCase {
	return &statsUseCase{
		repo:        repo,
		redisClient: redisClient,
		logger:      l,
	}
}

// StatusCounts returns per-status slot totals for the dashboard. Counts are
// cached briefly in Redis and invalidated whenever a slot changes status.
func (uc *statsUseCase) StatusCounts(ctx context.Context) (map[entity.VideoStatus]int64, error) {
	if uc.redisClient != nil {
		cached, err := uc.redisClient.Get(ctx, statusCountsCacheKey).Result()
		if err == nil {
			var counts map[entity.VideoStatus]int64
			if json.Unmarshal([]byte(cached), &counts) == nil {
				return counts, nil
			}
		}
	}

	counts, err := uc.repo.StatusCounts()
	if err != nil {
		return nil, err
	}

	if uc.redisClient != nil {
		if data, err := json.Marshal(counts); err == nil {
			if err := uc.redisClient.Set(ctx, statusCountsCacheKey, data, statusCountsCacheTTL).Err(); err != nil {
				uc.logger.Warn("Failed to cache status counts: %v", err)
			}
		}
	}
	return counts, nil
}
