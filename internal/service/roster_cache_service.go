package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/CurtisFaughnan/Lanyard-APP-WEB/internal/models"
	appErrors "github.com/CurtisFaughnan/Lanyard-APP-WEB/pkg/errors"
)

// CacheRepository abstracts persistence for cached payloads.
type CacheRepository interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// RosterCacheService keeps roster snapshots between requests. Scan logs are never cached.
type RosterCacheService struct {
	repo    CacheRepository
	metrics *MetricsService
	ttl     time.Duration
	logger  *zap.Logger
	enabled bool
}

// NewRosterCacheService constructs a roster cache.
func NewRosterCacheService(repo CacheRepository, metrics *MetricsService, ttl time.Duration, logger *zap.Logger, enabled bool) *RosterCacheService {
	if ttl <= 0 {
		ttl = time.Minute
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RosterCacheService{repo: repo, metrics: metrics, ttl: ttl, logger: logger, enabled: enabled}
}

// Enabled indicates whether caching is active.
func (s *RosterCacheService) Enabled() bool {
	return s != nil && s.enabled && s.repo != nil
}

func rosterKey(source string) string {
	return "roster:" + source
}

// Get returns the cached roster for source. Cache failures degrade to a miss.
func (s *RosterCacheService) Get(ctx context.Context, source string) ([]models.StudentRecord, bool) {
	if !s.Enabled() {
		return nil, false
	}
	start := time.Now()
	var roster []models.StudentRecord
	err := s.repo.Get(ctx, rosterKey(source), &roster)
	s.metrics.RecordCacheOperation(err == nil, time.Since(start))
	if err != nil {
		if !errors.Is(err, appErrors.ErrCacheMiss) {
			s.logger.Warn("roster cache get failed", zap.String("source", source), zap.Error(err))
		}
		return nil, false
	}
	return roster, true
}

// Set stores the roster snapshot for source.
func (s *RosterCacheService) Set(ctx context.Context, source string, roster []models.StudentRecord) {
	if !s.Enabled() {
		return
	}
	if err := s.repo.Set(ctx, rosterKey(source), roster, s.ttl); err != nil {
		s.logger.Warn("roster cache set failed", zap.String("source", source), zap.Error(err))
	}
}

// Invalidate drops the cached roster for source.
func (s *RosterCacheService) Invalidate(ctx context.Context, source string) error {
	if !s.Enabled() {
		return nil
	}
	if err := s.repo.Delete(ctx, rosterKey(source)); err != nil {
		s.logger.Warn("roster cache invalidate failed", zap.String("source", source), zap.Error(err))
		return err
	}
	return nil
}
