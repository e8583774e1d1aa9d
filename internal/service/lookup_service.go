package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/CurtisFaughnan/Lanyard-APP-WEB/internal/dto"
	"github.com/CurtisFaughnan/Lanyard-APP-WEB/internal/models"
	appErrors "github.com/CurtisFaughnan/Lanyard-APP-WEB/pkg/errors"
)

type lanyardStore interface {
	Source() string
	Roster(ctx context.Context) ([]models.StudentRecord, error)
	ScanLog(ctx context.Context) ([]string, error)
}

// StoreState records whether the tabular store was initialised at start-up.
type StoreState struct {
	store lanyardStore
	cause error
}

// Available wraps a ready store.
func Available(store lanyardStore) StoreState {
	if store == nil {
		return Unavailable(errors.New("store is nil"))
	}
	return StoreState{store: store}
}

// Unavailable records why the store could not be initialised.
func Unavailable(cause error) StoreState {
	return StoreState{cause: cause}
}

// Ready reports whether lookups can reach the store.
func (s StoreState) Ready() bool {
	return s.store != nil
}

// Cause returns the initialisation failure, if any.
func (s StoreState) Cause() error {
	return s.cause
}

// LookupServiceParams groups constructor dependencies.
type LookupServiceParams struct {
	Store     StoreState
	Cache     *RosterCacheService
	Metrics   *MetricsService
	Validator *validator.Validate
	Logger    *zap.Logger
	// Timeout bounds the remote reads of one lookup; zero disables the deadline.
	Timeout time.Duration
}

// LookupService resolves a student, their scan count and tier.
type LookupService struct {
	state     StoreState
	cache     *RosterCacheService
	metrics   *MetricsService
	validator *validator.Validate
	logger    *zap.Logger
	timeout   time.Duration
}

// NewLookupService constructs a LookupService.
func NewLookupService(params LookupServiceParams) *LookupService {
	validate := params.Validator
	if validate == nil {
		validate = validator.New()
	}
	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LookupService{
		state:     params.Store,
		cache:     params.Cache,
		metrics:   params.Metrics,
		validator: validate,
		logger:    logger,
		timeout:   params.Timeout,
	}
}

// Lookup returns the tiered record of the student identified by rawID. The boolean
// reports whether the roster came from cache.
func (s *LookupService) Lookup(ctx context.Context, rawID string) (*dto.LookupResult, bool, error) {
	if !s.state.Ready() {
		s.metrics.ObserveLookup(OutcomeConfiguration, 0)
		return nil, false, appErrors.ErrConfiguration
	}

	req := dto.LookupRequest{StudentID: strings.TrimSpace(rawID)}
	if err := s.validator.Struct(req); err != nil {
		s.metrics.ObserveLookup(OutcomeBadRequest, 0)
		return nil, false, appErrors.ErrMissingStudentID
	}
	id := req.StudentID

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	roster, cacheHit, err := s.roster(ctx)
	if err != nil {
		return nil, false, s.fail(id, err)
	}

	student, found, err := models.FindStudent(roster, id)
	if err != nil {
		return nil, cacheHit, s.fail(id, err)
	}
	if !found {
		s.metrics.ObserveLookup(OutcomeNotFound, 0)
		return nil, cacheHit, appErrors.NotFound(id)
	}

	start := time.Now()
	logIDs, err := s.state.store.ScanLog(ctx)
	s.metrics.ObserveStoreRead("scan_log", time.Since(start), err)
	if err != nil {
		return nil, cacheHit, s.fail(id, err)
	}

	count := models.CountScans(logIDs, id)
	tier, color := models.ResolveTier(count)
	s.metrics.ObserveLookup(OutcomeOK, count)

	return &dto.LookupResult{
		StudentID: id,
		Name:      student.FullName(),
		ClassYear: student.ClassYear.String(),
		Team:      student.Team.String(),
		ScanCount: count,
		Tier:      tier,
		Color:     color,
	}, cacheHit, nil
}

// CacheEnabled reports whether roster caching is active.
func (s *LookupService) CacheEnabled() bool {
	return s.cache.Enabled()
}

// InvalidateCache drops the cached roster so the next lookup reads the store.
func (s *LookupService) InvalidateCache(ctx context.Context) error {
	if !s.state.Ready() {
		return nil
	}
	if err := s.cache.Invalidate(ctx, s.state.store.Source()); err != nil {
		return appErrors.Unclassified(err)
	}
	return nil
}

// Ready returns ErrConfiguration when the store was not initialised.
func (s *LookupService) Ready() error {
	if s.state.Ready() {
		return nil
	}
	return appErrors.Wrap(s.state.Cause(), appErrors.ErrUnavailable.Code, appErrors.ErrUnavailable.Status, appErrors.ErrConfiguration.Message)
}

func (s *LookupService) roster(ctx context.Context) ([]models.StudentRecord, bool, error) {
	source := s.state.store.Source()
	if cached, ok := s.cache.Get(ctx, source); ok {
		return cached, true, nil
	}

	start := time.Now()
	roster, err := s.state.store.Roster(ctx)
	s.metrics.ObserveStoreRead("roster", time.Since(start), err)
	if err != nil {
		return nil, false, err
	}
	s.cache.Set(ctx, source, roster)
	return roster, false, nil
}

func (s *LookupService) fail(id string, err error) error {
	s.metrics.ObserveLookup(OutcomeError, 0)
	s.logger.Error("error in /api/student", zap.String("student_id", id), zap.Error(err))
	return appErrors.Unclassified(err)
}
