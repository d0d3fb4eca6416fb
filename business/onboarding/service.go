package onboarding

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"hustlexp/domain"
	"hustlexp/pkg/logger"

	"github.com/google/uuid"
)

// ---- Repository interfaces ----

// ResultRepository persists composed results. The store is append-only: there
// is deliberately no update or delete, because a written record must never
// change meaning.
type ResultRepository interface {
	Save(ctx context.Context, result domain.OnboardingResult) error
	FindLatestByUserID(ctx context.Context, userID uint) (domain.OnboardingResult, bool, error)
	FindAllByUserID(ctx context.Context, userID uint) ([]domain.OnboardingResult, error)
}

// AttemptGuard fences one completion per attempt. Acquire returns false when
// another completion for the same user is already in flight, so the composer
// is never persisted twice for a single attempt.
type AttemptGuard interface {
	Acquire(ctx context.Context, userID uint) (bool, error)
	Release(ctx context.Context, userID uint) error
}

// ResultCache fronts the latest record for downstream readers.
type ResultCache interface {
	Get(ctx context.Context, userID uint) (*domain.OnboardingResult, error)
	Set(ctx context.Context, userID uint, result domain.OnboardingResult) error
}

// UserRepository is the slice of the user store this service needs.
type UserRepository interface {
	MarkOnboarded(ctx context.Context, id uint) error
}

var (
	ErrNotOnboarded        = errors.New("user has not completed onboarding")
	ErrAttemptInFlight     = errors.New("onboarding completion already in progress")
	ErrReOnboardNotAllowed = errors.New("re-onboarding not permitted for this account")
)

// ---- Usecase / Service ----

type OnboardingService struct {
	engine     *Engine
	resultRepo ResultRepository
	guard      AttemptGuard
	cache      ResultCache
	userRepo   UserRepository
}

func NewOnboardingService(
	engine *Engine,
	resultRepo ResultRepository,
	guard AttemptGuard,
	cache ResultCache,
	userRepo UserRepository,
) *OnboardingService {
	return &OnboardingService{
		engine:     engine,
		resultRepo: resultRepo,
		guard:      guard,
		cache:      cache,
		userRepo:   userRepo,
	}
}

// Questions exposes the calibration bank for the questionnaire screen.
func (s *OnboardingService) Questions() []domain.CalibrationQuestion {
	return Questions()
}

// Engine exposes the underlying pure engine (preview + admin surfaces).
func (s *OnboardingService) Engine() *Engine {
	return s.engine
}

// Complete runs the pipeline for one onboarding attempt and persists the
// terminal record. A user with an existing record only gets here through the
// re-onboarding policy; a fresh record is appended, never an edit.
func (s *OnboardingService) Complete(
	ctx context.Context,
	userID uint,
	octx domain.OnboardingContext,
	responses domain.Responses,
	override *domain.UserRole,
) (domain.OnboardingResult, error) {

	if err := ctx.Err(); err != nil {
		return domain.OnboardingResult{}, fmt.Errorf("context error: %w", err)
	}

	existing, found, err := s.resultRepo.FindLatestByUserID(ctx, userID)
	if err != nil {
		return domain.OnboardingResult{}, fmt.Errorf("load existing result: %w", err)
	}
	if found {
		days := daysSince(existing.CompletedAt, time.Now())
		if !CanReOnboard(existing, days) {
			return domain.OnboardingResult{}, ErrReOnboardNotAllowed
		}
	}

	acquired, err := s.guard.Acquire(ctx, userID)
	if err != nil {
		return domain.OnboardingResult{}, fmt.Errorf("acquire attempt guard: %w", err)
	}
	if !acquired {
		return domain.OnboardingResult{}, ErrAttemptInFlight
	}

	result := s.engine.Compose(uuid.NewString(), userID, octx, responses, override, time.Now())

	if err := s.resultRepo.Save(ctx, result); err != nil {
		// Release the guard so the flow can be re-entered; nothing partial
		// was written.
		if relErr := s.guard.Release(ctx, userID); relErr != nil {
			logger.Warn("Failed to release attempt guard after save error", relErr)
		}
		return domain.OnboardingResult{}, fmt.Errorf("save onboarding result: %w", err)
	}

	if err := s.cache.Set(ctx, userID, result); err != nil {
		logger.Warn("Failed to cache onboarding result", err)
	}
	if err := s.userRepo.MarkOnboarded(ctx, userID); err != nil {
		logger.Warn("Failed to mark user onboarded", err)
	}

	logger.Info("onboarding_completed",
		"user_id", userID,
		"version", result.Version,
		"inferred_role", string(result.InferredRole),
		"final_role", string(result.FinalRole),
		"tier", string(result.CertaintyTier),
		"confidence", result.RoleConfidence.Confidence,
		"overridden", result.RoleWasOverridden,
		"flags", result.Inconsistencies.Flags,
		"time_bucket", timeBucket(octx.HourOfDay),
	)

	// Counters move only after the record is durably written.
	OnboardingCompletedTotal.
		WithLabelValues(
			string(result.FinalRole),
			string(result.CertaintyTier),
			strconv.FormatBool(result.RoleWasOverridden),
		).Inc()
	for _, flag := range result.Inconsistencies.Flags {
		InconsistencyFlagsTotal.WithLabelValues(flag).Inc()
	}

	return result, nil
}

// Preview runs the full pipeline without persisting anything. The returned
// record carries no id and is never written; it exists for debugging and for
// the client to show a live classification while answers change.
func (s *OnboardingService) Preview(
	ctx context.Context,
	userID uint,
	octx domain.OnboardingContext,
	responses domain.Responses,
	override *domain.UserRole,
) (domain.OnboardingResult, error) {

	if err := ctx.Err(); err != nil {
		return domain.OnboardingResult{}, fmt.Errorf("context error: %w", err)
	}

	return s.engine.Compose("", userID, octx, responses, override, time.Now()), nil
}

// Result returns the user's latest persisted record, cache first.
func (s *OnboardingService) Result(ctx context.Context, userID uint) (domain.OnboardingResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.OnboardingResult{}, fmt.Errorf("context error: %w", err)
	}

	if cached, err := s.cache.Get(ctx, userID); err == nil && cached != nil {
		return *cached, nil
	}

	result, found, err := s.resultRepo.FindLatestByUserID(ctx, userID)
	if err != nil {
		return domain.OnboardingResult{}, fmt.Errorf("load onboarding result: %w", err)
	}
	if !found {
		return domain.OnboardingResult{}, ErrNotOnboarded
	}

	if err := s.cache.Set(ctx, userID, result); err != nil {
		logger.Warn("Failed to backfill onboarding result cache", err)
	}

	return result, nil
}

// History returns every record a user has accumulated, oldest first.
func (s *OnboardingService) History(ctx context.Context, userID uint) ([]domain.OnboardingResult, error) {
	results, err := s.resultRepo.FindAllByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load onboarding history: %w", err)
	}
	return results, nil
}

// ReOnboardEligibility evaluates the stateless policy against the latest
// stored record.
func (s *OnboardingService) ReOnboardEligibility(ctx context.Context, userID uint) (bool, error) {
	result, found, err := s.resultRepo.FindLatestByUserID(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("load onboarding result: %w", err)
	}
	if !found {
		return false, ErrNotOnboarded
	}

	return CanReOnboard(result, daysSince(result.CompletedAt, time.Now())), nil
}

func daysSince(completedAt, now time.Time) int {
	return int(now.Sub(completedAt).Hours() / 24)
}
