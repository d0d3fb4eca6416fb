package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"hustlexp/business/onboarding"
	"hustlexp/domain"

	"github.com/redis/go-redis/v9"
)

const (
	// attemptGuardTTL bounds how long a crashed completion can block the
	// flow before the guard key expires on its own.
	attemptGuardTTL = 10 * time.Minute

	resultCacheTTL = 24 * time.Hour
)

// OnboardingRepository backs both the attempt guard and the result cache.
type OnboardingRepository struct {
	client *redis.Client
}

var (
	_ onboarding.AttemptGuard = (*OnboardingRepository)(nil)
	_ onboarding.ResultCache  = (*OnboardingRepository)(nil)
)

func NewOnboardingRepository(client *redis.Client) *OnboardingRepository {
	return &OnboardingRepository{client: client}
}

// Acquire takes the per-user completion lock. SetNX makes the fence atomic:
// only one completion per user can hold it at a time.
func (r *OnboardingRepository) Acquire(ctx context.Context, userID uint) (bool, error) {
	key := attemptKey(userID)

	ok, err := r.client.SetNX(ctx, key, "1", attemptGuardTTL).Result()
	if err != nil {
		return false, fmt.Errorf("failed to acquire attempt guard: %w", err)
	}

	return ok, nil
}

func (r *OnboardingRepository) Release(ctx context.Context, userID uint) error {
	if err := r.client.Del(ctx, attemptKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to release attempt guard: %w", err)
	}

	return nil
}

func (r *OnboardingRepository) Get(ctx context.Context, userID uint) (*domain.OnboardingResult, error) {
	val, err := r.client.Get(ctx, resultKey(userID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get cached result: %w", err)
	}

	var result domain.OnboardingResult
	if err := json.Unmarshal([]byte(val), &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached result: %w", err)
	}

	return &result, nil
}

func (r *OnboardingRepository) Set(ctx context.Context, userID uint, result domain.OnboardingResult) error {
	raw, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	if err := r.client.Set(ctx, resultKey(userID), raw, resultCacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to cache result: %w", err)
	}

	return nil
}

func attemptKey(userID uint) string {
	return fmt.Sprintf("onboarding:attempt:%d", userID)
}

func resultKey(userID uint) string {
	return fmt.Sprintf("onboarding:result:%d", userID)
}
