package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"hustlexp/business/user"

	"github.com/redis/go-redis/v9"
)

// TokenRepository keeps active session tokens in redis so logout and forced
// invalidation take effect before the JWT itself expires.
type TokenRepository struct {
	client *redis.Client
}

var _ user.TokenStore = (*TokenRepository)(nil)

func NewTokenRepository(client *redis.Client) *TokenRepository {
	return &TokenRepository{
		client: client,
	}
}

func (r *TokenRepository) StoreToken(ctx context.Context, userID, token string, data user.TokenData, ttl time.Duration) error {
	key := fmt.Sprintf("session:user:%s", userID)

	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal token data: %w", err)
	}

	if err := r.client.Set(ctx, key, jsonData, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store token in Redis: %w", err)
	}

	// reverse lookup token -> user_id for quick validation
	tokenKey := fmt.Sprintf("session:lookup:%s", token)
	if err := r.client.Set(ctx, tokenKey, userID, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store token lookup: %w", err)
	}

	return nil
}

// ValidateToken checks if a token exists and returns the owning user id.
func (r *TokenRepository) ValidateToken(ctx context.Context, token string) (string, error) {
	tokenKey := fmt.Sprintf("session:lookup:%s", token)

	userID, err := r.client.Get(ctx, tokenKey).Result()
	if err != nil {
		if err == redis.Nil {
			return "", errors.New("token not found or expired")
		}
		return "", fmt.Errorf("failed to validate token: %w", err)
	}

	return userID, nil
}

// DeleteToken drops both session keys, invalidating the session immediately.
func (r *TokenRepository) DeleteToken(ctx context.Context, userID, token string) error {
	key := fmt.Sprintf("session:user:%s", userID)
	tokenKey := fmt.Sprintf("session:lookup:%s", token)

	if err := r.client.Del(ctx, key, tokenKey).Err(); err != nil {
		return fmt.Errorf("failed to delete session keys: %w", err)
	}

	return nil
}
