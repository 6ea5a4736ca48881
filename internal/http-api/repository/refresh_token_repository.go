package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RefreshTokenRepository tracks the single currently-valid refresh token per
// user. Saving overwrites the previous value (last write wins), which is what
// makes rotation and logout effective before natural token expiry.
type RefreshTokenRepository interface {
	Save(ctx context.Context, userID int64, token string) error
	Get(ctx context.Context, userID int64) (string, error)
	Delete(ctx context.Context, userID int64) error
}

// refreshTokenRepository is the Redis implementation of RefreshTokenRepository.
type refreshTokenRepository struct {
	client *redis.Client
}

// NewRefreshTokenRepository creates a new instance of RefreshTokenRepository
func NewRefreshTokenRepository(client *redis.Client) RefreshTokenRepository {
	return &refreshTokenRepository{client: client}
}

func refreshTokenKey(userID int64) string {
	return fmt.Sprintf("refreshToken:%d", userID)
}

func (r *refreshTokenRepository) Save(ctx context.Context, userID int64, token string) error {
	return r.client.Set(ctx, refreshTokenKey(userID), token, 0).Err()
}

// Get returns the stored token, or "" when no session exists for the user.
func (r *refreshTokenRepository) Get(ctx context.Context, userID int64) (string, error) {
	value, err := r.client.Get(ctx, refreshTokenKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

func (r *refreshTokenRepository) Delete(ctx context.Context, userID int64) error {
	return r.client.Del(ctx, refreshTokenKey(userID)).Err()
}
