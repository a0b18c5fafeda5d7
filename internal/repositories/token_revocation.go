package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/dev-connect/internal/logger"
)

// TokenRevocationRepository keeps ids of logged-out session tokens in Redis
// until the tokens would have expired anyway.
type TokenRevocationRepository struct {
	client *redis.Client
}

// NewTokenRevocationRepository creates a new repository instance
func NewTokenRevocationRepository(client *redis.Client) *TokenRevocationRepository {
	return &TokenRevocationRepository{client: client}
}

func revokedTokenKey(tokenID string) string {
	return fmt.Sprintf("revoked_token:%s", tokenID)
}

// Revoke marks a token id as revoked for ttl. Non-positive ttls are ignored
// because the token is already expired.
func (r *TokenRevocationRepository) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	key := revokedTokenKey(tokenID)
	err := r.client.Set(ctx, key, "1", ttl).Err()

	logger.Log.Infow(
		"key", key,
		"ttl", ttl,
		"error", err,
	)

	return err
}

// IsRevoked reports whether the token id was revoked.
func (r *TokenRevocationRepository) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	key := revokedTokenKey(tokenID)
	n, err := r.client.Exists(ctx, key).Result()

	logger.Log.Infow(
		"key", key,
		"result", n,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return n > 0, nil
}
