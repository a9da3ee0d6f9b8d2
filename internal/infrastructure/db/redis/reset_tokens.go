package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ResetTokenStore enforces single use of password-reset tokens backed by
// Redis. Key format: pwreset:used:<token id>
type ResetTokenStore struct {
	client *redis.Client
}

// NewResetTokenStore creates a ResetTokenStore wrapping the given Redis client.
func NewResetTokenStore(client *redis.Client) *ResetTokenStore {
	return &ResetTokenStore{client: client}
}

// Claim atomically marks tokenID as redeemed. It returns false when the
// token was already claimed by an earlier caller. The key expires with
// the token itself, so the set never grows past outstanding tokens.
func (s *ResetTokenStore) Claim(ctx context.Context, tokenID string, ttl time.Duration) (bool, error) {
	ok, err := s.client.SetNX(ctx, s.key(tokenID), "1", ttl).Result()
	if err != nil {
		return false, fmt.Errorf("claim reset token: %w", err)
	}
	return ok, nil
}

func (s *ResetTokenStore) key(tokenID string) string {
	return "pwreset:used:" + tokenID
}
