package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RevocationStore keeps the denylist of explicitly logged-out tokens.
// Key format: revoked:<sha256-of-token>; entries carry a TTL equal to the
// token's remaining lifetime, so the list never outgrows live sessions.
type RevocationStore struct {
	client *redis.Client
}

// NewRevocationStore creates a RevocationStore wrapping the given Redis client.
func NewRevocationStore(client *redis.Client) *RevocationStore {
	return &RevocationStore{client: client}
}

// Revoke records the token digest until ttl elapses.
func (r *RevocationStore) Revoke(ctx context.Context, tokenHash string, ttl time.Duration) error {
	return r.client.Set(ctx, r.key(tokenHash), "1", ttl).Err()
}

// IsRevoked reports whether the token digest is on the denylist.
func (r *RevocationStore) IsRevoked(ctx context.Context, tokenHash string) (bool, error) {
	n, err := r.client.Exists(ctx, r.key(tokenHash)).Result()
	if err != nil {
		return false, fmt.Errorf("revocation check: %w", err)
	}
	return n > 0, nil
}

func (r *RevocationStore) key(tokenHash string) string {
	return "revoked:" + tokenHash
}
