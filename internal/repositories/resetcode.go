package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/bloodaid/blood-donation-backend/internal/logger"
)

// ResetCodeRepository stores password-reset codes in Redis. Codes
// expire with the configured TTL and are removed on first successful
// consume, so a code can never be replayed.
type ResetCodeRepository struct {
	client *redis.Client
	exp    time.Duration
}

// NewResetCodeRepository creates a new repository with the given TTL.
func NewResetCodeRepository(client *redis.Client, expiration time.Duration) *ResetCodeRepository {
	return &ResetCodeRepository{
		client: client,
		exp:    expiration,
	}
}

// consumeScript deletes the key only when the stored code matches, so
// compare and invalidate happen in one step.
var consumeScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

func resetCodeKey(email string) string {
	return fmt.Sprintf("reset_code:%s", email)
}

// Set stores a reset code for the given email, replacing any previous
// code and restarting the TTL.
func (r *ResetCodeRepository) Set(ctx context.Context, email, code string) error {
	key := resetCodeKey(email)
	err := r.client.Set(ctx, key, code, r.exp).Err()

	logger.Log.Infow("reset code stored",
		"key", key,
		"ttl", r.exp,
		"error", err,
	)

	return err
}

// Consume atomically checks the supplied code against the stored one
// and deletes it on match. Returns false for a missing, expired, or
// non-matching code; a mismatch leaves the stored code in place.
func (r *ResetCodeRepository) Consume(ctx context.Context, email, code string) (bool, error) {
	key := resetCodeKey(email)

	deleted, err := consumeScript.Run(ctx, r.client, []string{key}, code).Int64()

	logger.Log.Infow("reset code consume",
		"key", key,
		"matched", deleted == 1,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return deleted == 1, nil
}
