package services

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"fieldserve/internal/shared/biztime"
)

const (
	complaintCodeKeyPrefix = "complaint:code:seq:"
	complaintCodeKeyTTL    = 48 * time.Hour
)

// RedisCodeGenerator issues complaint codes from a per-business-day Redis
// counter, so every instance of the service draws from the same sequence.
// The key expires two days after first use; the date component keeps codes
// unique across resets anyway.
type RedisCodeGenerator struct {
	client *redis.Client
}

func NewRedisCodeGenerator(client *redis.Client) *RedisCodeGenerator {
	return &RedisCodeGenerator{client: client}
}

func (g *RedisCodeGenerator) Generate(ctx context.Context) (string, error) {
	dateKey := biztime.BizDateKey(biztime.NowUTC())
	key := complaintCodeKeyPrefix + dateKey

	seq, err := g.client.Incr(ctx, key).Result()
	if err != nil {
		return "", fmt.Errorf("failed to increment complaint code sequence: %w", err)
	}

	if seq == 1 {
		if err := g.client.Expire(ctx, key, complaintCodeKeyTTL).Err(); err != nil {
			return "", fmt.Errorf("failed to set complaint code sequence expiry: %w", err)
		}
	}

	return fmt.Sprintf("CMP-%s-%04d", dateKey, seq), nil
}
