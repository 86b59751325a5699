package mail

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const seenKeyPrefix = "mail:seen:"

// SeenCache remembers processed message ids across scan runs so a rescan does
// not reprocess the whole mailbox. A nil cache disables the optimization; the
// dedup matcher still prevents duplicate rows.
type SeenCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewSeenCache(rdb *redis.Client, ttl time.Duration, logger *slog.Logger) *SeenCache {
	if logger == nil {
		logger = slog.Default()
	}
	return &SeenCache{rdb: rdb, ttl: ttl, logger: logger}
}

// Seen reports whether the id was marked in a previous run. Cache errors are
// treated as a miss.
func (c *SeenCache) Seen(ctx context.Context, id string) bool {
	if c == nil || c.rdb == nil || id == "" {
		return false
	}
	n, err := c.rdb.Exists(ctx, seenKeyPrefix+id).Result()
	if err != nil {
		c.logger.Warn("mail.seen.lookup_failed", "email_id", id, "error", err)
		return false
	}
	return n > 0
}

// Mark records the id for the cache TTL. Best effort.
func (c *SeenCache) Mark(ctx context.Context, id string) {
	if c == nil || c.rdb == nil || id == "" {
		return
	}
	if err := c.rdb.Set(ctx, seenKeyPrefix+id, 1, c.ttl).Err(); err != nil {
		c.logger.Warn("mail.seen.mark_failed", "email_id", id, "error", err)
	}
}
