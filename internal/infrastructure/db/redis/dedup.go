package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const dedupTTL = time.Hour

// ClassificationDeduper keeps a transaction from being re-queued for
// classification while a fresh suggestion already exists.
// Key format: classify:<transaction_id>
type ClassificationDeduper struct {
	client *redis.Client
}

func NewClassificationDeduper(client *redis.Client) *ClassificationDeduper {
	return &ClassificationDeduper{client: client}
}

// IsDuplicate reports whether this transaction was classified within the
// dedup window.
func (d *ClassificationDeduper) IsDuplicate(ctx context.Context, transactionID string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(transactionID)).Result()
	if err != nil {
		return false, fmt.Errorf("dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records that this transaction has been classified (expires after dedupTTL).
func (d *ClassificationDeduper) Mark(ctx context.Context, transactionID string) error {
	return d.client.Set(ctx, d.key(transactionID), "1", dedupTTL).Err()
}

func (d *ClassificationDeduper) key(transactionID string) string {
	return "classify:" + transactionID
}
