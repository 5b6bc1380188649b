package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const dedupTTL = time.Hour

// DeliveryDedup suppresses repeated webhook deliveries. Providers redeliver
// on non-2xx responses, so the same tracking update can arrive more than
// once; seen deliveries are remembered for dedupTTL.
// Key format: webhook:<tracking_number>:<status>:<order_id>
type DeliveryDedup struct {
	client *redis.Client
}

// NewDeliveryDedup creates a DeliveryDedup wrapping the given Redis client.
func NewDeliveryDedup(client *redis.Client) *DeliveryDedup {
	return &DeliveryDedup{client: client}
}

// Seen reports whether this delivery has already been acknowledged.
func (d *DeliveryDedup) Seen(ctx context.Context, trackingNumber, status, orderID string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(trackingNumber, status, orderID)).Result()
	if err != nil {
		return false, fmt.Errorf("webhook dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records that this delivery has been acknowledged (expires after dedupTTL).
func (d *DeliveryDedup) Mark(ctx context.Context, trackingNumber, status, orderID string) error {
	return d.client.Set(ctx, d.key(trackingNumber, status, orderID), "1", dedupTTL).Err()
}

func (d *DeliveryDedup) key(trackingNumber, status, orderID string) string {
	return fmt.Sprintf("webhook:%s:%s:%s", trackingNumber, status, orderID)
}
