package analytics

import (
	"context"
	"errors"
	"fmt"

	"agencysite/models"

	"github.com/go-redis/redis/v8"
)

const (
	estimatesKey         = "analytics:calculator:estimates"
	completeEstimatesKey = "analytics:calculator:complete"
)

// Counter is the storage behind calculator usage stats.
type Counter interface {
	Incr(ctx context.Context, key string) error
	Get(ctx context.Context, key string) (int64, error)
}

// CalculatorTracker counts estimate requests.
type CalculatorTracker struct {
	counter Counter
}

func NewCalculatorTracker(counter Counter) *CalculatorTracker {
	return &CalculatorTracker{counter: counter}
}

// Record counts one estimate, and one complete estimate when all four parts
// of the selection were filled in.
func (t *CalculatorTracker) Record(ctx context.Context, sel models.Selection) error {
	if sel.IsEmpty() {
		return nil
	}
	if err := t.counter.Incr(ctx, estimatesKey); err != nil {
		return err
	}
	if sel.IsComplete() {
		return t.counter.Incr(ctx, completeEstimatesKey)
	}
	return nil
}

func (t *CalculatorTracker) Stats(ctx context.Context) (*models.CalculatorStats, error) {
	total, err := t.counter.Get(ctx, estimatesKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read estimate counter: %w", err)
	}
	complete, err := t.counter.Get(ctx, completeEstimatesKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read complete estimate counter: %w", err)
	}
	return &models.CalculatorStats{Estimates: total, CompleteEstimates: complete}, nil
}

type redisCounter struct {
	client *redis.Client
}

func NewRedisCounter(client *redis.Client) Counter {
	return &redisCounter{client: client}
}

func (c *redisCounter) Incr(ctx context.Context, key string) error {
	return c.client.Incr(ctx, key).Err()
}

func (c *redisCounter) Get(ctx context.Context, key string) (int64, error) {
	n, err := c.client.Get(ctx, key).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return n, err
}
