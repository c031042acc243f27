// Package outbox delivers queued reservation notifications to the message broker. Jobs are written
// in the same unit as the state change they describe, and the relay publishes them afterwards.
package outbox

import (
	"context"
	"log/slog"
	"time"

	"booth-reservation/internal/pkg/clock"
	"booth-reservation/internal/pkg/config"
)

const (
	retryBase = 5 * time.Second
	retryCap  = 10 * time.Minute
)

type Publisher interface {
	Publish(ctx context.Context, topic string, payload []byte) error
}

type Relay struct {
	store       Store
	publisher   Publisher
	clock       clock.Clock
	batchSize   int32
	maxAttempts int32
}

func NewRelay(store Store, publisher Publisher, clk clock.Clock, cfg config.OutboxConfig) *Relay {
	return &Relay{
		store:       store,
		publisher:   publisher,
		clock:       clk,
		batchSize:   cfg.BatchSize,
		maxAttempts: cfg.MaxAttempts,
	}
}

type RunStats struct {
	Sent    int
	Retried int
	Failed  int
}

// RunOnce publishes one batch of due jobs. A publish failure reschedules the job with exponential
// backoff until maxAttempts is reached, then the job is parked as failed.
func (r *Relay) RunOnce(ctx context.Context) (RunStats, error) {
	var stats RunStats
	now := r.clock.Now()

	err := r.store.ClaimDue(ctx, now, r.batchSize, func(ctx context.Context, jobs []Job, b Batch) error {
		for _, job := range jobs {
			pubErr := r.publisher.Publish(ctx, job.Topic, job.Payload)
			if pubErr == nil {
				if err := b.MarkSent(ctx, job.ID); err != nil {
					return err
				}
				stats.Sent++
				continue
			}

			attempts := job.Attempts + 1
			giveUp := r.maxAttempts > 0 && attempts >= r.maxAttempts
			if err := b.MarkRetry(ctx, job.ID, pubErr.Error(), now.Add(RetryDelay(attempts)), giveUp); err != nil {
				return err
			}
			if giveUp {
				stats.Failed++
				slog.ErrorContext(ctx, "notification dropped after max attempts",
					"job_id", job.ID, "topic", job.Topic, "attempts", attempts, "error", pubErr.Error())
				continue
			}
			stats.Retried++
			slog.WarnContext(ctx, "notification publish failed, will retry",
				"job_id", job.ID, "topic", job.Topic, "attempts", attempts, "error", pubErr.Error())
		}
		return nil
	})
	if err != nil {
		return RunStats{}, err
	}

	if stats.Sent+stats.Retried+stats.Failed > 0 {
		slog.Debug("outbox batch processed", "sent", stats.Sent, "retried", stats.Retried, "failed", stats.Failed)
	}
	return stats, nil
}

// RetryDelay doubles from retryBase per attempt and stops growing at retryCap.
func RetryDelay(attempts int32) time.Duration {
	if attempts < 1 {
		attempts = 1
	}
	d := retryBase
	for i := int32(1); i < attempts; i++ {
		d *= 2
		if d >= retryCap {
			return retryCap
		}
	}
	return d
}
