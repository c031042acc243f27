//go:build unit

package outbox_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"booth-reservation/internal/infra/memory"
	"booth-reservation/internal/infra/outbox"
	"booth-reservation/internal/pkg/clock"
	"booth-reservation/internal/pkg/config"
	"booth-reservation/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	mu     sync.Mutex
	topics []string
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, topic string, _ []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.topics = append(p.topics, topic)
	return nil
}

var start = time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC)

func enqueue(t *testing.T, s *memory.Store, topics ...string) {
	t.Helper()
	require.NoError(t, s.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		for _, topic := range topics {
			if err := tx.Notifications().CreateJob(ctx, "reservation", topic, []byte(`{}`), start); err != nil {
				return err
			}
		}
		return nil
	}))
}

func TestRelay_RunOnce(t *testing.T) {
	cfg := config.OutboxConfig{BatchSize: 10, MaxAttempts: 3}

	t.Run("publishes in order", func(t *testing.T) {
		store := memory.NewStore()
		enqueue(t, store, "reservation.created", "reservation.approved")
		pub := &recordingPublisher{}
		relay := outbox.NewRelay(store, pub, clock.NewMockClock(start), cfg)

		stats, err := relay.RunOnce(context.Background())
		require.NoError(t, err)
		assert.Equal(t, outbox.RunStats{Sent: 2}, stats)
		assert.Equal(t, []string{"reservation.created", "reservation.approved"}, pub.topics)
		assert.Zero(t, store.PendingJobs())

		stats, err = relay.RunOnce(context.Background())
		require.NoError(t, err)
		assert.Equal(t, outbox.RunStats{}, stats)
	})

	t.Run("retries with backoff then gives up", func(t *testing.T) {
		store := memory.NewStore()
		enqueue(t, store, "reservation.created")
		pub := &recordingPublisher{err: errors.New("connection refused")}
		clk := clock.NewMockClock(start)
		relay := outbox.NewRelay(store, pub, clk, cfg)

		stats, err := relay.RunOnce(context.Background())
		require.NoError(t, err)
		assert.Equal(t, outbox.RunStats{Retried: 1}, stats)

		// not due again until the backoff passes
		stats, err = relay.RunOnce(context.Background())
		require.NoError(t, err)
		assert.Equal(t, outbox.RunStats{}, stats)

		clk.Add(outbox.RetryDelay(1))
		stats, err = relay.RunOnce(context.Background())
		require.NoError(t, err)
		assert.Equal(t, outbox.RunStats{Retried: 1}, stats)

		clk.Add(outbox.RetryDelay(2))
		stats, err = relay.RunOnce(context.Background())
		require.NoError(t, err)
		assert.Equal(t, outbox.RunStats{Failed: 1}, stats)
		assert.Zero(t, store.PendingJobs())
	})
}

func TestRetryDelay(t *testing.T) {
	assert.Equal(t, 5*time.Second, outbox.RetryDelay(0))
	assert.Equal(t, 5*time.Second, outbox.RetryDelay(1))
	assert.Equal(t, 10*time.Second, outbox.RetryDelay(2))
	assert.Equal(t, 40*time.Second, outbox.RetryDelay(4))
	assert.Equal(t, 10*time.Minute, outbox.RetryDelay(30))
}
