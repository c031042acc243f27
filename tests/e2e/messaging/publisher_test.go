//go:build e2e

package messaging_test

import (
	"context"
	"testing"
	"time"

	"booth-reservation/internal/infra/messaging"
	"booth-reservation/internal/pkg/config"
	"booth-reservation/tests/e2e"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAMQPPublisher_ConfirmedDelivery(t *testing.T) {
	t.Parallel()
	broker := e2e.StartRabbitMQ(t)
	url := "amqp://guest:guest@" + broker.Addr() + "/"
	cfg := config.AMQPConfig{Enabled: true, URL: url, Queue: "reservation_notifications_e2e"}

	p := messaging.NewAMQPPublisher(cfg)
	t.Cleanup(func() { _ = p.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	require.NoError(t, p.Publish(ctx, "reservation.created", []byte(`{"status":"pending"}`)))
	require.NoError(t, p.Publish(ctx, "reservation.cancelled", []byte(`{"status":"cancelled"}`)))

	conn, err := amqp.Dial(url)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	ch, err := conn.Channel()
	require.NoError(t, err)

	// Publish returned after the ack, so both messages are already queued.
	var topics []string
	for range 2 {
		d, ok, err := ch.Get(cfg.Queue, true)
		require.NoError(t, err)
		require.True(t, ok, "message missing from queue")
		assert.Equal(t, "application/json", d.ContentType)
		assert.Equal(t, amqp.Persistent, d.DeliveryMode)
		topics = append(topics, d.Type)
	}
	assert.Equal(t, []string{"reservation.created", "reservation.cancelled"}, topics)
}
