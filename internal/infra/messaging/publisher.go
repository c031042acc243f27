// Package messaging publishes reservation notifications to RabbitMQ.
package messaging

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"booth-reservation/internal/pkg/config"
	"booth-reservation/internal/pkg/errs"

	amqp "github.com/rabbitmq/amqp091-go"
)

var (
	ErrPublisherClosed = errs.New("publisher closed")
	ErrNotConfirmed    = errs.New("broker did not confirm the message")
)

// AMQPPublisher sends every topic to one durable queue. The topic travels as the message type so
// consumers can route on it. The channel runs in confirm mode and Publish returns only once the
// broker has acknowledged the message.
type AMQPPublisher struct {
	url   string
	queue string

	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
	done bool
}

func NewAMQPPublisher(cfg config.AMQPConfig) *AMQPPublisher {
	return &AMQPPublisher{url: cfg.URL, queue: cfg.Queue}
}

func (p *AMQPPublisher) Publish(ctx context.Context, topic string, payload []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.done {
		return ErrPublisherClosed
	}
	if err := p.ensureChannel(); err != nil {
		return err
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Type:         topic,
		Body:         payload,
	}
	conf, err := p.ch.PublishWithDeferredConfirmWithContext(ctx, "", p.queue, false, false, msg)
	if err != nil {
		// Drop the channel so the next publish reconnects.
		p.reset()
		return errs.Wrapf(err, "publish %s", topic)
	}
	if err := awaitConfirm(ctx, conf); err != nil {
		// Confirms are per channel; a fresh one starts a clean delivery tag sequence.
		p.reset()
		return errs.Wrapf(err, "publish %s", topic)
	}
	return nil
}

type confirmation interface {
	WaitContext(ctx context.Context) (bool, error)
}

func awaitConfirm(ctx context.Context, conf confirmation) error {
	acked, err := conf.WaitContext(ctx)
	if err != nil {
		return errs.Wrap(err, "wait for confirm")
	}
	if !acked {
		return ErrNotConfirmed
	}
	return nil
}

func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.done = true
	p.reset()
	return nil
}

func (p *AMQPPublisher) ensureChannel() error {
	if p.ch != nil && !p.ch.IsClosed() {
		return nil
	}
	p.reset()

	conn, err := amqp.Dial(p.url)
	if err != nil {
		return errs.Wrap(err, "dial rabbitmq")
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return errs.Wrap(err, "open channel")
	}
	if err := ch.Confirm(false); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return errs.Wrap(err, "enable confirms")
	}
	if _, err := ch.QueueDeclare(p.queue, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return errs.Wrapf(err, "declare queue %s", p.queue)
	}

	p.conn, p.ch = conn, ch
	slog.Info("connected to rabbitmq", "queue", p.queue)
	return nil
}

func (p *AMQPPublisher) reset() {
	if p.ch != nil {
		_ = p.ch.Close()
		p.ch = nil
	}
	if p.conn != nil {
		_ = p.conn.Close()
		p.conn = nil
	}
}

// LogPublisher writes notifications to the log instead of a broker.
type LogPublisher struct{}

func (LogPublisher) Publish(ctx context.Context, topic string, payload []byte) error {
	slog.InfoContext(ctx, "notification", "topic", topic, "payload", string(payload))
	return nil
}

func (LogPublisher) Close() error { return nil }
