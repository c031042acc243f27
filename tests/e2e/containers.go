//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	pgUser     = "test"
	pgPassword = "testpass"
	pgPort     = "5432/tcp"
	redisPort  = "6379/tcp"
	amqpPort   = "5672/tcp"
)

type Endpoint struct {
	Host string
	Port nat.Port
}

func (e Endpoint) Addr() string {
	return e.Host + ":" + e.Port.Port()
}

// sharedContainer is started on first use and reused by every suite in the test binary.
type sharedContainer struct {
	once     sync.Once
	endpoint Endpoint
	err      error
}

var (
	postgresContainer sharedContainer
	redisContainer    sharedContainer
	rabbitContainer   sharedContainer
)

func (sc *sharedContainer) start(t *testing.T, req testcontainers.ContainerRequest, port string) Endpoint {
	t.Helper()
	sc.once.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()

		c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: req,
			Started:          true,
		})
		if err != nil {
			sc.err = fmt.Errorf("start %s: %w", req.Image, err)
			return
		}
		sc.endpoint, sc.err = endpointOf(ctx, c, port)
		slog.Info("e2e container ready", "image", req.Image, "addr", sc.endpoint.Addr())
	})
	require.NoError(t, sc.err)
	return sc.endpoint
}

func endpointOf(ctx context.Context, c testcontainers.Container, port string) (Endpoint, error) {
	mapped, err := c.MappedPort(ctx, nat.Port(port))
	if err != nil {
		return Endpoint{}, err
	}
	host, err := c.Host(ctx)
	if err != nil {
		return Endpoint{}, err
	}
	return Endpoint{Host: host, Port: mapped}, nil
}

// Containers are reaped by Ryuk when the test binary exits.
func startPostgres(t *testing.T) Endpoint {
	return postgresContainer.start(t, testcontainers.ContainerRequest{
		Image:        "postgres:17",
		ExposedPorts: []string{pgPort},
		Env: map[string]string{
			"POSTGRES_USER":     pgUser,
			"POSTGRES_PASSWORD": pgPassword,
			"POSTGRES_DB":       "postgres",
		},
		Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=512m"},
		Cmd: []string{
			"postgres",
			"-c", "fsync=off",
			"-c", "synchronous_commit=off",
			"-c", "full_page_writes=off",
			"-c", "max_connections=200",
			"-c", "deadlock_timeout=100ms",
		},
		WaitingFor: wait.ForSQL(pgPort, "pgx", func(host string, port nat.Port) string {
			return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable", pgUser, pgPassword, host, port.Port())
		}).WithStartupTimeout(time.Minute),
		Labels: map[string]string{"purpose": "booth-reservation-e2e"},
	}, pgPort)
}

func startRedis(t *testing.T) Endpoint {
	return redisContainer.start(t, testcontainers.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{redisPort},
		WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(time.Minute),
		Labels:       map[string]string{"purpose": "booth-reservation-e2e"},
	}, redisPort)
}

// StartRabbitMQ is only needed by the messaging suite; the application suites run with the log publisher.
func StartRabbitMQ(t *testing.T) Endpoint {
	return rabbitContainer.start(t, testcontainers.ContainerRequest{
		Image:        "rabbitmq:3.13-alpine",
		ExposedPorts: []string{amqpPort},
		WaitingFor:   wait.ForLog("Server startup complete").WithStartupTimeout(2 * time.Minute),
		Labels:       map[string]string{"purpose": "booth-reservation-e2e"},
	}, amqpPort)
}
