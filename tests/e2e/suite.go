//go:build e2e

// Package e2e boots the whole application against real PostgreSQL and Redis containers.
package e2e

import (
	"context"
	"testing"
	"time"

	"booth-reservation/cmd/bootstrap"
	"booth-reservation/cmd/bootstrap/components"
	"booth-reservation/internal/pkg/config"
	"booth-reservation/tests/common/authtest"
	"booth-reservation/tests/common/dbtest"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
)

// SharedSuite is embedded by every e2e suite. Each suite gets its own database and application.
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool // direct access for fixtures and assertions
	Config config.Config
	JWT    *authtest.JWTHelper
}

func (s *SharedSuite) SetupSuite() {
	t := s.T()
	gin.SetMode(gin.TestMode)

	pg := startPostgres(t)
	redis := startRedis(t)
	pool, dbCfg := createDatabase(t, pg)

	s.DB = pool
	s.Config = testConfig(dbCfg, redis)
	s.Router = startApp(t, s.Config)
	s.JWT = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "reset database")
}

func testConfig(dbCfg config.DBConfig, redis Endpoint) config.Config {
	cfg := config.NewTestConfig()
	cfg.Store.Driver = config.StoreDriverPostgres
	cfg.DB = dbCfg
	cfg.Redis.Enabled = true
	cfg.Redis.Addr = redis.Addr()
	// tests drive the relay themselves
	cfg.Outbox.Interval = time.Hour
	return cfg
}

// startApp wires the application like cmd/main but with the suite's config and without the listener.
func startApp(t *testing.T, cfg config.Config) *gin.Engine {
	t.Helper()
	var router *gin.Engine
	app := fx.New(
		fx.Supply(cfg),
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.CoreModule,
		components.PersistenceModule,
		components.CacheModule,
		components.MessagingModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Populate(&router),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "start application")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = app.Stop(ctx)
	})
	return router
}
