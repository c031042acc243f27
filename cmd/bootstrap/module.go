package bootstrap

import (
	"log/slog"

	"booth-reservation/cmd/bootstrap/components"
	"booth-reservation/internal/handler/middleware"
	"booth-reservation/internal/pkg/config"
	"booth-reservation/internal/pkg/jwt"

	"go.uber.org/fx"
)

// CoreModule provides logging and token validation. Configuration is supplied separately
// so tests can inject their own config.Config.
var CoreModule = fx.Module("core",
	fx.Provide(
		func(cfg config.Config) *middleware.Logger { return middleware.NewLogger(cfg.Log) },
		func(l *middleware.Logger) *slog.Logger { return l.Slog() },
		fx.Annotate(
			func(cfg config.Config) *jwt.Service { return jwt.NewService(cfg.JWT.Secret, cfg.JWT.Issuer) },
			fx.As(new(middleware.TokenValidator)),
		),
	),
)

var Module = fx.Options(
	fx.Provide(config.LoadConfig),
	CoreModule,
	components.PersistenceModule,
	components.CacheModule,
	components.MessagingModule,
	components.UseCaseModule,
	components.HandlerModule,
)
