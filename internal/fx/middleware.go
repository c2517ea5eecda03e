package fx

import (
	"Caixa/config"
	"Caixa/internal/domain/user"
	"Caixa/internal/middleware"

	"go.uber.org/fx"
)

var MiddlewareModule = fx.Module("middleware",
	fx.Provide(
		newJwtService,
	),
)

func newJwtService(cfg *config.Config, users *user.UserServiceAdapter) (*middleware.JwtService, error) {
	return middleware.NewJwtService(cfg.JWT, users)
}
