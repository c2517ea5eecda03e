package fx

import (
	"context"

	"Caixa/config"
	"Caixa/internal/domain/auth"
	"Caixa/internal/domain/expense"
	"Caixa/internal/domain/report"
	"Caixa/internal/domain/revenue"
	"Caixa/internal/domain/user"
	"Caixa/internal/infrastructure"
	"Caixa/internal/middleware"
	"Caixa/internal/routes"

	"go.uber.org/fx"
)

// RoutesModule fornece o handler e os rate limiters
var RoutesModule = fx.Module("routes",
	fx.Provide(
		newHandler,
		newLimiters,
	),
)

func newHandler(
	userSvc *user.Service,
	authSvc *auth.Service,
	jwtSvc *middleware.JwtService,
	expenseSvc *expense.Service,
	revenueSvc *revenue.Service,
	reportSvc *report.Service,
	counter *infrastructure.RecordCounter,
) *routes.Handler {
	return &routes.Handler{
		UserService:    userSvc,
		AuthService:    authSvc,
		JwtService:     jwtSvc,
		ExpenseService: expenseSvc,
		RevenueService: revenueSvc,
		ReportService:  reportSvc,
		HealthCheck:    counter,
	}
}

func newLimiters(lc fx.Lifecycle, cfg *config.Config) routes.Limiters {
	limiters := routes.Limiters{
		Public:  middleware.NewRateLimiter(cfg.RateLimit.Public),
		Private: middleware.NewRateLimiter(cfg.RateLimit.Private),
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			limiters.Public.Stop()
			limiters.Private.Stop()
			return nil
		},
	})
	return limiters
}
