package fx

import (
	"Caixa/config"
	"Caixa/internal/domain/auth"
	"Caixa/internal/domain/expense"
	"Caixa/internal/domain/report"
	"Caixa/internal/domain/revenue"
	"Caixa/internal/domain/user"
	"Caixa/internal/events"
	"Caixa/internal/infrastructure"
	"Caixa/internal/logger"

	"go.uber.org/fx"
)

// DomainModule fornece os services do domínio
var DomainModule = fx.Module("domain",
	fx.Provide(
		newUserService,
		newUserServiceAdapter,
		newGoogleProvider,
		newAuthService,
		newExpenseService,
		newRevenueService,
		newReportService,
	),
)

func newUserService(repo *infrastructure.UserRepository) *user.Service {
	return user.NewService(repo)
}

func newUserServiceAdapter(userSvc *user.Service) *user.UserServiceAdapter {
	return user.NewUserServiceAdapter(userSvc)
}

// newGoogleProvider devolve nil quando o login Google está desligado.
func newGoogleProvider(cfg *config.Config) (auth.OAuthProvider, error) {
	if !cfg.GoogleOAuth.Enabled {
		logger.Info().Msg("Google OAuth desabilitado (GOOGLE_OAUTH_ENABLED não está definido como 'true')")
		return nil, nil
	}
	if cfg.GoogleOAuth.ClientID == "" {
		logger.Warn().
			Msg("GOOGLE_OAUTH_ENABLED=true mas GOOGLE_OAUTH_CLIENT_ID está vazio. Verifique se a variável está definida no arquivo .env")
		return nil, nil
	}

	clientIDPreview := cfg.GoogleOAuth.ClientID
	if len(clientIDPreview) > 20 {
		clientIDPreview = clientIDPreview[:20] + "..."
	}
	logger.Info().
		Str("client_id_preview", clientIDPreview).
		Bool("code_flow", cfg.GoogleOAuth.ClientSecret != "" && cfg.GoogleOAuth.RedirectURL != "").
		Msg("Google OAuth habilitado")

	return auth.NewGoogleOAuthProvider(cfg.GoogleOAuth)
}

func newAuthService(userSvc *user.Service, google auth.OAuthProvider) *auth.Service {
	return auth.NewService(userSvc, google)
}

func newExpenseService(repo *infrastructure.ExpenseRepository, publisher events.Publisher) *expense.Service {
	return expense.NewService(repo, publisher)
}

func newRevenueService(repo *infrastructure.RevenueRepository, publisher events.Publisher) *revenue.Service {
	return revenue.NewService(repo, publisher)
}

func newReportService(
	expenses *infrastructure.ExpenseRepository,
	revenues *infrastructure.RevenueRepository,
) *report.Service {
	return report.NewService(expenses, revenues)
}
