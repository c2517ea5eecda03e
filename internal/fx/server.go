package fx

import (
	"context"
	"errors"
	"net/http"

	"Caixa/config"
	"Caixa/internal/contracts"
	"Caixa/internal/logger"
	"Caixa/internal/middleware"
	"Caixa/internal/routes"

	docs "Caixa/docs"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"go.uber.org/fx"
)

// ServerModule fornece a configuração do servidor HTTP
var ServerModule = fx.Module("server",
	fx.Provide(
		newRouter,
	),
	fx.Invoke(
		setupRoutes,
		startServer,
	),
)

func newRouter(cfg *config.Config) (*gin.Engine, error) {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	if err := contracts.RegisterValidators(); err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.CORSMiddleware(cfg.Server.AllowedOrigins),
	)
	return router, nil
}

func setupRoutes(router *gin.Engine, handler *routes.Handler, limiters routes.Limiters) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	routes.Register(router, handler, limiters)
}

func startServer(lc fx.Lifecycle, cfg *config.Config, router *gin.Engine) {
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout.Std(),
		WriteTimeout: cfg.Server.WriteTimeout.Std(),
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info().
				Str("address", srv.Addr).
				Str("environment", cfg.App.Environment).
				Msg("Servidor iniciando")

			go func() {
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Fatal().Err(err).Msg("Falha ao iniciar servidor")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info().Msg("Servidor parando...")

			shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout.Std())
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}
