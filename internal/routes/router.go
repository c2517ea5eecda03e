package routes

import (
	"Caixa/internal/middleware"

	"github.com/gin-gonic/gin"
)

type Limiters struct {
	Public  *middleware.RateLimiter
	Private *middleware.RateLimiter
}

// Register monta as rotas da API em router. Limiters nulos desligam o controle de taxa.
func Register(router *gin.Engine, handler *Handler, limiters Limiters) {
	router.GET("/health", handler.Health)

	public := router.Group("/api")
	if limiters.Public != nil {
		public.Use(middleware.RateLimit(limiters.Public))
	}
	{
		public.POST("/auth/register", handler.Registration)
		public.POST("/auth/login", handler.Authenticate)
		public.POST("/auth/google", handler.GoogleAuth)
		public.GET("/auth/google/url", handler.GoogleAuthURL)
		public.POST("/auth/google/callback", handler.GoogleCallback)
	}

	private := router.Group("/api")
	private.Use(middleware.AuthMiddleware(handler.JwtService))
	if limiters.Private != nil {
		private.Use(middleware.RateLimitByUser(limiters.Private))
	}
	{
		users := private.Group("/user")
		{
			users.GET("/profile", handler.GetProfile)
			users.PUT("/profile", handler.UpdateProfile)
		}

		expenses := private.Group("/expenses")
		{
			expenses.GET("", handler.ListExpenses)
			expenses.POST("", handler.CreateExpense)
			expenses.GET("/:id", handler.GetExpense)
			expenses.PUT("/:id", handler.UpdateExpense)
			expenses.DELETE("/:id", handler.DeleteExpense)
		}

		revenues := private.Group("/revenues")
		{
			revenues.GET("", handler.ListRevenues)
			revenues.POST("", handler.CreateRevenue)
			revenues.GET("/:id", handler.GetRevenue)
			revenues.PUT("/:id", handler.UpdateRevenue)
			revenues.DELETE("/:id", handler.DeleteRevenue)
		}

		reports := private.Group("/reports")
		{
			reports.GET("/monthly", handler.GetMonthlyReport)
			reports.GET("/overview", handler.GetOverview)
		}
	}
}
