package routes

import (
	"context"

	"Caixa/internal/domain/auth"
	"Caixa/internal/domain/expense"
	"Caixa/internal/domain/report"
	"Caixa/internal/domain/revenue"
	"Caixa/internal/domain/user"
	appErrors "Caixa/internal/errors"
	"Caixa/internal/logger"
	"Caixa/internal/middleware"
	"Caixa/internal/pkg"

	"github.com/gin-gonic/gin"
	"github.com/oklog/ulid/v2"
)

type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	UserService    *user.Service
	AuthService    *auth.Service
	JwtService     *middleware.JwtService
	ExpenseService *expense.Service
	RevenueService *revenue.Service
	ReportService  *report.Service
	HealthCheck    HealthChecker
}

func (h *Handler) GetUserIDFromContext(c *gin.Context) (ulid.ULID, error) {
	userIDStr := c.GetString(middleware.UserIDKey)
	if userIDStr == "" {
		return ulid.ULID{}, appErrors.ErrUnauthorized
	}

	userID, err := pkg.ParseULID(userIDStr)
	if err != nil {
		return ulid.ULID{}, appErrors.ErrUnauthorized.WithError(err)
	}

	return userID, nil
}

func (h *Handler) parseIDParam(c *gin.Context) (ulid.ULID, error) {
	id := c.Param("id")
	if id == "" {
		return ulid.ULID{}, appErrors.NewValidationError("id", "é obrigatório")
	}
	parsed, err := pkg.ParseULID(id)
	if err != nil {
		return ulid.ULID{}, appErrors.NewValidationError("id", "formato inválido")
	}
	return parsed, nil
}

// bindJSON responde 400 com os campos traduzidos quando o corpo é inválido.
func (h *Handler) bindJSON(c *gin.Context, body interface{}) bool {
	if err := c.ShouldBindJSON(body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return false
	}
	return true
}

func (h *Handler) bindQuery(c *gin.Context, query interface{}) bool {
	if err := c.ShouldBindQuery(query); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return false
	}
	return true
}

func (h *Handler) respondError(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)

	event := logger.Warn()
	if appErr.StatusCode >= 500 {
		event = logger.Error()
	}
	event = event.
		Str("code", appErr.Code).
		Str("path", c.FullPath()).
		Str("request_id", c.GetString(middleware.RequestIDKey))
	if appErr.Err != nil {
		event = event.Err(appErr.Err)
	}
	event.Msg("request_error")

	payload := gin.H{
		"error":   appErr.Code,
		"message": appErr.Message,
	}
	if len(appErr.Details) > 0 {
		payload["details"] = appErr.Details
	}
	c.JSON(appErr.StatusCode, payload)
}
