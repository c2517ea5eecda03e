package middleware

import (
	appErrors "Caixa/internal/errors"

	"github.com/gin-gonic/gin"
)

func abortWithError(c *gin.Context, err *appErrors.AppError) {
	body := gin.H{
		"error":   err.Code,
		"message": err.Message,
	}
	if len(err.Details) > 0 {
		body["details"] = err.Details
	}
	c.AbortWithStatusJSON(err.StatusCode, body)
}
