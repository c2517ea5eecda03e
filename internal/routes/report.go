package routes

import (
	"net/http"
	"time"

	"Caixa/internal/contracts"

	"github.com/gin-gonic/gin"
)

// GetMonthlyReport aceita month/year opcionais; ausentes valem o mês corrente.
func (h *Handler) GetMonthlyReport(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var query contracts.MonthlyReportQuery
	if !h.bindQuery(c, &query) {
		return
	}

	ctx := c.Request.Context()
	report, err := h.ReportService.GetMonthlyReport(ctx, userID, query.Month, query.Year)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

func (h *Handler) GetOverview(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	overview, err := h.ReportService.GetOverview(ctx, userID, time.Time{})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, overview)
}
