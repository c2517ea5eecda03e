package routes

import (
	"net/http"

	"Caixa/internal/contracts"
	"Caixa/internal/domain/revenue"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListRevenues(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var query contracts.RevenueListQuery
	if !h.bindQuery(c, &query) {
		return
	}

	ctx := c.Request.Context()
	revenues, err := h.RevenueService.List(ctx, userID, query.ToFilter())
	if err != nil {
		h.respondError(c, err)
		return
	}
	if revenues == nil {
		revenues = []*revenue.Revenue{}
	}

	c.JSON(http.StatusOK, revenues)
}

func (h *Handler) CreateRevenue(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var body contracts.RevenueCreateRequest
	if !h.bindJSON(c, &body) {
		return
	}

	rev := body.ToDomain()
	ctx := c.Request.Context()
	if err := h.RevenueService.Create(ctx, userID, rev); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, rev)
}

func (h *Handler) GetRevenue(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	id, err := h.parseIDParam(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	rev, err := h.RevenueService.GetByID(ctx, userID, id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, rev)
}

func (h *Handler) UpdateRevenue(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	id, err := h.parseIDParam(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var body contracts.RevenueUpdateRequest
	if !h.bindJSON(c, &body) {
		return
	}

	ctx := c.Request.Context()
	rev, err := h.RevenueService.Update(ctx, userID, id, body.ToPatch())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, rev)
}

func (h *Handler) DeleteRevenue(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	id, err := h.parseIDParam(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	if err := h.RevenueService.Delete(ctx, userID, id); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Receita removida com sucesso"})
}
