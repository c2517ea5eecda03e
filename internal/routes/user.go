package routes

import (
	"net/http"

	"Caixa/internal/contracts"

	"github.com/gin-gonic/gin"
)

func (h *Handler) GetProfile(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	u, err := h.UserService.GetByID(ctx, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, u)
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var body contracts.ProfileUpdateRequest
	if !h.bindJSON(c, &body) {
		return
	}

	ctx := c.Request.Context()
	u, err := h.UserService.UpdateProfile(ctx, userID, body.ToPatch())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, u)
}
