package routes

import (
	"net/http"

	"Caixa/internal/contracts"
	"Caixa/internal/domain/expense"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListExpenses(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var query contracts.ExpenseListQuery
	if !h.bindQuery(c, &query) {
		return
	}

	ctx := c.Request.Context()
	expenses, err := h.ExpenseService.List(ctx, userID, query.ToFilter())
	if err != nil {
		h.respondError(c, err)
		return
	}
	if expenses == nil {
		expenses = []*expense.Expense{}
	}

	c.JSON(http.StatusOK, expenses)
}

func (h *Handler) CreateExpense(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var body contracts.ExpenseCreateRequest
	if !h.bindJSON(c, &body) {
		return
	}

	e := body.ToDomain()
	ctx := c.Request.Context()
	if err := h.ExpenseService.Create(ctx, userID, e); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, e)
}

func (h *Handler) GetExpense(c *gin.Context) {
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
	e, err := h.ExpenseService.GetByID(ctx, userID, id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, e)
}

func (h *Handler) UpdateExpense(c *gin.Context) {
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

	var body contracts.ExpenseUpdateRequest
	if !h.bindJSON(c, &body) {
		return
	}

	ctx := c.Request.Context()
	e, err := h.ExpenseService.Update(ctx, userID, id, body.ToPatch())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, e)
}

func (h *Handler) DeleteExpense(c *gin.Context) {
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
	if err := h.ExpenseService.Delete(ctx, userID, id); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Despesa removida com sucesso"})
}
