package handlers

import (
	"errors"
	"net/http"
	"time"

	request "oficina_prime/internal/adapter/http/dto/request"
	response "oficina_prime/internal/adapter/http/dto/response"
	"oficina_prime/internal/usecase"
	"oficina_prime/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidExpensePayload = pkg.NewDomainErrorSimple("INVALID_EXPENSE_INPUT", "Invalid expense payload", http.StatusBadRequest)
)

type ExpenseHandler struct {
	store *usecase.Store
}

func NewExpenseHandler(store *usecase.Store) *ExpenseHandler {
	return &ExpenseHandler{store: store}
}

func (h *ExpenseHandler) ListExpenses(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromExpenses(h.store.Expenses()))
}

func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	var payload request.ExpenseRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidExpensePayload.HTTPStatus, errInvalidExpensePayload.ToHTTPError())
		return
	}

	draft, err := payload.ToDraft(time.Now().UTC())
	if err != nil {
		c.JSON(errInvalidExpensePayload.HTTPStatus, errInvalidExpensePayload.ToHTTPError())
		return
	}

	expense, err := h.store.AddExpense(c.Request.Context(), draft)
	if err != nil {
		appErr := mapExpenseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromExpense(expense))
}

func (h *ExpenseHandler) UpdateExpense(c *gin.Context) {
	var payload request.ExpenseUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidExpensePayload.HTTPStatus, errInvalidExpensePayload.ToHTTPError())
		return
	}

	patch, err := payload.ToPatch()
	if err != nil {
		c.JSON(errInvalidExpensePayload.HTTPStatus, errInvalidExpensePayload.ToHTTPError())
		return
	}

	expense, err := h.store.UpdateExpense(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		appErr := mapExpenseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromExpense(expense))
}

func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	if err := h.store.DeleteExpense(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapExpenseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapExpenseError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidID),
		errors.Is(err, usecase.ErrMissingDescription),
		errors.Is(err, usecase.ErrInvalidAmount):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrExpenseNotFound):
		return pkg.NewDomainErrorSimple("EXPENSE_NOT_FOUND", "Expense not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
