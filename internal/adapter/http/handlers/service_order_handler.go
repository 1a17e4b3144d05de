package handlers

import (
	"errors"
	"net/http"

	request "oficina_prime/internal/adapter/http/dto/request"
	response "oficina_prime/internal/adapter/http/dto/response"
	"oficina_prime/internal/usecase"
	"oficina_prime/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_SERVICE_ORDER_INPUT", "Invalid service order payload", http.StatusBadRequest)
)

// ServiceOrderHandler handles HTTP requests for service orders.

type ServiceOrderHandler struct {
	store *usecase.Store
}

func NewServiceOrderHandler(store *usecase.Store) *ServiceOrderHandler {
	return &ServiceOrderHandler{store: store}
}

func (h *ServiceOrderHandler) ListServiceOrders(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromServiceOrders(h.store.ServiceOrders()))
}

func (h *ServiceOrderHandler) CreateServiceOrder(c *gin.Context) {
	var payload request.ServiceOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.store.AddServiceOrder(c.Request.Context(), payload.ToDraft())
	if err != nil {
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromServiceOrder(order))
}

func (h *ServiceOrderHandler) UpdateServiceOrder(c *gin.Context) {
	var payload request.ServiceOrderUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.store.UpdateServiceOrder(c.Request.Context(), c.Param("id"), payload.ToPatch())
	if err != nil {
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceOrder(order))
}

func (h *ServiceOrderHandler) DeleteServiceOrder(c *gin.Context) {
	if err := h.store.DeleteServiceOrder(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// CompleteServiceOrder marks the order CONCLUIDO. Completing an already
// completed order is a no-op that returns the order unchanged.
func (h *ServiceOrderHandler) CompleteServiceOrder(c *gin.Context) {
	order, err := h.store.CompleteServiceOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceOrder(order))
}

func mapServiceOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidID),
		errors.Is(err, usecase.ErrMissingClientName),
		errors.Is(err, usecase.ErrMissingPlate),
		errors.Is(err, usecase.ErrMissingServiceType):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrServiceOrderNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_ORDER_NOT_FOUND", "Service order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidStatusTransition):
		return pkg.NewDomainErrorSimple("INVALID_STATUS_TRANSITION", "Service order cannot transition to the requested status", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
