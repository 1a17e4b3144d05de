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
	errInvalidInventoryPayload = pkg.NewDomainErrorSimple("INVALID_INVENTORY_INPUT", "Invalid inventory payload", http.StatusBadRequest)
)

type InventoryHandler struct {
	store *usecase.Store
}

func NewInventoryHandler(store *usecase.Store) *InventoryHandler {
	return &InventoryHandler{store: store}
}

func (h *InventoryHandler) ListInventory(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromInventoryItems(h.store.Inventory()))
}

func (h *InventoryHandler) CreateInventoryItem(c *gin.Context) {
	var payload request.InventoryItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInventoryPayload.HTTPStatus, errInvalidInventoryPayload.ToHTTPError())
		return
	}

	item, err := h.store.AddInventoryItem(c.Request.Context(), payload.ToDraft())
	if err != nil {
		appErr := mapInventoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromInventoryItem(item))
}

func (h *InventoryHandler) UpdateInventoryItem(c *gin.Context) {
	var payload request.InventoryItemUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInventoryPayload.HTTPStatus, errInvalidInventoryPayload.ToHTTPError())
		return
	}

	item, err := h.store.UpdateInventoryItem(c.Request.Context(), c.Param("id"), payload.ToPatch())
	if err != nil {
		appErr := mapInventoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInventoryItem(item))
}

func (h *InventoryHandler) DeleteInventoryItem(c *gin.Context) {
	if err := h.store.DeleteInventoryItem(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapInventoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapInventoryError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidID),
		errors.Is(err, usecase.ErrMissingName),
		errors.Is(err, usecase.ErrInvalidStock):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInventoryItemNotFound):
		return pkg.NewDomainErrorSimple("INVENTORY_ITEM_NOT_FOUND", "Inventory item not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
