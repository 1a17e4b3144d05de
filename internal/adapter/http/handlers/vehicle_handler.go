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
	errInvalidHistoryPayload = pkg.NewDomainErrorSimple("INVALID_VEHICLE_SERVICE_INPUT", "Invalid vehicle service payload", http.StatusBadRequest)
)

// VehicleHandler serves the vehicle registry and the per-vehicle service
// history. Vehicles are never created here: registration happens as a side
// effect of orders and appointments.

type VehicleHandler struct {
	store *usecase.Store
}

func NewVehicleHandler(store *usecase.Store) *VehicleHandler {
	return &VehicleHandler{store: store}
}

func (h *VehicleHandler) ListVehicles(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromVehicles(h.store.Vehicles()))
}

// GetVehicleServices returns the history for one plate, newest first as
// stored. An unknown plate yields an empty list, not a 404: history of a
// never-seen vehicle is legitimately empty.
func (h *VehicleHandler) GetVehicleServices(c *gin.Context) {
	services := h.store.GetVehicleServices(c.Param("plate"))
	c.JSON(http.StatusOK, response.FromVehicleServices(services))
}

func (h *VehicleHandler) CreateVehicleService(c *gin.Context) {
	var payload request.VehicleServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidHistoryPayload.HTTPStatus, errInvalidHistoryPayload.ToHTTPError())
		return
	}

	draft, err := payload.ToDraft(c.Param("plate"), time.Now().UTC())
	if err != nil {
		c.JSON(errInvalidHistoryPayload.HTTPStatus, errInvalidHistoryPayload.ToHTTPError())
		return
	}

	service, err := h.store.AddVehicleService(c.Request.Context(), draft)
	if err != nil {
		appErr := mapVehicleServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromVehicleService(service))
}

func mapVehicleServiceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingPlate),
		errors.Is(err, usecase.ErrMissingServiceType),
		errors.Is(err, usecase.ErrMissingClientName):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
