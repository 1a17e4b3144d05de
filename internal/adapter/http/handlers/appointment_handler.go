package handlers

import (
	"errors"
	"net/http"

	request "oficina_prime/internal/adapter/http/dto/request"
	response "oficina_prime/internal/adapter/http/dto/response"
	"oficina_prime/internal/domain/entities"
	"oficina_prime/internal/usecase"
	"oficina_prime/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidAppointmentPayload = pkg.NewDomainErrorSimple("INVALID_APPOINTMENT_INPUT", "Invalid appointment payload", http.StatusBadRequest)
)

type AppointmentHandler struct {
	store *usecase.Store
}

func NewAppointmentHandler(store *usecase.Store) *AppointmentHandler {
	return &AppointmentHandler{store: store}
}

func (h *AppointmentHandler) ListAppointments(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromAppointments(h.store.Appointments()))
}

func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var payload request.AppointmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAppointmentPayload.HTTPStatus, errInvalidAppointmentPayload.ToHTTPError())
		return
	}

	appointment, err := h.store.AddAppointment(c.Request.Context(), payload.ToDraft())
	if err != nil {
		appErr := mapAppointmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromAppointment(appointment))
}

func (h *AppointmentHandler) UpdateAppointment(c *gin.Context) {
	var payload request.AppointmentUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAppointmentPayload.HTTPStatus, errInvalidAppointmentPayload.ToHTTPError())
		return
	}

	appointment, err := h.store.UpdateAppointment(c.Request.Context(), c.Param("id"), payload.ToPatch())
	if err != nil {
		appErr := mapAppointmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAppointment(appointment))
}

// UpdateAppointmentStatus transitions the scheduling status only; other
// fields have their own endpoint.
func (h *AppointmentHandler) UpdateAppointmentStatus(c *gin.Context) {
	var payload request.AppointmentStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAppointmentPayload.HTTPStatus, errInvalidAppointmentPayload.ToHTTPError())
		return
	}

	appointment, err := h.store.UpdateAppointmentStatus(c.Request.Context(), c.Param("id"), entities.AppointmentStatus(payload.Status))
	if err != nil {
		appErr := mapAppointmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAppointment(appointment))
}

func (h *AppointmentHandler) DeleteAppointment(c *gin.Context) {
	if err := h.store.DeleteAppointment(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapAppointmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapAppointmentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidID),
		errors.Is(err, usecase.ErrMissingClientName),
		errors.Is(err, usecase.ErrMissingPlate),
		errors.Is(err, usecase.ErrMissingServiceType),
		errors.Is(err, usecase.ErrInvalidAppointmentSlot),
		errors.Is(err, usecase.ErrInvalidStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAppointmentNotFound):
		return pkg.NewDomainErrorSimple("APPOINTMENT_NOT_FOUND", "Appointment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
