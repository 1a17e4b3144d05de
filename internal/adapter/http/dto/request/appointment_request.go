package request

import (
	"oficina_prime/internal/usecase"
)

// AppointmentRequest is the creation payload. Date is a calendar day
// (2006-01-02) and Time a wall-clock slot (15:04); both are validated by
// the store, not here.
type AppointmentRequest struct {
	ClientName  string         `json:"client_name" binding:"required"`
	Vehicle     VehicleRequest `json:"vehicle" binding:"required"`
	ServiceType string         `json:"service_type" binding:"required"`
	Date        string         `json:"date" binding:"required"`
	Time        string         `json:"time" binding:"required"`
	Notes       string         `json:"notes"`
}

func (r AppointmentRequest) ToDraft() usecase.AppointmentDraft {
	return usecase.AppointmentDraft{
		ClientName:  r.ClientName,
		Vehicle:     r.Vehicle.toRef(),
		ServiceType: r.ServiceType,
		Date:        r.Date,
		Time:        r.Time,
		Notes:       r.Notes,
	}
}

// AppointmentUpdateRequest is a partial update; absent fields keep their
// current value. Status has its own endpoint and is not accepted here.
type AppointmentUpdateRequest struct {
	ClientName  *string `json:"client_name"`
	ServiceType *string `json:"service_type"`
	Date        *string `json:"date"`
	Time        *string `json:"time"`
	Notes       *string `json:"notes"`
}

func (r AppointmentUpdateRequest) ToPatch() usecase.AppointmentPatch {
	return usecase.AppointmentPatch{
		ClientName:  r.ClientName,
		ServiceType: r.ServiceType,
		Date:        r.Date,
		Time:        r.Time,
		Notes:       r.Notes,
	}
}

// AppointmentStatusRequest carries a bare status transition.
type AppointmentStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
