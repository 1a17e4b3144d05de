package response

import (
	"time"

	"oficina_prime/internal/domain/entities"
)

type AppointmentResponse struct {
	ID          string             `json:"id"`
	ClientName  string             `json:"client_name"`
	Vehicle     VehicleRefResponse `json:"vehicle"`
	ServiceType string             `json:"service_type"`
	Date        string             `json:"date"`
	Time        string             `json:"time"`
	Notes       string             `json:"notes,omitempty"`
	Status      string             `json:"status"`
	CreatedAt   time.Time          `json:"created_at"`
}

func FromAppointment(a entities.Appointment) AppointmentResponse {
	return AppointmentResponse{
		ID:         a.ID,
		ClientName: a.ClientName,
		Vehicle: VehicleRefResponse{
			Model: a.Vehicle.Model,
			Year:  a.Vehicle.Year,
			Plate: a.Vehicle.Plate,
		},
		ServiceType: a.ServiceType,
		Date:        a.Date,
		Time:        a.Time,
		Notes:       a.Notes,
		Status:      string(a.Status),
		CreatedAt:   a.CreatedAt,
	}
}

func FromAppointments(appointments []entities.Appointment) []AppointmentResponse {
	out := make([]AppointmentResponse, 0, len(appointments))
	for _, a := range appointments {
		out = append(out, FromAppointment(a))
	}
	return out
}
