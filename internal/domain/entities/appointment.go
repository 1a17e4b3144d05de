package entities

import "time"

// AppointmentStatus represents the scheduling lifecycle.
//
//   - AGENDADO: created, waiting for the visit.
//   - EM_ANDAMENTO: a service order was spawned from it.
//   - FINALIZADO / CANCELADO: terminal.
//   - ATRASADO: scheduled slot passed without the visit starting.

type AppointmentStatus string

const (
	AppointmentStatusAgendado    AppointmentStatus = "AGENDADO"
	AppointmentStatusEmAndamento AppointmentStatus = "EM_ANDAMENTO"
	AppointmentStatusFinalizado  AppointmentStatus = "FINALIZADO"
	AppointmentStatusCancelado   AppointmentStatus = "CANCELADO"
	AppointmentStatusAtrasado    AppointmentStatus = "ATRASADO"
)

// Appointment is a scheduled future visit, convertible into a ServiceOrder.
// Date is a calendar day (2006-01-02) and Time a wall-clock slot (15:04).
type Appointment struct {
	ID          string            `json:"id"`
	ClientName  string            `json:"client_name"`
	Vehicle     VehicleRef        `json:"vehicle"`
	ServiceType string            `json:"service_type"`
	Date        string            `json:"date"`
	Time        string            `json:"time"`
	Notes       string            `json:"notes,omitempty"`
	Status      AppointmentStatus `json:"status"`
	CreatedAt   time.Time         `json:"created_at"`
}

// ValidAppointmentStatus reports whether s is one of the known statuses.
func ValidAppointmentStatus(s AppointmentStatus) bool {
	switch s {
	case AppointmentStatusAgendado, AppointmentStatusEmAndamento,
		AppointmentStatusFinalizado, AppointmentStatusCancelado,
		AppointmentStatusAtrasado:
		return true
	}
	return false
}
