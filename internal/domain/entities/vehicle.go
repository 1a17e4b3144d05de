package entities

import "time"

// Vehicle is a physical car identified by its license plate. Vehicles are
// created implicitly (get-or-create by plate) the first time an order or
// appointment references a new plate.
type Vehicle struct {
	ID        string    `json:"id"`
	Plate     string    `json:"plate"`
	Model     string    `json:"model"`
	Year      string    `json:"year"`
	CreatedAt time.Time `json:"created_at"`
}

// VehicleService is one immutable row of a vehicle's service history.
// VehicleID holds the plate. Rows are appended when a service order
// completes, when an appointment is created, and manually via the
// history form.
type VehicleService struct {
	ID           string    `json:"id"`
	VehicleID    string    `json:"vehicle_id"`
	ServiceType  string    `json:"service_type"`
	Description  string    `json:"description,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	ServiceDate  time.Time `json:"service_date"`
	Price        float64   `json:"price,omitempty"`
	MechanicName string    `json:"mechanic_name,omitempty"`
	ClientName   string    `json:"client_name"`
	CreatedAt    time.Time `json:"created_at"`
}
