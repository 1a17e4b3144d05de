package response

import (
	"time"

	"oficina_prime/internal/domain/entities"
)

type VehicleResponse struct {
	ID        string    `json:"id"`
	Plate     string    `json:"plate"`
	Model     string    `json:"model"`
	Year      string    `json:"year"`
	CreatedAt time.Time `json:"created_at"`
}

func FromVehicle(v entities.Vehicle) VehicleResponse {
	return VehicleResponse{
		ID:        v.ID,
		Plate:     v.Plate,
		Model:     v.Model,
		Year:      v.Year,
		CreatedAt: v.CreatedAt,
	}
}

func FromVehicles(vehicles []entities.Vehicle) []VehicleResponse {
	out := make([]VehicleResponse, 0, len(vehicles))
	for _, v := range vehicles {
		out = append(out, FromVehicle(v))
	}
	return out
}

type VehicleServiceResponse struct {
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

func FromVehicleService(vs entities.VehicleService) VehicleServiceResponse {
	return VehicleServiceResponse{
		ID:           vs.ID,
		VehicleID:    vs.VehicleID,
		ServiceType:  vs.ServiceType,
		Description:  vs.Description,
		Notes:        vs.Notes,
		ServiceDate:  vs.ServiceDate,
		Price:        vs.Price,
		MechanicName: vs.MechanicName,
		ClientName:   vs.ClientName,
		CreatedAt:    vs.CreatedAt,
	}
}

func FromVehicleServices(services []entities.VehicleService) []VehicleServiceResponse {
	out := make([]VehicleServiceResponse, 0, len(services))
	for _, vs := range services {
		out = append(out, FromVehicleService(vs))
	}
	return out
}
