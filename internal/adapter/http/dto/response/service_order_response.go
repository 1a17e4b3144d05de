package response

import (
	"time"

	"oficina_prime/internal/domain/entities"
)

type VehicleRefResponse struct {
	Model string `json:"model"`
	Year  string `json:"year"`
	Plate string `json:"plate"`
}

type PartResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	Quantity        int     `json:"quantity"`
	InventoryItemID string  `json:"inventory_item_id,omitempty"`
}

type ServiceOrderResponse struct {
	ID          string             `json:"id"`
	ClientName  string             `json:"client_name"`
	Vehicle     VehicleRefResponse `json:"vehicle"`
	ServiceType string             `json:"service_type"`
	Parts       []PartResponse     `json:"parts"`
	LaborCost   float64            `json:"labor_cost"`
	Total       float64            `json:"total"`
	Status      string             `json:"status"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
	CompletedAt *time.Time         `json:"completed_at,omitempty"`
}

func FromServiceOrder(o entities.ServiceOrder) ServiceOrderResponse {
	parts := make([]PartResponse, 0, len(o.Parts))
	for _, p := range o.Parts {
		parts = append(parts, PartResponse{
			ID:              p.ID,
			Name:            p.Name,
			Price:           p.Price,
			Quantity:        p.Quantity,
			InventoryItemID: p.InventoryItemID,
		})
	}
	return ServiceOrderResponse{
		ID:         o.ID,
		ClientName: o.ClientName,
		Vehicle: VehicleRefResponse{
			Model: o.Vehicle.Model,
			Year:  o.Vehicle.Year,
			Plate: o.Vehicle.Plate,
		},
		ServiceType: o.ServiceType,
		Parts:       parts,
		LaborCost:   o.LaborCost,
		Total:       o.Total,
		Status:      string(o.Status),
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
		CompletedAt: o.CompletedAt,
	}
}

func FromServiceOrders(orders []entities.ServiceOrder) []ServiceOrderResponse {
	out := make([]ServiceOrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromServiceOrder(o))
	}
	return out
}
