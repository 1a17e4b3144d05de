package request

import (
	"oficina_prime/internal/domain/entities"
	"oficina_prime/internal/usecase"
)

type VehicleRequest struct {
	Model string `json:"model"`
	Year  string `json:"year"`
	Plate string `json:"plate" binding:"required"`
}

func (r VehicleRequest) toRef() entities.VehicleRef {
	return entities.VehicleRef{Model: r.Model, Year: r.Year, Plate: r.Plate}
}

type PartRequest struct {
	Name            string  `json:"name" binding:"required"`
	Price           float64 `json:"price"`
	Quantity        int     `json:"quantity" binding:"required"`
	InventoryItemID string  `json:"inventory_item_id"`
}

// ServiceOrderRequest is the creation payload. The total is intentionally
// absent: it is always recomputed server-side from labor cost and parts.
type ServiceOrderRequest struct {
	ClientName  string         `json:"client_name" binding:"required"`
	Vehicle     VehicleRequest `json:"vehicle" binding:"required"`
	ServiceType string         `json:"service_type" binding:"required"`
	LaborCost   float64        `json:"labor_cost"`
	Parts       []PartRequest  `json:"parts"`
	Status      string         `json:"status"`
}

func (r ServiceOrderRequest) ToDraft() usecase.ServiceOrderDraft {
	return usecase.ServiceOrderDraft{
		ClientName:  r.ClientName,
		Vehicle:     r.Vehicle.toRef(),
		ServiceType: r.ServiceType,
		Parts:       toPartDrafts(r.Parts),
		LaborCost:   r.LaborCost,
		Status:      entities.ServiceOrderStatus(r.Status),
	}
}

// ServiceOrderUpdateRequest is a partial update; absent fields keep their
// current value. Sending parts replaces the whole part set.
type ServiceOrderUpdateRequest struct {
	ClientName  *string        `json:"client_name"`
	ServiceType *string        `json:"service_type"`
	LaborCost   *float64       `json:"labor_cost"`
	Status      *string        `json:"status"`
	Parts       *[]PartRequest `json:"parts"`
}

func (r ServiceOrderUpdateRequest) ToPatch() usecase.ServiceOrderPatch {
	patch := usecase.ServiceOrderPatch{
		ClientName:  r.ClientName,
		ServiceType: r.ServiceType,
		LaborCost:   r.LaborCost,
	}
	if r.Status != nil {
		status := entities.ServiceOrderStatus(*r.Status)
		patch.Status = &status
	}
	if r.Parts != nil {
		parts := toPartDrafts(*r.Parts)
		patch.Parts = &parts
	}
	return patch
}

func toPartDrafts(parts []PartRequest) []usecase.PartDraft {
	if parts == nil {
		return nil
	}
	drafts := make([]usecase.PartDraft, 0, len(parts))
	for _, p := range parts {
		drafts = append(drafts, usecase.PartDraft{
			Name:            p.Name,
			Price:           p.Price,
			Quantity:        p.Quantity,
			InventoryItemID: p.InventoryItemID,
		})
	}
	return drafts
}
