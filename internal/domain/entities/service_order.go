package entities

import "time"

// ServiceOrderStatus represents the lifecycle of a service order (ordem de serviço).
//
// Domain notes:
//   - Wire values keep the Portuguese labels the shop's data already uses.
//   - CONCLUIDO and CANCELADO are terminal; completion stamps CompletedAt.

type ServiceOrderStatus string

const (
	ServiceOrderStatusRascunho    ServiceOrderStatus = "RASCUNHO"
	ServiceOrderStatusEmAndamento ServiceOrderStatus = "EM_ANDAMENTO"
	ServiceOrderStatusConcluido   ServiceOrderStatus = "CONCLUIDO"
	ServiceOrderStatusCancelado   ServiceOrderStatus = "CANCELADO"
)

// Vehicle identification embedded in orders and appointments. The plate is
// the natural key used to deduplicate vehicles across records.
type VehicleRef struct {
	Model string `json:"model"`
	Year  string `json:"year"`
	Plate string `json:"plate"`
}

// Part is a line item consumed by one service order. Parts are owned by
// their order: deleting the order deletes its parts. InventoryItemID links
// the part back to the stock record it was picked from, when any.
type Part struct {
	ID              string  `json:"id"`
	ServiceOrderID  string  `json:"service_order_id"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	Quantity        int     `json:"quantity"`
	InventoryItemID string  `json:"inventory_item_id,omitempty"`
}

// ServiceOrder is one unit of repair work for a vehicle visit.
//
// Invariant: Total = LaborCost + Σ(part.Price × part.Quantity) at save time.
// The total is recomputed by the caller before submission, not maintained
// as a running value.
type ServiceOrder struct {
	ID          string             `json:"id"`
	ClientName  string             `json:"client_name"`
	Vehicle     VehicleRef         `json:"vehicle"`
	ServiceType string             `json:"service_type"`
	Parts       []Part             `json:"parts"`
	LaborCost   float64            `json:"labor_cost"`
	Total       float64            `json:"total"`
	Status      ServiceOrderStatus `json:"status"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
	CompletedAt *time.Time         `json:"completed_at,omitempty"`
}
