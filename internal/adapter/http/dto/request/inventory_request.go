package request

import (
	"oficina_prime/internal/usecase"
)

type InventoryItemRequest struct {
	Name          string  `json:"name" binding:"required"`
	PurchasePrice float64 `json:"purchase_price"`
	SellingPrice  float64 `json:"selling_price"`
	Stock         int     `json:"stock"`
	MinStock      int     `json:"min_stock"`
}

func (r InventoryItemRequest) ToDraft() usecase.InventoryItemDraft {
	return usecase.InventoryItemDraft{
		Name:          r.Name,
		PurchasePrice: r.PurchasePrice,
		SellingPrice:  r.SellingPrice,
		Stock:         r.Stock,
		MinStock:      r.MinStock,
	}
}

type InventoryItemUpdateRequest struct {
	Name          *string  `json:"name"`
	PurchasePrice *float64 `json:"purchase_price"`
	SellingPrice  *float64 `json:"selling_price"`
	Stock         *int     `json:"stock"`
	MinStock      *int     `json:"min_stock"`
}

func (r InventoryItemUpdateRequest) ToPatch() usecase.InventoryItemPatch {
	return usecase.InventoryItemPatch{
		Name:          r.Name,
		PurchasePrice: r.PurchasePrice,
		SellingPrice:  r.SellingPrice,
		Stock:         r.Stock,
		MinStock:      r.MinStock,
	}
}
