package response

import (
	"oficina_prime/internal/domain/entities"
	"oficina_prime/internal/domain/reports"
)

// InventoryItemResponse enriches the stored item with the derived fields
// the stock screen renders: the traffic-light status and the margin.
type InventoryItemResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	PurchasePrice float64 `json:"purchase_price"`
	SellingPrice  float64 `json:"selling_price"`
	Stock         int     `json:"stock"`
	MinStock      int     `json:"min_stock"`
	Status        string  `json:"status"`
	ProfitMargin  float64 `json:"profit_margin"`
}

func FromInventoryItem(item entities.InventoryItem) InventoryItemResponse {
	return InventoryItemResponse{
		ID:            item.ID,
		Name:          item.Name,
		PurchasePrice: item.PurchasePrice,
		SellingPrice:  item.SellingPrice,
		Stock:         item.Stock,
		MinStock:      item.MinStock,
		Status:        string(reports.ItemStockStatus(item)),
		ProfitMargin:  reports.ProfitMargin(item),
	}
}

func FromInventoryItems(items []entities.InventoryItem) []InventoryItemResponse {
	out := make([]InventoryItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, FromInventoryItem(item))
	}
	return out
}
