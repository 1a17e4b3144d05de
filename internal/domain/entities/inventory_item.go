package entities

// InventoryItem is a stocked part with purchase and selling prices.
// Stock is decremented when a part referencing the item is attached to a
// newly created service order; it is never restored on order deletion.
type InventoryItem struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	PurchasePrice float64 `json:"purchase_price"`
	SellingPrice  float64 `json:"selling_price"`
	Stock         int     `json:"stock"`
	MinStock      int     `json:"min_stock"`
}
