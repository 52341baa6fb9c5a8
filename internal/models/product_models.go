package models

// Product represents a tracked retail product.
type Product struct {
	ID              string  `json:"id" db:"id"`
	Name            string  `json:"name" db:"name" binding:"required"`
	Category        string  `json:"category" db:"category"`
	CostPrice       float64 `json:"cost_price" db:"cost_price"`           // Current unit cost, recalculated on restock
	SuggestedPrice  float64 `json:"suggested_price" db:"suggested_price"` // Default sale price shown in the sale form
	CurrentStock    int     `json:"current_stock" db:"current_stock"`
	MinStock        int     `json:"min_stock" db:"min_stock"` // Reorder threshold
	TotalSold       int     `json:"total_sold" db:"total_sold"`
	LastRestockDate string  `json:"last_restock_date" db:"last_restock_date"` // YYYY-MM-DD
}

// MinMarginFactor is the informative minimum resale margin (20%).
// It is never enforced; the UI only displays the resulting floor price.
const MinMarginFactor = 1.2

// IsLowStock reports whether the product is at or below its reorder threshold.
func (p Product) IsLowStock() bool {
	return p.CurrentStock <= p.MinStock
}

// MinMarginPrice returns the suggested minimum resale price (cost plus 20%).
func (p Product) MinMarginPrice() float64 {
	return p.CostPrice * MinMarginFactor
}
