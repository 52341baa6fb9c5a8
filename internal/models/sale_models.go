package models

import "time"

// Sale represents a single immutable sale transaction. Product name and
// unit cost are denormalized snapshots taken at sale time so historical
// revenue and profit stay fixed even if the product is later restocked,
// edited or deleted.
type Sale struct {
	ID           string    `json:"id" db:"id"`
	Date         time.Time `json:"date" db:"date"`
	CustomerName string    `json:"customer_name" db:"customer_name"`
	ProductID    string    `json:"product_id" db:"product_id"`
	ProductName  string    `json:"product_name" db:"product_name"`
	Quantity     int       `json:"quantity" db:"quantity"`
	CostAtSale   float64   `json:"cost_at_sale" db:"cost_at_sale"`
	SalePrice    float64   `json:"sale_price" db:"sale_price"`
	TotalValue   float64   `json:"total_value" db:"total_value"` // quantity * sale_price
	Profit       float64   `json:"profit" db:"profit"`           // (sale_price - cost_at_sale) * quantity
}
