package models

import "time"

// CustomerStats is derived from the sale history, never persisted.
// Customers have no entity of their own: the free-text customer name on
// each sale is the grouping key.
type CustomerStats struct {
	Name             string    `json:"name"`
	TotalPurchases   int       `json:"total_purchases"`    // Number of sale transactions
	TotalItemsBought int       `json:"total_items_bought"` // Sum of quantities
	TotalSpent       float64   `json:"total_spent"`
	TotalProfitGiven float64   `json:"total_profit_given"`
	LastPurchaseDate time.Time `json:"last_purchase_date"`
}
