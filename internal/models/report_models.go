package models

// DashboardSummary holds the headline KPIs for the overview screen.
// Every field is recomputed from the current collections on each request;
// nothing here is stored.
type DashboardSummary struct {
	TotalRevenue   float64 `json:"total_revenue"`
	TotalProfit    float64 `json:"total_profit"`
	LowStockCount  int     `json:"low_stock_count"`
	TotalItemsSold int     `json:"total_items_sold"`
}

// RevenuePoint is one day of the revenue chart. The label uses the
// dashboard's day/month display format (e.g. "07/03").
type RevenuePoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// TopProduct is one bar of the best-sellers chart, grouped by the
// denormalized product name on each sale.
type TopProduct struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}
