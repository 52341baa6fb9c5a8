package services

import (
	"sort"
	"strings"

	"estoque_facil_backend/internal/models"
	"estoque_facil_backend/internal/store"
)

const (
	// revenueChartDays bounds the revenue series to the most recent
	// distinct sale dates present in the data, not a calendar window.
	revenueChartDays = 7

	// topProductsLimit bounds the best-sellers ranking.
	topProductsLimit = 5

	// chartDateLayout is the day/month label used by the dashboard
	// charts.
	chartDateLayout = "02/01"
)

// ReportService derives every dashboard view from the current
// collections. All methods are pure: recomputing twice from the same
// data yields identical results, and nothing is cached or persisted.
type ReportService interface {
	GetDashboardSummary() models.DashboardSummary
	GetRevenueByDate() []models.RevenuePoint
	GetTopProducts() []models.TopProduct
	GetCustomerStats(search string) []models.CustomerStats
}

type reportService struct {
	store *store.Store
}

func NewReportService(st *store.Store) ReportService {
	return &reportService{store: st}
}

func (s *reportService) GetDashboardSummary() models.DashboardSummary {
	var summary models.DashboardSummary
	for _, sale := range s.store.Sales() {
		summary.TotalRevenue += sale.TotalValue
		summary.TotalProfit += sale.Profit
		summary.TotalItemsSold += sale.Quantity
	}
	for _, p := range s.store.Products() {
		if p.IsLowStock() {
			summary.LowStockCount++
		}
	}
	return summary
}

// GetRevenueByDate groups sales by calendar day, preserving the
// chronological order dates first appear in the ledger, and returns the
// most recent revenueChartDays entries (all of them when fewer distinct
// dates exist).
func (s *reportService) GetRevenueByDate() []models.RevenuePoint {
	totals := make(map[string]float64)
	var order []string
	for _, sale := range s.store.Sales() {
		label := sale.Date.Format(chartDateLayout)
		if _, seen := totals[label]; !seen {
			order = append(order, label)
		}
		totals[label] += sale.TotalValue
	}

	if len(order) > revenueChartDays {
		order = order[len(order)-revenueChartDays:]
	}
	points := make([]models.RevenuePoint, 0, len(order))
	for _, label := range order {
		points = append(points, models.RevenuePoint{Date: label, Value: totals[label]})
	}
	return points
}

// GetTopProducts ranks products by total quantity sold, grouped by the
// denormalized product name. The sort is stable so ties keep their
// original encounter order.
func (s *reportService) GetTopProducts() []models.TopProduct {
	totals := make(map[string]int)
	var order []string
	for _, sale := range s.store.Sales() {
		if _, seen := totals[sale.ProductName]; !seen {
			order = append(order, sale.ProductName)
		}
		totals[sale.ProductName] += sale.Quantity
	}

	ranked := make([]models.TopProduct, 0, len(order))
	for _, name := range order {
		ranked = append(ranked, models.TopProduct{Name: name, Quantity: totals[name]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Quantity > ranked[j].Quantity
	})
	if len(ranked) > topProductsLimit {
		ranked = ranked[:topProductsLimit]
	}
	return ranked
}

// GetCustomerStats aggregates the sale history per customer name and
// sorts by total spent, highest first. Customers exist only as the
// free-text name on their sales.
func (s *reportService) GetCustomerStats(search string) []models.CustomerStats {
	stats := make(map[string]*models.CustomerStats)
	var order []string
	for _, sale := range s.store.Sales() {
		entry, ok := stats[sale.CustomerName]
		if !ok {
			entry = &models.CustomerStats{
				Name:             sale.CustomerName,
				LastPurchaseDate: sale.Date,
			}
			stats[sale.CustomerName] = entry
			order = append(order, sale.CustomerName)
		}
		entry.TotalPurchases++
		entry.TotalItemsBought += sale.Quantity
		entry.TotalSpent += sale.TotalValue
		entry.TotalProfitGiven += sale.Profit
		if sale.Date.After(entry.LastPurchaseDate) {
			entry.LastPurchaseDate = sale.Date
		}
	}

	customers := make([]models.CustomerStats, 0, len(order))
	term := strings.ToLower(search)
	for _, name := range order {
		if term != "" && !strings.Contains(strings.ToLower(name), term) {
			continue
		}
		customers = append(customers, *stats[name])
	}
	sort.SliceStable(customers, func(i, j int) bool {
		return customers[i].TotalSpent > customers[j].TotalSpent
	})
	return customers
}
