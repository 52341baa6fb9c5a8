package services

import (
	"fmt"
	"testing"
	"time"

	"estoque_facil_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func saleOn(day time.Time, product, customer string, qty int, total, profit float64) models.Sale {
	return models.Sale{
		ID:           fmt.Sprintf("%s-%s-%s", day.Format("0102"), product, customer),
		Date:         day,
		CustomerName: customer,
		ProductName:  product,
		Quantity:     qty,
		TotalValue:   total,
		Profit:       profit,
	}
}

func TestDashboardSummary(t *testing.T) {
	products := []models.Product{
		{ID: "p1", Name: "A", CurrentStock: 4, MinStock: 10}, // low
		{ID: "p2", Name: "B", CurrentStock: 8, MinStock: 3},
		{ID: "p3", Name: "C", CurrentStock: 5, MinStock: 5}, // low (at threshold)
	}
	day := time.Date(2024, 3, 7, 12, 0, 0, 0, time.UTC)
	sales := []models.Sale{
		saleOn(day, "A", "Ana", 1, 120.00, 75.00),
		saleOn(day, "B", "Bruno", 2, 50.00, 33.00),
	}
	svc := NewReportService(newStoreWith(t, products, sales))

	summary := svc.GetDashboardSummary()
	assert.Equal(t, 170.00, summary.TotalRevenue)
	assert.Equal(t, 108.00, summary.TotalProfit)
	assert.Equal(t, 2, summary.LowStockCount)
	assert.Equal(t, 3, summary.TotalItemsSold)
}

func TestRevenueByDateGroupsAndLimits(t *testing.T) {
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	var sales []models.Sale
	// 9 distinct dates, two sales on the first one.
	sales = append(sales, saleOn(base, "A", "Ana", 1, 10.00, 1.00))
	sales = append(sales, saleOn(base.Add(2*time.Hour), "A", "Bruno", 1, 15.00, 1.00))
	for i := 1; i < 9; i++ {
		sales = append(sales, saleOn(base.AddDate(0, 0, i), "A", "Ana", 1, float64(i), 1.00))
	}
	svc := NewReportService(newStoreWith(t, nil, sales))

	points := svc.GetRevenueByDate()
	require.Len(t, points, 7)
	// The two oldest dates fell off; entries stay chronological.
	assert.Equal(t, "03/03", points[0].Date)
	assert.Equal(t, float64(2), points[0].Value)
	assert.Equal(t, "09/03", points[6].Date)
}

func TestRevenueByDateFewerThanLimit(t *testing.T) {
	day := time.Date(2024, 3, 7, 10, 0, 0, 0, time.UTC)
	sales := []models.Sale{
		saleOn(day, "A", "Ana", 1, 10.00, 1.00),
		saleOn(day.Add(time.Hour), "A", "Bruno", 1, 5.00, 1.00),
		saleOn(day.AddDate(0, 0, 1), "A", "Ana", 1, 7.00, 1.00),
	}
	svc := NewReportService(newStoreWith(t, nil, sales))

	points := svc.GetRevenueByDate()
	require.Len(t, points, 2)
	assert.Equal(t, "07/03", points[0].Date)
	assert.Equal(t, 15.00, points[0].Value)
	assert.Equal(t, "08/03", points[1].Date)
	assert.Equal(t, 7.00, points[1].Value)
}

func TestTopProductsRankingAndTies(t *testing.T) {
	day := time.Date(2024, 3, 7, 10, 0, 0, 0, time.UTC)
	var sales []models.Sale
	// Six products so one falls off the top 5. "B" and "C" tie at 4;
	// "B" was encountered first and must stay ahead.
	sales = append(sales,
		saleOn(day, "A", "x", 10, 1, 1),
		saleOn(day, "B", "x", 4, 1, 1),
		saleOn(day, "C", "x", 4, 1, 1),
		saleOn(day, "D", "x", 3, 1, 1),
		saleOn(day, "E", "x", 2, 1, 1),
		saleOn(day, "F", "x", 1, 1, 1),
	)
	svc := NewReportService(newStoreWith(t, nil, sales))

	top := svc.GetTopProducts()
	require.Len(t, top, 5)
	assert.Equal(t, "A", top[0].Name)
	assert.Equal(t, 10, top[0].Quantity)
	assert.Equal(t, "B", top[1].Name)
	assert.Equal(t, "C", top[2].Name)
	assert.Equal(t, "E", top[4].Name)
}

func TestCustomerStatsAggregation(t *testing.T) {
	day := time.Date(2024, 3, 7, 10, 0, 0, 0, time.UTC)
	sales := []models.Sale{
		saleOn(day, "A", "Ana", 2, 50.00, 20.00),
		saleOn(day.AddDate(0, 0, 1), "B", "Ana", 1, 30.00, 10.00),
		saleOn(day, "A", "Bruno", 5, 200.00, 90.00),
	}
	svc := NewReportService(newStoreWith(t, nil, sales))

	customers := svc.GetCustomerStats("")
	require.Len(t, customers, 2)

	// Sorted by total spent, highest first.
	assert.Equal(t, "Bruno", customers[0].Name)

	ana := customers[1]
	assert.Equal(t, 2, ana.TotalPurchases)
	assert.Equal(t, 3, ana.TotalItemsBought)
	assert.Equal(t, 80.00, ana.TotalSpent)
	assert.Equal(t, 30.00, ana.TotalProfitGiven)
	assert.Equal(t, day.AddDate(0, 0, 1), ana.LastPurchaseDate)
}

func TestCustomerStatsSearch(t *testing.T) {
	day := time.Date(2024, 3, 7, 10, 0, 0, 0, time.UTC)
	sales := []models.Sale{
		saleOn(day, "A", "Ana Souza", 1, 10.00, 1.00),
		saleOn(day, "A", "Bruno", 1, 10.00, 1.00),
	}
	svc := NewReportService(newStoreWith(t, nil, sales))

	filtered := svc.GetCustomerStats("souza")
	require.Len(t, filtered, 1)
	assert.Equal(t, "Ana Souza", filtered[0].Name)
}

func TestReportsAreIdempotent(t *testing.T) {
	day := time.Date(2024, 3, 7, 10, 0, 0, 0, time.UTC)
	sales := []models.Sale{
		saleOn(day, "A", "Ana", 2, 50.00, 20.00),
		saleOn(day.AddDate(0, 0, 1), "B", "Bruno", 1, 30.00, 10.00),
	}
	svc := NewReportService(newStoreWith(t, nil, sales))

	assert.Equal(t, svc.GetRevenueByDate(), svc.GetRevenueByDate())
	assert.Equal(t, svc.GetTopProducts(), svc.GetTopProducts())
	assert.Equal(t, svc.GetCustomerStats(""), svc.GetCustomerStats(""))
	assert.Equal(t, svc.GetDashboardSummary(), svc.GetDashboardSummary())
}
