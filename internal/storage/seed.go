package storage

import (
	"time"

	"estoque_facil_backend/internal/models"
)

// SeedProducts returns the sample catalog used on first run, so a fresh
// installation shows a working dashboard instead of empty screens.
func SeedProducts() []models.Product {
	return []models.Product{
		{
			ID:              "1",
			Name:            "Fone de Ouvido Bluetooth",
			Category:        "Eletrônicos",
			CostPrice:       45.00,
			SuggestedPrice:  120.00,
			CurrentStock:    15,
			MinStock:        5,
			TotalSold:       12,
			LastRestockDate: "2023-10-01",
		},
		{
			ID:              "2",
			Name:            "Cabo USB-C Reforçado",
			Category:        "Acessórios",
			CostPrice:       8.50,
			SuggestedPrice:  25.00,
			CurrentStock:    4,
			MinStock:        10,
			TotalSold:       45,
			LastRestockDate: "2023-10-15",
		},
		{
			ID:              "3",
			Name:            "Suporte para Notebook",
			Category:        "Escritório",
			CostPrice:       35.00,
			SuggestedPrice:  89.90,
			CurrentStock:    8,
			MinStock:        3,
			TotalSold:       5,
			LastRestockDate: "2023-09-20",
		},
	}
}

// SeedSales returns two sample transactions dated relative to now, so
// the revenue chart has points on first run.
func SeedSales(now time.Time) []models.Sale {
	return []models.Sale{
		{
			ID:           "101",
			Date:         now.Add(-48 * time.Hour),
			CustomerName: "João Silva",
			ProductID:    "1",
			ProductName:  "Fone de Ouvido Bluetooth",
			Quantity:     1,
			CostAtSale:   45.00,
			SalePrice:    120.00,
			TotalValue:   120.00,
			Profit:       75.00,
		},
		{
			ID:           "102",
			Date:         now.Add(-24 * time.Hour),
			CustomerName: "Maria Oliveira",
			ProductID:    "2",
			ProductName:  "Cabo USB-C Reforçado",
			Quantity:     2,
			CostAtSale:   8.50,
			SalePrice:    25.00,
			TotalValue:   50.00,
			Profit:       33.00,
		},
	}
}
