package services

import (
	"context"
	"testing"
	"time"

	"estoque_facil_backend/internal/models"
	"estoque_facil_backend/internal/storage"
	"estoque_facil_backend/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStoreWith(t *testing.T, products []models.Product, sales []models.Sale) *store.Store {
	t.Helper()
	adapter := storage.NewMemory()
	require.NoError(t, adapter.SaveProducts(context.Background(), products))
	require.NoError(t, adapter.SaveSales(context.Background(), sales))
	st, err := store.Open(context.Background(), adapter)
	require.NoError(t, err)
	return st
}

func headphones(stock int, cost float64) models.Product {
	return models.Product{
		ID:              "p1",
		Name:            "Fone de Ouvido Bluetooth",
		Category:        "Eletrônicos",
		CostPrice:       cost,
		SuggestedPrice:  120.00,
		CurrentStock:    stock,
		MinStock:        5,
		LastRestockDate: "2024-01-10",
	}
}

func TestCreateProductAssignsID(t *testing.T) {
	svc := NewInventoryService(newStoreWith(t, nil, nil))

	created, err := svc.CreateProduct(CreateProductRequest{
		Name:           "Cabo USB-C",
		Category:       "Acessórios",
		CostPrice:      8.50,
		SuggestedPrice: 25.00,
		CurrentStock:   10,
		MinStock:       4,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, 0, created.TotalSold)
	assert.Equal(t, time.Now().Format("2006-01-02"), created.LastRestockDate)

	// A second product gets a different identifier.
	other, err := svc.CreateProduct(CreateProductRequest{Name: "Cabo USB-C"})
	require.NoError(t, err)
	assert.NotEqual(t, created.ID, other.ID)
}

func TestCreateProductValidation(t *testing.T) {
	svc := NewInventoryService(newStoreWith(t, nil, nil))

	_, err := svc.CreateProduct(CreateProductRequest{Name: "   "})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.CreateProduct(CreateProductRequest{Name: "Ok", CostPrice: -1})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateProductOverwritesVerbatim(t *testing.T) {
	st := newStoreWith(t, []models.Product{headphones(15, 45.00)}, nil)
	svc := NewInventoryService(st)

	updated, err := svc.UpdateProduct("p1", models.Product{
		Name:            "Fone Bluetooth Pro",
		Category:        "Eletrônicos",
		CostPrice:       50.00,
		SuggestedPrice:  150.00,
		CurrentStock:    20,
		MinStock:        5,
		TotalSold:       3,
		LastRestockDate: "2024-02-01",
	})
	require.NoError(t, err)
	assert.Equal(t, "p1", updated.ID)
	assert.Equal(t, "Fone Bluetooth Pro", updated.Name)

	stored, err := st.ProductByID("p1")
	require.NoError(t, err)
	assert.Equal(t, 20, stored.CurrentStock)
	assert.Equal(t, 3, stored.TotalSold)
}

func TestUpdateProductUnknownIDIsNotFound(t *testing.T) {
	svc := NewInventoryService(newStoreWith(t, nil, nil))

	_, err := svc.UpdateProduct("ghost", models.Product{Name: "Qualquer"})
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestDeleteProduct(t *testing.T) {
	st := newStoreWith(t, []models.Product{headphones(15, 45.00)}, nil)
	svc := NewInventoryService(st)

	require.NoError(t, svc.DeleteProduct("p1"))
	assert.Empty(t, st.Products())

	assert.ErrorIs(t, svc.DeleteProduct("p1"), ErrProductNotFound)
}

func TestDeleteProductKeepsHistoricalSales(t *testing.T) {
	sale := models.Sale{
		ID:           "s1",
		Date:         time.Now().Add(-time.Hour),
		CustomerName: "João Silva",
		ProductID:    "p1",
		ProductName:  "Fone de Ouvido Bluetooth",
		Quantity:     1,
		CostAtSale:   45.00,
		SalePrice:    120.00,
		TotalValue:   120.00,
		Profit:       75.00,
	}
	st := newStoreWith(t, []models.Product{headphones(15, 45.00)}, []models.Sale{sale})
	svc := NewInventoryService(st)

	require.NoError(t, svc.DeleteProduct("p1"))

	sales := st.Sales()
	require.Len(t, sales, 1)
	assert.Equal(t, "Fone de Ouvido Bluetooth", sales[0].ProductName)
	assert.Equal(t, 45.00, sales[0].CostAtSale)
	assert.Equal(t, 120.00, sales[0].SalePrice)
}

func TestRestockWeightedAverageCost(t *testing.T) {
	st := newStoreWith(t, []models.Product{headphones(15, 45.00)}, nil)
	svc := NewInventoryService(st)

	// (15*45 + 5*60) / 20 = 48.75
	updated, err := svc.Restock("p1", RestockRequest{Quantity: 5, UnitCost: 60.00})
	require.NoError(t, err)

	assert.Equal(t, 48.75, updated.CostPrice)
	assert.Equal(t, 20, updated.CurrentStock)
	assert.Equal(t, time.Now().Format("2006-01-02"), updated.LastRestockDate)
}

func TestRestockRoundsCostToTwoDecimals(t *testing.T) {
	st := newStoreWith(t, []models.Product{headphones(1, 10.00)}, nil)
	svc := NewInventoryService(st)

	// (1*10 + 2*11) / 3 = 10.666... -> 10.67
	updated, err := svc.Restock("p1", RestockRequest{Quantity: 2, UnitCost: 11.00})
	require.NoError(t, err)
	assert.Equal(t, 10.67, updated.CostPrice)
}

func TestRestockZeroTotalStockLeavesCostUnchanged(t *testing.T) {
	// Stock can go negative through manual edits; the guard protects
	// the division when the shipment only brings the total back to 0.
	product := headphones(-5, 45.00)
	st := newStoreWith(t, []models.Product{product}, nil)
	svc := NewInventoryService(st)

	updated, err := svc.Restock("p1", RestockRequest{Quantity: 5, UnitCost: 60.00})
	require.NoError(t, err)

	assert.Equal(t, 45.00, updated.CostPrice)
	assert.Equal(t, 0, updated.CurrentStock)
}

func TestRestockValidation(t *testing.T) {
	st := newStoreWith(t, []models.Product{headphones(15, 45.00)}, nil)
	svc := NewInventoryService(st)

	_, err := svc.Restock("p1", RestockRequest{Quantity: 0, UnitCost: 10})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Restock("p1", RestockRequest{Quantity: 5, UnitCost: -1})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Restock("ghost", RestockRequest{Quantity: 5, UnitCost: 10})
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestGetProductsSearchFilter(t *testing.T) {
	st := newStoreWith(t, []models.Product{
		headphones(15, 45.00),
		{ID: "p2", Name: "Cabo USB-C", Category: "Acessórios"},
	}, nil)
	svc := NewInventoryService(st)

	all, err := svc.GetProducts("")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	byName, err := svc.GetProducts("fone")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "p1", byName[0].ID)

	byCategory, err := svc.GetProducts("acessórios")
	require.NoError(t, err)
	require.Len(t, byCategory, 1)
	assert.Equal(t, "p2", byCategory[0].ID)
}

func TestLowStockDerivation(t *testing.T) {
	p := headphones(5, 45.00) // stock 5, min 5
	assert.True(t, p.IsLowStock())
	p.CurrentStock = 6
	assert.False(t, p.IsLowStock())
	assert.InDelta(t, 54.00, p.MinMarginPrice(), 1e-9)
}
