package storage

import (
	"context"
	"sync"

	"estoque_facil_backend/internal/models"
)

// Memory is a map-backed Adapter. It is used when no database is
// configured (data lives only for the process lifetime) and in tests.
type Memory struct {
	mu       sync.Mutex
	products []models.Product
	sales    []models.Sale
	hasProds bool
	hasSales bool
}

// NewMemory returns an empty in-memory adapter: the first Load* calls
// report ErrEmpty so the store applies its seed data.
func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) LoadProducts(_ context.Context) ([]models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.hasProds {
		return nil, ErrEmpty
	}
	out := make([]models.Product, len(m.products))
	copy(out, m.products)
	return out, nil
}

func (m *Memory) SaveProducts(_ context.Context, products []models.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.products = make([]models.Product, len(products))
	copy(m.products, products)
	m.hasProds = true
	return nil
}

func (m *Memory) LoadSales(_ context.Context) ([]models.Sale, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.hasSales {
		return nil, ErrEmpty
	}
	out := make([]models.Sale, len(m.sales))
	copy(out, m.sales)
	return out, nil
}

func (m *Memory) SaveSales(_ context.Context, sales []models.Sale) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sales = make([]models.Sale, len(sales))
	copy(m.sales, sales)
	m.hasSales = true
	return nil
}
