// Package store holds the authoritative in-memory collections and
// mirrors every mutation to durable storage. The in-memory state is the
// source of truth for the session: a failed persistence write is logged
// and reported through Degraded, never propagated to the caller.
package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"estoque_facil_backend/internal/models"
	"estoque_facil_backend/internal/storage"
	"estoque_facil_backend/pkg/utils"
)

var (
	// ErrNotFound is returned when no record matches the given id.
	ErrNotFound = errors.New("record not found")

	// ErrInsufficientStock is returned by RecordSale when the requested
	// quantity exceeds the product's current stock.
	ErrInsufficientStock = errors.New("insufficient stock")
)

const persistTimeout = 5 * time.Second

// Store owns the Products and Sales collections. Each mutation method
// applies the collection change and the persistence write as one unit
// under the write lock.
type Store struct {
	mu       sync.RWMutex
	adapter  storage.Adapter
	products []models.Product
	sales    []models.Sale
	degraded bool
}

// Open loads both collections from the adapter, seeding the sample
// dataset on first run (empty storage).
func Open(ctx context.Context, adapter storage.Adapter) (*Store, error) {
	s := &Store{adapter: adapter}

	products, err := adapter.LoadProducts(ctx)
	if errors.Is(err, storage.ErrEmpty) {
		products = storage.SeedProducts()
		if err := adapter.SaveProducts(ctx, products); err != nil {
			return nil, fmt.Errorf("saving seed products: %w", err)
		}
		utils.LogInfo("Seeded product catalog", map[string]interface{}{"count": len(products)})
	} else if err != nil {
		return nil, fmt.Errorf("loading products: %w", err)
	}

	sales, err := adapter.LoadSales(ctx)
	if errors.Is(err, storage.ErrEmpty) {
		sales = storage.SeedSales(time.Now())
		if err := adapter.SaveSales(ctx, sales); err != nil {
			return nil, fmt.Errorf("saving seed sales: %w", err)
		}
		utils.LogInfo("Seeded sales history", map[string]interface{}{"count": len(sales)})
	} else if err != nil {
		return nil, fmt.Errorf("loading sales: %w", err)
	}

	s.products = products
	s.sales = sales
	return s, nil
}

// Products returns a copy of the product collection.
func (s *Store) Products() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Sales returns a copy of the sale collection.
func (s *Store) Sales() []models.Sale {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Sale, len(s.sales))
	copy(out, s.sales)
	return out
}

// ProductByID returns the product with the given id.
func (s *Store) ProductByID(id string) (models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrNotFound
}

// AddProduct appends a product and persists the collection.
func (s *Store) AddProduct(p models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = append(s.products, p)
	s.persistProducts()
}

// ReplaceProduct overwrites the stored record matching p.ID verbatim.
func (s *Store) ReplaceProduct(p models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == p.ID {
			s.products[i] = p
			s.persistProducts()
			return nil
		}
	}
	return ErrNotFound
}

// DeleteProduct removes the product with the given id. Historical sales
// referencing the product are left untouched; their denormalized
// snapshot fields keep them valid.
func (s *Store) DeleteProduct(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			s.persistProducts()
			return nil
		}
	}
	return ErrNotFound
}

// MutateProduct applies fn to the product with the given id under the
// write lock and persists the collection if fn succeeds. fn sees the
// pre-mutation record and may modify it in place.
func (s *Store) MutateProduct(id string, fn func(*models.Product) error) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == id {
			if err := fn(&s.products[i]); err != nil {
				return models.Product{}, err
			}
			s.persistProducts()
			return s.products[i], nil
		}
	}
	return models.Product{}, ErrNotFound
}

// RecordSale validates stock, snapshots the product's name and unit
// cost onto the sale, computes totals, appends the sale and applies the
// stock decrement, all under one lock so no state exists where the
// sale and its stock movement disagree.
//
// The caller provides ID, Date, CustomerName, ProductID, Quantity and
// SalePrice; the remaining fields are filled here.
func (s *Store) RecordSale(sale models.Sale) (models.Sale, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var product *models.Product
	for i := range s.products {
		if s.products[i].ID == sale.ProductID {
			product = &s.products[i]
			break
		}
	}
	if product == nil {
		return models.Sale{}, ErrNotFound
	}
	if sale.Quantity > product.CurrentStock {
		return models.Sale{}, fmt.Errorf("%w: requested %d, available %d",
			ErrInsufficientStock, sale.Quantity, product.CurrentStock)
	}

	sale.ProductName = product.Name
	sale.CostAtSale = product.CostPrice
	sale.TotalValue = float64(sale.Quantity) * sale.SalePrice
	sale.Profit = (sale.SalePrice - sale.CostAtSale) * float64(sale.Quantity)

	product.CurrentStock -= sale.Quantity
	product.TotalSold += sale.Quantity
	s.sales = append(s.sales, sale)

	s.persistProducts()
	s.persistSales()
	return sale, nil
}

// Degraded reports whether the most recent persistence write failed.
// The in-memory state stays authoritative either way.
func (s *Store) Degraded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.degraded
}

// persistProducts writes the product collection. Callers must hold the
// write lock.
func (s *Store) persistProducts() {
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()
	if err := s.adapter.SaveProducts(ctx, s.products); err != nil {
		utils.LogError(err, "Failed to persist products; in-memory state remains authoritative")
		s.degraded = true
		return
	}
	s.degraded = false
}

// persistSales writes the sale collection. Callers must hold the write
// lock.
func (s *Store) persistSales() {
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()
	if err := s.adapter.SaveSales(ctx, s.sales); err != nil {
		utils.LogError(err, "Failed to persist sales; in-memory state remains authoritative")
		s.degraded = true
		return
	}
	s.degraded = false
}
