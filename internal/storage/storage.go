package storage

import (
	"context"
	"errors"

	"estoque_facil_backend/internal/models"
)

// Collection kinds persisted by the adapter.
const (
	KindProducts = "products"
	KindSales    = "sales"
)

var (
	// ErrEmpty is returned by Load* when the store holds no value for
	// the kind yet (first run). Callers are expected to seed.
	ErrEmpty = errors.New("collection not present in storage")

	// ErrStorage wraps unexpected adapter failures.
	ErrStorage = errors.New("storage error")
)

// Adapter is the durable key-value contract behind the in-memory store.
// Whole collections are loaded and saved as single values; there is no
// per-record access.
type Adapter interface {
	LoadProducts(ctx context.Context) ([]models.Product, error)
	SaveProducts(ctx context.Context, products []models.Product) error
	LoadSales(ctx context.Context) ([]models.Sale, error)
	SaveSales(ctx context.Context, sales []models.Sale) error
}
