package services

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"estoque_facil_backend/internal/models"
	"estoque_facil_backend/internal/store"

	"github.com/google/uuid"
)

// --- Custom Service Errors ---
var (
	ErrProductNotFound = errors.New("product not found")
	ErrValidation      = errors.New("validation error")
)

const dateLayout = "2006-01-02"

// --- DTOs ---

// CreateProductRequest carries every product field except the
// identifier, which is assigned by the service.
type CreateProductRequest struct {
	Name            string  `json:"name" binding:"required"`
	Category        string  `json:"category"`
	CostPrice       float64 `json:"cost_price" binding:"min=0"`
	SuggestedPrice  float64 `json:"suggested_price" binding:"min=0"`
	CurrentStock    int     `json:"current_stock" binding:"min=0"`
	MinStock        int     `json:"min_stock" binding:"min=0"`
	TotalSold       int     `json:"total_sold" binding:"min=0"`
	LastRestockDate string  `json:"last_restock_date"` // YYYY-MM-DD, defaults to today
}

// RestockRequest describes an incoming shipment: how many units and at
// what unit cost they were bought.
type RestockRequest struct {
	Quantity int     `json:"quantity" binding:"required,gt=0"`
	UnitCost float64 `json:"unit_cost" binding:"min=0"`
}

// --- InventoryService Interface ---
type InventoryService interface {
	CreateProduct(req CreateProductRequest) (*models.Product, error)
	GetProducts(search string) ([]models.Product, error)
	GetProductByID(id string) (*models.Product, error)
	UpdateProduct(id string, product models.Product) (*models.Product, error)
	DeleteProduct(id string) error
	Restock(id string, req RestockRequest) (*models.Product, error)
}

type inventoryService struct {
	store *store.Store
}

func NewInventoryService(st *store.Store) InventoryService {
	return &inventoryService{store: st}
}

func (s *inventoryService) CreateProduct(req CreateProductRequest) (*models.Product, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: product name cannot be empty", ErrValidation)
	}
	if req.CostPrice < 0 || req.SuggestedPrice < 0 {
		return nil, fmt.Errorf("%w: prices cannot be negative", ErrValidation)
	}
	if req.CurrentStock < 0 || req.MinStock < 0 {
		return nil, fmt.Errorf("%w: stock values cannot be negative", ErrValidation)
	}

	lastRestock := req.LastRestockDate
	if lastRestock == "" {
		lastRestock = time.Now().Format(dateLayout)
	} else if _, err := time.Parse(dateLayout, lastRestock); err != nil {
		return nil, fmt.Errorf("%w: last_restock_date must be YYYY-MM-DD", ErrValidation)
	}

	product := models.Product{
		ID:              uuid.NewString(),
		Name:            req.Name,
		Category:        req.Category,
		CostPrice:       req.CostPrice,
		SuggestedPrice:  req.SuggestedPrice,
		CurrentStock:    req.CurrentStock,
		MinStock:        req.MinStock,
		TotalSold:       req.TotalSold,
		LastRestockDate: lastRestock,
	}
	s.store.AddProduct(product)
	return &product, nil
}

func (s *inventoryService) GetProducts(search string) ([]models.Product, error) {
	products := s.store.Products()
	if search == "" {
		return products, nil
	}
	term := strings.ToLower(search)
	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), term) ||
			strings.Contains(strings.ToLower(p.Category), term) {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

func (s *inventoryService) GetProductByID(id string) (*models.Product, error) {
	product, err := s.store.ProductByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product by ID: %w", err)
	}
	return &product, nil
}

// UpdateProduct replaces the stored record verbatim (full overwrite,
// not a patch). An unknown id is an explicit not-found error rather
// than a silent no-op.
func (s *inventoryService) UpdateProduct(id string, product models.Product) (*models.Product, error) {
	if strings.TrimSpace(product.Name) == "" {
		return nil, fmt.Errorf("%w: product name cannot be empty", ErrValidation)
	}
	product.ID = id
	if err := s.store.ReplaceProduct(product); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	return &product, nil
}

// DeleteProduct removes the product unconditionally. Confirmation is a
// UI concern; historical sales keep their denormalized snapshots.
func (s *inventoryService) DeleteProduct(id string) error {
	if err := s.store.DeleteProduct(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrProductNotFound
		}
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}

// Restock adds units bought at the shipment's unit cost and blends the
// product's cost basis with a weighted average:
//
//	newCost = (oldStock*oldCost + qty*shipmentCost) / (oldStock + qty)
//
// using the pre-mutation stock and cost as the old side, computed
// before any field is touched. The result is rounded to 2 decimals.
// If the resulting total stock would be 0 the cost is left unchanged.
func (s *inventoryService) Restock(id string, req RestockRequest) (*models.Product, error) {
	if req.Quantity <= 0 {
		return nil, fmt.Errorf("%w: restock quantity must be positive", ErrValidation)
	}
	if req.UnitCost < 0 {
		return nil, fmt.Errorf("%w: shipment unit cost cannot be negative", ErrValidation)
	}

	updated, err := s.store.MutateProduct(id, func(p *models.Product) error {
		newTotal := p.CurrentStock + req.Quantity
		if newTotal > 0 {
			blended := (float64(p.CurrentStock)*p.CostPrice + float64(req.Quantity)*req.UnitCost) / float64(newTotal)
			p.CostPrice = round2(blended)
		}
		p.CurrentStock = newTotal
		p.LastRestockDate = time.Now().Format(dateLayout)
		return nil
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to restock product: %w", err)
	}
	return &updated, nil
}

// round2 rounds to 2 decimal places, the precision used for all money
// values in the dashboard.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
