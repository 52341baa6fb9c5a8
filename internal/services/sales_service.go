package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"estoque_facil_backend/internal/models"
	"estoque_facil_backend/internal/store"

	"github.com/google/uuid"
)

var (
	// ErrInsufficientStock rejects a sale whose quantity exceeds the
	// product's current stock. There is no partial fulfillment.
	ErrInsufficientStock = errors.New("insufficient stock for sale")
)

// --- DTOs ---

// RecordSaleRequest is the sale form payload. Date is optional
// (YYYY-MM-DD or RFC3339); when absent the sale is dated now.
type RecordSaleRequest struct {
	ProductID    string  `json:"product_id" binding:"required"`
	CustomerName string  `json:"customer_name" binding:"required"`
	Quantity     int     `json:"quantity" binding:"required,gte=1"`
	SalePrice    float64 `json:"sale_price" binding:"min=0"`
	Date         string  `json:"date"`
}

// --- SalesService Interface ---
type SalesService interface {
	RecordSale(req RecordSaleRequest) (*models.Sale, error)
	GetSales(search string) ([]models.Sale, error)
	MaxPriceSold(productID string) float64
}

type salesService struct {
	store *store.Store
}

func NewSalesService(st *store.Store) SalesService {
	return &salesService{store: st}
}

// RecordSale validates the request and appends the sale. The stock
// check, snapshot of the product's cost and the stock decrement happen
// atomically inside the store, so the sale and product collections
// always reflect the transaction together.
func (s *salesService) RecordSale(req RecordSaleRequest) (*models.Sale, error) {
	if req.Quantity < 1 {
		return nil, fmt.Errorf("%w: quantity must be at least 1", ErrValidation)
	}
	if req.SalePrice < 0 {
		return nil, fmt.Errorf("%w: sale price cannot be negative", ErrValidation)
	}
	if strings.TrimSpace(req.CustomerName) == "" {
		return nil, fmt.Errorf("%w: customer name cannot be empty", ErrValidation)
	}

	date := time.Now()
	if req.Date != "" {
		parsed, err := parseSaleDate(req.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: date must be YYYY-MM-DD or RFC3339", ErrValidation)
		}
		date = parsed
	}

	sale := models.Sale{
		ID:           uuid.NewString(),
		Date:         date,
		CustomerName: req.CustomerName,
		ProductID:    req.ProductID,
		Quantity:     req.Quantity,
		SalePrice:    req.SalePrice,
	}

	recorded, err := s.store.RecordSale(sale)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		if errors.Is(err, store.ErrInsufficientStock) {
			return nil, fmt.Errorf("%w: %s", ErrInsufficientStock, err.Error())
		}
		return nil, fmt.Errorf("failed to record sale: %w", err)
	}
	return &recorded, nil
}

// GetSales returns the ledger newest-first, optionally filtered by
// customer or product name.
func (s *salesService) GetSales(search string) ([]models.Sale, error) {
	sales := s.store.Sales()
	if search != "" {
		term := strings.ToLower(search)
		filtered := make([]models.Sale, 0, len(sales))
		for _, sl := range sales {
			if strings.Contains(strings.ToLower(sl.CustomerName), term) ||
				strings.Contains(strings.ToLower(sl.ProductName), term) {
				filtered = append(filtered, sl)
			}
		}
		sales = filtered
	}
	sort.SliceStable(sales, func(i, j int) bool {
		return sales[i].Date.After(sales[j].Date)
	})
	return sales, nil
}

// MaxPriceSold returns the highest unit price ever charged for the
// product, or 0 if it was never sold. Shown next to the sale form as a
// pricing hint.
func (s *salesService) MaxPriceSold(productID string) float64 {
	var max float64
	for _, sl := range s.store.Sales() {
		if sl.ProductID == productID && sl.SalePrice > max {
			max = sl.SalePrice
		}
	}
	return max
}

func parseSaleDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse(dateLayout, value)
}
