package storage

import (
	"context"
	"testing"

	"estoque_facil_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryReportsEmptyUntilFirstSave(t *testing.T) {
	m := NewMemory()

	_, err := m.LoadProducts(context.Background())
	assert.ErrorIs(t, err, ErrEmpty)
	_, err = m.LoadSales(context.Background())
	assert.ErrorIs(t, err, ErrEmpty)

	require.NoError(t, m.SaveProducts(context.Background(), nil))
	products, err := m.LoadProducts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestMemoryStoresCopies(t *testing.T) {
	m := NewMemory()
	original := []models.Product{{ID: "p1", Name: "Cabo USB-C"}}
	require.NoError(t, m.SaveProducts(context.Background(), original))

	// Mutating the caller's slice must not affect the stored value.
	original[0].Name = "alterado"

	loaded, err := m.LoadProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "Cabo USB-C", loaded[0].Name)
}
