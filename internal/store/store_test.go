package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"webshop-api/internal/models"
)

func TestProductRoundTrip(t *testing.T) {
	// This is a placeholder test - requires a running MongoDB
	// In real scenarios, use testcontainers

	t.Skip("Integration test - requires MongoDB")

	store, err := NewStore("mongodb://localhost:27017", "webshop_test")
	require.NoError(t, err)
	defer store.Close(context.Background())

	ctx := context.Background()

	product := &models.Product{
		Title:            "Dream Mug",
		Slug:             "dream-mug",
		Description:      "A mug for dreamers",
		ShortDescription: "Mug",
		Price:            12.5,
		Currency:         "eur",
		Images:           []string{},
		Features:         []string{},
		InStock:          true,
	}

	id, err := store.CreateProduct(ctx, product)
	assert.NoError(t, err)
	assert.NotEmpty(t, id)

	retrieved, err := store.GetProductBySlug(ctx, "dream-mug")
	assert.NoError(t, err)
	assert.Equal(t, product.Title, retrieved.Title)
	assert.Equal(t, product.Price, retrieved.Price)
}

func TestGetProductBySlugNotFound(t *testing.T) {
	t.Skip("Integration test - requires MongoDB")

	store, err := NewStore("mongodb://localhost:27017", "webshop_test")
	require.NoError(t, err)
	defer store.Close(context.Background())

	_, err = store.GetProductBySlug(context.Background(), "no-such-slug")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestCreateOrder(t *testing.T) {
	t.Skip("Integration test - requires MongoDB")

	store, err := NewStore("mongodb://localhost:27017", "webshop_test")
	require.NoError(t, err)
	defer store.Close(context.Background())

	order := &models.Order{
		Items: []models.OrderItem{
			{Title: "Mug", Quantity: 2, UnitAmount: 500},
		},
		AmountTotal: 1000,
		Currency:    "eur",
		Status:      models.OrderStatusCreated,
	}

	id, err := store.CreateOrder(context.Background(), order)
	assert.NoError(t, err)
	assert.NotEmpty(t, id)
}
