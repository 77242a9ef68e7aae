package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"webshop-api/internal/store"
)

func floatPtr(v float64) *float64 { return &v }
func boolPtr(v bool) *bool        { return &v }
func strPtr(v string) *string     { return &v }

func TestCreateProductAppliesDefaults(t *testing.T) {
	fake := &fakeStorage{}
	svc := NewCatalogService(fake)

	id, err := svc.CreateProduct(context.Background(), &CreateProductRequest{
		Title:            "Dream Mug",
		Slug:             "dream-mug",
		Description:      "A mug for dreamers",
		ShortDescription: "Mug",
		Price:            floatPtr(12.5),
	})
	require.NoError(t, err)
	assert.Equal(t, "id-1", id)

	require.Len(t, fake.products, 1)
	stored := fake.products[0]
	assert.Equal(t, "eur", stored.Currency)
	assert.True(t, stored.InStock)
	assert.NotNil(t, stored.Images)
	assert.Empty(t, stored.Images)
	assert.NotNil(t, stored.Features)
	assert.Empty(t, stored.Features)
	assert.Nil(t, stored.StripePriceID)
}

func TestCreateProductKeepsExplicitValues(t *testing.T) {
	fake := &fakeStorage{}
	svc := NewCatalogService(fake)

	_, err := svc.CreateProduct(context.Background(), &CreateProductRequest{
		Title:            "Dream Mug",
		Slug:             "dream-mug",
		Description:      "A mug for dreamers",
		ShortDescription: "Mug",
		Price:            floatPtr(0),
		Currency:         "usd",
		Images:           []string{"https://example.com/mug.png"},
		InStock:          boolPtr(false),
		StripePriceID:    strPtr("price_123"),
	})
	require.NoError(t, err)

	stored := fake.products[0]
	assert.Equal(t, float64(0), stored.Price)
	assert.Equal(t, "usd", stored.Currency)
	assert.False(t, stored.InStock)
	assert.Equal(t, []string{"https://example.com/mug.png"}, stored.Images)
	require.NotNil(t, stored.StripePriceID)
	assert.Equal(t, "price_123", *stored.StripePriceID)
}

func TestGetProductRoundTrip(t *testing.T) {
	fake := &fakeStorage{}
	svc := NewCatalogService(fake)

	req := &CreateProductRequest{
		Title:            "Dream Mug",
		Slug:             "dream-mug",
		Description:      "A mug for dreamers",
		ShortDescription: "Mug",
		Price:            floatPtr(12.5),
		Features:         []string{"dishwasher safe"},
	}
	_, err := svc.CreateProduct(context.Background(), req)
	require.NoError(t, err)

	got, err := svc.GetProduct(context.Background(), "dream-mug")
	require.NoError(t, err)
	assert.Equal(t, req.Title, got.Title)
	assert.Equal(t, *req.Price, got.Price)
	assert.Equal(t, req.Features, got.Features)
}

func TestGetProductNotFound(t *testing.T) {
	svc := NewCatalogService(&fakeStorage{})

	_, err := svc.GetProduct(context.Background(), "does-not-exist")
	assert.ErrorIs(t, err, store.ErrProductNotFound)
}

func TestListProductsEmpty(t *testing.T) {
	svc := NewCatalogService(&fakeStorage{})

	products, err := svc.ListProducts(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)
}

func TestCreateTestimonial(t *testing.T) {
	fake := &fakeStorage{}
	svc := NewCatalogService(fake)

	id, err := svc.CreateTestimonial(context.Background(), &CreateTestimonialRequest{
		Name:  "Sam",
		Role:  strPtr("Parent"),
		Quote: "Wonderful!",
	})
	require.NoError(t, err)
	assert.Equal(t, "id-1", id)

	require.Len(t, fake.testimonials, 1)
	assert.Equal(t, "Sam", fake.testimonials[0].Name)
	require.NotNil(t, fake.testimonials[0].Role)
	assert.Equal(t, "Parent", *fake.testimonials[0].Role)
}

func TestSendContactMessageStorageError(t *testing.T) {
	fake := &fakeStorage{insertErr: errors.New("server selection timeout")}
	svc := NewCatalogService(fake)

	_, err := svc.SendContactMessage(context.Background(), &ContactMessageRequest{
		Name:    "Sam",
		Email:   "sam@example.com",
		Message: "Hello",
	})
	assert.Error(t, err)
	assert.Empty(t, fake.messages)
}
