package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"

	"webshop-api/internal/models"
)

const productCollection = "product"

// ErrProductNotFound is returned when no product matches the given slug.
var ErrProductNotFound = errors.New("product not found")

// CreateProduct inserts a product and returns its id. Slug uniqueness is
// not enforced at this layer.
func (s *Store) CreateProduct(ctx context.Context, product *models.Product) (string, error) {
	return s.insertDocument(ctx, productCollection, product)
}

// ListProducts retrieves all products in storage order.
func (s *Store) ListProducts(ctx context.Context) ([]models.Product, error) {
	products := []models.Product{}
	if err := s.findDocuments(ctx, productCollection, bson.M{}, 0, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// GetProductBySlug retrieves the first product matching the slug.
func (s *Store) GetProductBySlug(ctx context.Context, slug string) (*models.Product, error) {
	var products []models.Product
	if err := s.findDocuments(ctx, productCollection, bson.M{"slug": slug}, 1, &products); err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, ErrProductNotFound
	}
	return &products[0], nil
}
