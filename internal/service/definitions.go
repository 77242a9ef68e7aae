package service

import (
	"context"

	"webshop-api/internal/models"
)

// Storage is the subset of the document store the services depend on. The
// interface lives on the consumer side so tests can swap in fakes.
type Storage interface {
	CreateProduct(ctx context.Context, product *models.Product) (string, error)
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProductBySlug(ctx context.Context, slug string) (*models.Product, error)
	CreateTestimonial(ctx context.Context, testimonial *models.Testimonial) (string, error)
	ListTestimonials(ctx context.Context) ([]models.Testimonial, error)
	CreateContactMessage(ctx context.Context, msg *models.ContactMessage) (string, error)
	CreateOrder(ctx context.Context, order *models.Order) (string, error)
}
