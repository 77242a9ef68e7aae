package service

import (
	"context"
	"fmt"

	"webshop-api/internal/models"
	"webshop-api/internal/store"
)

// fakeStorage is an in-memory Storage implementation for tests.
type fakeStorage struct {
	products     []models.Product
	testimonials []models.Testimonial
	messages     []models.ContactMessage
	orders       []models.Order

	insertErr error
	queryErr  error
	nextID    int
}

func (f *fakeStorage) id() string {
	f.nextID++
	return fmt.Sprintf("id-%d", f.nextID)
}

func (f *fakeStorage) CreateProduct(_ context.Context, p *models.Product) (string, error) {
	if f.insertErr != nil {
		return "", f.insertErr
	}
	f.products = append(f.products, *p)
	return f.id(), nil
}

func (f *fakeStorage) ListProducts(_ context.Context) ([]models.Product, error) {
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	if f.products == nil {
		return []models.Product{}, nil
	}
	return f.products, nil
}

func (f *fakeStorage) GetProductBySlug(_ context.Context, slug string) (*models.Product, error) {
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	for i := range f.products {
		if f.products[i].Slug == slug {
			return &f.products[i], nil
		}
	}
	return nil, store.ErrProductNotFound
}

func (f *fakeStorage) CreateTestimonial(_ context.Context, t *models.Testimonial) (string, error) {
	if f.insertErr != nil {
		return "", f.insertErr
	}
	f.testimonials = append(f.testimonials, *t)
	return f.id(), nil
}

func (f *fakeStorage) ListTestimonials(_ context.Context) ([]models.Testimonial, error) {
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	if f.testimonials == nil {
		return []models.Testimonial{}, nil
	}
	return f.testimonials, nil
}

func (f *fakeStorage) CreateContactMessage(_ context.Context, m *models.ContactMessage) (string, error) {
	if f.insertErr != nil {
		return "", f.insertErr
	}
	f.messages = append(f.messages, *m)
	return f.id(), nil
}

func (f *fakeStorage) CreateOrder(_ context.Context, o *models.Order) (string, error) {
	if f.insertErr != nil {
		return "", f.insertErr
	}
	f.orders = append(f.orders, *o)
	return f.id(), nil
}
