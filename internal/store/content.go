package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"webshop-api/internal/models"
)

const (
	testimonialCollection    = "testimonial"
	contactMessageCollection = "contactmessage"
)

// CreateTestimonial inserts a testimonial and returns its id.
func (s *Store) CreateTestimonial(ctx context.Context, testimonial *models.Testimonial) (string, error) {
	return s.insertDocument(ctx, testimonialCollection, testimonial)
}

// ListTestimonials retrieves all testimonials in storage order.
func (s *Store) ListTestimonials(ctx context.Context) ([]models.Testimonial, error) {
	testimonials := []models.Testimonial{}
	if err := s.findDocuments(ctx, testimonialCollection, bson.M{}, 0, &testimonials); err != nil {
		return nil, err
	}
	return testimonials, nil
}

// CreateContactMessage inserts a contact message and returns its id.
func (s *Store) CreateContactMessage(ctx context.Context, msg *models.ContactMessage) (string, error) {
	return s.insertDocument(ctx, contactMessageCollection, msg)
}
