package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"webshop-api/internal/models"
	"webshop-api/internal/util"
)

// CatalogService handles products, testimonials and contact messages.
type CatalogService struct {
	store  Storage
	logger *zap.Logger
}

// NewCatalogService creates a new catalog service
func NewCatalogService(store Storage) *CatalogService {
	return &CatalogService{
		store:  store,
		logger: util.GetLogger(),
	}
}

// CreateProductRequest represents an incoming product body. Price is a
// pointer so that an explicit 0 passes the required check.
type CreateProductRequest struct {
	Title            string   `json:"title" binding:"required"`
	Slug             string   `json:"slug" binding:"required"`
	Description      string   `json:"description" binding:"required"`
	ShortDescription string   `json:"short_description" binding:"required"`
	Price            *float64 `json:"price" binding:"required,gte=0"`
	Currency         string   `json:"currency"`
	Images           []string `json:"images"`
	Features         []string `json:"features"`
	InStock          *bool    `json:"in_stock"`
	StripePriceID    *string  `json:"stripe_price_id"`
}

// product converts the request into the stored shape, filling defaults.
func (r *CreateProductRequest) product() *models.Product {
	p := &models.Product{
		Title:            r.Title,
		Slug:             r.Slug,
		Description:      r.Description,
		ShortDescription: r.ShortDescription,
		Price:            *r.Price,
		Currency:         r.Currency,
		Images:           r.Images,
		Features:         r.Features,
		InStock:          true,
		StripePriceID:    r.StripePriceID,
	}
	if p.Currency == "" {
		p.Currency = models.DefaultCurrency
	}
	if r.InStock != nil {
		p.InStock = *r.InStock
	}
	if p.Images == nil {
		p.Images = []string{}
	}
	if p.Features == nil {
		p.Features = []string{}
	}
	return p
}

// CreateProduct validates and persists a product, returning its id.
func (s *CatalogService) CreateProduct(ctx context.Context, req *CreateProductRequest) (string, error) {
	ctx, span := util.StartSpan(ctx, "CatalogService.CreateProduct")
	defer span.End()

	id, err := s.store.CreateProduct(ctx, req.product())
	if err != nil {
		util.DocumentWritesFailedTotal.WithLabelValues("product").Inc()
		return "", fmt.Errorf("failed to create product: %w", err)
	}

	util.ProductsCreatedTotal.Inc()
	s.logger.Info("Product created",
		zap.String("slug", req.Slug),
		zap.String("id", id))
	return id, nil
}

// ListProducts retrieves all products.
func (s *CatalogService) ListProducts(ctx context.Context) ([]models.Product, error) {
	ctx, span := util.StartSpan(ctx, "CatalogService.ListProducts")
	defer span.End()

	return s.store.ListProducts(ctx)
}

// GetProduct retrieves a single product by slug.
func (s *CatalogService) GetProduct(ctx context.Context, slug string) (*models.Product, error) {
	ctx, span := util.StartSpan(ctx, "CatalogService.GetProduct")
	defer span.End()

	return s.store.GetProductBySlug(ctx, slug)
}

// CreateTestimonialRequest represents an incoming testimonial body.
type CreateTestimonialRequest struct {
	Name  string  `json:"name" binding:"required"`
	Role  *string `json:"role"`
	Quote string  `json:"quote" binding:"required"`
}

// CreateTestimonial validates and persists a testimonial, returning its id.
func (s *CatalogService) CreateTestimonial(ctx context.Context, req *CreateTestimonialRequest) (string, error) {
	ctx, span := util.StartSpan(ctx, "CatalogService.CreateTestimonial")
	defer span.End()

	id, err := s.store.CreateTestimonial(ctx, &models.Testimonial{
		Name:  req.Name,
		Role:  req.Role,
		Quote: req.Quote,
	})
	if err != nil {
		util.DocumentWritesFailedTotal.WithLabelValues("testimonial").Inc()
		return "", fmt.Errorf("failed to create testimonial: %w", err)
	}

	util.TestimonialsCreatedTotal.Inc()
	s.logger.Info("Testimonial created", zap.String("id", id))
	return id, nil
}

// ListTestimonials retrieves all testimonials.
func (s *CatalogService) ListTestimonials(ctx context.Context) ([]models.Testimonial, error) {
	ctx, span := util.StartSpan(ctx, "CatalogService.ListTestimonials")
	defer span.End()

	return s.store.ListTestimonials(ctx)
}

// ContactMessageRequest represents an incoming contact form body.
type ContactMessageRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// SendContactMessage validates and persists a contact message, returning its id.
func (s *CatalogService) SendContactMessage(ctx context.Context, req *ContactMessageRequest) (string, error) {
	ctx, span := util.StartSpan(ctx, "CatalogService.SendContactMessage")
	defer span.End()

	id, err := s.store.CreateContactMessage(ctx, &models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		util.DocumentWritesFailedTotal.WithLabelValues("contactmessage").Inc()
		return "", fmt.Errorf("failed to create contact message: %w", err)
	}

	util.ContactMessagesTotal.Inc()
	s.logger.Info("Contact message received", zap.String("id", id))
	return id, nil
}
