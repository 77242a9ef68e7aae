package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"webshop-api/internal/models"
	"webshop-api/internal/util"
)

// OrderService handles order creation.
type OrderService struct {
	store  Storage
	logger *zap.Logger
}

// NewOrderService creates a new order service
func NewOrderService(store Storage) *OrderService {
	return &OrderService{
		store:  store,
		logger: util.GetLogger(),
	}
}

// CreateOrderRequest represents a request to create an order from cart
// lines. The items field must be present but may be empty; an empty cart
// yields a zero-amount order.
type CreateOrderRequest struct {
	Email *string           `json:"email"`
	Items []CartItemRequest `json:"items" binding:"required,dive"`
}

// CartItemRequest represents a single cart line. UnitAmount is in minor
// currency units and a pointer so that an explicit 0 passes the required
// check.
type CartItemRequest struct {
	Slug       string `json:"slug" binding:"required"`
	Title      string `json:"title" binding:"required"`
	Quantity   int    `json:"quantity" binding:"required,min=1"`
	UnitAmount *int   `json:"unit_amount" binding:"required,gte=0"`
}

// buildOrder computes the order total and assembles the persisted shape.
// Items carry the denormalized title and no live product reference; the
// total is exact integer arithmetic over minor currency units.
func buildOrder(req *CreateOrderRequest) *models.Order {
	items := make([]models.OrderItem, 0, len(req.Items))
	total := 0
	for _, line := range req.Items {
		amount := *line.UnitAmount
		total += line.Quantity * amount
		items = append(items, models.OrderItem{
			ProductID:  nil,
			Title:      line.Title,
			Quantity:   line.Quantity,
			UnitAmount: amount,
		})
	}

	return &models.Order{
		Email:       req.Email,
		Items:       items,
		AmountTotal: total,
		Currency:    models.DefaultCurrency,
		Status:      models.OrderStatusCreated,
	}
}

// CreateOrder builds an order from the cart lines and persists it, returning
// the new order id.
func (s *OrderService) CreateOrder(ctx context.Context, req *CreateOrderRequest) (string, error) {
	ctx, span := util.StartSpan(ctx, "OrderService.CreateOrder")
	defer span.End()

	order := buildOrder(req)

	id, err := s.store.CreateOrder(ctx, order)
	if err != nil {
		util.DocumentWritesFailedTotal.WithLabelValues("order").Inc()
		return "", fmt.Errorf("failed to create order: %w", err)
	}

	util.OrdersCreatedTotal.Inc()
	s.logger.Info("Order created",
		zap.String("id", id),
		zap.Int("amount_total", order.AmountTotal),
		zap.Int("items", len(order.Items)))
	return id, nil
}
