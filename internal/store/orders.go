package store

import (
	"context"

	"webshop-api/internal/models"
)

const orderCollection = "order"

// CreateOrder inserts an order and returns its id. Orders are write-once:
// no update or delete path exists.
func (s *Store) CreateOrder(ctx context.Context, order *models.Order) (string, error) {
	return s.insertDocument(ctx, orderCollection, order)
}
