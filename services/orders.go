package services

import (
	"context"
	"fmt"

	"storefront-backend/models"
	"storefront-backend/repository"

	"github.com/google/uuid"
)

// OrderUpdate carries the editable order fields.
type OrderUpdate struct {
	Quantity    int
	Status      string
	TotalAmount float64
}

// UpdateOrder edits an order in place, moving the product's stock by the
// delta between the old and new quantity. Stock must be computed from the
// delta, never re-subtracted whole, or updates would double-count.
func (s *ImportService) UpdateOrder(ctx context.Context, id uuid.UUID, update OrderUpdate) (*models.Order, error) {
	if update.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", repository.ErrInvalidInput)
	}
	if !models.IsValidOrderStatus(update.Status) {
		return nil, fmt.Errorf("%w: invalid status '%s'", repository.ErrInvalidInput, update.Status)
	}
	if update.TotalAmount <= 0 {
		return nil, fmt.Errorf("%w: total amount must be positive", repository.ErrInvalidInput)
	}

	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Positive delta hands stock back, negative takes more
	delta := order.Quantity - update.Quantity
	if delta < 0 {
		product, err := s.products.GetByID(ctx, order.ProductID)
		if err != nil {
			return nil, err
		}
		if -delta > product.StockQuantity {
			return nil, fmt.Errorf("%w: requested %d more, available %d",
				repository.ErrNotEnough, -delta, product.StockQuantity)
		}
	}
	if delta != 0 {
		if err := s.products.AdjustStock(ctx, order.ProductID, delta); err != nil {
			return nil, err
		}
	}

	order.Quantity = update.Quantity
	order.Status = update.Status
	order.TotalAmount = update.TotalAmount
	if err := s.orders.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// DeleteOrder removes one order and restores its full quantity to the
// product's stock.
func (s *ImportService) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.products.AdjustStock(ctx, order.ProductID, order.Quantity); err != nil {
		return err
	}
	return s.orders.Delete(ctx, order)
}
