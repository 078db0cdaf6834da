package repository

import (
	"context"
	"errors"
	"fmt"
	"storefront-backend/models"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type orderRepo struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepo{db: db}
}

func (r *orderRepo) Create(ctx context.Context, order *models.Order) error {
	if order.CustomerID == uuid.Nil || order.ProductID == uuid.Nil {
		return fmt.Errorf("%w: order requires customer and product", ErrInvalidInput)
	}
	if order.Quantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive", ErrInvalidInput)
	}
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}

	if err := r.db.WithContext(ctx).Create(order).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

func (r *orderRepo) Update(ctx context.Context, order *models.Order) error {
	if order.ID == uuid.Nil {
		return fmt.Errorf("%w: order ID required", ErrInvalidInput)
	}
	if err := r.db.WithContext(ctx).Save(order).Error; err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}
	return nil
}

func (r *orderRepo) Delete(ctx context.Context, order *models.Order) error {
	result := r.db.WithContext(ctx).Delete(order)
	if result.Error != nil {
		return fmt.Errorf("failed to delete order: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *orderRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return &order, nil
}

func (r *orderRepo) GetAll(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Product").
		Order("order_date desc").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

func (r *orderRepo) DeleteAll(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).Where("1 = 1").Delete(&models.Order{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete orders: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *orderRepo) FindMatch(ctx context.Context, customerID, productID uuid.UUID, orderDate time.Time, quantity int) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).
		Where("customer_id = ? AND product_id = ? AND order_date = ? AND quantity = ?",
			customerID, productID, orderDate, quantity).
		First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to match order: %w", err)
	}
	return &order, nil
}
