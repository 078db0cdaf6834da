package repository

import (
	"context"
	"errors"
	"fmt"
	"storefront-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type productRepo struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepo{db: db}
}

func (r *productRepo) Create(ctx context.Context, product *models.Product) error {
	if product.SKU == "" {
		return fmt.Errorf("%w: product SKU required", ErrInvalidInput)
	}
	if product.StockQuantity < 0 {
		return fmt.Errorf("%w: stock quantity cannot be negative", ErrInvalidInput)
	}
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}

	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: sku '%s'", ErrDuplicate, product.SKU)
		}
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

func (r *productRepo) Update(ctx context.Context, product *models.Product) error {
	if product.ID == uuid.Nil {
		return fmt.Errorf("%w: product ID required", ErrInvalidInput)
	}
	if err := r.db.WithContext(ctx).Save(product).Error; err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	return nil
}

func (r *productRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return &product, nil
}

func (r *productRepo) GetBySKU(ctx context.Context, sku string) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).Where("sku = ?", sku).First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get product by sku: %w", err)
	}
	return &product, nil
}

func (r *productRepo) GetAll(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.WithContext(ctx).Order("created_at").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

func (r *productRepo) DeleteAll(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).Where("1 = 1").Delete(&models.Product{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete products: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *productRepo) AdjustStock(ctx context.Context, id uuid.UUID, change int) error {
	result := r.db.WithContext(ctx).Model(&models.Product{}).
		Where("id = ?", id).
		UpdateColumn("stock_quantity", gorm.Expr("stock_quantity + ?", change))
	if result.Error != nil {
		return fmt.Errorf("failed to adjust stock: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
