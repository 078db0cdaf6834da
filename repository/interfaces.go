package repository

import (
	"context"
	"storefront-backend/models"
	"time"

	"github.com/google/uuid"
)

type CustomerRepository interface {
	Create(ctx context.Context, customer *models.Customer) error
	Update(ctx context.Context, customer *models.Customer) error
	GetByEmail(ctx context.Context, email string) (*models.Customer, error)
	GetAll(ctx context.Context) ([]models.Customer, error)
	DeleteAll(ctx context.Context) (int64, error)
}

type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, product *models.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	GetBySKU(ctx context.Context, sku string) (*models.Product, error)
	GetAll(ctx context.Context) ([]models.Product, error)
	DeleteAll(ctx context.Context) (int64, error)

	// AdjustStock applies a signed change to a product's stock quantity.
	AdjustStock(ctx context.Context, id uuid.UUID, change int) error
}

type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	Update(ctx context.Context, order *models.Order) error
	Delete(ctx context.Context, order *models.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	GetAll(ctx context.Context) ([]models.Order, error)
	DeleteAll(ctx context.Context) (int64, error)

	// FindMatch looks up an order by its import natural key:
	// customer, product, order date and quantity.
	FindMatch(ctx context.Context, customerID, productID uuid.UUID, orderDate time.Time, quantity int) (*models.Order, error)
}
