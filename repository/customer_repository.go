package repository

import (
	"context"
	"errors"
	"fmt"
	"storefront-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type customerRepo struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &customerRepo{db: db}
}

func (r *customerRepo) Create(ctx context.Context, customer *models.Customer) error {
	if customer.Email == "" {
		return fmt.Errorf("%w: customer email required", ErrInvalidInput)
	}
	if customer.ID == uuid.Nil {
		customer.ID = uuid.New()
	}

	if err := r.db.WithContext(ctx).Create(customer).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: email '%s'", ErrDuplicate, customer.Email)
		}
		return fmt.Errorf("failed to create customer: %w", err)
	}
	return nil
}

func (r *customerRepo) Update(ctx context.Context, customer *models.Customer) error {
	if customer.ID == uuid.Nil {
		return fmt.Errorf("%w: customer ID required", ErrInvalidInput)
	}
	if err := r.db.WithContext(ctx).Save(customer).Error; err != nil {
		return fmt.Errorf("failed to update customer: %w", err)
	}
	return nil
}

func (r *customerRepo) GetByEmail(ctx context.Context, email string) (*models.Customer, error) {
	var customer models.Customer
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&customer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get customer by email: %w", err)
	}
	return &customer, nil
}

func (r *customerRepo) GetAll(ctx context.Context) ([]models.Customer, error) {
	var customers []models.Customer
	if err := r.db.WithContext(ctx).Order("created_at").Find(&customers).Error; err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return customers, nil
}

func (r *customerRepo) DeleteAll(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).Where("1 = 1").Delete(&models.Customer{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete customers: %w", result.Error)
	}
	return result.RowsAffected, nil
}
