package services

import (
	"context"
	"time"

	"storefront-backend/models"
	"storefront-backend/repository"

	"github.com/google/uuid"
)

// In-memory repository fakes so import runs can be exercised without a
// database.

type memCustomerRepo struct {
	customers []models.Customer

	deleteAllErr error
}

func (r *memCustomerRepo) Create(_ context.Context, customer *models.Customer) error {
	if customer.ID == uuid.Nil {
		customer.ID = uuid.New()
	}
	r.customers = append(r.customers, *customer)
	return nil
}

func (r *memCustomerRepo) Update(_ context.Context, customer *models.Customer) error {
	for i := range r.customers {
		if r.customers[i].ID == customer.ID {
			r.customers[i] = *customer
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *memCustomerRepo) GetByEmail(_ context.Context, email string) (*models.Customer, error) {
	for i := range r.customers {
		if r.customers[i].Email == email {
			c := r.customers[i]
			return &c, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memCustomerRepo) GetAll(_ context.Context) ([]models.Customer, error) {
	out := make([]models.Customer, len(r.customers))
	copy(out, r.customers)
	return out, nil
}

func (r *memCustomerRepo) DeleteAll(_ context.Context) (int64, error) {
	if r.deleteAllErr != nil {
		return 0, r.deleteAllErr
	}
	deleted := int64(len(r.customers))
	r.customers = nil
	return deleted, nil
}

type memProductRepo struct {
	products []models.Product
}

func (r *memProductRepo) Create(_ context.Context, product *models.Product) error {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	r.products = append(r.products, *product)
	return nil
}

func (r *memProductRepo) Update(_ context.Context, product *models.Product) error {
	for i := range r.products {
		if r.products[i].ID == product.ID {
			r.products[i] = *product
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *memProductRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Product, error) {
	for i := range r.products {
		if r.products[i].ID == id {
			p := r.products[i]
			return &p, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memProductRepo) GetBySKU(_ context.Context, sku string) (*models.Product, error) {
	for i := range r.products {
		if r.products[i].SKU == sku {
			p := r.products[i]
			return &p, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memProductRepo) GetAll(_ context.Context) ([]models.Product, error) {
	out := make([]models.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

func (r *memProductRepo) DeleteAll(_ context.Context) (int64, error) {
	deleted := int64(len(r.products))
	r.products = nil
	return deleted, nil
}

func (r *memProductRepo) AdjustStock(_ context.Context, id uuid.UUID, change int) error {
	for i := range r.products {
		if r.products[i].ID == id {
			r.products[i].StockQuantity += change
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *memProductRepo) stockOf(sku string) int {
	for i := range r.products {
		if r.products[i].SKU == sku {
			return r.products[i].StockQuantity
		}
	}
	return -1
}

type memOrderRepo struct {
	orders []models.Order

	customers *memCustomerRepo
	products  *memProductRepo
}

func (r *memOrderRepo) Create(_ context.Context, order *models.Order) error {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	r.orders = append(r.orders, *order)
	return nil
}

func (r *memOrderRepo) Update(_ context.Context, order *models.Order) error {
	for i := range r.orders {
		if r.orders[i].ID == order.ID {
			r.orders[i] = *order
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *memOrderRepo) Delete(_ context.Context, order *models.Order) error {
	for i := range r.orders {
		if r.orders[i].ID == order.ID {
			r.orders = append(r.orders[:i], r.orders[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *memOrderRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Order, error) {
	for i := range r.orders {
		if r.orders[i].ID == id {
			o := r.orders[i]
			return &o, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memOrderRepo) GetAll(_ context.Context) ([]models.Order, error) {
	out := make([]models.Order, len(r.orders))
	copy(out, r.orders)
	for i := range out {
		if r.customers != nil {
			for j := range r.customers.customers {
				if r.customers.customers[j].ID == out[i].CustomerID {
					out[i].Customer = r.customers.customers[j]
				}
			}
		}
		if r.products != nil {
			for j := range r.products.products {
				if r.products.products[j].ID == out[i].ProductID {
					out[i].Product = r.products.products[j]
				}
			}
		}
	}
	return out, nil
}

func (r *memOrderRepo) DeleteAll(_ context.Context) (int64, error) {
	deleted := int64(len(r.orders))
	r.orders = nil
	return deleted, nil
}

func (r *memOrderRepo) FindMatch(_ context.Context, customerID, productID uuid.UUID, orderDate time.Time, quantity int) (*models.Order, error) {
	for i := range r.orders {
		o := &r.orders[i]
		if o.CustomerID == customerID && o.ProductID == productID &&
			o.OrderDate.Equal(orderDate) && o.Quantity == quantity {
			match := *o
			return &match, nil
		}
	}
	return nil, repository.ErrNotFound
}

// newTestImportService wires an ImportService onto fresh in-memory stores.
func newTestImportService() (*ImportService, *memCustomerRepo, *memProductRepo, *memOrderRepo) {
	customers := &memCustomerRepo{}
	products := &memProductRepo{}
	orders := &memOrderRepo{customers: customers, products: products}
	svc := &ImportService{customers: customers, products: products, orders: orders}
	return svc, customers, products, orders
}
