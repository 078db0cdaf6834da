package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// ExportCustomers writes all customers as CSV with the same column order the
// customer import expects.
func (s *ImportService) ExportCustomers(ctx context.Context, w io.Writer) error {
	customers, err := s.customers.GetAll(ctx)
	if err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(customerColumns); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i := range customers {
		c := &customers[i]
		if err := writer.Write([]string{c.Name, c.Email, c.Phone, c.Address}); err != nil {
			return fmt.Errorf("failed to write customer row: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// ExportProducts writes all products as CSV with the import's column order.
func (s *ImportService) ExportProducts(ctx context.Context, w io.Writer) error {
	products, err := s.products.GetAll(ctx)
	if err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(productColumns); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i := range products {
		p := &products[i]
		weight := ""
		if p.Weight != nil {
			weight = strconv.FormatFloat(*p.Weight, 'f', 3, 64)
		}
		row := []string{
			p.Name,
			p.SKU,
			p.Description,
			strconv.FormatFloat(p.Price, 'f', 2, 64),
			strconv.Itoa(p.StockQuantity),
			weight,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write product row: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// ExportOrders writes all orders as CSV with the import's column order,
// resolving the customer email and product SKU for each row.
func (s *ImportService) ExportOrders(ctx context.Context, w io.Writer) error {
	orders, err := s.orders.GetAll(ctx)
	if err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(orderColumns); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i := range orders {
		o := &orders[i]
		row := []string{
			o.Customer.Email,
			o.Product.SKU,
			strconv.Itoa(o.Quantity),
			o.OrderDate.Format("2006-01-02 15:04:05"),
			o.Status,
			strconv.FormatFloat(o.TotalAmount, 'f', 2, 64),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write order row: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}
