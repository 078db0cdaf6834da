package services

import (
	"fmt"
	"storefront-backend/models"
	"storefront-backend/utils"
	"strings"
	"time"
)

// orderColumns is the expected order CSV layout, in canonical order.
var orderColumns = []string{"customer_email", "product_sku", "quantity", "order_date", "status", "total_amount"}

const (
	maxOrderQuantity    = 10000
	maxOrderTotalAmount = 9999999999.99
	minPerUnitPrice     = 0.01
)

// OrderRow is an order CSV row after numeric normalization. OrderDate is
// populated by Validate from the raw cell.
type OrderRow struct {
	CustomerEmail string
	ProductSKU    string
	Quantity      int
	OrderDateRaw  string
	OrderDate     time.Time
	Status        string
	TotalAmount   float64
}

// Validate enforces the order field rules, parses the order date and applies
// the cross-field per-unit price check.
func (row *OrderRow) Validate() *FieldErrors {
	fieldErrors := NewFieldErrors()

	row.CustomerEmail = strings.ToLower(strings.TrimSpace(row.CustomerEmail))
	if row.CustomerEmail == "" {
		fieldErrors.Add("customer_email", "Customer email is required")
	} else if !utils.ValidateEmail(row.CustomerEmail) {
		fieldErrors.Add("customer_email", "Invalid email format. Example: user@example.com")
	}

	row.ProductSKU = strings.TrimSpace(row.ProductSKU)
	if row.ProductSKU == "" {
		fieldErrors.Add("product_sku", "Product SKU is required")
	}

	if row.Quantity <= 0 {
		fieldErrors.Add("quantity", "Quantity must be greater than 0")
	} else if row.Quantity > maxOrderQuantity {
		fieldErrors.Add("quantity", "Quantity cannot exceed 10,000")
	}

	if row.OrderDateRaw == "" {
		fieldErrors.Add("order_date", "Order date is required")
	} else if parsed, err := utils.ParseOrderDate(row.OrderDateRaw); err != nil {
		fieldErrors.Add("order_date", "Invalid date format. Use formats like: YYYY-MM-DD HH:MM:SS, YYYY-MM-DD, DD/MM/YYYY")
	} else if parsed.After(time.Now()) {
		fieldErrors.Add("order_date", "Order date cannot be in the future")
	} else {
		row.OrderDate = parsed
	}

	row.Status = strings.ToLower(strings.TrimSpace(row.Status))
	if row.Status == "" {
		fieldErrors.Add("status", "Order status is required")
	} else if !models.IsValidOrderStatus(row.Status) {
		fieldErrors.Add("status", fmt.Sprintf("Invalid status '%s'. Must be one of: %s",
			row.Status, strings.Join(models.OrderStatuses, ", ")))
	}

	if row.TotalAmount <= 0 {
		fieldErrors.Add("total_amount", "Total amount must be greater than 0")
	} else if row.TotalAmount > maxOrderTotalAmount {
		fieldErrors.Add("total_amount", "Total amount cannot exceed 9,999,999,999.99")
	}

	// Implied per-unit price sanity check
	if row.Quantity > 0 && row.TotalAmount > 0 &&
		row.TotalAmount/float64(row.Quantity) < minPerUnitPrice {
		fieldErrors.Add("total_amount", fmt.Sprintf(
			"Total amount ($%.2f) seems too low for %d items", row.TotalAmount, row.Quantity))
	}

	return fieldErrors
}
