package services

import (
	"storefront-backend/utils"
	"unicode/utf8"
)

// productColumns is the expected product CSV layout, in canonical order.
var productColumns = []string{"name", "sku", "description", "price", "stock_quantity", "weight"}

const (
	maxProductPrice  = 99999999.99
	maxStockQuantity = 2147483647
	maxProductWeight = 99999.999
)

// ProductRow is a product CSV row after numeric normalization.
type ProductRow struct {
	Name          string
	SKU           string
	Description   string
	Price         float64
	StockQuantity int
	Weight        *float64
}

// Validate enforces the product field rules and returns field-keyed errors.
func (row *ProductRow) Validate() *FieldErrors {
	fieldErrors := NewFieldErrors()

	switch nameLen := utf8.RuneCountInString(row.Name); {
	case row.Name == "":
		fieldErrors.Add("name", "Product name cannot be empty")
	case nameLen < 2:
		fieldErrors.Add("name", "Product name must be at least 2 characters")
	case nameLen > 200:
		fieldErrors.Add("name", "Product name cannot exceed 200 characters")
	}

	if ok, message := utils.ValidateSKU(row.SKU); !ok {
		fieldErrors.Add("sku", message)
	}

	if row.Price < 0 {
		fieldErrors.Add("price", "Price cannot be negative")
	} else if row.Price > maxProductPrice {
		fieldErrors.Add("price", "Price cannot exceed 99,999,999.99")
	}

	if row.StockQuantity < 0 {
		fieldErrors.Add("stock_quantity", "Stock quantity cannot be negative")
	} else if row.StockQuantity > maxStockQuantity {
		fieldErrors.Add("stock_quantity", "Stock quantity is too large")
	}

	if row.Weight != nil {
		if *row.Weight < 0 {
			fieldErrors.Add("weight", "Weight cannot be negative")
		} else if *row.Weight > maxProductWeight {
			fieldErrors.Add("weight", "Weight cannot exceed 99,999.999 kg")
		}
	}

	return fieldErrors
}
