package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductRowValid(t *testing.T) {
	weight := 1.25
	row := &ProductRow{
		Name:          "Widget",
		SKU:           "WID-001",
		Description:   "A widget",
		Price:         9.99,
		StockQuantity: 100,
		Weight:        &weight,
	}

	assert.False(t, row.Validate().HasErrors())
}

func TestProductRowRules(t *testing.T) {
	tests := []struct {
		name      string
		row       ProductRow
		field     string
		wantError string
	}{
		{"empty name", ProductRow{SKU: "S-1"}, "name", "Product name cannot be empty"},
		{"short name", ProductRow{Name: "W", SKU: "S-1"}, "name", "Product name must be at least 2 characters"},
		{"empty sku", ProductRow{Name: "Widget"}, "sku", "SKU cannot be empty"},
		{"bad sku", ProductRow{Name: "Widget", SKU: "bad sku!"}, "sku", "SKU can only contain letters, numbers, hyphens (-), and underscores (_)"},
		{"negative price", ProductRow{Name: "Widget", SKU: "S-1", Price: -1}, "price", "Price cannot be negative"},
		{"huge price", ProductRow{Name: "Widget", SKU: "S-1", Price: 100000000}, "price", "Price cannot exceed 99,999,999.99"},
		{"negative stock", ProductRow{Name: "Widget", SKU: "S-1", StockQuantity: -5}, "stock_quantity", "Stock quantity cannot be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fieldErrors := tt.row.Validate()
			require.True(t, fieldErrors.HasErrors())
			assert.Contains(t, fieldErrors.Messages(tt.field), tt.wantError)
		})
	}
}

func TestProductRowWeight(t *testing.T) {
	row := ProductRow{Name: "Widget", SKU: "S-1"}
	assert.False(t, row.Validate().HasErrors(), "missing weight is fine")

	negative := -0.5
	row.Weight = &negative
	assert.Contains(t, row.Validate().Messages("weight"), "Weight cannot be negative")

	huge := 100000.0
	row.Weight = &huge
	assert.Contains(t, row.Validate().Messages("weight"), "Weight cannot exceed 99,999.999 kg")
}
