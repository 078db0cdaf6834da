package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validOrderRow() *OrderRow {
	return &OrderRow{
		CustomerEmail: "buyer@example.com",
		ProductSKU:    "WID-001",
		Quantity:      2,
		OrderDateRaw:  "2024-01-15",
		Status:        "pending",
		TotalAmount:   19.98,
	}
}

func TestOrderRowValid(t *testing.T) {
	row := validOrderRow()
	fieldErrors := row.Validate()

	require.False(t, fieldErrors.HasErrors())
	assert.Equal(t, time.Date(2024, time.January, 15, 0, 0, 0, 0, time.Local), row.OrderDate)
}

func TestOrderRowLowercasesEmailAndStatus(t *testing.T) {
	row := validOrderRow()
	row.CustomerEmail = "Buyer@Example.COM"
	row.Status = "SHIPPED"

	require.False(t, row.Validate().HasErrors())
	assert.Equal(t, "buyer@example.com", row.CustomerEmail)
	assert.Equal(t, "shipped", row.Status)
}

func TestOrderRowQuantityBounds(t *testing.T) {
	row := validOrderRow()
	row.Quantity = 0
	assert.Contains(t, row.Validate().Messages("quantity"), "Quantity must be greater than 0")

	row = validOrderRow()
	row.Quantity = 10001
	row.TotalAmount = 200000
	assert.Contains(t, row.Validate().Messages("quantity"), "Quantity cannot exceed 10,000")
}

func TestOrderRowFutureDateRejected(t *testing.T) {
	row := validOrderRow()
	row.OrderDateRaw = time.Now().AddDate(0, 0, 1).Format("2006-01-02")

	assert.Contains(t, row.Validate().Messages("order_date"), "Order date cannot be in the future")
}

func TestOrderRowBadDateFormat(t *testing.T) {
	row := validOrderRow()
	row.OrderDateRaw = "15th Jan 2024"

	messages := row.Validate().Messages("order_date")
	require.Len(t, messages, 1)
	assert.Contains(t, messages[0], "Invalid date format")
}

func TestOrderRowInvalidStatus(t *testing.T) {
	row := validOrderRow()
	row.Status = "returned"

	messages := row.Validate().Messages("status")
	require.Len(t, messages, 1)
	assert.Contains(t, messages[0], "Invalid status 'returned'")
	assert.Contains(t, messages[0], "pending, processing, shipped, delivered, cancelled, refunded")
}

func TestOrderRowTotalAmountBounds(t *testing.T) {
	row := validOrderRow()
	row.TotalAmount = 0
	assert.Contains(t, row.Validate().Messages("total_amount"), "Total amount must be greater than 0")

	row = validOrderRow()
	row.TotalAmount = 10000000000.00
	assert.Contains(t, row.Validate().Messages("total_amount"), "Total amount cannot exceed 9,999,999,999.99")
}

func TestOrderRowPerUnitPriceTooLow(t *testing.T) {
	row := validOrderRow()
	row.Quantity = 1000
	row.TotalAmount = 5.00 // half a cent per item

	messages := row.Validate().Messages("total_amount")
	require.Len(t, messages, 1)
	assert.Equal(t, "Total amount ($5.00) seems too low for 1000 items", messages[0])
}
