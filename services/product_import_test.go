package services

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const productHeader = "name,sku,description,price,stock_quantity,weight\n"

func TestImportProductsCreates(t *testing.T) {
	svc, _, products, _ := newTestImportService()

	data := productHeader +
		"Widget,WID-001,A widget,\"$1,234.50\",100,1.25\n" +
		"Gadget,GAD-002,,9.99,50,\n"

	success, failed, details := svc.ImportProducts(context.Background(), data, testLogPath(t), "utf-8", false)

	assert.Equal(t, 2, success)
	assert.Equal(t, 0, failed)
	assert.Empty(t, details)
	require.Len(t, products.products, 2)

	widget := products.products[0]
	assert.Equal(t, "WID-001", widget.SKU)
	assert.Equal(t, 1234.50, widget.Price)
	assert.Equal(t, 100, widget.StockQuantity)
	require.NotNil(t, widget.Weight)
	assert.Equal(t, 1.25, *widget.Weight)

	gadget := products.products[1]
	assert.Nil(t, gadget.Weight)
}

func TestImportProductsUpsertsBySKU(t *testing.T) {
	svc, _, products, _ := newTestImportService()
	ctx := context.Background()

	data := productHeader + "Widget,WID-001,Old description,9.99,100,\n"
	svc.ImportProducts(ctx, data, testLogPath(t), "utf-8", false)

	data = productHeader + "Widget v2,WID-001,New description,12.50,80,2.5\n"
	success, failed, _ := svc.ImportProducts(ctx, data, testLogPath(t), "utf-8", false)

	require.Equal(t, 1, success)
	require.Equal(t, 0, failed)
	require.Len(t, products.products, 1)

	p := products.products[0]
	assert.Equal(t, "Widget v2", p.Name)
	assert.Equal(t, "New description", p.Description)
	assert.Equal(t, 12.50, p.Price)
	assert.Equal(t, 80, p.StockQuantity)
	require.NotNil(t, p.Weight)
	assert.Equal(t, 2.5, *p.Weight)
}

func TestImportProductsMalformedNumbers(t *testing.T) {
	svc, _, products, _ := newTestImportService()

	data := productHeader + "Widget,WID-001,,12a,100,\n"
	success, failed, details := svc.ImportProducts(context.Background(), data, testLogPath(t), "utf-8", false)

	assert.Equal(t, 0, success)
	assert.Equal(t, 1, failed)
	require.Len(t, details, 1)
	assert.Equal(t, "Row 2: Invalid price format: invalid numeric value '12a'", details[0])
	assert.Empty(t, products.products)
}

func TestImportProductsBadSKUPreCheck(t *testing.T) {
	svc, _, products, _ := newTestImportService()

	data := productHeader + "Widget,bad sku!,,9.99,100,\n"
	success, failed, details := svc.ImportProducts(context.Background(), data, testLogPath(t), "utf-8", false)

	assert.Equal(t, 0, success)
	assert.Equal(t, 1, failed)
	require.Len(t, details, 1)
	assert.Equal(t, "Row 2: SKU can only contain letters, numbers, hyphens (-), and underscores (_)", details[0])
	assert.Empty(t, products.products)
}

func TestImportProductsReplaceMode(t *testing.T) {
	svc, _, products, _ := newTestImportService()
	ctx := context.Background()

	seed := productHeader + "Old,OLD-001,,1.00,5,\n"
	svc.ImportProducts(ctx, seed, testLogPath(t), "utf-8", false)
	require.Len(t, products.products, 1)

	logPath := testLogPath(t)
	data := productHeader + "New,NEW-001,,2.00,10,\n"
	success, failed, _ := svc.ImportProducts(ctx, data, logPath, "utf-8", true)

	assert.Equal(t, 1, success)
	assert.Equal(t, 0, failed)
	require.Len(t, products.products, 1)
	assert.Equal(t, "NEW-001", products.products[0].SKU)

	content, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "Import Mode: REPLACE (deleted 1 existing records)")
}

func TestImportProductsSummaryAggregates(t *testing.T) {
	svc, _, _, _ := newTestImportService()
	logPath := testLogPath(t)

	data := productHeader +
		"Widget,WID-001,,10.00,100,\n" +
		"Gadget,GAD-002,,20.00,50,\n"
	svc.ImportProducts(context.Background(), data, logPath, "utf-8", false)

	content, err := os.ReadFile(logPath)
	require.NoError(t, err)
	text := string(content)

	assert.Contains(t, text, "Total stock imported: 150 units")
	assert.Contains(t, text, "Average price: $15.00")
}
