package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"storefront-backend/models"
	"storefront-backend/repository"
	"storefront-backend/utils"
)

type importedOrder struct {
	ProductSKU string
	Quantity   int
	Created    bool
}

// ImportOrders runs one sequential import pass over a decoded order CSV.
// Each row resolves its customer by email and product by SKU, checks stock,
// then either updates a matching order (same customer, product, date and
// quantity: only status and total change, stock is untouched) or creates a
// new one, decrementing the product's stock by the ordered quantity.
func (s *ImportService) ImportOrders(ctx context.Context, data, logPath, encoding string, deleteExisting bool) (int, int, []string) {
	report := NewImportReport("Order", encoding)

	var ordersDeleted int64
	if deleteExisting {
		report.Mode = ModeReplace
		deleted, err := s.deleteAllOrdersRestoringStock(ctx)
		if err != nil {
			log.Printf("Error deleting existing orders: %v", err)
			WriteFatalLog(logPath, fmt.Sprintf("Fatal Error during order import: %s", err))
			return 0, 0, []string{fmt.Sprintf("Error clearing existing orders: %s", err)}
		}
		ordersDeleted = deleted
		report.DeletedCount = deleted
		log.Printf("Deleted %d existing orders before import", deleted)
	}

	delimiter, err := DetectDelimiter(data)
	if err != nil {
		delimiter = ','
		log.Println("Could not detect CSV delimiter, using comma")
	} else {
		log.Printf("Detected CSV delimiter: %q", delimiter)
	}
	report.Delimiter = delimiter

	reader := NewRowReader(data, delimiter)
	header, err := reader.Read()
	if errors.Is(err, io.EOF) || (err == nil && len(header) == 0) {
		message := "CSV file is empty or has no header"
		if deleteExisting && ordersDeleted > 0 {
			message += fmt.Sprintf(" (NOTE: %d existing orders were already deleted!)", ordersDeleted)
		}
		return 0, 0, []string{message}
	}
	if err != nil {
		message := fmt.Sprintf("Error reading CSV header: %s", err)
		if deleteExisting && ordersDeleted > 0 {
			message += fmt.Sprintf(" (NOTE: %d existing orders were already deleted!)", ordersDeleted)
		}
		return 0, 0, []string{message}
	}

	report.Header = header
	report.ExpectedColumns = orderColumns
	report.ColumnMapping = MapColumns(header, orderColumns)
	log.Printf("Order column mapping: %v", report.ColumnMapping)

	var imported []importedOrder
	var totalOrderValue float64

	rowNum := 1
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		rowNum++
		report.TotalRows++
		report.Transcript("Row %d: %v", rowNum, row)

		if err != nil {
			report.ErrorCount++
			report.Detail(fmt.Sprintf("Row %d: Processing Error - %s", rowNum, err))
			report.Transcript("  ❌ PROCESSING ERROR: %s", err)
			report.Transcript("")
			continue
		}

		if IsEmptyRow(row) {
			logEmptyRow(report, rowNum)
			continue
		}

		rowData := ExtractRow(row, report.ColumnMapping, orderColumns)

		var rowErrors []string

		quantity, err := utils.ParseNumericInt(rowData["quantity"])
		if err != nil {
			rowErrors = append(rowErrors, fmt.Sprintf("Invalid quantity format: %s", err))
		}

		totalAmount, err := utils.ParseNumericFloat(rowData["total_amount"])
		if err != nil {
			rowErrors = append(rowErrors, fmt.Sprintf("Invalid total amount format: %s", err))
		}

		if len(rowErrors) > 0 {
			logPreValidationFailure(report, rowNum, rowErrors, rowData)
			continue
		}

		report.Transcript("  Extracted data: %v", rowData)

		orderRow := &OrderRow{
			CustomerEmail: rowData["customer_email"],
			ProductSKU:    rowData["product_sku"],
			Quantity:      quantity,
			OrderDateRaw:  rowData["order_date"],
			Status:        rowData["status"],
			TotalAmount:   totalAmount,
		}

		fieldErrors := orderRow.Validate()
		if fieldErrors.HasErrors() {
			logValidationFailure(report, rowNum, fieldErrors, rowData)
			continue
		}

		// Customer lookup first; its failure short-circuits the product lookup
		customer, err := s.customers.GetByEmail(ctx, orderRow.CustomerEmail)
		if errors.Is(err, repository.ErrNotFound) {
			logBusinessError(report, rowNum, "Customer not found",
				[]string{fmt.Sprintf("Customer with email '%s' not found", orderRow.CustomerEmail)}, rowData)
			continue
		}
		if err != nil {
			logDatabaseError(report, rowNum, err, rowData)
			continue
		}

		product, err := s.products.GetBySKU(ctx, orderRow.ProductSKU)
		if errors.Is(err, repository.ErrNotFound) {
			logBusinessError(report, rowNum, "Product not found",
				[]string{fmt.Sprintf("Product with SKU '%s' not found", orderRow.ProductSKU)}, rowData)
			continue
		}
		if err != nil {
			logDatabaseError(report, rowNum, err, rowData)
			continue
		}

		if orderRow.Quantity > product.StockQuantity {
			logBusinessError(report, rowNum, "Insufficient stock",
				[]string{fmt.Sprintf("Insufficient stock for '%s'. Requested: %d, Available: %d",
					product.Name, orderRow.Quantity, product.StockQuantity)}, rowData)
			continue
		}

		existing, err := s.orders.FindMatch(ctx, customer.ID, product.ID, orderRow.OrderDate, orderRow.Quantity)
		switch {
		case err == nil:
			// Matched quantity is identical by construction, so no stock delta
			existing.Status = orderRow.Status
			existing.TotalAmount = orderRow.TotalAmount
			if err := s.orders.Update(ctx, existing); err != nil {
				logDatabaseError(report, rowNum, err, rowData)
				continue
			}
			report.Transcript("  ✅ UPDATED existing order for %s", customer.Email)
			report.Transcript("     Product: %s, Quantity: %d", product.Name, orderRow.Quantity)
			report.Transcript("     Total: %s", utils.FormatCurrency(orderRow.TotalAmount))
			report.Transcript("")
			imported = append(imported, importedOrder{ProductSKU: product.SKU, Quantity: orderRow.Quantity})
		case errors.Is(err, repository.ErrNotFound):
			order := &models.Order{
				CustomerID:  customer.ID,
				ProductID:   product.ID,
				Quantity:    orderRow.Quantity,
				OrderDate:   orderRow.OrderDate,
				Status:      orderRow.Status,
				TotalAmount: orderRow.TotalAmount,
			}
			if err := s.orders.Create(ctx, order); err != nil {
				logDatabaseError(report, rowNum, err, rowData)
				continue
			}
			if err := s.products.AdjustStock(ctx, product.ID, -orderRow.Quantity); err != nil {
				logDatabaseError(report, rowNum, err, rowData)
				continue
			}
			report.Transcript("  ✅ CREATED new order #%s for %s", order.ID, customer.Email)
			report.Transcript("     Product: %s, Quantity: %d", product.Name, orderRow.Quantity)
			report.Transcript("     Total: %s", utils.FormatCurrency(orderRow.TotalAmount))
			report.Transcript("")
			imported = append(imported, importedOrder{ProductSKU: product.SKU, Quantity: orderRow.Quantity, Created: true})
		default:
			logDatabaseError(report, rowNum, err, rowData)
			continue
		}

		report.SuccessCount++
		totalOrderValue += orderRow.TotalAmount
	}

	addOrderSummary(report, imported, totalOrderValue)

	if err := report.WriteFile(logPath); err != nil {
		log.Printf("Error writing order import log: %v", err)
		return 0, 0, []string{fmt.Sprintf("Fatal error: %s", err)}
	}

	return report.SuccessCount, report.ErrorCount, report.Details(errorSampleLimit)
}

// deleteAllOrdersRestoringStock is the replace-mode pre-step: every existing
// order hands its quantity back to its product before the wipe.
func (s *ImportService) deleteAllOrdersRestoringStock(ctx context.Context) (int64, error) {
	orders, err := s.orders.GetAll(ctx)
	if err != nil {
		return 0, err
	}
	for i := range orders {
		if err := s.products.AdjustStock(ctx, orders[i].ProductID, orders[i].Quantity); err != nil {
			return 0, err
		}
	}
	return s.orders.DeleteAll(ctx)
}

func addOrderSummary(report *ImportReport, imported []importedOrder, totalOrderValue float64) {
	createdCount := 0
	updatedCount := 0
	totalItems := 0
	productUnits := make(map[string]int)
	var productOrder []string
	for _, order := range imported {
		if order.Created {
			createdCount++
		} else {
			updatedCount++
		}
		totalItems += order.Quantity
		if _, ok := productUnits[order.ProductSKU]; !ok {
			productOrder = append(productOrder, order.ProductSKU)
		}
		productUnits[order.ProductSKU] += order.Quantity
	}

	report.AddSummaryLine("New orders created: %d", createdCount)
	report.AddSummaryLine("Existing orders updated: %d", updatedCount)
	report.AddSummaryLine("Total items ordered: %d", totalItems)
	report.AddSummaryLine("Total order value: %s", utils.FormatCurrency(totalOrderValue))
	divisor := report.SuccessCount
	if divisor < 1 {
		divisor = 1
	}
	report.AddSummaryLine("Average order value: %s", utils.FormatCurrency(totalOrderValue/float64(divisor)))

	topSKU := ""
	topUnits := 0
	for _, sku := range productOrder {
		if productUnits[sku] > topUnits {
			topSKU = sku
			topUnits = productUnits[sku]
		}
	}
	if topSKU != "" {
		report.AddSummaryLine("Most ordered product: %s (%d units)", topSKU, topUnits)
	}
}
