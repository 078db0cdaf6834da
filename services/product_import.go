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
	"strings"
)

// ImportProducts runs one sequential import pass over a decoded product CSV.
// Products are upserted by SKU; a match overwrites every imported field.
func (s *ImportService) ImportProducts(ctx context.Context, data, logPath, encoding string, deleteExisting bool) (int, int, []string) {
	report := NewImportReport("Product", encoding)

	if deleteExisting {
		report.Mode = ModeReplace
		deleted, err := s.products.DeleteAll(ctx)
		if err != nil {
			log.Printf("Error deleting existing products: %v", err)
			WriteFatalLog(logPath, fmt.Sprintf("Fatal Error during product import: %s", err))
			return 0, 0, []string{fmt.Sprintf("Error clearing existing products: %s", err)}
		}
		report.DeletedCount = deleted
		log.Printf("Deleted %d existing products before import", deleted)
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
		return 0, 0, []string{"CSV file is empty or has no header"}
	}
	if err != nil {
		return 0, 0, []string{fmt.Sprintf("Error reading CSV header: %s", err)}
	}

	report.Header = header
	report.ExpectedColumns = productColumns
	report.ColumnMapping = MapColumns(header, productColumns)
	log.Printf("Product column mapping: %v", report.ColumnMapping)

	var totalStock int
	var totalValue float64

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

		rowData := ExtractRow(row, report.ColumnMapping, productColumns)

		var rowErrors []string

		price, err := utils.ParseNumericFloat(rowData["price"])
		if err != nil {
			rowErrors = append(rowErrors, fmt.Sprintf("Invalid price format: %s", err))
		}

		stockQuantity, err := utils.ParseNumericInt(rowData["stock_quantity"])
		if err != nil {
			rowErrors = append(rowErrors, fmt.Sprintf("Invalid stock quantity format: %s", err))
		}

		var weight *float64
		if strings.TrimSpace(rowData["weight"]) != "" {
			w, err := utils.ParseNumericFloat(rowData["weight"])
			if err != nil {
				rowErrors = append(rowErrors, fmt.Sprintf("Invalid weight format: %s", err))
			} else {
				weight = &w
			}
		}

		// SKU pre-check shares the authoritative rule with the validator
		if sku := rowData["sku"]; sku != "" {
			if ok, message := utils.ValidateSKU(sku); !ok {
				rowErrors = append(rowErrors, message)
			}
		}

		if len(rowErrors) > 0 {
			logPreValidationFailure(report, rowNum, rowErrors, rowData)
			continue
		}

		report.Transcript("  Extracted data: %v", rowData)

		productRow := &ProductRow{
			Name:          rowData["name"],
			SKU:           rowData["sku"],
			Description:   rowData["description"],
			Price:         price,
			StockQuantity: stockQuantity,
			Weight:        weight,
		}

		fieldErrors := productRow.Validate()
		if fieldErrors.HasErrors() {
			logValidationFailure(report, rowNum, fieldErrors, rowData)
			continue
		}

		existing, err := s.products.GetBySKU(ctx, productRow.SKU)
		switch {
		case err == nil:
			// Full overwrite of the imported fields
			existing.Name = productRow.Name
			existing.Description = productRow.Description
			existing.Price = productRow.Price
			existing.StockQuantity = productRow.StockQuantity
			existing.Weight = productRow.Weight
			if err := s.products.Update(ctx, existing); err != nil {
				logDatabaseError(report, rowNum, err, rowData)
				continue
			}
			report.Transcript("  ✅ UPDATED existing product: %s", productRow.SKU)
			report.Transcript("")
		case errors.Is(err, repository.ErrNotFound):
			product := &models.Product{
				Name:          productRow.Name,
				SKU:           productRow.SKU,
				Description:   productRow.Description,
				Price:         productRow.Price,
				StockQuantity: productRow.StockQuantity,
				Weight:        productRow.Weight,
			}
			if err := s.products.Create(ctx, product); err != nil {
				logDatabaseError(report, rowNum, err, rowData)
				continue
			}
			report.Transcript("  ✅ CREATED new product: %s", productRow.SKU)
			report.Transcript("")
		default:
			logDatabaseError(report, rowNum, err, rowData)
			continue
		}

		report.SuccessCount++
		totalStock += productRow.StockQuantity
		totalValue += productRow.Price
	}

	if report.SuccessCount > 0 {
		report.AddSummaryLine("Total stock imported: %d units", totalStock)
		report.AddSummaryLine("Average price: %s", utils.FormatCurrency(totalValue/float64(report.SuccessCount)))
	}

	if err := report.WriteFile(logPath); err != nil {
		log.Printf("Error writing product import log: %v", err)
		return 0, 0, []string{fmt.Sprintf("Fatal error: %s", err)}
	}

	return report.SuccessCount, report.ErrorCount, report.Details(errorSampleLimit)
}
