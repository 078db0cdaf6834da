package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"storefront-backend/models"
	"storefront-backend/repository"
)

// ImportCustomers runs one sequential import pass over a decoded customer
// CSV. Customers are upserted by email: a match overwrites name, phone and
// address in place. Returns the success count, the failure count and the
// first 20 error details; the full transcript goes to the log artifact at
// logPath.
func (s *ImportService) ImportCustomers(ctx context.Context, data, logPath, encoding string, deleteExisting bool) (int, int, []string) {
	report := NewImportReport("Customer", encoding)

	if deleteExisting {
		report.Mode = ModeReplace
		deleted, err := s.customers.DeleteAll(ctx)
		if err != nil {
			log.Printf("Error deleting existing customers: %v", err)
			WriteFatalLog(logPath, fmt.Sprintf("Fatal Error during import: %s", err))
			return 0, 0, []string{fmt.Sprintf("Error clearing existing customers: %s", err)}
		}
		report.DeletedCount = deleted
		log.Printf("Deleted %d existing customers before import", deleted)
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
	report.ExpectedColumns = customerColumns
	report.ColumnMapping = MapColumns(header, customerColumns)
	log.Printf("Customer column mapping: %v", report.ColumnMapping)

	rowNum := 1 // header is row 1
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

		rowData := ExtractRow(row, report.ColumnMapping, customerColumns)
		report.Transcript("  Extracted data: %v", rowData)

		cleaned, fieldErrors := ValidateCustomerRow(rowData)
		if fieldErrors.HasErrors() {
			logValidationFailure(report, rowNum, fieldErrors, rowData)
			continue
		}

		existing, err := s.customers.GetByEmail(ctx, cleaned.Email)
		switch {
		case err == nil:
			existing.Name = cleaned.Name
			existing.Phone = cleaned.Phone
			existing.Address = cleaned.Address
			if err := s.customers.Update(ctx, existing); err != nil {
				logDatabaseError(report, rowNum, err, rowData)
				continue
			}
			report.Transcript("  ✅ UPDATED existing customer: %s", cleaned.Email)
			report.Transcript("")
		case errors.Is(err, repository.ErrNotFound):
			customer := &models.Customer{
				Name:    cleaned.Name,
				Email:   cleaned.Email,
				Phone:   cleaned.Phone,
				Address: cleaned.Address,
			}
			if err := s.customers.Create(ctx, customer); err != nil {
				logDatabaseError(report, rowNum, err, rowData)
				continue
			}
			report.Transcript("  ✅ CREATED new customer: %s", cleaned.Email)
			report.Transcript("")
		default:
			logDatabaseError(report, rowNum, err, rowData)
			continue
		}

		report.SuccessCount++
	}

	if err := report.WriteFile(logPath); err != nil {
		log.Printf("Error writing customer import log: %v", err)
		return 0, 0, []string{fmt.Sprintf("Fatal error: %s", err)}
	}

	return report.SuccessCount, report.ErrorCount, report.Details(errorSampleLimit)
}
