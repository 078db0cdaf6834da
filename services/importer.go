package services

import (
	"fmt"
	"storefront-backend/repository"

	"gorm.io/gorm"
)

// errorSampleLimit caps how many error details an import hands back to the
// caller; the full list lives in the log artifact.
const errorSampleLimit = 20

// ImportService drives the CSV import and export pipelines for customers,
// products and orders.
type ImportService struct {
	customers repository.CustomerRepository
	products  repository.ProductRepository
	orders    repository.OrderRepository
}

func NewImportService(db *gorm.DB) *ImportService {
	return &ImportService{
		customers: repository.NewCustomerRepository(db),
		products:  repository.NewProductRepository(db),
		orders:    repository.NewOrderRepository(db),
	}
}

func rowFieldError(rowNum int, field, message string) string {
	return fmt.Sprintf("Row %d: %s - %s", rowNum, capitalizeField(field), message)
}

// logValidationFailure records a failed row's field errors in both the
// caller-visible detail list and the log transcript.
func logValidationFailure(report *ImportReport, rowNum int, fieldErrors *FieldErrors, data map[string]string) {
	report.ErrorCount++
	for _, field := range fieldErrors.Fields() {
		for _, message := range fieldErrors.Messages(field) {
			report.Detail(rowFieldError(rowNum, field, message))
		}
	}
	report.Transcript("  ❌ VALIDATION FAILED:")
	for _, field := range fieldErrors.Fields() {
		for _, message := range fieldErrors.Messages(field) {
			report.Transcript("     • %s: %s", field, message)
		}
	}
	report.Transcript("     Raw data: %v", data)
	report.Transcript("")
}

// logPreValidationFailure records row-level errors raised before field
// validation (numeric coercion, SKU pre-check).
func logPreValidationFailure(report *ImportReport, rowNum int, rowErrors []string, data map[string]string) {
	report.ErrorCount++
	for _, message := range rowErrors {
		report.Detail(fmt.Sprintf("Row %d: %s", rowNum, message))
	}
	report.Transcript("  ❌ PRE-VALIDATION ERRORS:")
	for _, message := range rowErrors {
		report.Transcript("     • %s", message)
	}
	report.Transcript("     Raw data: %v", data)
	report.Transcript("")
}

// logEmptyRow records a skipped blank row.
func logEmptyRow(report *ImportReport, rowNum int) {
	report.Transcript("  [SKIPPED] Empty row")
	report.Transcript("")
	report.ErrorCount++
	report.Detail(fmt.Sprintf("Row %d: Empty row", rowNum))
}

// logBusinessError records a row rejected by a cross-entity or business rule
// (missing customer/product, insufficient stock).
func logBusinessError(report *ImportReport, rowNum int, title string, messages []string, data map[string]string) {
	report.ErrorCount++
	for _, message := range messages {
		report.Detail(fmt.Sprintf("Row %d: %s", rowNum, message))
	}
	report.Transcript("  ❌ VALIDATION ERROR: %s", title)
	for _, message := range messages {
		report.Transcript("     • %s", message)
	}
	report.Transcript("     Data: %v", data)
	report.Transcript("")
}

// logDatabaseError records a store-level failure, surfacing the underlying
// message verbatim.
func logDatabaseError(report *ImportReport, rowNum int, err error, data interface{}) {
	report.ErrorCount++
	report.Detail(fmt.Sprintf("Row %d: Database Error - %s", rowNum, err.Error()))
	report.Transcript("  ❌ DATABASE ERROR: %s", err.Error())
	report.Transcript("     Data: %v", data)
	report.Transcript("")
}
