package services

import (
	"storefront-backend/utils"
	"strings"
	"unicode/utf8"
)

// customerColumns is the expected customer CSV layout, in canonical order.
var customerColumns = []string{"name", "email", "phone", "address"}

// CustomerRow is a validated customer CSV row.
type CustomerRow struct {
	Name    string
	Email   string
	Phone   string
	Address string
}

// ValidateCustomerRow cleans and validates one extracted customer row. The
// returned row is only usable when the field errors are empty; a row with any
// failing field is rejected whole.
func ValidateCustomerRow(data map[string]string) (*CustomerRow, *FieldErrors) {
	fieldErrors := NewFieldErrors()
	row := &CustomerRow{
		Name:    data["name"],
		Email:   strings.ToLower(data["email"]),
		Phone:   data["phone"],
		Address: data["address"],
	}

	switch nameLen := utf8.RuneCountInString(row.Name); {
	case row.Name == "":
		fieldErrors.Add("name", "Name cannot be empty")
	case nameLen < 2:
		fieldErrors.Add("name", "Name must be at least 2 characters")
	case nameLen > 100:
		fieldErrors.Add("name", "Name cannot exceed 100 characters")
	}

	if row.Email == "" {
		fieldErrors.Add("email", "Email cannot be empty")
	} else if !utils.ValidateEmail(row.Email) {
		fieldErrors.Add("email", "Invalid email format. Example: user@example.com")
	}

	if row.Phone != "" {
		if ok, message := utils.ValidatePhone(row.Phone); !ok {
			fieldErrors.Add("phone", message)
		}
	}

	return row, fieldErrors
}
