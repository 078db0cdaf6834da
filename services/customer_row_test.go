package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCustomerRowValid(t *testing.T) {
	row, fieldErrors := ValidateCustomerRow(map[string]string{
		"name":    "John Doe",
		"email":   "John.Doe@Example.COM",
		"phone":   "+1 (555) 123-4567",
		"address": "1 Main St",
	})

	require.False(t, fieldErrors.HasErrors())
	assert.Equal(t, "john.doe@example.com", row.Email)
	assert.Equal(t, "John Doe", row.Name)
}

func TestValidateCustomerRowEmptyEmail(t *testing.T) {
	_, fieldErrors := ValidateCustomerRow(map[string]string{
		"name":  "Jane",
		"email": "",
	})

	require.True(t, fieldErrors.HasErrors())
	assert.Equal(t, []string{"email"}, fieldErrors.Fields())
	assert.Equal(t, []string{"Email cannot be empty"}, fieldErrors.Messages("email"))
}

func TestValidateCustomerRowFieldOrder(t *testing.T) {
	_, fieldErrors := ValidateCustomerRow(map[string]string{
		"name":  "",
		"email": "bad-email",
		"phone": "12",
	})

	// Errors surface in field declaration order
	assert.Equal(t, []string{"name", "email", "phone"}, fieldErrors.Fields())
	assert.Equal(t, []string{"Name cannot be empty"}, fieldErrors.Messages("name"))
	assert.Equal(t, []string{"Invalid email format. Example: user@example.com"}, fieldErrors.Messages("email"))
	assert.Equal(t, []string{"Phone number must be 7-15 digits"}, fieldErrors.Messages("phone"))
}

func TestValidateCustomerRowNameLength(t *testing.T) {
	_, fieldErrors := ValidateCustomerRow(map[string]string{"name": "J", "email": "j@x.com"})
	assert.Equal(t, []string{"Name must be at least 2 characters"}, fieldErrors.Messages("name"))

	long := make([]byte, 101)
	for i := range long {
		long[i] = 'a'
	}
	_, fieldErrors = ValidateCustomerRow(map[string]string{"name": string(long), "email": "j@x.com"})
	assert.Equal(t, []string{"Name cannot exceed 100 characters"}, fieldErrors.Messages("name"))
}

func TestValidateCustomerRowOptionalPhone(t *testing.T) {
	_, fieldErrors := ValidateCustomerRow(map[string]string{
		"name":  "Jane Roe",
		"email": "jane@x.com",
		"phone": "",
	})
	assert.False(t, fieldErrors.HasErrors())
}
