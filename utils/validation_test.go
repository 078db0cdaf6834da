package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	valid := []string{"user@example.com", "first.last+tag@sub.example.co", "a_b-c%d@host.io"}
	for _, email := range valid {
		assert.True(t, ValidateEmail(email), email)
	}

	invalid := []string{"", "user", "user@", "@example.com", "user@example", "user@example.c"}
	for _, email := range invalid {
		assert.False(t, ValidateEmail(email), email)
	}
}

func TestValidatePhone(t *testing.T) {
	ok, _ := ValidatePhone("+1 (555) 123-4567")
	assert.True(t, ok)

	ok, msg := ValidatePhone("555-abc-1234")
	assert.False(t, ok)
	assert.Contains(t, msg, "separators")

	ok, msg = ValidatePhone("12345")
	assert.False(t, ok)
	assert.Equal(t, "Phone number must be 7-15 digits", msg)

	ok, msg = ValidatePhone("1234567890123456")
	assert.False(t, ok)
	assert.Equal(t, "Phone number must be 7-15 digits", msg)
}

func TestValidateSKU(t *testing.T) {
	ok, _ := ValidateSKU("ABC-123_x")
	assert.True(t, ok)

	ok, msg := ValidateSKU("")
	assert.False(t, ok)
	assert.Equal(t, "SKU cannot be empty", msg)

	ok, msg = ValidateSKU("SKU WITH SPACE")
	assert.False(t, ok)
	assert.Contains(t, msg, "letters, numbers, hyphens")

	long := make([]byte, 51)
	for i := range long {
		long[i] = 'A'
	}
	ok, msg = ValidateSKU(string(long))
	assert.False(t, ok)
	assert.Equal(t, "SKU cannot exceed 50 characters", msg)
}
