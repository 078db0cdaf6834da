// utils/validation.go
package utils

import (
	"regexp"
	"strings"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	skuRegex   = regexp.MustCompile(`^[a-zA-Z0-9\-_]+$`)
)

// ValidateEmail checks an email address against the import format rule.
func ValidateEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// StripPhoneSeparators removes the separators a phone cell may carry:
// space, -, +, ( and ).
func StripPhoneSeparators(phone string) string {
	replacer := strings.NewReplacer(" ", "", "-", "", "+", "", "(", "", ")", "")
	return replacer.Replace(phone)
}

// ValidatePhone checks that a phone number contains only digits and the
// accepted separators, and carries 7-15 digits.
func ValidatePhone(phone string) (bool, string) {
	digits := StripPhoneSeparators(phone)
	for _, r := range digits {
		if r < '0' || r > '9' {
			return false, "Phone number can only contain digits and these separators: space, -, +, (, )"
		}
	}
	if len(digits) < 7 || len(digits) > 15 {
		return false, "Phone number must be 7-15 digits"
	}
	return true, ""
}

// ValidateSKU is the single authoritative SKU rule, used by both the
// product import pre-check and the product validator.
func ValidateSKU(sku string) (bool, string) {
	if len(sku) == 0 {
		return false, "SKU cannot be empty"
	}
	if len(sku) > 50 {
		return false, "SKU cannot exceed 50 characters"
	}
	if !skuRegex.MatchString(sku) {
		return false, "SKU can only contain letters, numbers, hyphens (-), and underscores (_)"
	}
	return true, ""
}
