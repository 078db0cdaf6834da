// utils/numeric.go
package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// MalformedNumberError reports a value that is still not numeric after
// currency symbols and separators were stripped.
type MalformedNumberError struct {
	Value string
}

func (e *MalformedNumberError) Error() string {
	return fmt.Sprintf("invalid numeric value '%s'", e.Value)
}

func stripNumericNoise(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, "€", "")
	s = strings.ReplaceAll(s, "£", "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, " ", "")
	return s
}

// ParseNumericInt coerces a CSV cell to an integer, tolerating currency
// symbols, thousands separators and a decimal fraction (which is dropped).
// An empty cell yields 0.
func ParseNumericInt(value string) (int, error) {
	cleaned := stripNumericNoise(value)
	if cleaned == "" {
		return 0, nil
	}
	// Drop the decimal part, "12.9" imports as 12
	if idx := strings.Index(cleaned, "."); idx >= 0 {
		cleaned = cleaned[:idx]
	}
	if cleaned == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(cleaned)
	if err != nil {
		return 0, &MalformedNumberError{Value: cleaned}
	}
	return n, nil
}

// ParseNumericFloat coerces a CSV cell to a float, tolerating currency
// symbols and thousands separators. An empty cell yields 0.
func ParseNumericFloat(value string) (float64, error) {
	cleaned := stripNumericNoise(value)
	if cleaned == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, &MalformedNumberError{Value: cleaned}
	}
	return f, nil
}

// FormatCurrency formats an amount for log and error messages.
func FormatCurrency(value float64) string {
	s := strconv.FormatFloat(value, 'f', 2, 64)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")
	var b strings.Builder
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	out := "$" + b.String() + "." + frac
	if neg {
		out = "-" + out
	}
	return out
}
