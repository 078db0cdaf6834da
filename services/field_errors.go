package services

import "strings"

// FieldErrors accumulates validation messages keyed by field name while
// remembering the order fields first failed in, so log output and returned
// error samples are stable.
type FieldErrors struct {
	fields []string
	errs   map[string][]string
}

func NewFieldErrors() *FieldErrors {
	return &FieldErrors{errs: make(map[string][]string)}
}

func (fe *FieldErrors) Add(field, message string) {
	if _, ok := fe.errs[field]; !ok {
		fe.fields = append(fe.fields, field)
	}
	fe.errs[field] = append(fe.errs[field], message)
}

func (fe *FieldErrors) HasErrors() bool {
	return len(fe.fields) > 0
}

// Fields returns the failing field names in first-failure order.
func (fe *FieldErrors) Fields() []string {
	return fe.fields
}

func (fe *FieldErrors) Messages(field string) []string {
	return fe.errs[field]
}

// capitalizeField renders a field name for user-facing messages, e.g.
// "customer_email" -> "Customer_email".
func capitalizeField(field string) string {
	if field == "" {
		return field
	}
	return strings.ToUpper(field[:1]) + field[1:]
}
