// utils/dates.go
package utils

import (
	"errors"
	"time"
)

// Accepted order date layouts, tried in order. Day-first slash dates win
// over month-first when both could apply, so keep this order stable.
var orderDateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"02/01/2006 15:04:05",
	"02/01/2006",
	"01/02/2006 15:04:05",
	"01/02/2006",
	"20060102",
}

var ErrUnknownDateFormat = errors.New("unknown date format")

// ParseOrderDate parses a CSV date cell by trying each accepted layout;
// the first that matches wins.
func ParseOrderDate(value string) (time.Time, error) {
	for _, layout := range orderDateLayouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrUnknownDateFormat
}
