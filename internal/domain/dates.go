package domain

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the yyyy-mm-dd wire format for rental dates. Dates in this
// layout compare correctly as plain strings.
const DateLayout = "2006-01-02"

// DateForInput strips an optional time suffix from a backend date value,
// leaving the yyyy-mm-dd form a date input requires.
func DateForInput(dateString string) string {
	if dateString == "" {
		return ""
	}
	isoDatePart, _, _ := strings.Cut(dateString, "T")
	return isoDatePart
}

// FormatDisplayDate renders a backend date value as dd/mm/yyyy for display.
// Values that are not yyyy-mm-dd dates are passed through unchanged.
func FormatDisplayDate(dateString string) string {
	if dateString == "" {
		return ""
	}
	isoDatePart := DateForInput(dateString)
	t, err := time.Parse(DateLayout, isoDatePart)
	if err != nil {
		return isoDatePart
	}
	return t.Format("02/01/2006")
}

// ValidDate reports whether the value is a well-formed yyyy-mm-dd date.
func ValidDate(dateString string) error {
	if _, err := time.Parse(DateLayout, dateString); err != nil {
		return fmt.Errorf("invalid date %q: %w", dateString, err)
	}
	return nil
}
