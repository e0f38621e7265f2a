package validation

import (
	"fmt"
	"strings"
	"time"
)

type Error struct {
	Fields map[string]string
}

func (e *Error) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", field, msg))
	}
	return strings.Join(msgs, "; ")
}

// ValidateMonth checks that a string is in YYYY-MM format.
func ValidateMonth(month string) error {
	if _, err := time.Parse("2006-01", month); err != nil {
		return fmt.Errorf("invalid month format, expected YYYY-MM: %s", month)
	}
	return nil
}

// ValidateMonthRange validates optional start and end month query parameters.
// Empty strings are allowed and skipped.
func ValidateMonthRange(startMonth, endMonth string) error {
	errors := make(map[string]string)

	if startMonth != "" {
		if err := ValidateMonth(startMonth); err != nil {
			errors["startMonth"] = err.Error()
		}
	}
	if endMonth != "" {
		if err := ValidateMonth(endMonth); err != nil {
			errors["endMonth"] = err.Error()
		}
	}
	if len(errors) == 0 && startMonth != "" && endMonth != "" && startMonth > endMonth {
		errors["startMonth"] = "startMonth must not be after endMonth"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}
