package repository

import (
	"fmt"
	"time"
)

// ParseTime parses a stored timestamp. Timestamps are written as RFC3339;
// plain "2006-01-02" dates are accepted for rows imported from CSV backups
// that predate the time component.
func ParseTime(str string) (time.Time, error) {
	parsed, err := time.Parse(time.RFC3339, str)
	if err != nil {
		parsed, err = time.Parse("2006-01-02", str)
		if err != nil {
			return time.Time{}, fmt.Errorf("failed to parse timestamp %q: %w", str, err)
		}
	}
	return parsed.UTC(), nil
}
