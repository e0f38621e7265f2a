package validation

import (
	"strings"
	"time"

	"github.com/mbeekman/wealthtrack/internal/api/request"
)

// ValidateCreateSnapshot validates a snapshot creation request.
//
// Required fields:
//   - date: Must be in YYYY-MM-DD format
//   - value: Must be zero or positive
//
// Cash flow may be negative (withdrawals) and note is optional.
//
// Returns a validation Error with field-specific error messages if validation fails.
func ValidateCreateSnapshot(req request.CreateSnapshotRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Date) == "" {
		errors["date"] = "date is required"
	} else if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		errors["date"] = err.Error()
	}

	if req.Value < 0 {
		errors["value"] = "value must be zero or positive"
	}

	if len(req.Note) > 500 {
		errors["note"] = "note must be 500 characters or less"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

// ValidateUpdateSnapshot validates a snapshot update request.
// All fields are optional, but if provided they must meet the same constraints as create.
func ValidateUpdateSnapshot(req request.UpdateSnapshotRequest) error {
	errors := make(map[string]string)

	if req.Date != nil {
		if strings.TrimSpace(*req.Date) == "" {
			errors["date"] = "date cannot be empty"
		} else if _, err := time.Parse("2006-01-02", *req.Date); err != nil {
			errors["date"] = err.Error()
		}
	}

	if req.Value != nil && *req.Value < 0 {
		errors["value"] = "value must be zero or positive"
	}

	if req.Note != nil && len(*req.Note) > 500 {
		errors["note"] = "note must be 500 characters or less"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
