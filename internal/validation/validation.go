package validation

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	// ErrInvalidUUID indicates an identifier that is not a valid UUID.
	ErrInvalidUUID = errors.New("invalid UUID format")
	// ErrEmptySlice indicates an ID list that must contain at least one entry.
	ErrEmptySlice = errors.New("slice cannot be empty")
)

// ValidateUUID checks that id is a well-formed UUID.
func ValidateUUID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidUUID, id)
	}
	return nil
}

// ValidateUUIDs checks a non-empty list of IDs, failing on the first
// malformed one.
func ValidateUUIDs(ids []string) error {
	if len(ids) == 0 {
		return ErrEmptySlice
	}
	for _, id := range ids {
		if err := ValidateUUID(id); err != nil {
			return err
		}
	}
	return nil
}
