package validation

import (
	"strings"

	"github.com/mbeekman/wealthtrack/internal/api/request"
)

// ValidateCreateOwner validates an owner creation request.
//
// Required fields:
//   - name: Must be non-empty, 100 characters or less
//
// The color field is optional and defaults server-side when empty.
func ValidateCreateOwner(req request.CreateOwnerRequest) error {
	errors := make(map[string]string)

	// Required field
	if strings.TrimSpace(req.Name) == "" {
		errors["name"] = "name is required"
	} else if len(req.Name) > 100 {
		errors["name"] = "name must be 100 characters or less"
	}

	if req.Color != "" && !validHexColor(req.Color) {
		errors["color"] = "color must be a hex value like #4a7ab5"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

// ValidateUpdateOwner validates an owner update request.
// All fields are optional, but if provided they must meet the same constraints as create.
func ValidateUpdateOwner(req request.UpdateOwnerRequest) error {
	errors := make(map[string]string)

	// Only validate provided fields
	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			errors["name"] = "name cannot be empty"
		} else if len(*req.Name) > 100 {
			errors["name"] = "name must be 100 characters or less"
		}
	}

	if req.Color != nil && !validHexColor(*req.Color) {
		errors["color"] = "color must be a hex value like #4a7ab5"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

func validHexColor(color string) bool {
	if len(color) != 7 || color[0] != '#' {
		return false
	}
	for _, c := range color[1:] {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
