package validation

import (
	"fmt"
	"strings"

	"github.com/mbeekman/wealthtrack/internal/api/request"
)

// ValidAssetCategory contains the allowed asset category values.
var ValidAssetCategory = map[string]bool{
	"stocks": true, "etf": true, "crypto": true, "cash": true,
	"real_estate": true, "pension": true, "other": true,
}

// ValidateCreateAsset validates an asset creation request.
//
// Required fields:
//   - name: Must be non-empty, 100 characters or less
//   - category: Must be one of: stocks, etf, crypto, cash, real_estate, pension, other
//   - ownerId: Must be a valid UUID
//
// Returns a validation Error with field-specific error messages if validation fails.
func ValidateCreateAsset(req request.CreateAssetRequest) error {
	errors := make(map[string]string)

	if err := ValidateUUID(req.OwnerID); err != nil {
		return err
	}

	if strings.TrimSpace(req.Name) == "" {
		errors["name"] = "name is required"
	} else if len(req.Name) > 100 {
		errors["name"] = "name must be 100 characters or less"
	}

	if strings.TrimSpace(req.Category) == "" {
		errors["category"] = "category is required"
	} else if !ValidAssetCategory[req.Category] {
		errors["category"] = fmt.Sprintf("invalid category: %s", req.Category)
	}

	if req.Currency != "" && len(req.Currency) != 3 {
		errors["currency"] = "currency must be a 3-letter ISO code"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

// ValidateUpdateAsset validates an asset update request.
// All fields are optional, but if provided they must meet the same constraints as create.
func ValidateUpdateAsset(req request.UpdateAssetRequest) error {
	errors := make(map[string]string)

	if req.OwnerID != nil {
		if err := ValidateUUID(*req.OwnerID); err != nil {
			return err
		}
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			errors["name"] = "name cannot be empty"
		} else if len(*req.Name) > 100 {
			errors["name"] = "name must be 100 characters or less"
		}
	}

	if req.Category != nil && !ValidAssetCategory[*req.Category] {
		errors["category"] = fmt.Sprintf("invalid category: %s", *req.Category)
	}

	if req.Currency != nil && len(*req.Currency) != 3 {
		errors["currency"] = "currency must be a 3-letter ISO code"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

// ValidateReorderAssets validates an asset reorder request.
// The list must be non-empty and every entry must be a valid UUID.
func ValidateReorderAssets(req request.ReorderAssetsRequest) error {
	return ValidateUUIDs(req.AssetIDs)
}
