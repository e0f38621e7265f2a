// Package request defines the request body types accepted by the API.
package request

// CreateOwnerRequest is the request body for creating an owner.
type CreateOwnerRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// UpdateOwnerRequest is the request body for updating an owner.
// Nil fields are left unchanged.
type UpdateOwnerRequest struct {
	Name  *string `json:"name"`
	Color *string `json:"color"`
}
