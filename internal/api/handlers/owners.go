package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mbeekman/wealthtrack/internal/api/request"
	"github.com/mbeekman/wealthtrack/internal/api/response"
	apperrors "github.com/mbeekman/wealthtrack/internal/errors"
	"github.com/mbeekman/wealthtrack/internal/service"
	"github.com/mbeekman/wealthtrack/internal/validation"
)

// OwnerHandler handles HTTP requests for owner endpoints.
// It serves as the HTTP layer adapter, parsing requests and delegating
// business logic to the ownerService.
type OwnerHandler struct {
	ownerService *service.OwnerService
}

// NewOwnerHandler creates a new OwnerHandler with the provided service dependency.
func NewOwnerHandler(ownerService *service.OwnerService) *OwnerHandler {
	return &OwnerHandler{
		ownerService: ownerService,
	}
}

// Owners handles GET requests to retrieve all owners, sorted by name.
//
// Endpoint: GET /api/owners
// Response: 200 OK with array of Owner
// Error: 500 Internal Server Error if retrieval fails
func (h *OwnerHandler) Owners(w http.ResponseWriter, _ *http.Request) {
	owners, err := h.ownerService.GetAllOwners()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve owners", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, owners)
}

// GetOwner handles GET requests to retrieve a single owner by ID.
//
// Endpoint: GET /api/owners/{uuid}
// Response: 200 OK with Owner
// Error: 404 Not Found if owner not found
// Error: 500 Internal Server Error if retrieval fails
func (h *OwnerHandler) GetOwner(w http.ResponseWriter, r *http.Request) {
	ownerID := chi.URLParam(r, "uuid")

	owner, err := h.ownerService.GetOwner(ownerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrOwnerNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrOwnerNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve owner", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, owner)
}

// CreateOwner handles POST requests to create a new owner.
//
// Endpoint: POST /api/owners
// Request Body: CreateOwnerRequest (name, color)
// Response: 201 Created with Owner
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 500 Internal Server Error if creation fails
func (h *OwnerHandler) CreateOwner(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateOwnerRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateOwner(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	owner, err := h.ownerService.CreateOwner(r.Context(), req)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to create owner", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, owner)
}

// UpdateOwner handles PUT requests to update an existing owner.
//
// Endpoint: PUT /api/owners/{uuid}
// Request Body: UpdateOwnerRequest (all fields optional)
// Response: 200 OK with updated Owner
// Error: 400 Bad Request if validation fails
// Error: 404 Not Found if owner not found
// Error: 500 Internal Server Error if update fails
func (h *OwnerHandler) UpdateOwner(w http.ResponseWriter, r *http.Request) {
	ownerID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.UpdateOwnerRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateOwner(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	owner, err := h.ownerService.UpdateOwner(r.Context(), ownerID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrOwnerNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrOwnerNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to update owner", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, owner)
}

// DeleteOwner handles DELETE requests to remove an owner.
// Owners with assets cannot be deleted.
//
// Endpoint: DELETE /api/owners/{uuid}
// Response: 204 No Content on successful deletion
// Error: 404 Not Found if owner not found
// Error: 409 Conflict if the owner still has assets
// Error: 500 Internal Server Error if deletion fails
func (h *OwnerHandler) DeleteOwner(w http.ResponseWriter, r *http.Request) {
	ownerID := chi.URLParam(r, "uuid")

	err := h.ownerService.DeleteOwner(r.Context(), ownerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrOwnerNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrOwnerNotFound.Error(), err.Error())
			return
		}
		if errors.Is(err, apperrors.ErrOwnerInUse) {
			response.RespondError(w, http.StatusConflict, apperrors.ErrOwnerInUse.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete owner", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}
