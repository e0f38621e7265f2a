package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mbeekman/wealthtrack/internal/api/request"
	"github.com/mbeekman/wealthtrack/internal/api/response"
	apperrors "github.com/mbeekman/wealthtrack/internal/errors"
	"github.com/mbeekman/wealthtrack/internal/model"
	"github.com/mbeekman/wealthtrack/internal/service"
	"github.com/mbeekman/wealthtrack/internal/validation"
)

// AssetHandler handles HTTP requests for asset endpoints.
// It serves as the HTTP layer adapter, parsing requests and delegating
// business logic to the assetService.
type AssetHandler struct {
	assetService *service.AssetService
}

// NewAssetHandler creates a new AssetHandler with the provided service dependency.
func NewAssetHandler(assetService *service.AssetService) *AssetHandler {
	return &AssetHandler{
		assetService: assetService,
	}
}

// Assets handles GET requests to retrieve assets, sorted by sort order.
// Supports optional filtering by owner and inclusion of archived assets.
//
// Endpoint: GET /api/assets?owner_id={uuid}&include_archived=true
// Response: 200 OK with array of Asset
// Error: 400 Bad Request if owner_id is not a valid UUID
// Error: 500 Internal Server Error if retrieval fails
func (h *AssetHandler) Assets(w http.ResponseWriter, r *http.Request) {
	ownerID := r.URL.Query().Get("owner_id")
	if ownerID != "" {
		if err := validation.ValidateUUID(ownerID); err != nil {
			response.RespondError(w, http.StatusBadRequest, "invalid owner_id", err.Error())
			return
		}
	}

	filter := model.AssetFilter{
		OwnerID:         ownerID,
		IncludeArchived: r.URL.Query().Get("include_archived") == "true",
	}

	assets, err := h.assetService.GetAssets(filter)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve assets", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, assets)
}

// GetAsset handles GET requests to retrieve a single asset by ID.
//
// Endpoint: GET /api/assets/{uuid}
// Response: 200 OK with Asset
// Error: 404 Not Found if asset not found
// Error: 500 Internal Server Error if retrieval fails
func (h *AssetHandler) GetAsset(w http.ResponseWriter, r *http.Request) {
	assetID := chi.URLParam(r, "uuid")

	asset, err := h.assetService.GetAsset(assetID)
	if err != nil {
		if errors.Is(err, apperrors.ErrAssetNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrAssetNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve asset", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, asset)
}

// CreateAsset handles POST requests to create a new asset.
//
// Endpoint: POST /api/assets
// Request Body: CreateAssetRequest (name, category, ownerId, currency)
// Response: 201 Created with Asset
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 404 Not Found if the owner does not exist
// Error: 500 Internal Server Error if creation fails
func (h *AssetHandler) CreateAsset(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateAssetRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateAsset(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	asset, err := h.assetService.CreateAsset(r.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrOwnerNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrOwnerNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to create asset", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, asset)
}

// UpdateAsset handles PUT requests to update an existing asset.
//
// Endpoint: PUT /api/assets/{uuid}
// Request Body: UpdateAssetRequest (all fields optional)
// Response: 200 OK with updated Asset
// Error: 400 Bad Request if validation fails
// Error: 404 Not Found if asset or new owner not found
// Error: 500 Internal Server Error if update fails
func (h *AssetHandler) UpdateAsset(w http.ResponseWriter, r *http.Request) {
	assetID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.UpdateAssetRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateAsset(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	asset, err := h.assetService.UpdateAsset(r.Context(), assetID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrAssetNotFound) || errors.Is(err, apperrors.ErrOwnerNotFound) {
			response.RespondError(w, http.StatusNotFound, err.Error(), "")
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to update asset", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, asset)
}

// DeleteAsset handles DELETE requests to remove an asset.
// Assets with snapshots are only deleted when cascade=true, which also
// removes their snapshot history.
//
// Endpoint: DELETE /api/assets/{uuid}?cascade=true
// Response: 204 No Content on successful deletion
// Error: 404 Not Found if asset not found
// Error: 409 Conflict if the asset has snapshots and cascade is not set
// Error: 500 Internal Server Error if deletion fails
func (h *AssetHandler) DeleteAsset(w http.ResponseWriter, r *http.Request) {
	assetID := chi.URLParam(r, "uuid")
	cascade := r.URL.Query().Get("cascade") == "true"

	err := h.assetService.DeleteAsset(r.Context(), assetID, cascade)
	if err != nil {
		if errors.Is(err, apperrors.ErrAssetNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrAssetNotFound.Error(), err.Error())
			return
		}
		if errors.Is(err, apperrors.ErrAssetInUse) {
			response.RespondError(w, http.StatusConflict, apperrors.ErrAssetInUse.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete asset", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}

// ReorderAssets handles PUT requests to change the display order of assets.
// Assets take the sort position of their index in the submitted list.
//
// Endpoint: PUT /api/assets/reorder
// Request Body: ReorderAssetsRequest (assetIds)
// Response: 204 No Content
// Error: 400 Bad Request if the list is empty or contains invalid UUIDs
// Error: 404 Not Found if any asset in the list does not exist
// Error: 500 Internal Server Error if the reorder fails
func (h *AssetHandler) ReorderAssets(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.ReorderAssetsRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateReorderAssets(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	if err := h.assetService.ReorderAssets(r.Context(), req); err != nil {
		if errors.Is(err, apperrors.ErrAssetNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrAssetNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to reorder assets", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}
