package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mbeekman/wealthtrack/internal/api/request"
	"github.com/mbeekman/wealthtrack/internal/api/response"
	apperrors "github.com/mbeekman/wealthtrack/internal/errors"
	"github.com/mbeekman/wealthtrack/internal/service"
	"github.com/mbeekman/wealthtrack/internal/validation"
)

// SnapshotHandler handles HTTP requests for snapshot endpoints.
// It serves as the HTTP layer adapter, parsing requests and delegating
// business logic to the snapshotService and impExpService.
type SnapshotHandler struct {
	snapshotService *service.SnapshotService
	impExpService   *service.ImpExpService
}

// NewSnapshotHandler creates a new SnapshotHandler with the provided service dependencies.
func NewSnapshotHandler(snapshotService *service.SnapshotService, impExpService *service.ImpExpService) *SnapshotHandler {
	return &SnapshotHandler{
		snapshotService: snapshotService,
		impExpService:   impExpService,
	}
}

// SnapshotsPerAsset handles GET requests to retrieve all snapshots for an asset,
// oldest first.
//
// Endpoint: GET /api/assets/{uuid}/snapshots
// Response: 200 OK with array of Snapshot
// Error: 404 Not Found if asset not found
// Error: 500 Internal Server Error if retrieval fails
func (h *SnapshotHandler) SnapshotsPerAsset(w http.ResponseWriter, r *http.Request) {
	assetID := chi.URLParam(r, "uuid")

	snapshots, err := h.snapshotService.GetSnapshots(assetID)
	if err != nil {
		if errors.Is(err, apperrors.ErrAssetNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrAssetNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve snapshots", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, snapshots)
}

// CreateSnapshot handles POST requests to record a new snapshot for an asset.
//
// Endpoint: POST /api/assets/{uuid}/snapshots
// Request Body: CreateSnapshotRequest (date, value, cashFlow, note)
// Response: 201 Created with Snapshot
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 404 Not Found if asset not found
// Error: 500 Internal Server Error if creation fails
func (h *SnapshotHandler) CreateSnapshot(w http.ResponseWriter, r *http.Request) {
	assetID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.CreateSnapshotRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateSnapshot(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	snapshot, err := h.snapshotService.CreateSnapshot(r.Context(), assetID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrAssetNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrAssetNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to create snapshot", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, snapshot)
}

// UpdateSnapshot handles PUT requests to update an existing snapshot.
//
// Endpoint: PUT /api/snapshots/{uuid}
// Request Body: UpdateSnapshotRequest (all fields optional)
// Response: 200 OK with updated Snapshot
// Error: 400 Bad Request if validation fails
// Error: 404 Not Found if snapshot not found
// Error: 500 Internal Server Error if update fails
func (h *SnapshotHandler) UpdateSnapshot(w http.ResponseWriter, r *http.Request) {
	snapshotID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.UpdateSnapshotRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateSnapshot(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	snapshot, err := h.snapshotService.UpdateSnapshot(r.Context(), snapshotID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrSnapshotNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrSnapshotNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to update snapshot", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, snapshot)
}

// DeleteSnapshot handles DELETE requests to remove a snapshot.
//
// Endpoint: DELETE /api/snapshots/{uuid}
// Response: 204 No Content on successful deletion
// Error: 404 Not Found if snapshot not found
// Error: 500 Internal Server Error if deletion fails
func (h *SnapshotHandler) DeleteSnapshot(w http.ResponseWriter, r *http.Request) {
	snapshotID := chi.URLParam(r, "uuid")

	err := h.snapshotService.DeleteSnapshot(r.Context(), snapshotID)
	if err != nil {
		if errors.Is(err, apperrors.ErrSnapshotNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrSnapshotNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete snapshot", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}

// ExportSnapshots handles GET requests to download an asset's snapshots as CSV.
//
// Endpoint: GET /api/assets/{uuid}/snapshots/export
// Response: 200 OK with text/csv body (date, value, cash_flow, note)
// Error: 404 Not Found if asset not found
// Error: 500 Internal Server Error if export fails
func (h *SnapshotHandler) ExportSnapshots(w http.ResponseWriter, r *http.Request) {
	assetID := chi.URLParam(r, "uuid")

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"snapshots-%s.csv\"", assetID))

	if err := h.impExpService.ExportSnapshots(assetID, w); err != nil {
		if errors.Is(err, apperrors.ErrAssetNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrAssetNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to export snapshots", err.Error())
		return
	}
}

// ImportResponse reports how many snapshot rows an import created.
type ImportResponse struct {
	Imported int `json:"imported"`
}

// ImportSnapshots handles POST requests to bulk-load snapshots from CSV.
// The upload must carry the same headers the export produces, and the whole
// file is applied in a single transaction.
//
// Endpoint: POST /api/assets/{uuid}/snapshots/import
// Request Body: text/csv (date, value, cash_flow, note)
// Response: 201 Created with ImportResponse
// Error: 400 Bad Request if the CSV is malformed or contains invalid rows
// Error: 404 Not Found if asset not found
// Error: 500 Internal Server Error if the import fails
func (h *SnapshotHandler) ImportSnapshots(w http.ResponseWriter, r *http.Request) {
	assetID := chi.URLParam(r, "uuid")

	imported, err := h.impExpService.ImportSnapshots(r.Context(), assetID, r.Body)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrAssetNotFound):
			response.RespondError(w, http.StatusNotFound, apperrors.ErrAssetNotFound.Error(), err.Error())
		case errors.Is(err, apperrors.ErrInvalidCSVHeaders), errors.Is(err, apperrors.ErrNegativeValue):
			response.RespondError(w, http.StatusBadRequest, "invalid CSV file", err.Error())
		default:
			response.RespondError(w, http.StatusInternalServerError, "failed to import snapshots", err.Error())
		}
		return
	}

	response.RespondJSON(w, http.StatusCreated, ImportResponse{Imported: imported})
}
