package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mbeekman/wealthtrack/internal/api/response"
	apperrors "github.com/mbeekman/wealthtrack/internal/errors"
	"github.com/mbeekman/wealthtrack/internal/service"
	"github.com/mbeekman/wealthtrack/internal/validation"
)

// PerformanceHandler handles HTTP requests for timeline and heatmap endpoints.
// It serves as the HTTP layer adapter, parsing requests and delegating
// business logic to the performanceService.
type PerformanceHandler struct {
	performanceService *service.PerformanceService
	snapshotService    *service.SnapshotService
}

// NewPerformanceHandler creates a new PerformanceHandler with the provided service dependencies.
func NewPerformanceHandler(performanceService *service.PerformanceService, snapshotService *service.SnapshotService) *PerformanceHandler {
	return &PerformanceHandler{
		performanceService: performanceService,
		snapshotService:    snapshotService,
	}
}

// AssetPerformance handles GET requests to retrieve an asset's snapshots with
// period, cumulative and year-to-date attribution, newest first.
//
// Endpoint: GET /api/assets/{uuid}/performance
// Response: 200 OK with array of EnhancedSnapshot
// Error: 404 Not Found if asset not found
// Error: 500 Internal Server Error if retrieval fails
func (h *PerformanceHandler) AssetPerformance(w http.ResponseWriter, r *http.Request) {
	assetID := chi.URLParam(r, "uuid")

	enhanced, err := h.snapshotService.GetEnhancedSnapshots(assetID)
	if err != nil {
		if errors.Is(err, apperrors.ErrAssetNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrAssetNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to compute asset performance", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, enhanced)
}

// AssetTimeline handles GET requests to retrieve an asset's dense monthly
// timeline, with carried-forward values between observations.
//
// Endpoint: GET /api/assets/{uuid}/timeline?end_month=YYYY-MM
// Response: 200 OK with array of TimelinePoint
// Error: 400 Bad Request if end_month is malformed
// Error: 404 Not Found if asset not found
// Error: 500 Internal Server Error if retrieval fails
func (h *PerformanceHandler) AssetTimeline(w http.ResponseWriter, r *http.Request) {
	assetID := chi.URLParam(r, "uuid")
	endMonth := r.URL.Query().Get("end_month")

	if endMonth != "" {
		if err := validation.ValidateMonth(endMonth); err != nil {
			response.RespondError(w, http.StatusBadRequest, "invalid end_month", err.Error())
			return
		}
	}

	timeline, err := h.performanceService.GetAssetTimeline(assetID, endMonth)
	if err != nil {
		if errors.Is(err, apperrors.ErrAssetNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrAssetNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to build timeline", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, timeline)
}

// Heatmap handles GET requests to retrieve the monthly performance heatmap:
// one row per asset plus a portfolio total row, over an inclusive month range.
// The range defaults to the trailing twelve months ending at the current month.
//
// Endpoint: GET /api/performance/heatmap?start_month=YYYY-MM&end_month=YYYY-MM&owner_id={uuid}
// Response: 200 OK with Heatmap
// Error: 400 Bad Request if the month range or owner_id is invalid
// Error: 404 Not Found if the owner does not exist
// Error: 500 Internal Server Error if the heatmap cannot be built
func (h *PerformanceHandler) Heatmap(w http.ResponseWriter, r *http.Request) {
	startMonth := r.URL.Query().Get("start_month")
	endMonth := r.URL.Query().Get("end_month")
	ownerID := r.URL.Query().Get("owner_id")

	if err := validation.ValidateMonthRange(startMonth, endMonth); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid month range", err.Error())
		return
	}
	if ownerID != "" {
		if err := validation.ValidateUUID(ownerID); err != nil {
			response.RespondError(w, http.StatusBadRequest, "invalid owner_id", err.Error())
			return
		}
	}

	heatmap, err := h.performanceService.GetHeatmap(startMonth, endMonth, ownerID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvalidDateRange):
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidDateRange.Error(), err.Error())
		case errors.Is(err, apperrors.ErrOwnerNotFound):
			response.RespondError(w, http.StatusNotFound, apperrors.ErrOwnerNotFound.Error(), err.Error())
		default:
			response.RespondError(w, http.StatusInternalServerError, "failed to build heatmap", err.Error())
		}
		return
	}

	response.RespondJSON(w, http.StatusOK, heatmap)
}
