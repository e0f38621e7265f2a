package handlers

import (
	"net/http"

	"github.com/mbeekman/wealthtrack/internal/api/response"
	"github.com/mbeekman/wealthtrack/internal/service"
)

// SystemHandler handles system-related HTTP requests
type SystemHandler struct {
	systemService *service.SystemService
	backupService *service.BackupService
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(systemService *service.SystemService, backupService *service.BackupService) *SystemHandler {
	return &SystemHandler{
		systemService: systemService,
		backupService: backupService,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Error    string `json:"error,omitempty"`
}

// Health checks the health of the system and database connectivity
func (h *SystemHandler) Health(w http.ResponseWriter, _ *http.Request) {
	if err := h.systemService.CheckHealth(); err != nil {
		respondJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:   "unhealthy",
			Database: "disconnected",
			Error:    err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, HealthResponse{
		Status:   "healthy",
		Database: "connected",
	})
}

// VersionInfoResponse represents the version check response containing
// application and database schema version information.
type VersionInfoResponse struct {
	AppVersion string `json:"app_version"`
	DbVersion  string `json:"db_version"`
}

// Version handles GET requests to retrieve version information.
//
// Endpoint: GET /api/system/version
// Response: 200 OK with VersionInfoResponse
// Error: 500 Internal Server Error if version check fails
func (h *SystemHandler) Version(w http.ResponseWriter, _ *http.Request) {
	version, err := h.systemService.CheckVersion()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to get version information", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, VersionInfoResponse{
		AppVersion: version.AppVersion,
		DbVersion:  version.DbVersion,
	})
}

// BackupResponse reports the file written by an on-demand backup.
type BackupResponse struct {
	File string `json:"file"`
}

// Backup handles POST requests to trigger an immediate database backup.
//
// Endpoint: POST /api/system/backup
// Response: 201 Created with BackupResponse
// Error: 500 Internal Server Error if the backup fails
func (h *SystemHandler) Backup(w http.ResponseWriter, r *http.Request) {
	file, err := h.backupService.Backup(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to create backup", err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, BackupResponse{File: file})
}

// Backups handles GET requests to list available backup files, newest first.
//
// Endpoint: GET /api/system/backup
// Response: 200 OK with array of file names
// Error: 500 Internal Server Error if listing fails
func (h *SystemHandler) Backups(w http.ResponseWriter, _ *http.Request) {
	files, err := h.backupService.ListBackups()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to list backups", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, files)
}
