package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mbeekman/wealthtrack/internal/api/handlers"
	custommiddleware "github.com/mbeekman/wealthtrack/internal/api/middleware"
	"github.com/mbeekman/wealthtrack/internal/config"
	"github.com/mbeekman/wealthtrack/internal/service"
)

// Services bundles the service dependencies the router wires into handlers.
type Services struct {
	System      *service.SystemService
	Backup      *service.BackupService
	Auth        *service.AuthService
	Owner       *service.OwnerService
	Asset       *service.AssetService
	Snapshot    *service.SnapshotService
	ImpExp      *service.ImpExpService
	Performance *service.PerformanceService
}

// NewRouter creates and configures the HTTP router
func NewRouter(svc Services, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	systemHandler := handlers.NewSystemHandler(svc.System, svc.Backup)
	authHandler := handlers.NewAuthHandler(svc.Auth)
	ownerHandler := handlers.NewOwnerHandler(svc.Owner)
	assetHandler := handlers.NewAssetHandler(svc.Asset)
	snapshotHandler := handlers.NewSnapshotHandler(svc.Snapshot, svc.ImpExp)
	performanceHandler := handlers.NewPerformanceHandler(svc.Performance, svc.Snapshot)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Public endpoints
		r.Get("/system/health", systemHandler.Health)
		r.Post("/auth/login", authHandler.Login)
		r.Post("/auth/logout", authHandler.Logout)

		// Everything below requires a valid session
		r.Group(func(r chi.Router) {
			r.Use(custommiddleware.RequireSession(svc.Auth))

			r.Route("/system", func(r chi.Router) {
				r.Get("/version", systemHandler.Version)
				r.Get("/backup", systemHandler.Backups)
				r.Post("/backup", systemHandler.Backup)
			})

			r.Route("/owners", func(r chi.Router) {
				r.Get("/", ownerHandler.Owners)
				r.Post("/", ownerHandler.CreateOwner)

				r.Route("/{uuid}", func(r chi.Router) {
					r.Use(custommiddleware.ValidateUUIDMiddleware)
					r.Get("/", ownerHandler.GetOwner)
					r.Put("/", ownerHandler.UpdateOwner)
					r.Delete("/", ownerHandler.DeleteOwner)
				})
			})

			r.Route("/assets", func(r chi.Router) {
				r.Get("/", assetHandler.Assets)
				r.Post("/", assetHandler.CreateAsset)
				r.Put("/reorder", assetHandler.ReorderAssets)

				r.Route("/{uuid}", func(r chi.Router) {
					r.Use(custommiddleware.ValidateUUIDMiddleware)
					r.Get("/", assetHandler.GetAsset)
					r.Put("/", assetHandler.UpdateAsset)
					r.Delete("/", assetHandler.DeleteAsset)

					r.Get("/snapshots", snapshotHandler.SnapshotsPerAsset)
					r.Post("/snapshots", snapshotHandler.CreateSnapshot)
					r.Get("/snapshots/export", snapshotHandler.ExportSnapshots)
					r.Post("/snapshots/import", snapshotHandler.ImportSnapshots)

					r.Get("/performance", performanceHandler.AssetPerformance)
					r.Get("/timeline", performanceHandler.AssetTimeline)
				})
			})

			r.Route("/snapshots/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Put("/", snapshotHandler.UpdateSnapshot)
				r.Delete("/", snapshotHandler.DeleteSnapshot)
			})

			r.Get("/performance/heatmap", performanceHandler.Heatmap)
		})
	})

	return r
}
