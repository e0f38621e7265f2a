package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mbeekman/wealthtrack/internal/api"
	"github.com/mbeekman/wealthtrack/internal/config"
	"github.com/mbeekman/wealthtrack/internal/database"
	"github.com/mbeekman/wealthtrack/internal/repository"
	"github.com/mbeekman/wealthtrack/internal/scheduler"
	"github.com/mbeekman/wealthtrack/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open database connection
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	log.Printf("Connected to database: %s", cfg.Database.Path)

	// Apply pending migrations
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Create repositories
	ownerRepo := repository.NewOwnerRepository(db)
	assetRepo := repository.NewAssetRepository(db)
	snapshotRepo := repository.NewSnapshotRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Create services
	systemService := service.NewSystemService(db)
	backupService := service.NewBackupService(db, cfg.Backup)
	ownerService := service.NewOwnerService(ownerRepo)
	assetService := service.NewAssetService(assetRepo, ownerService)
	snapshotService := service.NewSnapshotService(snapshotRepo, assetService)
	impExpService := service.NewImpExpService(snapshotRepo, assetService)
	performanceService := service.NewPerformanceService(snapshotRepo, assetService, nil)

	authService, err := service.NewAuthService(userRepo, cfg.Auth)
	if err != nil {
		log.Fatalf("Failed to create auth service: %v", err)
	}
	if err := authService.Bootstrap(context.Background(), cfg.Auth.BootstrapUser, cfg.Auth.BootstrapPassword); err != nil {
		log.Fatalf("Failed to bootstrap user: %v", err)
	}

	// Schedule nightly backups
	backupScheduler, err := scheduler.New(backupService, cfg.Backup.Schedule)
	if err != nil {
		log.Fatalf("Failed to create backup scheduler: %v", err)
	}
	backupScheduler.Start()
	defer backupScheduler.Stop()

	// Create router
	router := api.NewRouter(api.Services{
		System:      systemService,
		Backup:      backupService,
		Auth:        authService,
		Owner:       ownerService,
		Asset:       assetService,
		Snapshot:    snapshotService,
		ImpExp:      impExpService,
		Performance: performanceService,
	}, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
