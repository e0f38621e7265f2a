package testutil

import (
	"database/sql"
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mbeekman/wealthtrack/internal/config"
	"github.com/mbeekman/wealthtrack/internal/repository"
	"github.com/mbeekman/wealthtrack/internal/service"
)

// TestFernetKey is a fixed base64-encoded fernet key for auth tests.
const TestFernetKey = "cw_0x689RpI-jtRR7oE8h_eQsKImvJapLeSbXpwF4e4="

func NewTestOwnerService(t *testing.T, db *sql.DB) *service.OwnerService {
	t.Helper()

	return service.NewOwnerService(repository.NewOwnerRepository(db))
}

func NewTestAssetService(t *testing.T, db *sql.DB) *service.AssetService {
	t.Helper()

	assetRepo := repository.NewAssetRepository(db)
	ownerService := NewTestOwnerService(t, db)

	return service.NewAssetService(assetRepo, ownerService)
}

func NewTestSnapshotService(t *testing.T, db *sql.DB) *service.SnapshotService {
	t.Helper()

	snapshotRepo := repository.NewSnapshotRepository(db)
	assetService := NewTestAssetService(t, db)

	return service.NewSnapshotService(snapshotRepo, assetService)
}

func NewTestImpExpService(t *testing.T, db *sql.DB) *service.ImpExpService {
	t.Helper()

	snapshotRepo := repository.NewSnapshotRepository(db)
	assetService := NewTestAssetService(t, db)

	return service.NewImpExpService(snapshotRepo, assetService)
}

// NewTestPerformanceService creates a PerformanceService with a fixed clock
// so default-range computation stays deterministic.
func NewTestPerformanceService(t *testing.T, db *sql.DB, now time.Time) *service.PerformanceService {
	t.Helper()

	snapshotRepo := repository.NewSnapshotRepository(db)
	assetService := NewTestAssetService(t, db)

	return service.NewPerformanceService(snapshotRepo, assetService, func() time.Time { return now })
}

func NewTestAuthService(t *testing.T, db *sql.DB) *service.AuthService {
	t.Helper()

	authService, err := service.NewAuthService(repository.NewUserRepository(db), config.AuthConfig{
		SecretKey:         TestFernetKey,
		SessionTTLMinutes: 60,
	})
	if err != nil {
		t.Fatalf("Failed to create auth service: %v", err)
	}
	return authService
}

func NewTestSystemService(t *testing.T, db *sql.DB) *service.SystemService {
	t.Helper()

	return service.NewSystemService(db)
}

// NewTestBackupService creates a BackupService writing into a per-test
// temporary directory.
func NewTestBackupService(t *testing.T, db *sql.DB) *service.BackupService {
	t.Helper()

	return service.NewBackupService(db, config.BackupConfig{
		Dir:  t.TempDir(),
		Keep: 3,
	})
}

// MakeID generates a UUID string for use in tests.
//
// Example usage:
//
//	id := testutil.MakeID()
//	// Returns: "550e8400-e29b-41d4-a716-446655440000"
func MakeID() string {
	return uuid.New().String()
}

// MakeName generates a unique name for testing.
//
// Example usage:
//
//	name := testutil.MakeName("Savings")
//	// Returns: "Savings ABC123"
func MakeName(base string) string {
	if base == "" {
		base = "Test"
	}
	return base + " " + randomAlphanumeric(6)
}

// randomAlphanumeric generates a random alphanumeric string of specified length.
func randomAlphanumeric(length int) string {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	result := make([]byte, length)
	for i := range result {
		//nolint:gosec // G404: Using math/rand for test data generation is acceptable
		result[i] = charset[rand.Intn(len(charset))]
	}
	return string(result)
}
