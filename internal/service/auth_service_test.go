package service_test

import (
	"context"
	"errors"
	"testing"

	apperrors "github.com/mbeekman/wealthtrack/internal/errors"
	"github.com/mbeekman/wealthtrack/internal/testutil"
)

// TestAuthService_Bootstrap tests the first-start user seed.
//
// WHY: The household login is created automatically on an empty database.
// Seeding again, or seeding without a password, must be a no-op so restarts
// never clobber or duplicate the user.
func TestAuthService_Bootstrap(t *testing.T) {
	t.Run("seeds user on empty database", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAuthService(t, db)

		// Execute
		if err := svc.Bootstrap(context.Background(), "admin", "secret"); err != nil {
			t.Fatalf("Bootstrap() returned unexpected error: %v", err)
		}

		// Assert: the seeded user can log in
		if _, err := svc.Login("admin", "secret"); err != nil {
			t.Errorf("Expected seeded user to log in, got %v", err)
		}
	})

	t.Run("skips seeding when a user exists", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAuthService(t, db)

		if err := svc.Bootstrap(context.Background(), "admin", "secret"); err != nil {
			t.Fatalf("Bootstrap() returned unexpected error: %v", err)
		}

		// Execute: second bootstrap with a different password
		if err := svc.Bootstrap(context.Background(), "admin", "other"); err != nil {
			t.Fatalf("Bootstrap() returned unexpected error: %v", err)
		}

		// Assert: the original password still works
		if _, err := svc.Login("admin", "secret"); err != nil {
			t.Errorf("Expected original password to still work, got %v", err)
		}
	})

	t.Run("skips seeding without a password", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAuthService(t, db)

		// Execute
		if err := svc.Bootstrap(context.Background(), "admin", ""); err != nil {
			t.Fatalf("Bootstrap() returned unexpected error: %v", err)
		}

		// Assert
		var count int
		if err := db.QueryRow("SELECT COUNT(*) FROM user").Scan(&count); err != nil {
			t.Fatalf("Failed to count users: %v", err)
		}
		if count != 0 {
			t.Errorf("Expected no users, got %d", count)
		}
	})
}

// TestAuthService_Login tests credential checks and token issuance.
//
// WHY: Wrong usernames and wrong passwords must be indistinguishable to the
// caller, and a successful login must produce a token that verifies back to
// the same user.
func TestAuthService_Login(t *testing.T) {
	t.Run("issues verifiable token for valid credentials", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAuthService(t, db)
		if err := svc.Bootstrap(context.Background(), "admin", "secret"); err != nil {
			t.Fatalf("Bootstrap() returned unexpected error: %v", err)
		}

		// Execute
		token, err := svc.Login("admin", "secret")

		// Assert
		if err != nil {
			t.Fatalf("Login() returned unexpected error: %v", err)
		}
		if token == "" {
			t.Fatal("Expected non-empty token")
		}

		session, err := svc.Verify(token)
		if err != nil {
			t.Fatalf("Verify() returned unexpected error: %v", err)
		}
		if session.Username != "admin" {
			t.Errorf("Expected session for 'admin', got '%s'", session.Username)
		}
	})

	t.Run("rejects wrong password", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAuthService(t, db)
		if err := svc.Bootstrap(context.Background(), "admin", "secret"); err != nil {
			t.Fatalf("Bootstrap() returned unexpected error: %v", err)
		}

		// Execute
		_, err := svc.Login("admin", "wrong")

		// Assert
		if !errors.Is(err, apperrors.ErrInvalidCredentials) {
			t.Errorf("Expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("rejects unknown user with the same error", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAuthService(t, db)

		// Execute
		_, err := svc.Login("nobody", "secret")

		// Assert
		if !errors.Is(err, apperrors.ErrInvalidCredentials) {
			t.Errorf("Expected ErrInvalidCredentials, got %v", err)
		}
	})
}

// TestAuthService_Verify tests token verification.
func TestAuthService_Verify(t *testing.T) {
	t.Run("rejects garbage token", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAuthService(t, db)

		// Execute
		_, err := svc.Verify("not-a-token")

		// Assert
		if !errors.Is(err, apperrors.ErrInvalidSession) {
			t.Errorf("Expected ErrInvalidSession, got %v", err)
		}
	})

	t.Run("rejects empty token", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAuthService(t, db)

		// Execute
		_, err := svc.Verify("")

		// Assert
		if !errors.Is(err, apperrors.ErrInvalidSession) {
			t.Errorf("Expected ErrInvalidSession, got %v", err)
		}
	})
}
