package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	apperrors "github.com/mbeekman/wealthtrack/internal/errors"
	"github.com/mbeekman/wealthtrack/internal/model"
)

// UserRepository provides data access methods for the user table.
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new UserRepository with the provided database connection.
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (s *UserRepository) GetUserOnUsername(username string) (model.User, error) {
	query := `
		SELECT id, username, password_hash, created_at
		FROM user
		WHERE username = ?
	`
	var u model.User
	var createdAtStr string

	err := s.db.QueryRow(query, username).Scan(&u.ID, &u.Username, &u.PasswordHash, &createdAtStr)
	if err == sql.ErrNoRows {
		return model.User{}, apperrors.ErrUserNotFound
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to query user: %w", err)
	}

	u.CreatedAt, err = ParseTime(createdAtStr)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to parse date: %w", err)
	}

	return u, nil
}

// CountUsers returns the number of users. Used to decide whether the
// bootstrap login still needs to be seeded.
func (s *UserRepository) CountUsers() (int, error) {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM user`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}

// InsertUser inserts a new user record.
func (s *UserRepository) InsertUser(ctx context.Context, user *model.User) error {
	query := `
		INSERT INTO user (id, username, password_hash, created_at)
		VALUES (?, ?, ?, ?)
	`
	_, err := s.db.ExecContext(ctx, query,
		user.ID,
		user.Username,
		user.PasswordHash,
		user.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}
