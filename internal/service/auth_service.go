package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/fernet/fernet-go"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/mbeekman/wealthtrack/internal/config"
	apperrors "github.com/mbeekman/wealthtrack/internal/errors"
	"github.com/mbeekman/wealthtrack/internal/model"
	"github.com/mbeekman/wealthtrack/internal/repository"
)

// AuthService handles login and session token lifecycle. Session tokens are
// fernet-encrypted JSON payloads with a TTL; there is no server-side session
// store to clean up.
type AuthService struct {
	userRepo *repository.UserRepository
	keys     []*fernet.Key
	ttl      time.Duration
}

// NewAuthService creates a new AuthService from the auth configuration.
// The configured secret key must be a valid base64-encoded fernet key.
func NewAuthService(userRepo *repository.UserRepository, cfg config.AuthConfig) (*AuthService, error) {
	keys, err := fernet.DecodeKeys(cfg.SecretKey)
	if err != nil {
		return nil, fmt.Errorf("failed to decode auth secret key: %w", err)
	}

	return &AuthService{
		userRepo: userRepo,
		keys:     keys,
		ttl:      time.Duration(cfg.SessionTTLMinutes) * time.Minute,
	}, nil
}

// Bootstrap seeds the household login when the user table is empty.
// Without a configured bootstrap password the seed is skipped and the API
// stays unreachable behind auth until a user is provisioned manually.
func (s *AuthService) Bootstrap(ctx context.Context, username, password string) error {
	count, err := s.userRepo.CountUsers()
	if err != nil {
		return err
	}
	if count > 0 || password == "" {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash bootstrap password: %w", err)
	}

	user := &model.User{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.userRepo.InsertUser(ctx, user); err != nil {
		return fmt.Errorf("failed to create bootstrap user: %w", err)
	}
	return nil
}

// Login verifies credentials and returns a session token. Unknown usernames
// and wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(username, password string) (string, error) {
	user, err := s.userRepo.GetUserOnUsername(username)
	if errors.Is(err, apperrors.ErrUserNotFound) {
		return "", apperrors.ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", apperrors.ErrInvalidCredentials
	}

	payload, err := json.Marshal(model.Session{UserID: user.ID, Username: user.Username})
	if err != nil {
		return "", fmt.Errorf("failed to marshal session payload: %w", err)
	}

	token, err := fernet.EncryptAndSign(payload, s.keys[0])
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return string(token), nil
}

// Verify decrypts and validates a session token, enforcing the TTL.
func (s *AuthService) Verify(token string) (model.Session, error) {
	payload := fernet.VerifyAndDecrypt([]byte(token), s.ttl, s.keys)
	if payload == nil {
		return model.Session{}, apperrors.ErrInvalidSession
	}

	var session model.Session
	if err := json.Unmarshal(payload, &session); err != nil {
		return model.Session{}, apperrors.ErrInvalidSession
	}
	return session, nil
}
