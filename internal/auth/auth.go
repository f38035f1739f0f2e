// Package auth implements owner registration and session tokens. The rest of
// the application only ever sees the opaque owner id this package yields.
package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/rohanarya/tripkhata/internal/database"
	"github.com/rohanarya/tripkhata/internal/models"
	"github.com/rohanarya/tripkhata/internal/repository"
)

// ErrBadCredentials is returned when the owner id or password does not match.
var ErrBadCredentials = errors.New("invalid credentials")

const tokenBytes = 32

// Service issues and verifies sessions backed by the sessions table.
type Service struct {
	db         database.PGXDB
	owners     *repository.OwnerRepository
	sessionTTL time.Duration
}

// NewService creates an auth Service.
func NewService(db database.PGXDB, owners *repository.OwnerRepository, sessionTTL time.Duration) *Service {
	return &Service{db: db, owners: owners, sessionTTL: sessionTTL}
}

// Register creates a new owner with a bcrypt-hashed password.
func (s *Service) Register(ctx context.Context, ownerID, password string) error {
	if ownerID == "" || password == "" {
		return ErrBadCredentials
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	return s.owners.Create(ctx, &models.Owner{ID: ownerID, PasswordHash: string(hash)})
}

// Login verifies the credentials and issues a new session token.
func (s *Service) Login(ctx context.Context, ownerID, password string) (string, error) {
	owner, err := s.owners.GetByID(ctx, ownerID)
	if errors.Is(err, models.ErrNotFound) {
		return "", ErrBadCredentials
	}
	if err != nil {
		return "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(owner.PasswordHash), []byte(password)) != nil {
		return "", ErrBadCredentials
	}

	token, err := newToken()
	if err != nil {
		return "", err
	}
	expires := time.Now().Add(s.sessionTTL)
	_, err = s.db.Exec(ctx, `
		INSERT INTO sessions (token, owner_id, expires_at) VALUES ($1, $2, $3)
	`, token, owner.ID, expires)
	if err != nil {
		return "", fmt.Errorf("failed to store session: %w", err)
	}
	return token, nil
}

// Authenticate resolves a session token to an owner id. Unknown or expired
// tokens return models.ErrNotFound.
func (s *Service) Authenticate(ctx context.Context, token string) (string, error) {
	var ownerID string
	err := s.db.QueryRow(ctx, `
		SELECT owner_id FROM sessions WHERE token = $1 AND expires_at > NOW()
	`, token).Scan(&ownerID)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", models.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to look up session: %w", err)
	}
	return ownerID, nil
}

// Logout discards a session token. Unknown tokens are not an error.
func (s *Service) Logout(ctx context.Context, token string) error {
	_, err := s.db.Exec(ctx, `DELETE FROM sessions WHERE token = $1`, token)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

func newToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
