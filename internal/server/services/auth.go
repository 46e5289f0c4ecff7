// Package services contains server-side business logic. This file implements
// AuthService, which verifies credentials and issues/validates the session
// tokens that gate destructive operations.
package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/okarpov/datafreezer/internal/common"
	"github.com/okarpov/datafreezer/internal/server/auth"
	"github.com/okarpov/datafreezer/internal/server/config"
	"github.com/okarpov/datafreezer/internal/server/repositories/repomanager"
)

// dummyPasswordHash is a bcrypt hash compared against when the username does
// not exist, so a missing account costs the same as a wrong password.
var dummyPasswordHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

// Session is an issued session token with its expiration instant.
type Session struct {
	Token     string
	ExpiresAt time.Time
}

// AuthService provides authentication-related operations:
// - Login: verify credentials and mint a session token
// - ValidateToken: resolve a presented token back to its owner
type AuthService struct {
	db                           *sql.DB
	repomanager                  repomanager.RepositoryManager
	jwtSecret                    []byte
	sessionTokenValidityDuration time.Duration
}

// NewAuthService constructs an AuthService using repositories and server config.
func NewAuthService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *AuthService {
	return &AuthService{
		db:                           db,
		repomanager:                  m,
		jwtSecret:                    []byte(cfg.SecretKey),
		sessionTokenValidityDuration: cfg.SessionTokenValidityDuration,
	}
}

// Login verifies the password against the stored bcrypt hash and, on success,
// mints a session token and persists it. Both an unknown username and a wrong
// password yield common.ErrorUnauthorized, so callers cannot probe for
// account existence.
func (s *AuthService) Login(ctx context.Context, userName string, password string) (*Session, error) {
	repo := s.repomanager.Users(s.db)
	user, err := repo.GetUserByLogin(ctx, userName)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			_ = bcrypt.CompareHashAndPassword(dummyPasswordHash, []byte(password))
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}

	if bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)) != nil {
		return nil, common.ErrorUnauthorized
	}

	token, expiresAt, err := auth.GenerateToken(user.UserName, s.jwtSecret, s.sessionTokenValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}

	if err := s.repomanager.Sessions(s.db).Create(ctx, user.UserName, token, expiresAt); err != nil {
		return nil, common.ErrorInternal
	}

	return &Session{Token: token, ExpiresAt: expiresAt}, nil
}

// ValidateToken resolves a presented session token to its owning username.
// The signature and expiry are checked first, then the token must match a
// persisted session row whose expiration has not passed. Expired tokens are
// rejected with common.ErrTokenExpired; the row itself is kept.
func (s *AuthService) ValidateToken(ctx context.Context, token string) (string, error) {
	userName, err := auth.GetUsernameFromToken(token, s.jwtSecret)
	if err != nil {
		return "", err
	}

	session, err := s.repomanager.Sessions(s.db).Find(ctx, token)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrInvalidToken
		}
		return "", common.ErrorInternal
	}

	if session.UserName != userName {
		return "", common.ErrInvalidToken
	}
	if time.Now().After(session.ExpiresAt) {
		return "", common.ErrTokenExpired
	}

	return userName, nil
}
