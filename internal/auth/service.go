package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/regdesk/regdesk/internal/config"
)

// ErrInvalidCredentials is returned when the submitted pair does not match the admin account.
var ErrInvalidCredentials = errors.New("invalid username or password")

// Credentials is a login attempt.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Token is the result of a successful login.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
	SessionID   string `json:"session_id"`
}

// Service verifies admin credentials and manages session lifecycles.
type Service struct {
	username     string
	passwordHash []byte
	ttl          time.Duration
	sessions     SessionStore
	tokens       *TokenIssuer
	now          func() time.Time
}

// NewService builds the login gate from configuration. A plain ADMIN_PASSWORD
// is hashed once here; ADMIN_PASSWORD_HASH wins when both are set.
func NewService(cfg config.Config, sessions SessionStore) (*Service, error) {
	hash := []byte(cfg.AdminPasswordHash)
	if len(hash) == 0 {
		if cfg.AdminPassword == "" {
			return nil, errors.New("admin password is not configured")
		}
		var err error
		hash, err = bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash admin password: %w", err)
		}
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("jwt secret is not configured")
	}
	ttl := cfg.SessionTTL
	if ttl <= 0 {
		ttl = 8 * time.Hour
	}
	return &Service{
		username:     cfg.AdminUsername,
		passwordHash: hash,
		ttl:          ttl,
		sessions:     sessions,
		tokens:       NewTokenIssuer(cfg.JWTSecret),
		now:          time.Now,
	}, nil
}

// Login checks the credentials and opens a new session.
func (s *Service) Login(ctx context.Context, creds Credentials) (Token, Session, error) {
	userOK := subtle.ConstantTimeCompare([]byte(creds.Username), []byte(s.username)) == 1
	passErr := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(creds.Password))
	if !userOK || passErr != nil {
		return Token{}, Session{}, ErrInvalidCredentials
	}

	now := s.now().UTC()
	session := Session{
		ID:        uuid.NewString(),
		Username:  s.username,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return Token{}, Session{}, err
	}
	signed, err := s.tokens.Sign(session)
	if err != nil {
		_ = s.sessions.Delete(ctx, session.ID)
		return Token{}, Session{}, err
	}
	return Token{
		AccessToken: signed,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn(session, now),
		SessionID:   session.ID,
	}, session, nil
}

// Authenticate resolves a bearer token to a live session.
func (s *Service) Authenticate(ctx context.Context, token string) (Session, error) {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return Session{}, err
	}
	session, err := s.sessions.Get(ctx, claims.ID)
	if err != nil {
		return Session{}, err
	}
	if !s.now().Before(session.ExpiresAt) {
		_ = s.sessions.Delete(ctx, session.ID)
		return Session{}, ErrSessionNotFound
	}
	return session, nil
}

// Logout ends the session.
func (s *Service) Logout(ctx context.Context, sessionID string) error {
	return s.sessions.Delete(ctx, sessionID)
}
