package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/GioMjds/pinterest-backend/internal/domain"
	jwtinfra "github.com/GioMjds/pinterest-backend/internal/infrastructure/jwt"
)

// LoginResult carries the freshly issued token pair. The server keeps no
// session record: both tokens are self-contained signed JWTs.
type LoginResult struct {
	AccessToken  string
	RefreshToken string
	User         *domain.User
}

type Service interface {
	Login(ctx context.Context, req domain.LoginRequest) (*LoginResult, error)
	// Refresh exchanges a valid refresh token for a new access token.
	Refresh(ctx context.Context, refreshToken string) (string, error)
}

type userStore interface {
	Get(ctx context.Context, userID string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, userID string, updates map[string]interface{}) error
}

type tokenSigner interface {
	SignAccess(userID, username, role string) (string, error)
	SignRefresh(userID, username, role string) (string, error)
	VerifyRefresh(tokenStr string) (*jwtinfra.Claims, error)
}

type service struct {
	users  userStore
	tokens tokenSigner
}

func NewService(users userStore, tokens tokenSigner) Service {
	return &service{users: users, tokens: tokens}
}

func (s *service) Login(ctx context.Context, req domain.LoginRequest) (*LoginResult, error) {
	if req.Email == "" || req.Password == "" {
		return nil, fmt.Errorf("email and password are required: %w", domain.ErrBadRequest)
	}

	u, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("user not found: %w", domain.ErrNotFound)
		}
		return nil, err
	}
	if !u.Enable {
		return nil, fmt.Errorf("account disabled: %w", domain.ErrForbidden)
	}
	// bcrypt's comparison is constant-time over the hash.
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, fmt.Errorf("invalid credentials: %w", domain.ErrInvalidCredentials)
	}

	access, err := s.tokens.SignAccess(u.UserID, u.Username, u.Role)
	if err != nil {
		return nil, err
	}
	refresh, err := s.tokens.SignRefresh(u.UserID, u.Username, u.Role)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if err := s.users.Update(ctx, u.UserID, map[string]interface{}{"last_sign_in": now}); err != nil {
		slog.Warn("failed to record last sign-in", "user_id", u.UserID, "err", err)
	}
	u.LastSignIn = &now

	return &LoginResult{AccessToken: access, RefreshToken: refresh, User: u}, nil
}

func (s *service) Refresh(ctx context.Context, refreshToken string) (string, error) {
	c, err := s.tokens.VerifyRefresh(refreshToken)
	if err != nil {
		return "", fmt.Errorf("invalid or expired refresh token: %w", domain.ErrUnauthorized)
	}
	// The account may have been disabled since the refresh token was issued.
	u, err := s.users.Get(ctx, c.UserID)
	if err != nil {
		return "", fmt.Errorf("user not found: %w", domain.ErrUnauthorized)
	}
	if !u.Enable {
		return "", fmt.Errorf("account disabled: %w", domain.ErrForbidden)
	}
	return s.tokens.SignAccess(u.UserID, u.Username, u.Role)
}
