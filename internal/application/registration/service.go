package registration

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/GioMjds/pinterest-backend/internal/domain"
	"github.com/GioMjds/pinterest-backend/internal/pkg/id"
	"github.com/GioMjds/pinterest-backend/internal/pkg/validate"
)

const otpDigits = 6

type Service interface {
	// RequestOTP validates the registration fields, checks uniqueness, and
	// emails a one-time code. The code is never part of the return value.
	RequestOTP(ctx context.Context, req domain.RegisterRequest) error
	// VerifyOTP checks the submitted code and, on success, creates the
	// verified account and consumes the code.
	VerifyOTP(ctx context.Context, req domain.VerifyOTPRequest) (*domain.User, error)
}

type userStore interface {
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, u *domain.User) error
}

type otpStore interface {
	PutIfAbsent(ctx context.Context, e *domain.OTPEntry) error
	Get(ctx context.Context, purpose, email string) (*domain.OTPEntry, error)
	IncrementAttempts(ctx context.Context, purpose, email string) (int, error)
	Delete(ctx context.Context, purpose, email string) error
}

type otpMailer interface {
	SendOTP(to, purposeLabel, code string) error
}

type service struct {
	users        userStore
	otps         otpStore
	mailer       otpMailer
	rules        *validate.Rules
	otpTTL       time.Duration
	maxAttempts  int
	defaultImage string
	now          func() time.Time
}

type ServiceDeps struct {
	UserRepo            userStore
	OTPRepo             otpStore
	Mailer              otpMailer
	Rules               *validate.Rules
	OTPTTL              time.Duration
	OTPMaxAttempts      int
	DefaultProfileImage string
}

func NewService(deps ServiceDeps) Service {
	return &service{
		users:        deps.UserRepo,
		otps:         deps.OTPRepo,
		mailer:       deps.Mailer,
		rules:        deps.Rules,
		otpTTL:       deps.OTPTTL,
		maxAttempts:  deps.OTPMaxAttempts,
		defaultImage: deps.DefaultProfileImage,
		now:          time.Now,
	}
}

func (s *service) RequestOTP(ctx context.Context, req domain.RegisterRequest) error {
	// All field rules run before any store access, and every failure is
	// reported together.
	if err := s.rules.Registration(&req); err != nil {
		return err
	}

	if taken, err := s.users.ExistsByUsername(ctx, req.Username); err != nil {
		return err
	} else if taken {
		return fmt.Errorf("username already taken: %w", domain.ErrConflict)
	}
	if taken, err := s.users.ExistsByEmail(ctx, req.Email); err != nil {
		return err
	} else if taken {
		return fmt.Errorf("email already registered: %w", domain.ErrConflict)
	}

	code, err := generateCode(otpDigits)
	if err != nil {
		return err
	}
	entry := &domain.OTPEntry{
		Email:     req.Email,
		Purpose:   domain.PurposeAccountActivation,
		Code:      code,
		ExpiresAt: s.now().Add(s.otpTTL).Unix(),
	}
	// The conditional put is the rate limit: one live code per (purpose, email).
	if err := s.otps.PutIfAbsent(ctx, entry); err != nil {
		return err
	}

	if err := s.mailer.SendOTP(req.Email, "Account Activation", code); err != nil {
		// Roll the entry back so the user can retry immediately instead of
		// waiting out the TTL for a code that was never delivered.
		if delErr := s.otps.Delete(ctx, entry.Purpose, entry.Email); delErr != nil {
			slog.Warn("failed to roll back undelivered OTP", "email", req.Email, "err", delErr)
		}
		return fmt.Errorf("failed to send OTP: %w", domain.ErrNotificationFailed)
	}
	return nil
}

func (s *service) VerifyOTP(ctx context.Context, req domain.VerifyOTPRequest) (*domain.User, error) {
	if err := requireVerifyFields(&req); err != nil {
		return nil, err
	}

	if err := s.checkCode(ctx, req.Email, req.OTP); err != nil {
		return nil, err
	}

	// Re-check uniqueness: another request may have claimed the username or
	// email between issuance and verification. These reads fail the common
	// case early with a precise message; the create itself claims both
	// atomically, so a race slipping past them still cannot duplicate an
	// account.
	if taken, err := s.users.ExistsByEmail(ctx, req.Email); err != nil {
		return nil, err
	} else if taken {
		return nil, fmt.Errorf("email already registered: %w", domain.ErrConflict)
	}
	if taken, err := s.users.ExistsByUsername(ctx, req.Username); err != nil {
		return nil, err
	} else if taken {
		return nil, fmt.Errorf("username already taken: %w", domain.ErrConflict)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	profileImage := req.ProfileImage
	if profileImage == "" {
		profileImage = s.defaultImage
	}
	now := s.now().UTC()
	u := &domain.User{
		UserID:       id.New(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		ProfileImage: profileImage,
		Role:         domain.RoleUser,
		IsVerified:   true,
		Enable:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}

	if err := s.otps.Delete(ctx, domain.PurposeAccountActivation, req.Email); err != nil {
		slog.Warn("failed to delete consumed OTP", "email", req.Email, "err", err)
	}
	return u, nil
}

// checkCode treats not-found, expired, over-limit and mismatched codes
// identically so a caller learns nothing about which case occurred.
func (s *service) checkCode(ctx context.Context, email, code string) error {
	entry, err := s.otps.Get(ctx, domain.PurposeAccountActivation, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrInvalidOTP
		}
		return err
	}
	if entry.ExpiresAt < s.now().Unix() {
		return domain.ErrInvalidOTP
	}
	if entry.Attempts >= s.maxAttempts {
		return domain.ErrInvalidOTP
	}
	if entry.Code != code {
		if _, err := s.otps.IncrementAttempts(ctx, domain.PurposeAccountActivation, email); err != nil {
			slog.Warn("failed to increment OTP attempts", "email", email, "err", err)
		}
		return domain.ErrInvalidOTP
	}
	return nil
}

func requireVerifyFields(req *domain.VerifyOTPRequest) error {
	var fields []domain.FieldError
	require := func(name, value string) {
		if value == "" {
			fields = append(fields, domain.FieldError{
				Field: name, Code: validate.CodeRequired, Message: name + " is required.",
			})
		}
	}
	require("email", req.Email)
	require("username", req.Username)
	require("first_name", req.FirstName)
	require("last_name", req.LastName)
	require("password", req.Password)
	require("otp", req.OTP)
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// generateCode produces an n-digit numeric code from crypto/rand.
func generateCode(n int) (string, error) {
	max := big.NewInt(1)
	for i := 0; i < n; i++ {
		max.Mul(max, big.NewInt(10))
	}
	v, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", fmt.Errorf("generate otp: %w", err)
	}
	return fmt.Sprintf("%0*d", n, v), nil
}
