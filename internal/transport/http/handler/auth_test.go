package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/GioMjds/pinterest-backend/internal/application/session"
	"github.com/GioMjds/pinterest-backend/internal/domain"
	jwtinfra "github.com/GioMjds/pinterest-backend/internal/infrastructure/jwt"
	"github.com/GioMjds/pinterest-backend/internal/transport/http/middleware"
)

// --- mocks ---

type mockRegService struct{ mock.Mock }

func (m *mockRegService) RequestOTP(ctx context.Context, req domain.RegisterRequest) error {
	return m.Called(ctx, req).Error(0)
}
func (m *mockRegService) VerifyOTP(ctx context.Context, req domain.VerifyOTPRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if u, _ := args.Get(0).(*domain.User); u != nil {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockSessionService struct{ mock.Mock }

func (m *mockSessionService) Login(ctx context.Context, req domain.LoginRequest) (*session.LoginResult, error) {
	args := m.Called(ctx, req)
	if r, _ := args.Get(0).(*session.LoginResult); r != nil {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockSessionService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	args := m.Called(ctx, refreshToken)
	return args.String(0), args.Error(1)
}

type mockUserService struct{ mock.Mock }

func (m *mockUserService) Get(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if u, _ := args.Get(0).(*domain.User); u != nil {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockUserService) UpdateProfile(ctx context.Context, userID string, req domain.UpdateProfileRequest) (*domain.User, error) {
	args := m.Called(ctx, userID, req)
	if u, _ := args.Get(0).(*domain.User); u != nil {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func newAuthHandler(reg *mockRegService, ss *mockSessionService, us *mockUserService) *AuthHandler {
	return NewAuthHandler(reg, ss, us, CookieTTLs{
		Access:  30 * 24 * time.Hour,
		Refresh: 54 * 7 * 24 * time.Hour,
	})
}

func cookieByName(t *testing.T, rr *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	for _, c := range rr.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// --- Register ---

func TestRegister_InvalidBody(t *testing.T) {
	h := newAuthHandler(&mockRegService{}, nil, nil)
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/register", strings.NewReader("{not json"))
	rr := httptest.NewRecorder()
	h.Register(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestRegister_NeverEchoesOTP(t *testing.T) {
	reg := &mockRegService{}
	reg.On("RequestOTP", mock.Anything, mock.AnythingOfType("domain.RegisterRequest")).Return(nil)

	h := newAuthHandler(reg, nil, nil)
	body := `{"email":"jane@gmail.com","username":"jane_doe","first_name":"Jane","last_name":"Doe","password":"Secret1!","confirm_password":"Secret1!"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/register", strings.NewReader(body))
	rr := httptest.NewRecorder()
	h.Register(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.NotContains(t, rr.Body.String(), "otp")
	assert.Contains(t, rr.Body.String(), "OTP sent to email")
}

func TestRegister_ValidationErrorCarriesFields(t *testing.T) {
	reg := &mockRegService{}
	reg.On("RequestOTP", mock.Anything, mock.Anything).Return(&domain.ValidationError{
		Fields: []domain.FieldError{{Field: "email", Code: "invalid_domain", Message: "Invalid email domain."}},
	})

	h := newAuthHandler(reg, nil, nil)
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/register", strings.NewReader(`{}`))
	rr := httptest.NewRecorder()
	h.Register(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "invalid_domain")
}

func TestRegister_RateLimited(t *testing.T) {
	reg := &mockRegService{}
	reg.On("RequestOTP", mock.Anything, mock.Anything).Return(domain.ErrRateLimited)

	h := newAuthHandler(reg, nil, nil)
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/register", strings.NewReader(`{}`))
	rr := httptest.NewRecorder()
	h.Register(rr, req)
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
}

// --- VerifyOTP ---

func TestVerifyOTP_InvalidCode(t *testing.T) {
	reg := &mockRegService{}
	reg.On("VerifyOTP", mock.Anything, mock.Anything).Return(nil, domain.ErrInvalidOTP)

	h := newAuthHandler(reg, nil, nil)
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/verify_otp", strings.NewReader(`{"otp":"000000"}`))
	rr := httptest.NewRecorder()
	h.VerifyOTP(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestVerifyOTP_CreatesAccountAndSignsIn(t *testing.T) {
	reg := &mockRegService{}
	ss := &mockSessionService{}
	u := &domain.User{UserID: "u1", Username: "jane_doe", Email: "jane@gmail.com", IsVerified: true}
	reg.On("VerifyOTP", mock.Anything, mock.Anything).Return(u, nil)
	ss.On("Login", mock.Anything, mock.Anything).Return(&session.LoginResult{
		AccessToken: "at", RefreshToken: "rt", User: u,
	}, nil)

	h := newAuthHandler(reg, ss, nil)
	body := `{"email":"jane@gmail.com","username":"jane_doe","first_name":"Jane","last_name":"Doe","password":"Secret1!","otp":"123456"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/verify_otp", strings.NewReader(body))
	rr := httptest.NewRecorder()
	h.VerifyOTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	require.NotNil(t, cookieByName(t, rr, "access_token"))
	require.NotNil(t, cookieByName(t, rr, "refresh_token"))
	// The password hash must never reach the wire.
	assert.NotContains(t, rr.Body.String(), "password")
}

// --- Login ---

func TestLogin_SetsAuthCookies(t *testing.T) {
	ss := &mockSessionService{}
	u := &domain.User{UserID: "u1", Username: "jane_doe", Email: "jane@gmail.com"}
	ss.On("Login", mock.Anything, domain.LoginRequest{Email: "jane@gmail.com", Password: "Secret1!"}).
		Return(&session.LoginResult{AccessToken: "signed-access", RefreshToken: "signed-refresh", User: u}, nil)

	h := newAuthHandler(nil, ss, nil)
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/login",
		strings.NewReader(`{"email":"jane@gmail.com","password":"Secret1!"}`))
	rr := httptest.NewRecorder()
	h.Login(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	access := cookieByName(t, rr, "access_token")
	require.NotNil(t, access)
	assert.Equal(t, "signed-access", access.Value)
	assert.True(t, access.HttpOnly)
	assert.True(t, access.Secure)
	assert.Equal(t, http.SameSiteLaxMode, access.SameSite)
	assert.Equal(t, int((30 * 24 * time.Hour).Seconds()), access.MaxAge)

	refresh := cookieByName(t, rr, "refresh_token")
	require.NotNil(t, refresh)
	assert.Equal(t, "signed-refresh", refresh.Value)
	assert.True(t, refresh.HttpOnly)
	assert.Equal(t, int((54 * 7 * 24 * time.Hour).Seconds()), refresh.MaxAge)
}

func TestLogin_WrongCredentials(t *testing.T) {
	ss := &mockSessionService{}
	ss.On("Login", mock.Anything, mock.Anything).Return(nil, domain.ErrInvalidCredentials)

	h := newAuthHandler(nil, ss, nil)
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/login",
		strings.NewReader(`{"email":"jane@gmail.com","password":"nope"}`))
	rr := httptest.NewRecorder()
	h.Login(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Empty(t, rr.Result().Cookies())
}

// --- Logout ---

func TestLogout_ClearsCookies(t *testing.T) {
	h := newAuthHandler(nil, nil, nil)
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/logout", nil)
	rr := httptest.NewRecorder()
	h.Logout(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	access := cookieByName(t, rr, "access_token")
	require.NotNil(t, access)
	assert.Empty(t, access.Value)
	assert.Negative(t, access.MaxAge)

	refresh := cookieByName(t, rr, "refresh_token")
	require.NotNil(t, refresh)
	assert.Negative(t, refresh.MaxAge)
}

// --- Refresh ---

func TestRefresh_MissingCookie(t *testing.T) {
	h := newAuthHandler(nil, &mockSessionService{}, nil)
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/refresh", nil)
	rr := httptest.NewRecorder()
	h.Refresh(rr, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestRefresh_IssuesNewAccessCookie(t *testing.T) {
	ss := &mockSessionService{}
	ss.On("Refresh", mock.Anything, "the-refresh-token").Return("fresh-access", nil)

	h := newAuthHandler(nil, ss, nil)
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/refresh", nil)
	req.AddCookie(&http.Cookie{Name: "refresh_token", Value: "the-refresh-token"})
	rr := httptest.NewRecorder()
	h.Refresh(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	access := cookieByName(t, rr, "access_token")
	require.NotNil(t, access)
	assert.Equal(t, "fresh-access", access.Value)
}

// --- Me ---

func TestMe_NoClaims(t *testing.T) {
	h := newAuthHandler(nil, nil, &mockUserService{})
	req := httptest.NewRequest(http.MethodGet, "/v1/auth/me", nil)
	rr := httptest.NewRecorder()
	h.Me(rr, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestMe_ReturnsOwnProfile(t *testing.T) {
	us := &mockUserService{}
	us.On("Get", mock.Anything, "u1").Return(&domain.User{
		UserID: "u1", Username: "jane_doe", Email: "jane@gmail.com", PasswordHash: "secret-hash",
	}, nil)

	claims := &jwtinfra.Claims{UserID: "u1"}
	ctx := context.WithValue(context.Background(), middleware.ClaimsKey, claims)
	req := httptest.NewRequest(http.MethodGet, "/v1/auth/me", nil).WithContext(ctx)
	rr := httptest.NewRecorder()

	h := newAuthHandler(nil, nil, us)
	h.Me(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "jane_doe")
	assert.NotContains(t, rr.Body.String(), "secret-hash")
}
