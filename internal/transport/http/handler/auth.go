package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/GioMjds/pinterest-backend/internal/application/registration"
	"github.com/GioMjds/pinterest-backend/internal/application/session"
	"github.com/GioMjds/pinterest-backend/internal/application/user"
	"github.com/GioMjds/pinterest-backend/internal/domain"
	"github.com/GioMjds/pinterest-backend/internal/transport/http/middleware"
)

const (
	accessCookie  = middleware.AccessCookie
	refreshCookie = "refresh_token"
)

// CookieTTLs configures the lifetimes of the auth cookies. They match the
// corresponding token expiries so a cookie never outlives its token.
type CookieTTLs struct {
	Access  time.Duration
	Refresh time.Duration
}

// AuthEnvelope wraps registration and login responses.
type AuthEnvelope struct {
	User    *domain.PublicUser `json:"user,omitempty"`
	Message string             `json:"message,omitempty"`
}

// AuthHandler handles registration, login, logout and token refresh.
type AuthHandler struct {
	reg      registration.Service
	sessions session.Service
	users    user.Service
	ttls     CookieTTLs
}

func NewAuthHandler(reg registration.Service, sessions session.Service, users user.Service, ttls CookieTTLs) *AuthHandler {
	return &AuthHandler{reg: reg, sessions: sessions, users: users, ttls: ttls}
}

// Register validates the submitted fields and emails a one-time code.
// The code travels only by email, never in the response body.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req domain.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.reg.RequestOTP(r.Context(), req); err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "OTP sent to email"})
}

// VerifyOTP creates the account and signs the new user in, setting the same
// cookies as a login.
func (h *AuthHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req domain.VerifyOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	u, err := h.reg.VerifyOTP(r.Context(), req)
	if err != nil {
		httpError(w, err)
		return
	}
	res, err := h.sessions.Login(r.Context(), domain.LoginRequest{Email: req.Email, Password: req.Password})
	if err != nil {
		// The account exists; the client can still log in normally.
		writeJSON(w, http.StatusCreated, AuthEnvelope{User: u.Public(), Message: "account created"})
		return
	}
	h.setAuthCookies(w, res.AccessToken, res.RefreshToken)
	writeJSON(w, http.StatusCreated, AuthEnvelope{User: res.User.Public(), Message: "account created"})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	res, err := h.sessions.Login(r.Context(), req)
	if err != nil {
		httpError(w, err)
		return
	}
	h.setAuthCookies(w, res.AccessToken, res.RefreshToken)
	writeJSON(w, http.StatusOK, AuthEnvelope{User: res.User.Public(), Message: "logged in"})
}

// Logout clears both auth cookies. It sits behind the auth middleware, so an
// unauthenticated call is rejected before reaching here.
func (h *AuthHandler) Logout(w http.ResponseWriter, _ *http.Request) {
	clearCookie(w, accessCookie)
	clearCookie(w, refreshCookie)
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "logged out"})
}

// Refresh exchanges the refresh_token cookie for a fresh access cookie.
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	c, err := r.Cookie(refreshCookie)
	if err != nil || c.Value == "" {
		writeError(w, http.StatusUnauthorized, "missing refresh token")
		return
	}
	access, err := h.sessions.Refresh(r.Context(), c.Value)
	if err != nil {
		httpError(w, err)
		return
	}
	setCookie(w, accessCookie, access, h.ttls.Access)
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "token refreshed"})
}

// Me returns the authenticated user's own profile.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	u, err := h.users.Get(r.Context(), claims.UserID)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, u.Public())
}

func (h *AuthHandler) setAuthCookies(w http.ResponseWriter, access, refresh string) {
	setCookie(w, accessCookie, access, h.ttls.Access)
	setCookie(w, refreshCookie, refresh, h.ttls.Refresh)
}

func setCookie(w http.ResponseWriter, name, value string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearCookie(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})
}
