package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/time/rate"

	"github.com/GioMjds/pinterest-backend/internal/application/board"
	"github.com/GioMjds/pinterest-backend/internal/application/category"
	"github.com/GioMjds/pinterest-backend/internal/application/comment"
	"github.com/GioMjds/pinterest-backend/internal/application/pin"
	"github.com/GioMjds/pinterest-backend/internal/application/registration"
	"github.com/GioMjds/pinterest-backend/internal/application/session"
	"github.com/GioMjds/pinterest-backend/internal/application/user"
	"github.com/GioMjds/pinterest-backend/internal/config"
	"github.com/GioMjds/pinterest-backend/internal/domain"
	"github.com/GioMjds/pinterest-backend/internal/pkg/logger"
	"github.com/GioMjds/pinterest-backend/internal/pkg/validate"
	"github.com/GioMjds/pinterest-backend/internal/transport/http/handler"
	appmiddleware "github.com/GioMjds/pinterest-backend/internal/transport/http/middleware"
)

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(logger.RequestLogger(deps.Logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	authMw := appmiddleware.Auth(deps.JWTProvider)

	// 5 requests/second, burst of 10 — applied to the public auth endpoints.
	sensitiveRL := appmiddleware.NewRateLimiter(rate.Limit(5), 10)

	rules := validate.NewRules(cfg.AllowedEmailDomains)

	regSvc := registration.NewService(registration.ServiceDeps{
		UserRepo:            deps.UserRepo,
		OTPRepo:             deps.OTPRepo,
		Mailer:              deps.Mailer,
		Rules:               rules,
		OTPTTL:              cfg.OTPTTL,
		OTPMaxAttempts:      cfg.OTPMaxAttempts,
		DefaultProfileImage: cfg.DefaultProfileImage,
	})
	sessionSvc := session.NewService(deps.UserRepo, deps.JWTProvider)
	userSvc := user.NewService(deps.UserRepo, rules)
	boardSvc := board.NewService(deps.BoardRepo)
	pinSvc := pin.NewService(deps.PinRepo, deps.SaveRepo, deps.BoardRepo)
	commentSvc := comment.NewService(deps.CommentRepo, deps.PinRepo)
	categorySvc := category.NewService(deps.CategoryRepo)

	healthH := handler.NewHealthHandler()
	authH := handler.NewAuthHandler(regSvc, sessionSvc, userSvc, handler.CookieTTLs{
		Access:  cfg.AccessTokenTTL,
		Refresh: cfg.RefreshTokenTTL,
	})
	userH := handler.NewUserHandler(userSvc)
	boardH := handler.NewBoardHandler(boardSvc)
	pinH := handler.NewPinHandler(pinSvc)
	commentH := handler.NewCommentHandler(commentSvc)
	categoryH := handler.NewCategoryHandler(categorySvc)

	r.Route("/v1", func(r chi.Router) {
		// ── Public routes (no auth) ──────────────────────────────────────────
		r.Get("/health-check/ping", healthH.Ping)
		r.With(sensitiveRL.Limit).Post("/auth/register", authH.Register)
		r.With(sensitiveRL.Limit).Post("/auth/verify_otp", authH.VerifyOTP)
		r.With(sensitiveRL.Limit).Post("/auth/login", authH.Login)
		r.Post("/auth/refresh", authH.Refresh)
		r.Get("/categories", categoryH.List)
		r.Get("/categories/{id}", categoryH.Get)

		// ── Authenticated routes ─────────────────────────────────────────────
		r.Group(func(r chi.Router) {
			r.Use(authMw)

			r.Get("/auth/me", authH.Me)
			r.Post("/auth/logout", authH.Logout)

			r.Get("/users/me", authH.Me)
			r.Put("/users/me", userH.UpdateMe)
			r.Get("/users/{id}", userH.Get)

			r.Post("/boards", boardH.Create)
			r.Get("/boards", boardH.ListOwn)
			r.Get("/boards/{id}", boardH.Get)
			r.Put("/boards/{id}", boardH.Update)
			r.Delete("/boards/{id}", boardH.Delete)
			r.Get("/boards/{id}/pins", pinH.ListByBoard)

			r.Get("/pins", pinH.Feed)
			r.Post("/pins", pinH.Create)
			r.Get("/pins/saved", pinH.ListSaved)
			r.Get("/pins/{id}", pinH.Get)
			r.Delete("/pins/{id}", pinH.Delete)
			r.Post("/pins/{id}/save", pinH.Save)
			r.Delete("/pins/{id}/save", pinH.Unsave)
			r.Get("/pins/{id}/comments", commentH.ListByPin)
			r.Post("/pins/{id}/comments", commentH.Create)
			r.Delete("/comments/{id}", commentH.Delete)

			// Admin-only routes
			r.Group(func(r chi.Router) {
				r.Use(appmiddleware.RequireRole(domain.RoleAdmin))

				r.Post("/categories", categoryH.Create)
				r.Put("/categories/{id}", categoryH.Update)
				r.Delete("/categories/{id}", categoryH.Delete)
			})
		})
	})

	return r
}
