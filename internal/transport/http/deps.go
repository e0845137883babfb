package http

import (
	"log/slog"

	"github.com/GioMjds/pinterest-backend/internal/infrastructure/dynamo"
	jwtinfra "github.com/GioMjds/pinterest-backend/internal/infrastructure/jwt"
	"github.com/GioMjds/pinterest-backend/internal/infrastructure/smtp"
)

// Deps holds all infrastructure dependencies for the router.
type Deps struct {
	UserRepo     *dynamo.UserRepo
	OTPRepo      *dynamo.OTPRepo
	BoardRepo    *dynamo.BoardRepo
	PinRepo      *dynamo.PinRepo
	SaveRepo     *dynamo.SaveRepo
	CommentRepo  *dynamo.CommentRepo
	CategoryRepo *dynamo.CategoryRepo
	Mailer       smtp.Mailer
	JWTProvider  *jwtinfra.Provider
	Logger       *slog.Logger
}
