package domain

import "time"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

type User struct {
	UserID       string     `json:"user_id" dynamodbav:"user_id"`
	Username     string     `json:"username" dynamodbav:"username"`
	Email        string     `json:"email" dynamodbav:"email"`
	PasswordHash string     `json:"-" dynamodbav:"password_hash"`
	FirstName    string     `json:"first_name" dynamodbav:"first_name"`
	LastName     string     `json:"last_name" dynamodbav:"last_name"`
	ProfileImage string     `json:"profile_image" dynamodbav:"profile_image"`
	Bio          string     `json:"bio" dynamodbav:"bio"`
	Role         string     `json:"role" dynamodbav:"role"`
	IsVerified   bool       `json:"is_verified" dynamodbav:"is_verified"`
	Enable       bool       `json:"enable" dynamodbav:"enable"`
	LastSignIn   *time.Time `json:"last_sign_in,omitempty" dynamodbav:"last_sign_in"`
	CreatedAt    time.Time  `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" dynamodbav:"updated_at"`
}

// PublicUser is the safe projection returned by the API. The password hash
// never leaves the domain layer.
type PublicUser struct {
	UserID       string `json:"user_id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	ProfileImage string `json:"profile_image"`
	Bio          string `json:"bio"`
	IsVerified   bool   `json:"is_verified"`
}

func (u *User) Public() *PublicUser {
	return &PublicUser{
		UserID:       u.UserID,
		Username:     u.Username,
		Email:        u.Email,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		ProfileImage: u.ProfileImage,
		Bio:          u.Bio,
		IsVerified:   u.IsVerified,
	}
}

// RegisterRequest carries the fields of both registration steps. The OTP
// request step ignores OTP; the verify step requires it.
type RegisterRequest struct {
	Email           string `json:"email"`
	Username        string `json:"username"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	ProfileImage    string `json:"profile_image,omitempty"`
}

type VerifyOTPRequest struct {
	Email        string `json:"email"`
	Username     string `json:"username"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Password     string `json:"password"`
	OTP          string `json:"otp"`
	ProfileImage string `json:"profile_image,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateProfileRequest struct {
	FirstName    *string `json:"first_name"`
	LastName     *string `json:"last_name"`
	Bio          *string `json:"bio"`
	ProfileImage *string `json:"profile_image"`
}
