package domain

import "time"

// Names of the denormalized counter attributes on a pin. Shared by every
// writer that adjusts them so the attribute names cannot drift apart.
const (
	CounterSaves    = "save_count"
	CounterComments = "comment_count"
)

type Pin struct {
	PinID       string    `json:"pin_id" dynamodbav:"pin_id"`
	UserID      string    `json:"user_id" dynamodbav:"user_id"`
	BoardID     string    `json:"board_id" dynamodbav:"board_id"`
	CategoryID  string    `json:"category_id,omitempty" dynamodbav:"category_id"`
	Title       string    `json:"title" dynamodbav:"title"`
	Description string    `json:"description" dynamodbav:"description"`
	ImageURL    string    `json:"image_url" dynamodbav:"image_url"`
	OriginalURL string    `json:"original_url,omitempty" dynamodbav:"original_url"`
	// Image dimensions drive the mobile masonry layout.
	Width         int       `json:"width,omitempty" dynamodbav:"width"`
	Height        int       `json:"height,omitempty" dynamodbav:"height"`
	DominantColor string    `json:"dominant_color,omitempty" dynamodbav:"dominant_color"`
	SaveCount     int       `json:"save_count" dynamodbav:"save_count"`
	CommentCount  int       `json:"comment_count" dynamodbav:"comment_count"`
	Enable        bool      `json:"enable" dynamodbav:"enable"`
	CreatedAt     time.Time `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" dynamodbav:"updated_at"`
}

// PinSave records a pin saved to one of a user's boards.
// PK: user_id, SK: pin_id — one save per (user, pin).
type PinSave struct {
	UserID    string    `json:"user_id" dynamodbav:"user_id"`
	PinID     string    `json:"pin_id" dynamodbav:"pin_id"`
	BoardID   string    `json:"board_id" dynamodbav:"board_id"`
	CreatedAt time.Time `json:"created_at" dynamodbav:"created_at"`
}

type CreatePinRequest struct {
	BoardID       string `json:"board_id" validate:"required"`
	CategoryID    string `json:"category_id"`
	Title         string `json:"title" validate:"max=200"`
	Description   string `json:"description"`
	ImageURL      string `json:"image_url" validate:"required,url,max=500"`
	OriginalURL   string `json:"original_url" validate:"omitempty,url,max=500"`
	Width         int    `json:"width"`
	Height        int    `json:"height"`
	DominantColor string `json:"dominant_color"`
}

type SavePinRequest struct {
	BoardID string `json:"board_id" validate:"required"`
}
