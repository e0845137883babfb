package domain

import "time"

type Board struct {
	BoardID     string    `json:"board_id" dynamodbav:"board_id"`
	UserID      string    `json:"user_id" dynamodbav:"user_id"`
	Title       string    `json:"title" dynamodbav:"title"`
	Description string    `json:"description" dynamodbav:"description"`
	CoverImage  string    `json:"cover_image" dynamodbav:"cover_image"`
	IsPrivate   bool      `json:"is_private" dynamodbav:"is_private"`
	ColorTheme  string    `json:"color_theme" dynamodbav:"color_theme"`
	PinCount    int       `json:"pin_count" dynamodbav:"pin_count"`
	Enable      bool      `json:"enable" dynamodbav:"enable"`
	CreatedAt   time.Time `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" dynamodbav:"updated_at"`
}

type CreateBoardRequest struct {
	Title       string `json:"title" validate:"required,max=100"`
	Description string `json:"description"`
	CoverImage  string `json:"cover_image"`
	IsPrivate   bool   `json:"is_private"`
	ColorTheme  string `json:"color_theme"`
}

type UpdateBoardRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	CoverImage  *string `json:"cover_image"`
	IsPrivate   *bool   `json:"is_private"`
	ColorTheme  *string `json:"color_theme"`
}
