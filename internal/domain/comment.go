package domain

import "time"

type Comment struct {
	CommentID string    `json:"comment_id" dynamodbav:"comment_id"`
	PinID     string    `json:"pin_id" dynamodbav:"pin_id"`
	UserID    string    `json:"user_id" dynamodbav:"user_id"`
	Text      string    `json:"text" dynamodbav:"text"`
	CreatedAt time.Time `json:"created_at" dynamodbav:"created_at"`
}

type CreateCommentRequest struct {
	Text string `json:"text" validate:"required,max=1000"`
}
