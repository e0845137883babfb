package domain

import "time"

// Category is an admin-curated pin category.
type Category struct {
	CategoryID string    `json:"category_id" dynamodbav:"category_id"`
	Name       string    `json:"name" dynamodbav:"name"`
	Slug       string    `json:"slug" dynamodbav:"slug"`
	Icon       string    `json:"icon,omitempty" dynamodbav:"icon"`
	IsActive   bool      `json:"is_active" dynamodbav:"is_active"`
	CreatedAt  time.Time `json:"created_at" dynamodbav:"created_at"`
}

type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,max=100"`
	Slug string `json:"slug" validate:"required,max=100"`
	Icon string `json:"icon"`
}

type UpdateCategoryRequest struct {
	Name     *string `json:"name"`
	Icon     *string `json:"icon"`
	IsActive *bool   `json:"is_active"`
}
