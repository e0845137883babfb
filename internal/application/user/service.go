package user

import (
	"context"
	"fmt"

	"github.com/GioMjds/pinterest-backend/internal/domain"
	"github.com/GioMjds/pinterest-backend/internal/pkg/validate"
)

// DynamoDB attribute names used in partial update maps.
const (
	fieldFirstName    = "first_name"
	fieldLastName     = "last_name"
	fieldBio          = "bio"
	fieldProfileImage = "profile_image"
)

type Service interface {
	Get(ctx context.Context, userID string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID string, req domain.UpdateProfileRequest) (*domain.User, error)
}

type userStore interface {
	Get(ctx context.Context, userID string) (*domain.User, error)
	Update(ctx context.Context, userID string, updates map[string]interface{}) error
}

type service struct {
	repo  userStore
	rules *validate.Rules
}

func NewService(repo userStore, rules *validate.Rules) Service {
	return &service{repo: repo, rules: rules}
}

func (s *service) Get(ctx context.Context, userID string) (*domain.User, error) {
	return s.repo.Get(ctx, userID)
}

func (s *service) UpdateProfile(ctx context.Context, userID string, req domain.UpdateProfileRequest) (*domain.User, error) {
	updates := map[string]interface{}{}
	var fields []domain.FieldError
	if req.FirstName != nil {
		if fe := s.rules.Name(fieldFirstName, validate.CodeInvalidFirstName, *req.FirstName); fe != nil {
			fields = append(fields, *fe)
		} else {
			updates[fieldFirstName] = *req.FirstName
		}
	}
	if req.LastName != nil {
		if fe := s.rules.Name(fieldLastName, validate.CodeInvalidLastName, *req.LastName); fe != nil {
			fields = append(fields, *fe)
		} else {
			updates[fieldLastName] = *req.LastName
		}
	}
	if len(fields) > 0 {
		return nil, &domain.ValidationError{Fields: fields}
	}
	if req.Bio != nil {
		updates[fieldBio] = *req.Bio
	}
	if req.ProfileImage != nil {
		if *req.ProfileImage == "" {
			return nil, fmt.Errorf("profile_image cannot be empty: %w", domain.ErrBadRequest)
		}
		updates[fieldProfileImage] = *req.ProfileImage
	}
	if len(updates) == 0 {
		return s.repo.Get(ctx, userID)
	}
	if err := s.repo.Update(ctx, userID, updates); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, userID)
}
