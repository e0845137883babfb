package category

import (
	"context"
	"fmt"
	"time"

	"github.com/GioMjds/pinterest-backend/internal/domain"
	"github.com/GioMjds/pinterest-backend/internal/pkg/id"
	"github.com/GioMjds/pinterest-backend/internal/pkg/validate"
)

type Service interface {
	List(ctx context.Context) ([]domain.Category, error)
	Get(ctx context.Context, categoryID string) (*domain.Category, error)
	Create(ctx context.Context, req domain.CreateCategoryRequest) (*domain.Category, error)
	Update(ctx context.Context, categoryID string, req domain.UpdateCategoryRequest) (*domain.Category, error)
	Delete(ctx context.Context, categoryID string) error
}

type categoryStore interface {
	Scan(ctx context.Context) ([]domain.Category, error)
	Get(ctx context.Context, categoryID string) (*domain.Category, error)
	Put(ctx context.Context, c *domain.Category) error
	Update(ctx context.Context, categoryID string, updates map[string]interface{}) error
	HardDelete(ctx context.Context, categoryID string) error
}

type service struct {
	repo categoryStore
}

func NewService(repo categoryStore) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]domain.Category, error) {
	all, err := s.repo.Scan(ctx)
	if err != nil {
		return nil, err
	}
	active := make([]domain.Category, 0, len(all))
	for _, c := range all {
		if c.IsActive {
			active = append(active, c)
		}
	}
	return active, nil
}

func (s *service) Get(ctx context.Context, categoryID string) (*domain.Category, error) {
	c, err := s.repo.Get(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if !c.IsActive {
		return nil, fmt.Errorf("category not found: %w", domain.ErrNotFound)
	}
	return c, nil
}

func (s *service) Create(ctx context.Context, req domain.CreateCategoryRequest) (*domain.Category, error) {
	if err := validate.Struct(&req); err != nil {
		return nil, fmt.Errorf("%s: %w", err.Error(), domain.ErrBadRequest)
	}
	// Slugs index the category list on the client; duplicates would shadow
	// each other.
	existing, err := s.repo.Scan(ctx)
	if err != nil {
		return nil, err
	}
	for _, c := range existing {
		if c.Slug == req.Slug {
			return nil, fmt.Errorf("slug already in use: %w", domain.ErrConflict)
		}
	}
	c := &domain.Category{
		CategoryID: id.New(),
		Name:       req.Name,
		Slug:       req.Slug,
		Icon:       req.Icon,
		IsActive:   true,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.repo.Put(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) Update(ctx context.Context, categoryID string, req domain.UpdateCategoryRequest) (*domain.Category, error) {
	if _, err := s.repo.Get(ctx, categoryID); err != nil {
		return nil, err
	}
	updates := map[string]interface{}{}
	if req.Name != nil {
		if *req.Name == "" {
			return nil, fmt.Errorf("name cannot be empty: %w", domain.ErrBadRequest)
		}
		updates["name"] = *req.Name
	}
	if req.Icon != nil {
		updates["icon"] = *req.Icon
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if len(updates) > 0 {
		if err := s.repo.Update(ctx, categoryID, updates); err != nil {
			return nil, err
		}
	}
	return s.repo.Get(ctx, categoryID)
}

func (s *service) Delete(ctx context.Context, categoryID string) error {
	if _, err := s.repo.Get(ctx, categoryID); err != nil {
		return err
	}
	return s.repo.HardDelete(ctx, categoryID)
}
