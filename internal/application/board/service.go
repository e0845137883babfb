package board

import (
	"context"
	"fmt"
	"time"

	"github.com/GioMjds/pinterest-backend/internal/domain"
	"github.com/GioMjds/pinterest-backend/internal/pkg/id"
	"github.com/GioMjds/pinterest-backend/internal/pkg/validate"
)

const defaultColorTheme = "#000000"

type Service interface {
	Create(ctx context.Context, userID string, req domain.CreateBoardRequest) (*domain.Board, error)
	ListOwn(ctx context.Context, userID string) ([]domain.Board, error)
	// Get returns the board; private boards are visible to their owner only.
	Get(ctx context.Context, callerID, boardID string) (*domain.Board, error)
	Update(ctx context.Context, callerID, boardID string, req domain.UpdateBoardRequest) (*domain.Board, error)
	Delete(ctx context.Context, callerID, boardID string) error
}

type boardStore interface {
	Put(ctx context.Context, b *domain.Board) error
	Get(ctx context.Context, boardID string) (*domain.Board, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Board, error)
	Update(ctx context.Context, boardID string, updates map[string]interface{}) error
	SoftDelete(ctx context.Context, boardID string) error
}

type service struct {
	repo boardStore
}

func NewService(repo boardStore) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, userID string, req domain.CreateBoardRequest) (*domain.Board, error) {
	if err := validate.Struct(&req); err != nil {
		return nil, fmt.Errorf("%s: %w", err.Error(), domain.ErrBadRequest)
	}
	colorTheme := req.ColorTheme
	if colorTheme == "" {
		colorTheme = defaultColorTheme
	}
	now := time.Now().UTC()
	b := &domain.Board{
		BoardID:     id.New(),
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		CoverImage:  req.CoverImage,
		IsPrivate:   req.IsPrivate,
		ColorTheme:  colorTheme,
		Enable:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Put(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) ListOwn(ctx context.Context, userID string) ([]domain.Board, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *service) Get(ctx context.Context, callerID, boardID string) (*domain.Board, error) {
	b, err := s.repo.Get(ctx, boardID)
	if err != nil {
		return nil, err
	}
	if !b.Enable {
		return nil, fmt.Errorf("board not found: %w", domain.ErrNotFound)
	}
	if b.IsPrivate && b.UserID != callerID {
		// Private boards are indistinguishable from missing ones to outsiders.
		return nil, fmt.Errorf("board not found: %w", domain.ErrNotFound)
	}
	return b, nil
}

func (s *service) Update(ctx context.Context, callerID, boardID string, req domain.UpdateBoardRequest) (*domain.Board, error) {
	b, err := s.ownedBoard(ctx, callerID, boardID)
	if err != nil {
		return nil, err
	}
	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.CoverImage != nil {
		updates["cover_image"] = *req.CoverImage
	}
	if req.IsPrivate != nil {
		updates["is_private"] = *req.IsPrivate
	}
	if req.ColorTheme != nil {
		updates["color_theme"] = *req.ColorTheme
	}
	if len(updates) == 0 {
		return b, nil
	}
	updates["updated_at"] = time.Now().UTC().Format(time.RFC3339)
	if err := s.repo.Update(ctx, boardID, updates); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, boardID)
}

func (s *service) Delete(ctx context.Context, callerID, boardID string) error {
	if _, err := s.ownedBoard(ctx, callerID, boardID); err != nil {
		return err
	}
	return s.repo.SoftDelete(ctx, boardID)
}

func (s *service) ownedBoard(ctx context.Context, callerID, boardID string) (*domain.Board, error) {
	b, err := s.repo.Get(ctx, boardID)
	if err != nil {
		return nil, err
	}
	if !b.Enable {
		return nil, fmt.Errorf("board not found: %w", domain.ErrNotFound)
	}
	if b.UserID != callerID {
		return nil, fmt.Errorf("not the board owner: %w", domain.ErrForbidden)
	}
	return b, nil
}
