package comment

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/GioMjds/pinterest-backend/internal/domain"
	"github.com/GioMjds/pinterest-backend/internal/pkg/id"
	"github.com/GioMjds/pinterest-backend/internal/pkg/validate"
)

type Service interface {
	ListByPin(ctx context.Context, pinID string) ([]domain.Comment, error)
	Create(ctx context.Context, userID, pinID string, req domain.CreateCommentRequest) (*domain.Comment, error)
	// Delete removes a comment. The author and the pin owner may delete it.
	Delete(ctx context.Context, callerID, commentID string) error
}

type commentStore interface {
	Put(ctx context.Context, c *domain.Comment) error
	Get(ctx context.Context, commentID string) (*domain.Comment, error)
	ListByPin(ctx context.Context, pinID string) ([]domain.Comment, error)
	Delete(ctx context.Context, commentID string) error
}

type pinStore interface {
	Get(ctx context.Context, pinID string) (*domain.Pin, error)
	AdjustCount(ctx context.Context, pinID, counter string, delta int) error
}

type service struct {
	comments commentStore
	pins     pinStore
}

func NewService(comments commentStore, pins pinStore) Service {
	return &service{comments: comments, pins: pins}
}

func (s *service) ListByPin(ctx context.Context, pinID string) ([]domain.Comment, error) {
	if _, err := s.enabledPin(ctx, pinID); err != nil {
		return nil, err
	}
	return s.comments.ListByPin(ctx, pinID)
}

func (s *service) Create(ctx context.Context, userID, pinID string, req domain.CreateCommentRequest) (*domain.Comment, error) {
	if err := validate.Struct(&req); err != nil {
		return nil, fmt.Errorf("%s: %w", err.Error(), domain.ErrBadRequest)
	}
	if _, err := s.enabledPin(ctx, pinID); err != nil {
		return nil, err
	}
	c := &domain.Comment{
		CommentID: id.New(),
		PinID:     pinID,
		UserID:    userID,
		Text:      req.Text,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.comments.Put(ctx, c); err != nil {
		return nil, err
	}
	if err := s.pins.AdjustCount(ctx, pinID, domain.CounterComments, 1); err != nil {
		slog.Warn("failed to bump pin comment count", "pin_id", pinID, "err", err)
	}
	return c, nil
}

func (s *service) Delete(ctx context.Context, callerID, commentID string) error {
	c, err := s.comments.Get(ctx, commentID)
	if err != nil {
		return err
	}
	if c.UserID != callerID {
		p, err := s.pins.Get(ctx, c.PinID)
		if err != nil || p.UserID != callerID {
			return fmt.Errorf("not the comment author: %w", domain.ErrForbidden)
		}
	}
	if err := s.comments.Delete(ctx, commentID); err != nil {
		return err
	}
	if err := s.pins.AdjustCount(ctx, c.PinID, domain.CounterComments, -1); err != nil {
		slog.Warn("failed to drop pin comment count", "pin_id", c.PinID, "err", err)
	}
	return nil
}

func (s *service) enabledPin(ctx context.Context, pinID string) (*domain.Pin, error) {
	p, err := s.pins.Get(ctx, pinID)
	if err != nil {
		return nil, err
	}
	if !p.Enable {
		return nil, fmt.Errorf("pin not found: %w", domain.ErrNotFound)
	}
	return p, nil
}
