package pin

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/GioMjds/pinterest-backend/internal/domain"
	"github.com/GioMjds/pinterest-backend/internal/pkg/id"
	"github.com/GioMjds/pinterest-backend/internal/pkg/validate"
)

const defaultFeedLimit = 25

type FeedPage struct {
	Pins       []domain.Pin `json:"pins"`
	NextCursor string       `json:"next_cursor,omitempty"`
}

type Service interface {
	Create(ctx context.Context, userID string, req domain.CreatePinRequest) (*domain.Pin, error)
	Get(ctx context.Context, pinID string) (*domain.Pin, error)
	// Feed returns a page of enabled pins with an opaque cursor.
	Feed(ctx context.Context, limit int32, cursor string) (*FeedPage, error)
	ListByBoard(ctx context.Context, callerID, boardID string) ([]domain.Pin, error)
	Delete(ctx context.Context, callerID, pinID string) error
	Save(ctx context.Context, userID, pinID string, req domain.SavePinRequest) error
	Unsave(ctx context.Context, userID, pinID string) error
	ListSaved(ctx context.Context, userID string) ([]domain.Pin, error)
}

type pinStore interface {
	Put(ctx context.Context, p *domain.Pin) error
	Get(ctx context.Context, pinID string) (*domain.Pin, error)
	ScanPage(ctx context.Context, limit int32, cursor string) ([]domain.Pin, string, error)
	ListByBoard(ctx context.Context, boardID string) ([]domain.Pin, error)
	SoftDelete(ctx context.Context, pinID string) error
	AdjustCount(ctx context.Context, pinID, counter string, delta int) error
}

type saveStore interface {
	PutIfAbsent(ctx context.Context, s *domain.PinSave) error
	ListByUser(ctx context.Context, userID string) ([]domain.PinSave, error)
	Delete(ctx context.Context, userID, pinID string) error
}

type boardStore interface {
	Get(ctx context.Context, boardID string) (*domain.Board, error)
	AdjustPinCount(ctx context.Context, boardID string, delta int) error
}

type service struct {
	pins   pinStore
	saves  saveStore
	boards boardStore
}

func NewService(pins pinStore, saves saveStore, boards boardStore) Service {
	return &service{pins: pins, saves: saves, boards: boards}
}

func (s *service) Create(ctx context.Context, userID string, req domain.CreatePinRequest) (*domain.Pin, error) {
	if err := validate.Struct(&req); err != nil {
		return nil, fmt.Errorf("%s: %w", err.Error(), domain.ErrBadRequest)
	}
	b, err := s.ownedBoard(ctx, userID, req.BoardID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	p := &domain.Pin{
		PinID:         id.New(),
		UserID:        userID,
		BoardID:       b.BoardID,
		CategoryID:    req.CategoryID,
		Title:         req.Title,
		Description:   req.Description,
		ImageURL:      req.ImageURL,
		OriginalURL:   req.OriginalURL,
		Width:         req.Width,
		Height:        req.Height,
		DominantColor: req.DominantColor,
		Enable:        true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.pins.Put(ctx, p); err != nil {
		return nil, err
	}
	if err := s.boards.AdjustPinCount(ctx, b.BoardID, 1); err != nil {
		slog.Warn("failed to bump board pin count", "board_id", b.BoardID, "err", err)
	}
	return p, nil
}

func (s *service) Get(ctx context.Context, pinID string) (*domain.Pin, error) {
	p, err := s.pins.Get(ctx, pinID)
	if err != nil {
		return nil, err
	}
	if !p.Enable {
		return nil, fmt.Errorf("pin not found: %w", domain.ErrNotFound)
	}
	return p, nil
}

func (s *service) Feed(ctx context.Context, limit int32, cursor string) (*FeedPage, error) {
	if limit <= 0 || limit > 100 {
		limit = defaultFeedLimit
	}
	pins, next, err := s.pins.ScanPage(ctx, limit, cursor)
	if err != nil {
		return nil, err
	}
	if pins == nil {
		pins = []domain.Pin{}
	}
	return &FeedPage{Pins: pins, NextCursor: next}, nil
}

func (s *service) ListByBoard(ctx context.Context, callerID, boardID string) ([]domain.Pin, error) {
	b, err := s.boards.Get(ctx, boardID)
	if err != nil {
		return nil, err
	}
	if !b.Enable || (b.IsPrivate && b.UserID != callerID) {
		return nil, fmt.Errorf("board not found: %w", domain.ErrNotFound)
	}
	return s.pins.ListByBoard(ctx, boardID)
}

func (s *service) Delete(ctx context.Context, callerID, pinID string) error {
	p, err := s.pins.Get(ctx, pinID)
	if err != nil {
		return err
	}
	if !p.Enable {
		return fmt.Errorf("pin not found: %w", domain.ErrNotFound)
	}
	if p.UserID != callerID {
		return fmt.Errorf("not the pin owner: %w", domain.ErrForbidden)
	}
	if err := s.pins.SoftDelete(ctx, pinID); err != nil {
		return err
	}
	if err := s.boards.AdjustPinCount(ctx, p.BoardID, -1); err != nil {
		slog.Warn("failed to drop board pin count", "board_id", p.BoardID, "err", err)
	}
	return nil
}

func (s *service) Save(ctx context.Context, userID, pinID string, req domain.SavePinRequest) error {
	if err := validate.Struct(&req); err != nil {
		return fmt.Errorf("%s: %w", err.Error(), domain.ErrBadRequest)
	}
	if _, err := s.Get(ctx, pinID); err != nil {
		return err
	}
	if _, err := s.ownedBoard(ctx, userID, req.BoardID); err != nil {
		return err
	}
	// The conditional put makes the save idempotent under races: exactly one
	// of two concurrent saves wins, so the counter moves once.
	if err := s.saves.PutIfAbsent(ctx, &domain.PinSave{
		UserID:    userID,
		PinID:     pinID,
		BoardID:   req.BoardID,
		CreatedAt: time.Now().UTC(),
	}); err != nil {
		return err
	}
	if err := s.pins.AdjustCount(ctx, pinID, domain.CounterSaves, 1); err != nil {
		slog.Warn("failed to bump pin save count", "pin_id", pinID, "err", err)
	}
	return nil
}

func (s *service) Unsave(ctx context.Context, userID, pinID string) error {
	// The conditional delete reports a missing save as not-found, so the
	// counter only moves when a save was actually removed. A repeated unsave
	// cannot drive save_count negative.
	if err := s.saves.Delete(ctx, userID, pinID); err != nil {
		return err
	}
	if err := s.pins.AdjustCount(ctx, pinID, domain.CounterSaves, -1); err != nil {
		slog.Warn("failed to drop pin save count", "pin_id", pinID, "err", err)
	}
	return nil
}

func (s *service) ListSaved(ctx context.Context, userID string) ([]domain.Pin, error) {
	saves, err := s.saves.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	pins := make([]domain.Pin, 0, len(saves))
	for _, sv := range saves {
		p, err := s.pins.Get(ctx, sv.PinID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				continue
			}
			return nil, err
		}
		if p.Enable {
			pins = append(pins, *p)
		}
	}
	return pins, nil
}

func (s *service) ownedBoard(ctx context.Context, userID, boardID string) (*domain.Board, error) {
	b, err := s.boards.Get(ctx, boardID)
	if err != nil {
		return nil, err
	}
	if !b.Enable {
		return nil, fmt.Errorf("board not found: %w", domain.ErrNotFound)
	}
	if b.UserID != userID {
		return nil, fmt.Errorf("not the board owner: %w", domain.ErrForbidden)
	}
	return b, nil
}
