package pin

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/GioMjds/pinterest-backend/internal/domain"
)

type mockPinStore struct{ mock.Mock }

func (m *mockPinStore) Put(ctx context.Context, p *domain.Pin) error {
	return m.Called(ctx, p).Error(0)
}
func (m *mockPinStore) Get(ctx context.Context, pinID string) (*domain.Pin, error) {
	args := m.Called(ctx, pinID)
	if p, _ := args.Get(0).(*domain.Pin); p != nil {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockPinStore) ScanPage(ctx context.Context, limit int32, cursor string) ([]domain.Pin, string, error) {
	args := m.Called(ctx, limit, cursor)
	pins, _ := args.Get(0).([]domain.Pin)
	return pins, args.String(1), args.Error(2)
}
func (m *mockPinStore) ListByBoard(ctx context.Context, boardID string) ([]domain.Pin, error) {
	args := m.Called(ctx, boardID)
	pins, _ := args.Get(0).([]domain.Pin)
	return pins, args.Error(1)
}
func (m *mockPinStore) SoftDelete(ctx context.Context, pinID string) error {
	return m.Called(ctx, pinID).Error(0)
}
func (m *mockPinStore) AdjustCount(ctx context.Context, pinID, counter string, delta int) error {
	return m.Called(ctx, pinID, counter, delta).Error(0)
}

type mockSaveStore struct{ mock.Mock }

func (m *mockSaveStore) PutIfAbsent(ctx context.Context, s *domain.PinSave) error {
	return m.Called(ctx, s).Error(0)
}
func (m *mockSaveStore) ListByUser(ctx context.Context, userID string) ([]domain.PinSave, error) {
	args := m.Called(ctx, userID)
	saves, _ := args.Get(0).([]domain.PinSave)
	return saves, args.Error(1)
}
func (m *mockSaveStore) Delete(ctx context.Context, userID, pinID string) error {
	return m.Called(ctx, userID, pinID).Error(0)
}

type mockBoardStore struct{ mock.Mock }

func (m *mockBoardStore) Get(ctx context.Context, boardID string) (*domain.Board, error) {
	args := m.Called(ctx, boardID)
	if b, _ := args.Get(0).(*domain.Board); b != nil {
		return b, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockBoardStore) AdjustPinCount(ctx context.Context, boardID string, delta int) error {
	return m.Called(ctx, boardID, delta).Error(0)
}

func ownBoard(userID string) *domain.Board {
	return &domain.Board{BoardID: "b1", UserID: userID, Enable: true}
}

func TestCreate_RequiresImageURL(t *testing.T) {
	svc := NewService(&mockPinStore{}, nil, &mockBoardStore{})
	_, err := svc.Create(context.Background(), "u1", domain.CreatePinRequest{BoardID: "b1"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrBadRequest))
}

func TestCreate_OnlyOntoOwnBoard(t *testing.T) {
	bs := &mockBoardStore{}
	bs.On("Get", mock.Anything, "b1").Return(ownBoard("someone-else"), nil)

	svc := NewService(&mockPinStore{}, nil, bs)
	_, err := svc.Create(context.Background(), "u1", domain.CreatePinRequest{
		BoardID: "b1", ImageURL: "https://img.example.com/a.jpg",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrForbidden))
}

func TestCreate_HappyPathBumpsBoardCount(t *testing.T) {
	ps := &mockPinStore{}
	bs := &mockBoardStore{}
	bs.On("Get", mock.Anything, "b1").Return(ownBoard("u1"), nil)
	ps.On("Put", mock.Anything, mock.AnythingOfType("*domain.Pin")).Return(nil)
	bs.On("AdjustPinCount", mock.Anything, "b1", 1).Return(nil)

	svc := NewService(ps, nil, bs)
	p, err := svc.Create(context.Background(), "u1", domain.CreatePinRequest{
		BoardID: "b1", Title: "Sunset", ImageURL: "https://img.example.com/a.jpg",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, p.PinID)
	assert.True(t, p.Enable)
	bs.AssertExpectations(t)
}

func TestFeed_ClampsLimit(t *testing.T) {
	ps := &mockPinStore{}
	ps.On("ScanPage", mock.Anything, int32(defaultFeedLimit), "").Return([]domain.Pin{}, "", nil)

	svc := NewService(ps, nil, nil)
	_, err := svc.Feed(context.Background(), 0, "")
	require.NoError(t, err)
	_, err = svc.Feed(context.Background(), 0, "")
	require.NoError(t, err)
	ps.AssertExpectations(t)
}

func TestSave_DuplicateIsConflict(t *testing.T) {
	ps := &mockPinStore{}
	ss := &mockSaveStore{}
	bs := &mockBoardStore{}
	ps.On("Get", mock.Anything, "p1").Return(&domain.Pin{PinID: "p1", Enable: true}, nil)
	bs.On("Get", mock.Anything, "b1").Return(ownBoard("u1"), nil)
	ss.On("PutIfAbsent", mock.Anything, mock.AnythingOfType("*domain.PinSave")).Return(domain.ErrConflict)

	svc := NewService(ps, ss, bs)
	err := svc.Save(context.Background(), "u1", "p1", domain.SavePinRequest{BoardID: "b1"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrConflict))
	// The counter must not move when the conditional put loses.
	ps.AssertNotCalled(t, "AdjustCount", mock.Anything, "p1", domain.CounterSaves, 1)
}

func TestSave_HappyPathBumpsSaveCount(t *testing.T) {
	ps := &mockPinStore{}
	ss := &mockSaveStore{}
	bs := &mockBoardStore{}
	ps.On("Get", mock.Anything, "p1").Return(&domain.Pin{PinID: "p1", Enable: true}, nil)
	bs.On("Get", mock.Anything, "b1").Return(ownBoard("u1"), nil)
	ss.On("PutIfAbsent", mock.Anything, mock.MatchedBy(func(s *domain.PinSave) bool {
		return s.UserID == "u1" && s.PinID == "p1" && s.BoardID == "b1"
	})).Return(nil)
	ps.On("AdjustCount", mock.Anything, "p1", domain.CounterSaves, 1).Return(nil)

	svc := NewService(ps, ss, bs)
	require.NoError(t, svc.Save(context.Background(), "u1", "p1", domain.SavePinRequest{BoardID: "b1"}))
	ps.AssertExpectations(t)
	ss.AssertExpectations(t)
}

func TestUnsave_HappyPathDropsSaveCount(t *testing.T) {
	ps := &mockPinStore{}
	ss := &mockSaveStore{}
	ss.On("Delete", mock.Anything, "u1", "p1").Return(nil)
	ps.On("AdjustCount", mock.Anything, "p1", domain.CounterSaves, -1).Return(nil)

	svc := NewService(ps, ss, nil)
	require.NoError(t, svc.Unsave(context.Background(), "u1", "p1"))
	ps.AssertExpectations(t)
	ss.AssertExpectations(t)
}

func TestUnsave_MissingSaveDoesNotDropCount(t *testing.T) {
	ps := &mockPinStore{}
	ss := &mockSaveStore{}
	// A second unsave, or an unsave of a pin the user never saved, fails the
	// conditional delete. The counter must stay put or it goes negative.
	ss.On("Delete", mock.Anything, "u1", "p1").Return(domain.ErrNotFound)

	svc := NewService(ps, ss, nil)
	err := svc.Unsave(context.Background(), "u1", "p1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	ps.AssertNotCalled(t, "AdjustCount", mock.Anything, "p1", domain.CounterSaves, -1)
}

func TestDelete_OnlyOwner(t *testing.T) {
	ps := &mockPinStore{}
	ps.On("Get", mock.Anything, "p1").Return(&domain.Pin{
		PinID: "p1", UserID: "owner", BoardID: "b1", Enable: true,
	}, nil)

	svc := NewService(ps, nil, &mockBoardStore{})
	err := svc.Delete(context.Background(), "stranger", "p1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrForbidden))
}

func TestListSaved_SkipsDisabledPins(t *testing.T) {
	ps := &mockPinStore{}
	ss := &mockSaveStore{}
	ss.On("ListByUser", mock.Anything, "u1").Return([]domain.PinSave{
		{UserID: "u1", PinID: "p1"},
		{UserID: "u1", PinID: "p2"},
		{UserID: "u1", PinID: "p3"},
	}, nil)
	ps.On("Get", mock.Anything, "p1").Return(&domain.Pin{PinID: "p1", Enable: true}, nil)
	ps.On("Get", mock.Anything, "p2").Return(&domain.Pin{PinID: "p2", Enable: false}, nil)
	ps.On("Get", mock.Anything, "p3").Return(nil, domain.ErrNotFound)

	svc := NewService(ps, ss, nil)
	pins, err := svc.ListSaved(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, pins, 1)
	assert.Equal(t, "p1", pins[0].PinID)
}
