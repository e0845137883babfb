package comment

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/GioMjds/pinterest-backend/internal/domain"
)

type mockCommentStore struct{ mock.Mock }

func (m *mockCommentStore) Put(ctx context.Context, c *domain.Comment) error {
	return m.Called(ctx, c).Error(0)
}
func (m *mockCommentStore) Get(ctx context.Context, commentID string) (*domain.Comment, error) {
	args := m.Called(ctx, commentID)
	if c, _ := args.Get(0).(*domain.Comment); c != nil {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockCommentStore) ListByPin(ctx context.Context, pinID string) ([]domain.Comment, error) {
	args := m.Called(ctx, pinID)
	cs, _ := args.Get(0).([]domain.Comment)
	return cs, args.Error(1)
}
func (m *mockCommentStore) Delete(ctx context.Context, commentID string) error {
	return m.Called(ctx, commentID).Error(0)
}

type mockPinStore struct{ mock.Mock }

func (m *mockPinStore) Get(ctx context.Context, pinID string) (*domain.Pin, error) {
	args := m.Called(ctx, pinID)
	if p, _ := args.Get(0).(*domain.Pin); p != nil {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockPinStore) AdjustCount(ctx context.Context, pinID, counter string, delta int) error {
	return m.Called(ctx, pinID, counter, delta).Error(0)
}

func TestCreate_TextRequired(t *testing.T) {
	svc := NewService(&mockCommentStore{}, &mockPinStore{})
	_, err := svc.Create(context.Background(), "u1", "p1", domain.CreateCommentRequest{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrBadRequest))
}

func TestCreate_HappyPathBumpsCommentCount(t *testing.T) {
	cs := &mockCommentStore{}
	ps := &mockPinStore{}
	ps.On("Get", mock.Anything, "p1").Return(&domain.Pin{PinID: "p1", Enable: true}, nil)
	cs.On("Put", mock.Anything, mock.AnythingOfType("*domain.Comment")).Return(nil)
	ps.On("AdjustCount", mock.Anything, "p1", domain.CounterComments, 1).Return(nil)

	svc := NewService(cs, ps)
	c, err := svc.Create(context.Background(), "u1", "p1", domain.CreateCommentRequest{Text: "nice"})
	require.NoError(t, err)
	assert.NotEmpty(t, c.CommentID)
	assert.Equal(t, "u1", c.UserID)
	ps.AssertExpectations(t)
}

func TestCreate_DisabledPinIsGone(t *testing.T) {
	ps := &mockPinStore{}
	ps.On("Get", mock.Anything, "p1").Return(&domain.Pin{PinID: "p1", Enable: false}, nil)

	svc := NewService(&mockCommentStore{}, ps)
	_, err := svc.Create(context.Background(), "u1", "p1", domain.CreateCommentRequest{Text: "nice"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestDelete_AuthorMayDelete(t *testing.T) {
	cs := &mockCommentStore{}
	ps := &mockPinStore{}
	cs.On("Get", mock.Anything, "c1").Return(&domain.Comment{
		CommentID: "c1", PinID: "p1", UserID: "author",
	}, nil)
	cs.On("Delete", mock.Anything, "c1").Return(nil)
	ps.On("AdjustCount", mock.Anything, "p1", domain.CounterComments, -1).Return(nil)

	svc := NewService(cs, ps)
	require.NoError(t, svc.Delete(context.Background(), "author", "c1"))
	cs.AssertExpectations(t)
}

func TestDelete_PinOwnerMayDelete(t *testing.T) {
	cs := &mockCommentStore{}
	ps := &mockPinStore{}
	cs.On("Get", mock.Anything, "c1").Return(&domain.Comment{
		CommentID: "c1", PinID: "p1", UserID: "author",
	}, nil)
	ps.On("Get", mock.Anything, "p1").Return(&domain.Pin{PinID: "p1", UserID: "pin-owner"}, nil)
	cs.On("Delete", mock.Anything, "c1").Return(nil)
	ps.On("AdjustCount", mock.Anything, "p1", domain.CounterComments, -1).Return(nil)

	svc := NewService(cs, ps)
	require.NoError(t, svc.Delete(context.Background(), "pin-owner", "c1"))
}

func TestDelete_StrangerForbidden(t *testing.T) {
	cs := &mockCommentStore{}
	ps := &mockPinStore{}
	cs.On("Get", mock.Anything, "c1").Return(&domain.Comment{
		CommentID: "c1", PinID: "p1", UserID: "author",
	}, nil)
	ps.On("Get", mock.Anything, "p1").Return(&domain.Pin{PinID: "p1", UserID: "pin-owner"}, nil)

	svc := NewService(cs, ps)
	err := svc.Delete(context.Background(), "stranger", "c1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrForbidden))
}
