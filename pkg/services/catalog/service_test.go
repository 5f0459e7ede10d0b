package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/de-tools/playbill/pkg/models/domain"
	"github.com/de-tools/playbill/pkg/models/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockStore struct {
	mock.Mock
}

func (m *mockStore) List(ctx context.Context) ([]store.Play, error) {
	args := m.Called(ctx)
	return args.Get(0).([]store.Play), args.Error(1)
}

func (m *mockStore) Get(ctx context.Context, id string) (*store.Play, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Play), args.Error(1)
}

func (m *mockStore) Upsert(ctx context.Context, plays []store.Play) error {
	args := m.Called(ctx, plays)
	return args.Error(0)
}

func TestService_Catalog(t *testing.T) {
	s := new(mockStore)
	s.On("List", mock.Anything).Return([]store.Play{
		{ID: "hamlet", Name: "Hamlet", Genre: "tragedy"},
		{ID: "as-like", Name: "As You Like It", Genre: "comedy"},
	}, nil)

	catalog, err := NewService(s).Catalog(context.Background())

	require.NoError(t, err)
	assert.Equal(t, domain.Catalog{
		"hamlet":  {ID: "hamlet", Name: "Hamlet", Genre: domain.GenreTragedy},
		"as-like": {ID: "as-like", Name: "As You Like It", Genre: domain.GenreComedy},
	}, catalog)
	s.AssertExpectations(t)
}

func TestService_Catalog_StoredUnknownGenre(t *testing.T) {
	s := new(mockStore)
	s.On("List", mock.Anything).Return([]store.Play{{ID: "henry-v", Name: "Henry V", Genre: "history"}}, nil)

	_, err := NewService(s).Catalog(context.Background())

	assert.ErrorIs(t, err, domain.ErrUnknownGenre)
}

func TestService_ListPlays_StoreError(t *testing.T) {
	s := new(mockStore)
	s.On("List", mock.Anything).Return([]store.Play(nil), errors.New("db closed"))

	_, err := NewService(s).ListPlays(context.Background())

	assert.EqualError(t, err, "failed to list plays: db closed")
}

func TestService_GetPlay(t *testing.T) {
	t.Run("stored play", func(t *testing.T) {
		s := new(mockStore)
		s.On("Get", mock.Anything, "hamlet").Return(&store.Play{ID: "hamlet", Name: "Hamlet", Genre: "tragedy"}, nil)

		play, err := NewService(s).GetPlay(context.Background(), "hamlet")

		require.NoError(t, err)
		assert.Equal(t, domain.Play{ID: "hamlet", Name: "Hamlet", Genre: domain.GenreTragedy}, play)
		s.AssertExpectations(t)
	})

	t.Run("missing play", func(t *testing.T) {
		s := new(mockStore)
		s.On("Get", mock.Anything, "macbeth").Return(nil, nil)

		_, err := NewService(s).GetPlay(context.Background(), "macbeth")

		require.ErrorIs(t, err, domain.ErrUnknownPlay)
		var playErr *domain.PlayError
		require.True(t, errors.As(err, &playErr))
		assert.Equal(t, "macbeth", playErr.PlayID)
	})

	t.Run("store error", func(t *testing.T) {
		s := new(mockStore)
		s.On("Get", mock.Anything, "hamlet").Return(nil, errors.New("db closed"))

		_, err := NewService(s).GetPlay(context.Background(), "hamlet")

		assert.EqualError(t, err, "failed to get play: db closed")
	})
}

func TestService_SavePlays(t *testing.T) {
	t.Run("stores plays", func(t *testing.T) {
		s := new(mockStore)
		s.On("Upsert", mock.Anything, []store.Play{{ID: "hamlet", Name: "Hamlet", Genre: "tragedy"}}).Return(nil)

		err := NewService(s).SavePlays(context.Background(), []domain.Play{
			{ID: "hamlet", Name: "Hamlet", Genre: domain.GenreTragedy},
		})

		require.NoError(t, err)
		s.AssertExpectations(t)
	})

	t.Run("rejects invalid genre", func(t *testing.T) {
		s := new(mockStore)

		err := NewService(s).SavePlays(context.Background(), []domain.Play{{ID: "x", Name: "X"}})

		assert.ErrorIs(t, err, domain.ErrUnknownGenre)
		s.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})
}
