package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"item-api/internal/model"
	"item-api/internal/validation"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockItemRepository is a mock implementation of ItemRepository.
type MockItemRepository struct {
	mock.Mock
}

func (m *MockItemRepository) Create(ctx context.Context, payload model.CreatePayload) (*model.Item, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Item), args.Error(1)
}

func (m *MockItemRepository) GetByID(ctx context.Context, id int64) (*model.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Item), args.Error(1)
}

func (m *MockItemRepository) List(ctx context.Context, skip, limit int) ([]model.Item, error) {
	args := m.Called(ctx, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Item), args.Error(1)
}

func (m *MockItemRepository) Update(ctx context.Context, id int64, payload model.UpdatePayload) (*model.Item, error) {
	args := m.Called(ctx, id, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Item), args.Error(1)
}

func (m *MockItemRepository) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func newTestService(repo *MockItemRepository) ItemService {
	return NewItemService(repo, validation.New(), zerolog.Nop())
}

func TestItemService_Create(t *testing.T) {
	ctx := context.Background()
	storageErr := &model.StorageError{Op: "create item", Kind: model.StorageErrorConnection, Err: errors.New("connection refused")}

	tests := []struct {
		name             string
		payload          model.CreatePayload
		mockReturn       *model.Item
		mockError        error
		expectRepo       bool
		expectErr        bool
		expectValidation bool
	}{
		{
			name:       "Success",
			payload:    model.CreatePayload{Name: "Widget", Price: floatPtr(9.99)},
			mockReturn: &model.Item{ID: 1, Name: "Widget", Price: 9.99, CreatedAt: time.Now()},
			expectRepo: true,
		},
		{
			name:             "Empty name rejected before storage",
			payload:          model.CreatePayload{Name: "", Price: floatPtr(9.99)},
			expectErr:        true,
			expectValidation: true,
		},
		{
			name:             "Negative price rejected before storage",
			payload:          model.CreatePayload{Name: "Widget", Price: floatPtr(-0.01)},
			expectErr:        true,
			expectValidation: true,
		},
		{
			name:       "Storage error is returned",
			payload:    model.CreatePayload{Name: "Widget", Price: floatPtr(1)},
			mockError:  storageErr,
			expectRepo: true,
			expectErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockItemRepository)
			svc := newTestService(repo)

			if tt.expectRepo {
				repo.On("Create", mock.Anything, tt.payload).Return(tt.mockReturn, tt.mockError).Once()
			}

			item, err := svc.Create(ctx, tt.payload)

			if tt.expectErr {
				require.Error(t, err)
				assert.Nil(t, item)
				var validationErr *model.ValidationError
				assert.Equal(t, tt.expectValidation, errors.As(err, &validationErr))
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.mockReturn, item)
			}

			if !tt.expectRepo {
				repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestItemService_GetByID(t *testing.T) {
	ctx := context.Background()
	repo := new(MockItemRepository)
	svc := newTestService(repo)

	expected := &model.Item{ID: 1, Name: "Widget", Price: 9.99}
	repo.On("GetByID", mock.Anything, int64(1)).Return(expected, nil).Once()
	repo.On("GetByID", mock.Anything, int64(99)).Return(nil, nil).Once()

	item, err := svc.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, expected, item)

	item, err = svc.GetByID(ctx, 99)
	require.NoError(t, err)
	assert.Nil(t, item)

	repo.AssertExpectations(t)
}

func TestItemService_List(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		params     model.ListParams
		expectRepo bool
		expectErr  bool
	}{
		{name: "Defaults", params: model.DefaultListParams(), expectRepo: true},
		{name: "Max limit", params: model.ListParams{Skip: 10, Limit: 1000}, expectRepo: true},
		{name: "Zero limit", params: model.ListParams{Skip: 0, Limit: 0}, expectErr: true},
		{name: "Limit too high", params: model.ListParams{Skip: 0, Limit: 1001}, expectErr: true},
		{name: "Negative skip", params: model.ListParams{Skip: -1, Limit: 10}, expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockItemRepository)
			svc := newTestService(repo)

			items := []model.Item{{ID: 1, Name: "Widget"}}
			if tt.expectRepo {
				repo.On("List", mock.Anything, tt.params.Skip, tt.params.Limit).Return(items, nil).Once()
			}

			result, err := svc.List(ctx, tt.params)

			if tt.expectErr {
				var validationErr *model.ValidationError
				require.True(t, errors.As(err, &validationErr))
				assert.Nil(t, result)
				repo.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything)
			} else {
				require.NoError(t, err)
				assert.Equal(t, items, result)
			}

			repo.AssertExpectations(t)
		})
	}
}

func TestItemService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("Valid partial payload reaches the repository", func(t *testing.T) {
		repo := new(MockItemRepository)
		svc := newTestService(repo)

		payload := model.UpdatePayload{Price: floatPtr(12.5)}
		updated := time.Now()
		expected := &model.Item{ID: 1, Name: "Widget", Price: 12.5, UpdatedAt: &updated}
		repo.On("Update", mock.Anything, int64(1), payload).Return(expected, nil).Once()

		item, err := svc.Update(ctx, 1, payload)
		require.NoError(t, err)
		assert.Equal(t, expected, item)
		repo.AssertExpectations(t)
	})

	t.Run("Empty payload is allowed", func(t *testing.T) {
		repo := new(MockItemRepository)
		svc := newTestService(repo)

		payload := model.UpdatePayload{}
		repo.On("Update", mock.Anything, int64(1), payload).Return(&model.Item{ID: 1}, nil).Once()

		_, err := svc.Update(ctx, 1, payload)
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("Not found passes through", func(t *testing.T) {
		repo := new(MockItemRepository)
		svc := newTestService(repo)

		payload := model.UpdatePayload{Name: strPtr("Gadget")}
		repo.On("Update", mock.Anything, int64(99), payload).Return(nil, nil).Once()

		item, err := svc.Update(ctx, 99, payload)
		require.NoError(t, err)
		assert.Nil(t, item)
		repo.AssertExpectations(t)
	})

	t.Run("Invalid payload never reaches the repository", func(t *testing.T) {
		repo := new(MockItemRepository)
		svc := newTestService(repo)

		item, err := svc.Update(ctx, 1, model.UpdatePayload{Name: strPtr("")})

		var validationErr *model.ValidationError
		require.True(t, errors.As(err, &validationErr))
		assert.Contains(t, validationErr.Fields, "name")
		assert.Nil(t, item)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestItemService_Delete(t *testing.T) {
	ctx := context.Background()
	repo := new(MockItemRepository)
	svc := newTestService(repo)

	repo.On("Delete", mock.Anything, int64(1)).Return(true, nil).Once()
	repo.On("Delete", mock.Anything, int64(2)).Return(false, nil).Once()
	repo.On("Delete", mock.Anything, int64(3)).Return(false, errors.New("boom")).Once()

	deleted, err := svc.Delete(ctx, 1)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = svc.Delete(ctx, 2)
	require.NoError(t, err)
	assert.False(t, deleted)

	_, err = svc.Delete(ctx, 3)
	assert.Error(t, err)

	repo.AssertExpectations(t)
}
