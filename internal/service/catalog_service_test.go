package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	apperrors "taskconnect/internal/errors"
	"taskconnect/internal/model"
)

var (
	aliceUser = &model.User{ID: 2, Username: "alice", Role: model.RoleClient}
	bobUser   = &model.User{ID: 3, Username: "bob", Role: model.RoleSubcontractor}
)

func TestCatalogService_Create_StampsOwner(t *testing.T) {
	mockRepo := new(MockServiceRepository)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Service")).Return(nil)

	svc := NewCatalogService(mockRepo, nil)
	listing := &model.Service{Title: "Emergency Plumbing Repair", Price: 120, OwnerID: 99}
	require.NoError(t, svc.Create(context.Background(), bobUser, listing))

	// Owner comes from the resolved caller, not the payload.
	assert.Equal(t, bobUser.ID, listing.OwnerID)
	assert.True(t, listing.IsActive)
	mockRepo.AssertExpectations(t)
}

func TestCatalogService_Update(t *testing.T) {
	upd := ServiceUpdate{Title: "Updated Title", Description: "desc", Price: 150, Category: "Plumbing"}

	tests := []struct {
		name          string
		caller        *model.User
		setupMock     func(*MockServiceRepository)
		expectedError error
	}{
		{
			name:   "owner may update",
			caller: bobUser,
			setupMock: func(m *MockServiceRepository) {
				m.On("FindByID", mock.Anything, uint(1)).
					Return(&model.Service{ID: 1, OwnerID: bobUser.ID, Title: "Old"}, nil)
				m.On("Update", mock.Anything, mock.AnythingOfType("*model.Service")).Return(nil)
			},
		},
		{
			name:   "non-owner is forbidden",
			caller: aliceUser,
			setupMock: func(m *MockServiceRepository) {
				m.On("FindByID", mock.Anything, uint(1)).
					Return(&model.Service{ID: 1, OwnerID: bobUser.ID}, nil)
			},
			expectedError: apperrors.ErrForbidden,
		},
		{
			name:   "missing service is not-found regardless of caller",
			caller: aliceUser,
			setupMock: func(m *MockServiceRepository) {
				m.On("FindByID", mock.Anything, uint(1)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrServiceNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockServiceRepository)
			tt.setupMock(mockRepo)

			svc := NewCatalogService(mockRepo, nil)
			updated, err := svc.Update(context.Background(), tt.caller, 1, upd)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, updated)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "Updated Title", updated.Title)
				assert.Equal(t, 150, updated.Price)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestCatalogService_Delete(t *testing.T) {
	t.Run("owner may delete", func(t *testing.T) {
		mockRepo := new(MockServiceRepository)
		mockRepo.On("FindByID", mock.Anything, uint(1)).
			Return(&model.Service{ID: 1, OwnerID: bobUser.ID}, nil)
		mockRepo.On("Delete", mock.Anything, uint(1)).Return(nil)

		svc := NewCatalogService(mockRepo, nil)
		assert.NoError(t, svc.Delete(context.Background(), bobUser, 1))
		mockRepo.AssertExpectations(t)
	})

	t.Run("non-owner is forbidden and nothing is deleted", func(t *testing.T) {
		mockRepo := new(MockServiceRepository)
		mockRepo.On("FindByID", mock.Anything, uint(1)).
			Return(&model.Service{ID: 1, OwnerID: bobUser.ID}, nil)

		svc := NewCatalogService(mockRepo, nil)
		assert.ErrorIs(t, svc.Delete(context.Background(), aliceUser, 1), apperrors.ErrForbidden)
		mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("missing id is not-found before any ownership check", func(t *testing.T) {
		mockRepo := new(MockServiceRepository)
		mockRepo.On("FindByID", mock.Anything, uint(9999)).Return(nil, gorm.ErrRecordNotFound)

		svc := NewCatalogService(mockRepo, nil)
		assert.ErrorIs(t, svc.Delete(context.Background(), bobUser, 9999), apperrors.ErrServiceNotFound)
	})
}

func TestCatalogService_Get_MapsNotFound(t *testing.T) {
	mockRepo := new(MockServiceRepository)
	mockRepo.On("FindByID", mock.Anything, uint(42)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewCatalogService(mockRepo, nil)
	_, err := svc.Get(context.Background(), 42)
	assert.ErrorIs(t, err, apperrors.ErrServiceNotFound)
}

func TestCatalogService_List(t *testing.T) {
	mockRepo := new(MockServiceRepository)
	mockRepo.On("List", mock.Anything, 0, 100).
		Return([]model.Service{{ID: 1, Title: "Office Deep Cleaning"}}, nil)

	svc := NewCatalogService(mockRepo, nil)
	services, err := svc.List(context.Background(), 0, 100)
	require.NoError(t, err)
	require.Len(t, services, 1)
	assert.Equal(t, "Office Deep Cleaning", services[0].Title)
}
