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

func TestMessageService_Create(t *testing.T) {
	t.Run("stamps sender from caller", func(t *testing.T) {
		messages := new(MockMessageRepository)
		jobs := new(MockJobRepository)
		jobs.On("FindByID", mock.Anything, uint(1)).Return(&model.Job{ID: 1}, nil)
		messages.On("Create", mock.Anything, mock.AnythingOfType("*model.Message")).Return(nil)

		svc := NewMessageService(messages, jobs)
		msg := &model.Message{Content: "hello", JobID: 1, SenderID: 99}
		require.NoError(t, svc.Create(context.Background(), aliceUser, msg))

		assert.Equal(t, aliceUser.ID, msg.SenderID)
	})

	t.Run("missing parent job is not-found", func(t *testing.T) {
		messages := new(MockMessageRepository)
		jobs := new(MockJobRepository)
		jobs.On("FindByID", mock.Anything, uint(404)).Return(nil, gorm.ErrRecordNotFound)

		svc := NewMessageService(messages, jobs)
		err := svc.Create(context.Background(), aliceUser, &model.Message{JobID: 404})
		assert.ErrorIs(t, err, apperrors.ErrJobNotFound)
		messages.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestMessageService_Get(t *testing.T) {
	tests := []struct {
		name          string
		caller        *model.User
		setupMock     func(*MockMessageRepository)
		expectedError error
	}{
		{
			name:   "sender may read",
			caller: aliceUser,
			setupMock: func(m *MockMessageRepository) {
				m.On("FindByID", mock.Anything, uint(1)).
					Return(&model.Message{ID: 1, SenderID: aliceUser.ID}, nil)
			},
		},
		{
			name:   "non-sender is forbidden",
			caller: bobUser,
			setupMock: func(m *MockMessageRepository) {
				m.On("FindByID", mock.Anything, uint(1)).
					Return(&model.Message{ID: 1, SenderID: aliceUser.ID}, nil)
			},
			expectedError: apperrors.ErrForbidden,
		},
		{
			name:   "missing message is not-found",
			caller: bobUser,
			setupMock: func(m *MockMessageRepository) {
				m.On("FindByID", mock.Anything, uint(1)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrMessageNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			messages := new(MockMessageRepository)
			tt.setupMock(messages)

			svc := NewMessageService(messages, new(MockJobRepository))
			msg, err := svc.Get(context.Background(), tt.caller, 1)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, msg)
			} else {
				require.NoError(t, err)
				assert.Equal(t, uint(1), msg.ID)
			}
		})
	}
}

func TestMessageService_Delete(t *testing.T) {
	t.Run("sender may delete", func(t *testing.T) {
		messages := new(MockMessageRepository)
		messages.On("FindByID", mock.Anything, uint(1)).
			Return(&model.Message{ID: 1, SenderID: aliceUser.ID}, nil)
		messages.On("Delete", mock.Anything, uint(1)).Return(nil)

		svc := NewMessageService(messages, new(MockJobRepository))
		assert.NoError(t, svc.Delete(context.Background(), aliceUser, 1))
		messages.AssertExpectations(t)
	})

	t.Run("non-sender is forbidden and nothing is deleted", func(t *testing.T) {
		messages := new(MockMessageRepository)
		messages.On("FindByID", mock.Anything, uint(1)).
			Return(&model.Message{ID: 1, SenderID: aliceUser.ID}, nil)

		svc := NewMessageService(messages, new(MockJobRepository))
		assert.ErrorIs(t, svc.Delete(context.Background(), bobUser, 1), apperrors.ErrForbidden)
		messages.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestMessageService_ListByJob(t *testing.T) {
	t.Run("lists messages for an existing job", func(t *testing.T) {
		messages := new(MockMessageRepository)
		jobs := new(MockJobRepository)
		jobs.On("FindByID", mock.Anything, uint(1)).Return(&model.Job{ID: 1}, nil)
		messages.On("ListByJob", mock.Anything, uint(1), 0, 100).
			Return([]model.Message{{ID: 1, JobID: 1}}, nil)

		svc := NewMessageService(messages, jobs)
		result, err := svc.ListByJob(context.Background(), 1, 0, 100)
		require.NoError(t, err)
		assert.Len(t, result, 1)
	})

	t.Run("missing job is not-found", func(t *testing.T) {
		messages := new(MockMessageRepository)
		jobs := new(MockJobRepository)
		jobs.On("FindByID", mock.Anything, uint(404)).Return(nil, gorm.ErrRecordNotFound)

		svc := NewMessageService(messages, jobs)
		_, err := svc.ListByJob(context.Background(), 404, 0, 100)
		assert.ErrorIs(t, err, apperrors.ErrJobNotFound)
	})
}
