package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"taskconnect/internal/auth"
	apperrors "taskconnect/internal/errors"
	"taskconnect/internal/model"
	"taskconnect/internal/repository"
)

// MessageService handles job-scoped messages. The policy is sender-based:
// creation stamps the caller as sender, and single reads and deletes
// require the caller to be that sender.
type MessageService interface {
	Create(ctx context.Context, caller *model.User, msg *model.Message) error
	ListByJob(ctx context.Context, jobID uint, offset, limit int) ([]model.Message, error)
	Get(ctx context.Context, caller *model.User, id uint) (*model.Message, error)
	Delete(ctx context.Context, caller *model.User, id uint) error
}

type messageService struct {
	messages repository.MessageRepository
	jobs     repository.JobRepository
}

// NewMessageService creates a new message service.
func NewMessageService(messages repository.MessageRepository, jobs repository.JobRepository) MessageService {
	return &messageService{
		messages: messages,
		jobs:     jobs,
	}
}

// Create persists a new message authored by the caller. The parent job
// must exist.
func (s *messageService) Create(ctx context.Context, caller *model.User, msg *model.Message) error {
	if _, err := s.jobs.FindByID(ctx, msg.JobID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrJobNotFound
		}
		return fmt.Errorf("find job: %w", err)
	}

	msg.SenderID = caller.ID
	if err := s.messages.Create(ctx, msg); err != nil {
		return fmt.Errorf("create message: %w", err)
	}
	return nil
}

// ListByJob returns the messages attached to a job.
func (s *messageService) ListByJob(ctx context.Context, jobID uint, offset, limit int) ([]model.Message, error) {
	if _, err := s.jobs.FindByID(ctx, jobID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, fmt.Errorf("find job: %w", err)
	}

	messages, err := s.messages.ListByJob(ctx, jobID, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	return messages, nil
}

// Get returns a single message iff the caller is its sender.
func (s *messageService) Get(ctx context.Context, caller *model.User, id uint) (*model.Message, error) {
	msg, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := auth.Authorize(caller, msg.SenderID); err != nil {
		return nil, err
	}
	return msg, nil
}

// Delete removes a message iff the caller is its sender.
func (s *messageService) Delete(ctx context.Context, caller *model.User, id uint) error {
	msg, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	if err := auth.Authorize(caller, msg.SenderID); err != nil {
		return err
	}

	if err := s.messages.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete message: %w", err)
	}
	return nil
}

func (s *messageService) find(ctx context.Context, id uint) (*model.Message, error) {
	msg, err := s.messages.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMessageNotFound
		}
		return nil, fmt.Errorf("find message: %w", err)
	}
	return msg, nil
}
