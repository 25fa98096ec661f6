package repository

import (
	"context"

	"gorm.io/gorm"

	"taskconnect/internal/model"
)

// MessageRepository defines message persistence operations.
type MessageRepository interface {
	Create(ctx context.Context, message *model.Message) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Message, error)
	ListByJob(ctx context.Context, jobID uint, offset, limit int) ([]model.Message, error)
}

type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository builds a GORM-backed message repository.
func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, message *model.Message) error {
	return r.db.WithContext(ctx).Create(message).Error
}

func (r *messageRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Message{}, id).Error
}

func (r *messageRepository) FindByID(ctx context.Context, id uint) (*model.Message, error) {
	var message model.Message
	if err := r.db.WithContext(ctx).First(&message, id).Error; err != nil {
		return nil, err
	}
	return &message, nil
}

func (r *messageRepository) ListByJob(ctx context.Context, jobID uint, offset, limit int) ([]model.Message, error) {
	var messages []model.Message
	if err := r.db.WithContext(ctx).Where("job_id = ?", jobID).
		Offset(offset).Limit(limit).Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}
