package repository

import (
	"context"

	"anphu.vn/residencehub/internal/entity"
	"gorm.io/gorm"
)

type FeedbackRepository interface {
	Create(ctx context.Context, feedback *entity.Feedback) error
	FindAll(ctx context.Context) ([]entity.Feedback, error)
}

type feedbackRepository struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &feedbackRepository{db: db}
}

func (r *feedbackRepository) Create(ctx context.Context, feedback *entity.Feedback) error {
	return r.db.WithContext(ctx).Create(feedback).Error
}

func (r *feedbackRepository) FindAll(ctx context.Context) ([]entity.Feedback, error) {
	var feedbacks []entity.Feedback
	if err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("created_at DESC").
		Find(&feedbacks).Error; err != nil {
		return nil, err
	}
	return feedbacks, nil
}
