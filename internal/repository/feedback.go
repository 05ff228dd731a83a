package repository

import (
	"context"

	"skillswap/internal/models"

	"gorm.io/gorm"
)

// FeedbackRepository defines persistence operations for swap feedback.
type FeedbackRepository interface {
	Create(ctx context.Context, fb *models.Feedback) error
	ListForSwap(ctx context.Context, swapID string) ([]models.Feedback, error)
}

type feedbackRepository struct {
	db *gorm.DB
}

// NewFeedbackRepository returns a new FeedbackRepository implementation.
func NewFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &feedbackRepository{db: db}
}

func (r *feedbackRepository) Create(ctx context.Context, fb *models.Feedback) error {
	if err := r.db.WithContext(ctx).Create(fb).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("Feedback already submitted for this swap")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *feedbackRepository) ListForSwap(ctx context.Context, swapID string) ([]models.Feedback, error) {
	var feedback []models.Feedback
	err := r.db.WithContext(ctx).
		Where("swap_request_id = ?", swapID).
		Order("created_at ASC").
		Find(&feedback).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return feedback, nil
}
