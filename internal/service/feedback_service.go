package service

import (
	"context"

	"skillswap/internal/models"
	"skillswap/internal/repository"

	"github.com/google/uuid"
)

// FeedbackService provides post-swap rating business logic.
type FeedbackService struct {
	feedbackRepo repository.FeedbackRepository
	swapRepo     repository.SwapRepository
}

// NewFeedbackService returns a new FeedbackService.
func NewFeedbackService(feedbackRepo repository.FeedbackRepository, swapRepo repository.SwapRepository) *FeedbackService {
	return &FeedbackService{
		feedbackRepo: feedbackRepo,
		swapRepo:     swapRepo,
	}
}

// CreateFeedbackInput carries the fields for a new feedback entry.
type CreateFeedbackInput struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// Create records the caller's rating of their counterpart on an accepted
// swap. The ratee is always the other participant; callers cannot choose it.
func (s *FeedbackService) Create(ctx context.Context, actorID, swapID string, input CreateFeedbackInput) (*models.Feedback, error) {
	if !models.ValidRating(input.Rating) {
		return nil, models.NewValidationError("Rating must be between 1 and 5")
	}

	swap, err := s.swapRepo.GetByID(ctx, swapID)
	if err != nil {
		return nil, err
	}
	if !swap.IsParticipant(actorID) {
		return nil, models.NewNotFoundError("Swap request", swapID)
	}
	if swap.Status != models.SwapStatusAccepted {
		return nil, models.NewValidationError("Feedback is only allowed on accepted swaps")
	}

	fb := &models.Feedback{
		ID:            uuid.New().String(),
		SwapRequestID: swap.ID,
		FromUserID:    actorID,
		ToUserID:      swap.Counterpart(actorID),
		Rating:        input.Rating,
		Comment:       input.Comment,
	}
	if err := s.feedbackRepo.Create(ctx, fb); err != nil {
		return nil, err
	}
	return fb, nil
}

// ListForSwap returns the feedback on a swap, visible to participants only.
func (s *FeedbackService) ListForSwap(ctx context.Context, actorID, swapID string) ([]models.Feedback, error) {
	swap, err := s.swapRepo.GetByID(ctx, swapID)
	if err != nil {
		return nil, err
	}
	if !swap.IsParticipant(actorID) {
		return nil, models.NewNotFoundError("Swap request", swapID)
	}
	return s.feedbackRepo.ListForSwap(ctx, swapID)
}
