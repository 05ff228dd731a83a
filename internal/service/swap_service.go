package service

import (
	"context"
	"strings"

	"skillswap/internal/middleware"
	"skillswap/internal/models"
	"skillswap/internal/repository"

	"github.com/google/uuid"
)

// SwapService provides swap request business logic.
type SwapService struct {
	swapRepo repository.SwapRepository
	userRepo repository.UserRepository
}

// NewSwapService returns a new SwapService.
func NewSwapService(swapRepo repository.SwapRepository, userRepo repository.UserRepository) *SwapService {
	return &SwapService{
		swapRepo: swapRepo,
		userRepo: userRepo,
	}
}

// CreateSwapInput carries the fields for a new swap request.
type CreateSwapInput struct {
	ToUserID     string `json:"to_user_id"`
	SkillOffered string `json:"skill_offered"`
	SkillWanted  string `json:"skill_wanted"`
	Message      string `json:"message"`
}

// Create opens a new pending swap request from the caller to the recipient.
// Party display names are snapshotted from the profiles at creation time.
func (s *SwapService) Create(ctx context.Context, fromUserID string, input CreateSwapInput) (*models.SwapRequest, error) {
	input.SkillOffered = strings.TrimSpace(input.SkillOffered)
	input.SkillWanted = strings.TrimSpace(input.SkillWanted)

	if input.ToUserID == "" {
		return nil, models.NewValidationError("Recipient is required")
	}
	if input.ToUserID == fromUserID {
		return nil, models.NewValidationError("Cannot open a swap with yourself")
	}
	if input.SkillOffered == "" || input.SkillWanted == "" {
		return nil, models.NewValidationError("Both offered and wanted skills are required")
	}

	fromUser, err := s.userRepo.GetByID(ctx, fromUserID)
	if err != nil {
		return nil, err
	}
	toUser, err := s.userRepo.GetByID(ctx, input.ToUserID)
	if err != nil {
		// An unknown recipient is a bad request, not a missing resource.
		if models.IsNotFound(err) {
			return nil, models.NewValidationError("Target user does not exist")
		}
		return nil, err
	}

	swap := &models.SwapRequest{
		ID:           uuid.New().String(),
		FromUserID:   fromUser.ID,
		ToUserID:     toUser.ID,
		FromUserName: fromUser.Name,
		ToUserName:   toUser.Name,
		SkillOffered: input.SkillOffered,
		SkillWanted:  input.SkillWanted,
		Message:      input.Message,
		Status:       models.SwapStatusPending,
	}
	if err := s.swapRepo.Create(ctx, swap); err != nil {
		return nil, err
	}

	middleware.SwapTransitions.WithLabelValues(string(models.SwapStatusPending)).Inc()
	return swap, nil
}

// GetByID returns a swap visible to the caller. Non-participants are told the
// swap does not exist rather than that it is off-limits.
func (s *SwapService) GetByID(ctx context.Context, actorID, swapID string) (*models.SwapRequest, error) {
	swap, err := s.swapRepo.GetByID(ctx, swapID)
	if err != nil {
		return nil, err
	}
	if !swap.IsParticipant(actorID) {
		return nil, models.NewNotFoundError("Swap request", swapID)
	}
	return swap, nil
}

// Accept moves a pending swap to accepted. Only the recipient may accept;
// any other caller, and any non-pending swap, looks like a missing swap.
func (s *SwapService) Accept(ctx context.Context, actorID, swapID string) (*models.SwapRequest, error) {
	return s.settle(ctx, actorID, swapID, models.SwapStatusAccepted, "accept")
}

// Reject moves a pending swap to rejected. Same visibility rules as Accept.
func (s *SwapService) Reject(ctx context.Context, actorID, swapID string) (*models.SwapRequest, error) {
	return s.settle(ctx, actorID, swapID, models.SwapStatusRejected, "reject")
}

func (s *SwapService) settle(ctx context.Context, actorID, swapID string, to models.SwapStatus, operation string) (*models.SwapRequest, error) {
	ok, err := s.swapRepo.TransitionStatus(ctx, swapID, actorID, models.SwapStatusPending, to)
	if err != nil {
		return nil, err
	}
	if ok {
		middleware.SwapTransitions.WithLabelValues(string(to)).Inc()
		return s.swapRepo.GetByID(ctx, swapID)
	}

	// The guarded update matched nothing. Wrong actor, wrong state and a
	// missing row all get the same answer; the fetch only feeds the metric.
	if _, err := s.swapRepo.GetByID(ctx, swapID); err == nil {
		middleware.SwapAuthorizationDenials.WithLabelValues(operation).Inc()
	}
	return nil, models.NewNotFoundError("Swap request", swapID)
}

// Delete removes a swap and its feedback. Only the creator may delete; any
// other caller is told the swap does not exist.
func (s *SwapService) Delete(ctx context.Context, actorID, swapID string) error {
	ok, err := s.swapRepo.DeleteOwned(ctx, swapID, actorID)
	if err != nil {
		return err
	}
	if ok {
		return nil
	}

	if _, err := s.swapRepo.GetByID(ctx, swapID); err == nil {
		middleware.SwapAuthorizationDenials.WithLabelValues("delete").Inc()
	}
	return models.NewNotFoundError("Swap request", swapID)
}

// ListForUser returns every swap the user participates in, either side.
func (s *SwapService) ListForUser(ctx context.Context, userID string) ([]models.SwapRequest, error) {
	return s.swapRepo.ListForUser(ctx, userID)
}

// ListAll returns swaps across all users, paged by limit/offset.
func (s *SwapService) ListAll(ctx context.Context, limit, offset int) ([]models.SwapRequest, error) {
	return s.swapRepo.ListAll(ctx, limit, offset)
}
