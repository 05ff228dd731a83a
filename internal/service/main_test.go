package service

import (
	"context"

	"skillswap/internal/models"
)

type userRepoStub struct {
	getByIDFn       func(context.Context, string) (*models.User, error)
	getByEmailFn    func(context.Context, string) (*models.User, error)
	createFn        func(context.Context, *models.User) error
	updateFn        func(context.Context, *models.User) error
	listVisibleFn   func(context.Context, string) ([]models.User, error)
	searchBySkillFn func(context.Context, string) ([]models.User, error)
	listAllFn       func(context.Context, int, int) ([]models.User, error)
	setBannedFn     func(context.Context, string, bool) (*models.User, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id string) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) ListVisible(ctx context.Context, excludeID string) ([]models.User, error) {
	return s.listVisibleFn(ctx, excludeID)
}
func (s *userRepoStub) SearchBySkill(ctx context.Context, skill string) ([]models.User, error) {
	return s.searchBySkillFn(ctx, skill)
}
func (s *userRepoStub) ListAll(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.listAllFn(ctx, limit, offset)
}
func (s *userRepoStub) SetBanned(ctx context.Context, id string, banned bool) (*models.User, error) {
	return s.setBannedFn(ctx, id, banned)
}

type swapRepoStub struct {
	createFn           func(context.Context, *models.SwapRequest) error
	getByIDFn          func(context.Context, string) (*models.SwapRequest, error)
	transitionStatusFn func(context.Context, string, string, models.SwapStatus, models.SwapStatus) (bool, error)
	deleteOwnedFn      func(context.Context, string, string) (bool, error)
	listForUserFn      func(context.Context, string) ([]models.SwapRequest, error)
	listAllFn          func(context.Context, int, int) ([]models.SwapRequest, error)
}

func (s *swapRepoStub) Create(ctx context.Context, swap *models.SwapRequest) error {
	return s.createFn(ctx, swap)
}
func (s *swapRepoStub) GetByID(ctx context.Context, id string) (*models.SwapRequest, error) {
	return s.getByIDFn(ctx, id)
}
func (s *swapRepoStub) TransitionStatus(ctx context.Context, swapID, recipientID string, from, to models.SwapStatus) (bool, error) {
	return s.transitionStatusFn(ctx, swapID, recipientID, from, to)
}
func (s *swapRepoStub) DeleteOwned(ctx context.Context, swapID, ownerID string) (bool, error) {
	return s.deleteOwnedFn(ctx, swapID, ownerID)
}
func (s *swapRepoStub) ListForUser(ctx context.Context, userID string) ([]models.SwapRequest, error) {
	return s.listForUserFn(ctx, userID)
}
func (s *swapRepoStub) ListAll(ctx context.Context, limit, offset int) ([]models.SwapRequest, error) {
	return s.listAllFn(ctx, limit, offset)
}

type feedbackRepoStub struct {
	createFn      func(context.Context, *models.Feedback) error
	listForSwapFn func(context.Context, string) ([]models.Feedback, error)
}

func (s *feedbackRepoStub) Create(ctx context.Context, fb *models.Feedback) error {
	return s.createFn(ctx, fb)
}
func (s *feedbackRepoStub) ListForSwap(ctx context.Context, swapID string) ([]models.Feedback, error) {
	return s.listForSwapFn(ctx, swapID)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn: func(_ context.Context, id string) (*models.User, error) {
			return &models.User{ID: id, Name: "User " + id}, nil
		},
		getByEmailFn:    func(context.Context, string) (*models.User, error) { return nil, nil },
		createFn:        func(context.Context, *models.User) error { return nil },
		updateFn:        func(context.Context, *models.User) error { return nil },
		listVisibleFn:   func(context.Context, string) ([]models.User, error) { return nil, nil },
		searchBySkillFn: func(context.Context, string) ([]models.User, error) { return nil, nil },
		listAllFn:       func(context.Context, int, int) ([]models.User, error) { return nil, nil },
		setBannedFn:     func(context.Context, string, bool) (*models.User, error) { return &models.User{}, nil },
	}
}

func noopSwapRepo() *swapRepoStub {
	return &swapRepoStub{
		createFn:  func(context.Context, *models.SwapRequest) error { return nil },
		getByIDFn: func(context.Context, string) (*models.SwapRequest, error) { return &models.SwapRequest{}, nil },
		transitionStatusFn: func(context.Context, string, string, models.SwapStatus, models.SwapStatus) (bool, error) {
			return true, nil
		},
		deleteOwnedFn: func(context.Context, string, string) (bool, error) { return true, nil },
		listForUserFn: func(context.Context, string) ([]models.SwapRequest, error) { return nil, nil },
		listAllFn:     func(context.Context, int, int) ([]models.SwapRequest, error) { return nil, nil },
	}
}

func noopFeedbackRepo() *feedbackRepoStub {
	return &feedbackRepoStub{
		createFn:      func(context.Context, *models.Feedback) error { return nil },
		listForSwapFn: func(context.Context, string) ([]models.Feedback, error) { return nil, nil },
	}
}
