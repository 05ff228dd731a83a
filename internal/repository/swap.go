package repository

import (
	"context"
	"errors"

	"skillswap/internal/cache"
	"skillswap/internal/models"

	"gorm.io/gorm"
)

// SwapRepository defines persistence operations for swap requests.
type SwapRepository interface {
	Create(ctx context.Context, swap *models.SwapRequest) error
	GetByID(ctx context.Context, id string) (*models.SwapRequest, error)
	// TransitionStatus moves a swap from one status to another, guarded so
	// only the recipient of a swap in the expected prior status can move it.
	// Returns false when no row matched the guard.
	TransitionStatus(ctx context.Context, swapID, recipientID string, from, to models.SwapStatus) (bool, error)
	// DeleteOwned removes a swap and its feedback, guarded on the creator.
	// Returns false when no row matched the guard.
	DeleteOwned(ctx context.Context, swapID, ownerID string) (bool, error)
	ListForUser(ctx context.Context, userID string) ([]models.SwapRequest, error)
	ListAll(ctx context.Context, limit, offset int) ([]models.SwapRequest, error)
}

type swapRepository struct {
	db *gorm.DB
}

// NewSwapRepository returns a new SwapRepository implementation.
func NewSwapRepository(db *gorm.DB) SwapRepository {
	return &swapRepository{db: db}
}

func (r *swapRepository) Create(ctx context.Context, swap *models.SwapRequest) error {
	if err := r.db.WithContext(ctx).Create(swap).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *swapRepository) GetByID(ctx context.Context, id string) (*models.SwapRequest, error) {
	var swap models.SwapRequest
	key := cache.SwapKey(id)

	err := cache.Aside(ctx, key, &swap, cache.SwapTTL, func() error {
		if err := r.db.WithContext(ctx).First(&swap, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Swap request", id)
			}
			return models.NewInternalError(err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return &swap, nil
}

func (r *swapRepository) TransitionStatus(ctx context.Context, swapID, recipientID string, from, to models.SwapStatus) (bool, error) {
	// Compare-and-set: the status guard in the WHERE clause means two
	// concurrent transitions on the same swap cannot both succeed.
	res := r.db.WithContext(ctx).
		Model(&models.SwapRequest{}).
		Where("id = ? AND to_user_id = ? AND status = ?", swapID, recipientID, from).
		Update("status", to)
	if res.Error != nil {
		return false, models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return false, nil
	}

	cache.InvalidateSwap(ctx, swapID)
	return true, nil
}

func (r *swapRepository) DeleteOwned(ctx context.Context, swapID, ownerID string) (bool, error) {
	var deleted bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND from_user_id = ?", swapID, ownerID).
			Delete(&models.SwapRequest{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		deleted = true
		// Feedback rows carry no meaning without their swap.
		return tx.Where("swap_request_id = ?", swapID).
			Delete(&models.Feedback{}).Error
	})
	if err != nil {
		return false, models.NewInternalError(err)
	}

	if deleted {
		cache.InvalidateSwap(ctx, swapID)
	}
	return deleted, nil
}

func (r *swapRepository) ListForUser(ctx context.Context, userID string) ([]models.SwapRequest, error) {
	var swaps []models.SwapRequest
	err := r.db.WithContext(ctx).
		Where("from_user_id = ? OR to_user_id = ?", userID, userID).
		Order("created_at DESC").
		Find(&swaps).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return swaps, nil
}

func (r *swapRepository) ListAll(ctx context.Context, limit, offset int) ([]models.SwapRequest, error) {
	var swaps []models.SwapRequest
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&swaps).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return swaps, nil
}
