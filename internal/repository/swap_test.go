package repository

import (
	"context"
	"testing"

	"skillswap/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock
}

func seedSwap(t *testing.T, db *gorm.DB, from, to *models.User, status models.SwapStatus) *models.SwapRequest {
	t.Helper()

	swap := &models.SwapRequest{
		ID:           uuid.New().String(),
		FromUserID:   from.ID,
		ToUserID:     to.ID,
		FromUserName: from.Name,
		ToUserName:   to.Name,
		SkillOffered: "Go",
		SkillWanted:  "Cooking",
		Status:       status,
	}
	require.NoError(t, db.Create(swap).Error)
	return swap
}

func TestSwapRepository_GetByID(t *testing.T) {
	db := newTestDB(t)
	repo := NewSwapRepository(db)
	ctx := context.Background()

	alice := seedUser(t, db, "auth0|alice", "Alice")
	bob := seedUser(t, db, "auth0|bob", "Bob")
	swap := seedSwap(t, db, alice, bob, models.SwapStatusPending)

	t.Run("Success", func(t *testing.T) {
		got, err := repo.GetByID(ctx, swap.ID)
		require.NoError(t, err)
		assert.Equal(t, alice.ID, got.FromUserID)
		assert.Equal(t, models.SwapStatusPending, got.Status)
	})

	t.Run("Not Found", func(t *testing.T) {
		got, err := repo.GetByID(ctx, uuid.New().String())
		assert.Nil(t, got)
		require.Error(t, err)
		assert.True(t, models.IsNotFound(err))
	})
}

func TestSwapRepository_TransitionStatus(t *testing.T) {
	db := newTestDB(t)
	repo := NewSwapRepository(db)
	ctx := context.Background()

	alice := seedUser(t, db, "auth0|alice", "Alice")
	bob := seedUser(t, db, "auth0|bob", "Bob")

	t.Run("Recipient accepts pending swap", func(t *testing.T) {
		swap := seedSwap(t, db, alice, bob, models.SwapStatusPending)

		ok, err := repo.TransitionStatus(ctx, swap.ID, bob.ID, models.SwapStatusPending, models.SwapStatusAccepted)
		require.NoError(t, err)
		assert.True(t, ok)

		got, err := repo.GetByID(ctx, swap.ID)
		require.NoError(t, err)
		assert.Equal(t, models.SwapStatusAccepted, got.Status)
	})

	t.Run("Creator cannot transition", func(t *testing.T) {
		swap := seedSwap(t, db, alice, bob, models.SwapStatusPending)

		ok, err := repo.TransitionStatus(ctx, swap.ID, alice.ID, models.SwapStatusPending, models.SwapStatusAccepted)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Settled swap stays settled", func(t *testing.T) {
		swap := seedSwap(t, db, alice, bob, models.SwapStatusRejected)

		ok, err := repo.TransitionStatus(ctx, swap.ID, bob.ID, models.SwapStatusPending, models.SwapStatusAccepted)
		require.NoError(t, err)
		assert.False(t, ok)

		got, err := repo.GetByID(ctx, swap.ID)
		require.NoError(t, err)
		assert.Equal(t, models.SwapStatusRejected, got.Status)
	})

	t.Run("Unknown swap", func(t *testing.T) {
		ok, err := repo.TransitionStatus(ctx, uuid.New().String(), bob.ID, models.SwapStatusPending, models.SwapStatusAccepted)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestSwapRepository_TransitionStatus_Guard(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewSwapRepository(db)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "swap_requests" SET`).
		WithArgs(string(models.SwapStatusAccepted), sqlmock.AnyArg(), "swap-1", "auth0|bob", string(models.SwapStatusPending)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	ok, err := repo.TransitionStatus(ctx, "swap-1", "auth0|bob", models.SwapStatusPending, models.SwapStatusAccepted)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSwapRepository_DeleteOwned(t *testing.T) {
	db := newTestDB(t)
	repo := NewSwapRepository(db)
	feedbackRepo := NewFeedbackRepository(db)
	ctx := context.Background()

	alice := seedUser(t, db, "auth0|alice", "Alice")
	bob := seedUser(t, db, "auth0|bob", "Bob")

	t.Run("Creator deletes swap and its feedback", func(t *testing.T) {
		swap := seedSwap(t, db, alice, bob, models.SwapStatusAccepted)
		require.NoError(t, feedbackRepo.Create(ctx, &models.Feedback{
			ID:            uuid.New().String(),
			SwapRequestID: swap.ID,
			FromUserID:    alice.ID,
			ToUserID:      bob.ID,
			Rating:        5,
		}))

		ok, err := repo.DeleteOwned(ctx, swap.ID, alice.ID)
		require.NoError(t, err)
		assert.True(t, ok)

		_, err = repo.GetByID(ctx, swap.ID)
		assert.True(t, models.IsNotFound(err))

		fb, err := feedbackRepo.ListForSwap(ctx, swap.ID)
		require.NoError(t, err)
		assert.Empty(t, fb)
	})

	t.Run("Recipient cannot delete", func(t *testing.T) {
		swap := seedSwap(t, db, alice, bob, models.SwapStatusPending)

		ok, err := repo.DeleteOwned(ctx, swap.ID, bob.ID)
		require.NoError(t, err)
		assert.False(t, ok)

		got, err := repo.GetByID(ctx, swap.ID)
		require.NoError(t, err)
		assert.Equal(t, swap.ID, got.ID)
	})
}

func TestSwapRepository_ListForUser(t *testing.T) {
	db := newTestDB(t)
	repo := NewSwapRepository(db)
	ctx := context.Background()

	alice := seedUser(t, db, "auth0|alice", "Alice")
	bob := seedUser(t, db, "auth0|bob", "Bob")
	carol := seedUser(t, db, "auth0|carol", "Carol")

	asCreator := seedSwap(t, db, alice, bob, models.SwapStatusPending)
	asRecipient := seedSwap(t, db, carol, alice, models.SwapStatusPending)
	seedSwap(t, db, bob, carol, models.SwapStatusPending)

	swaps, err := repo.ListForUser(ctx, alice.ID)
	require.NoError(t, err)

	ids := make([]string, 0, len(swaps))
	for _, s := range swaps {
		ids = append(ids, s.ID)
	}
	assert.ElementsMatch(t, []string{asCreator.ID, asRecipient.ID}, ids)
}
