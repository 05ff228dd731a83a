package repository

import (
	"context"
	"testing"

	"skillswap/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_GetByID(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	seedUser(t, db, "auth0|alice", "Alice")

	t.Run("Success", func(t *testing.T) {
		user, err := repo.GetByID(ctx, "auth0|alice")
		require.NoError(t, err)
		assert.Equal(t, "Alice", user.Name)
	})

	t.Run("Not Found", func(t *testing.T) {
		user, err := repo.GetByID(ctx, "auth0|nobody")
		assert.Nil(t, user)
		require.Error(t, err)
		assert.True(t, models.IsNotFound(err))
	})
}

func TestUserRepository_GetByEmail(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	seedUser(t, db, "auth0|alice", "Alice")

	t.Run("Found", func(t *testing.T) {
		user, err := repo.GetByEmail(ctx, "auth0|alice@example.com")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "auth0|alice", user.ID)
	})

	t.Run("Absent returns nil without error", func(t *testing.T) {
		user, err := repo.GetByEmail(ctx, "missing@example.com")
		require.NoError(t, err)
		assert.Nil(t, user)
	})
}

func TestUserRepository_Create_DuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	seedUser(t, db, "auth0|alice", "Alice")

	err := repo.Create(ctx, &models.User{
		ID:    "auth0|other",
		Name:  "Other",
		Email: "auth0|alice@example.com",
	})
	require.Error(t, err)
	assert.True(t, models.IsConflict(err))
}

func TestUserRepository_ListVisible(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	seedUser(t, db, "auth0|alice", "Alice")
	seedUser(t, db, "auth0|bob", "Bob")

	private := seedUser(t, db, "auth0|carol", "Carol")
	require.NoError(t, db.Model(private).Update("is_public", false).Error)

	banned := seedUser(t, db, "auth0|dave", "Dave")
	require.NoError(t, db.Model(banned).Update("is_banned", true).Error)

	inactive := seedUser(t, db, "auth0|erin", "Erin")
	require.NoError(t, db.Model(inactive).Update("is_active", false).Error)

	t.Run("Filters hidden users", func(t *testing.T) {
		users, err := repo.ListVisible(ctx, "")
		require.NoError(t, err)

		names := make([]string, 0, len(users))
		for _, u := range users {
			names = append(names, u.Name)
		}
		assert.ElementsMatch(t, []string{"Alice", "Bob"}, names)
	})

	t.Run("Excludes the caller", func(t *testing.T) {
		users, err := repo.ListVisible(ctx, "auth0|alice")
		require.NoError(t, err)
		require.Len(t, users, 1)
		assert.Equal(t, "Bob", users[0].Name)
	})
}

func TestUserRepository_SearchBySkill(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	alice := seedUser(t, db, "auth0|alice", "Alice")
	alice.SkillsOffered = models.SkillList{"Go", "Cooking"}
	require.NoError(t, db.Save(alice).Error)

	bob := seedUser(t, db, "auth0|bob", "Bob")
	bob.SkillsWanted = models.SkillList{"Cooking"}
	require.NoError(t, db.Save(bob).Error)

	hidden := seedUser(t, db, "auth0|carol", "Carol")
	hidden.SkillsOffered = models.SkillList{"Cooking"}
	hidden.IsPublic = false
	require.NoError(t, db.Save(hidden).Error)

	t.Run("Matches offered and wanted", func(t *testing.T) {
		users, err := repo.SearchBySkill(ctx, "Cooking")
		require.NoError(t, err)

		names := make([]string, 0, len(users))
		for _, u := range users {
			names = append(names, u.Name)
		}
		assert.ElementsMatch(t, []string{"Alice", "Bob"}, names)
	})

	t.Run("Exact match only", func(t *testing.T) {
		users, err := repo.SearchBySkill(ctx, "cooking")
		require.NoError(t, err)
		assert.Empty(t, users)
	})

	t.Run("No matches", func(t *testing.T) {
		users, err := repo.SearchBySkill(ctx, "Juggling")
		require.NoError(t, err)
		assert.Empty(t, users)
	})
}

func TestUserRepository_SetBanned(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	seedUser(t, db, "auth0|alice", "Alice")

	t.Run("Ban and unban", func(t *testing.T) {
		user, err := repo.SetBanned(ctx, "auth0|alice", true)
		require.NoError(t, err)
		assert.True(t, user.IsBanned)

		user, err = repo.SetBanned(ctx, "auth0|alice", false)
		require.NoError(t, err)
		assert.False(t, user.IsBanned)
	})

	t.Run("Unknown user", func(t *testing.T) {
		_, err := repo.SetBanned(ctx, "auth0|nobody", true)
		require.Error(t, err)
		assert.True(t, models.IsNotFound(err))
	})
}
