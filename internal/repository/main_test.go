package repository

import (
	"strings"
	"testing"

	"skillswap/internal/database"
	"skillswap/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory sqlite database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// A named shared in-memory database gives every pooled connection the
	// same schema while keeping tests isolated from each other.
	dsn := "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, database.Migrate(db))

	return db
}

func seedUser(t *testing.T, db *gorm.DB, id, name string) *models.User {
	t.Helper()

	user := &models.User{
		ID:       id,
		Name:     name,
		Email:    id + "@example.com",
		IsPublic: true,
		IsActive: true,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}
