package server

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"skillswap/internal/database"
	"skillswap/internal/models"
	"skillswap/internal/repository"
	"skillswap/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestServer builds a Server on a fresh in-memory database and a fiber
// app that authenticates every request as the given user ID.
func newTestServer(t *testing.T, actorID string) (*Server, *fiber.App, *gorm.DB) {
	t.Helper()

	dsn := "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "_" + uuid.New().String() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	userRepo := repository.NewUserRepository(db)
	swapRepo := repository.NewSwapRepository(db)
	feedbackRepo := repository.NewFeedbackRepository(db)

	s := &Server{
		db:              db,
		userRepo:        userRepo,
		swapRepo:        swapRepo,
		feedbackRepo:    feedbackRepo,
		userService:     service.NewUserService(userRepo),
		swapService:     service.NewSwapService(swapRepo, userRepo),
		feedbackService: service.NewFeedbackService(feedbackRepo, swapRepo),
	}

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("userID", actorID)
		return c.Next()
	})

	return s, app, db
}

func createTestUser(t *testing.T, db *gorm.DB, id, name string) *models.User {
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

func createTestSwap(t *testing.T, db *gorm.DB, from, to *models.User, status models.SwapStatus) *models.SwapRequest {
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

func decodeBody(t *testing.T, resp *http.Response, dest any) {
	t.Helper()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(body, dest))
}
