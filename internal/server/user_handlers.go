package server

import (
	"skillswap/internal/models"
	"skillswap/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetMyProfile handles GET /api/users/profile
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := currentUserID(c)

	user, err := s.userService.GetByID(ctx, userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(user)
}

// CreateOrUpdateProfile handles POST /api/users/profile. The authentication
// layer provisions a bare profile on first contact, so this composes
// create-or-update by applying the posted fields on top of it. Both branches
// answer 200; the caller cannot tell first contact from a later rewrite.
func (s *Server) CreateOrUpdateProfile(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := currentUserID(c)

	var input service.UpdateProfileInput
	if err := c.BodyParser(&input); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.UpdateProfile(ctx, userID, input)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(user)
}

// UpdateMyProfile handles PUT /api/users/profile. Only fields present in the
// body are touched.
func (s *Server) UpdateMyProfile(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := currentUserID(c)

	var input service.UpdateProfileInput
	if err := c.BodyParser(&input); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.UpdateProfile(ctx, userID, input)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(user)
}

// SearchUsers handles GET /api/users/search?skill=
func (s *Server) SearchUsers(c *fiber.Ctx) error {
	ctx := c.Context()

	profiles, err := s.userService.SearchBySkill(ctx, c.Query("skill"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(profiles)
}

// GetUsers handles GET /api/users. Returns the browsable directory without
// the caller's own entry.
func (s *Server) GetUsers(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := currentUserID(c)

	profiles, err := s.userService.ListPublic(ctx, userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(profiles)
}
