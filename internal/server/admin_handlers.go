package server

import (
	"skillswap/internal/models"

	"github.com/gofiber/fiber/v2"
)

// AdminGetUsers handles GET /api/admin/users. Returns users including
// hidden and banned ones, paged by limit/offset.
func (s *Server) AdminGetUsers(c *fiber.Ctx) error {
	ctx := c.Context()
	page := parsePagination(c, 50)

	users, err := s.userService.ListAll(ctx, page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(users)
}

// AdminBanUser handles PATCH /api/admin/users/:id/ban. An absent body bans;
// {"banned": false} lifts the ban.
func (s *Server) AdminBanUser(c *fiber.Ctx) error {
	ctx := c.Context()

	input := struct {
		Banned *bool `json:"banned"`
	}{}
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&input); err != nil {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Invalid request body"))
		}
	}
	banned := true
	if input.Banned != nil {
		banned = *input.Banned
	}

	user, err := s.userService.SetBanned(ctx, c.Params("id"), banned)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(user)
}

// AdminGetSwaps handles GET /api/admin/swaps
func (s *Server) AdminGetSwaps(c *fiber.Ctx) error {
	ctx := c.Context()
	page := parsePagination(c, 50)

	swaps, err := s.swapService.ListAll(ctx, page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(swaps)
}
