package server

import (
	"skillswap/internal/models"
	"skillswap/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateSwap handles POST /api/swaps/request
func (s *Server) CreateSwap(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := currentUserID(c)

	var input service.CreateSwapInput
	if err := c.BodyParser(&input); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	swap, err := s.swapService.Create(ctx, userID, input)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(swap)
}

// GetMySwaps handles GET /api/swaps. Returns swaps on either side of the
// caller, newest first.
func (s *Server) GetMySwaps(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := currentUserID(c)

	swaps, err := s.swapService.ListForUser(ctx, userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(swaps)
}

// GetSwap handles GET /api/swaps/:id
func (s *Server) GetSwap(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := currentUserID(c)

	swap, err := s.swapService.GetByID(ctx, userID, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(swap)
}

// AcceptSwap handles PATCH /api/swaps/:id/accept
func (s *Server) AcceptSwap(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := currentUserID(c)

	swap, err := s.swapService.Accept(ctx, userID, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(swap)
}

// RejectSwap handles PATCH /api/swaps/:id/reject
func (s *Server) RejectSwap(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := currentUserID(c)

	swap, err := s.swapService.Reject(ctx, userID, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(swap)
}

// DeleteSwap handles DELETE /api/swaps/:id
func (s *Server) DeleteSwap(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := currentUserID(c)

	if err := s.swapService.Delete(ctx, userID, c.Params("id")); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Swap request deleted"})
}

// CreateFeedback handles POST /api/swaps/:id/feedback
func (s *Server) CreateFeedback(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := currentUserID(c)

	var input service.CreateFeedbackInput
	if err := c.BodyParser(&input); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	fb, err := s.feedbackService.Create(ctx, userID, c.Params("id"), input)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fb)
}

// GetFeedback handles GET /api/swaps/:id/feedback
func (s *Server) GetFeedback(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := currentUserID(c)

	feedback, err := s.feedbackService.ListForSwap(ctx, userID, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(feedback)
}
