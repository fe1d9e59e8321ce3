package server

import (
	"plume/internal/models"

	"github.com/gofiber/fiber/v2"
)

// CreateFollow handles POST /api/follows (protected). The follower side of
// the edge is always the authenticated user; the body names only the target.
func (s *Server) CreateFollow(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Locals("userID").(uint)

	var req struct {
		Following string `json:"following"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	follow, err := s.followService.CreateFollow(ctx, userID, req.Following)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(follow)
}

// GetFollows handles GET /api/follows (protected). An optional ?search=
// query parameter matches either side of the edge by exact username.
func (s *Server) GetFollows(c *fiber.Ctx) error {
	follows, err := s.followService.ListFollows(c.UserContext(), c.Query("search"))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(follows)
}
