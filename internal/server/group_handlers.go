package server

import (
	"plume/internal/models"

	"github.com/gofiber/fiber/v2"
)

// CreateGroup handles POST /api/groups (protected)
func (s *Server) CreateGroup(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req struct {
		Title string `json:"title"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	group, err := s.groupService.CreateGroup(ctx, req.Title)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(group)
}

// GetGroups handles GET /api/groups (public)
func (s *Server) GetGroups(c *fiber.Ctx) error {
	groups, err := s.groupService.ListGroups(c.UserContext())
	if err != nil {
		return respondServiceError(c, err)
	}
	if groups == nil {
		groups = []*models.Group{}
	}
	return c.JSON(groups)
}

// GetGroup handles GET /api/groups/:id (public)
func (s *Server) GetGroup(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	group, err := s.groupService.GetGroup(c.UserContext(), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(group)
}
