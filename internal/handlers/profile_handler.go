package handlers

import (
	"github.com/gofiber/fiber/v2"

	"careercoach/dashboard-api/internal/models"
	"careercoach/dashboard-api/internal/profile"
)

type ProfileHandler struct {
	store profile.Store
}

func NewProfileHandler(store profile.Store) *ProfileHandler {
	return &ProfileHandler{
		store: store,
	}
}

// HandleGetProfile handles GET /profile
func (h *ProfileHandler) HandleGetProfile(c *fiber.Ctx) error {
	return c.JSON(h.store.Get())
}

// HandleUpdateProfile handles PUT /profile
func (h *ProfileHandler) HandleUpdateProfile(c *fiber.Ctx) error {
	var p models.Profile

	if err := c.BodyParser(&p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	return c.JSON(h.store.Save(p))
}
