package handlers

import (
	"github.com/gofiber/fiber/v2"

	"careercoach/dashboard-api/internal/models"
	"careercoach/dashboard-api/internal/services"
)

type CritiqueHandler struct {
	critiqueService services.CritiqueService
}

func NewCritiqueHandler(critiqueService services.CritiqueService) *CritiqueHandler {
	return &CritiqueHandler{
		critiqueService: critiqueService,
	}
}

// HandleCritique handles POST /critique
func (h *CritiqueHandler) HandleCritique(c *fiber.Ctx) error {
	var req models.CritiqueRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	result, err := h.critiqueService.Critique(c.UserContext(), &req)
	if err != nil {
		return c.Status(services.HTTPStatus(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(models.CritiqueResponse{Result: result})
}
