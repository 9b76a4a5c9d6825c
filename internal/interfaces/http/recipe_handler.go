package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/despensa-api/internal/application/dto"
	"github.com/jhoicas/despensa-api/internal/application/usecase"
	"github.com/jhoicas/despensa-api/internal/domain"
)

// RecipeHandler maneja la sugerencia de recetas.
type RecipeHandler struct {
	uc *usecase.RecipeUseCase
}

// NewRecipeHandler construye el handler.
func NewRecipeHandler(uc *usecase.RecipeUseCase) *RecipeHandler {
	return &RecipeHandler{uc: uc}
}

// Suggest godoc
// @Summary      Sugerir una receta con el inventario actual
// @Tags         recipe
// @Produce      json
// @Success      200  {object}  dto.RecipeResponse
// @Failure      400  {object}  dto.ErrorResponse  "inventario vacío"
// @Failure      502  {object}  dto.ErrorResponse  "fallo del proveedor de IA"
// @Router       /api/recipe [post]
func (h *RecipeHandler) Suggest(c *fiber.Ctx) error {
	out, err := h.uc.Suggest(c.Context())
	if err != nil {
		if errors.Is(err, domain.ErrEmptyInventory) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code: "EMPTY_INVENTORY", Message: "食材が登録されていません",
			})
		}
		if errors.Is(err, domain.ErrAIProvider) {
			// El fallo del proveedor no cae al modo demo ni se reintenta.
			return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
				Code: "AI_PROVIDER", Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
