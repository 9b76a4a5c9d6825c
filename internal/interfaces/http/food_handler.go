package http

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/despensa-api/internal/application/dto"
	"github.com/jhoicas/despensa-api/internal/application/usecase"
)

// Mensajes 404 en japonés, distintos por tipo de entidad (igual que la UI).
const (
	msgFoodNotFound   = "食材が見つかりません"
	msgSupplyNotFound = "日用品が見つかりません"
)

// FoodHandler maneja las peticiones HTTP para alimentos.
type FoodHandler struct {
	uc       *usecase.FoodUseCase
	validate *validator.Validate
}

// NewFoodHandler construye el handler.
func NewFoodHandler(uc *usecase.FoodUseCase, validate *validator.Validate) *FoodHandler {
	return &FoodHandler{uc: uc, validate: validate}
}

// List godoc
// @Summary      Listar alimentos
// @Tags         foods
// @Produce      json
// @Success      200  {array}  dto.FoodResponse
// @Router       /api/foods [get]
func (h *FoodHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Registrar alimento
// @Tags         foods
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateFoodRequest  true  "Datos del alimento"
// @Success      201   {object}  dto.FoodResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ValidationErrorResponse
// @Router       /api/foods [post]
func (h *FoodHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateFoodRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.validate.Struct(in); err != nil {
		return validationError(c, err)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar alimento (parcial)
// @Tags         foods
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del alimento"
// @Param        body  body  dto.UpdateFoodRequest  true  "Campos a cambiar"
// @Success      200   {object}  dto.FoodResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ValidationErrorResponse
// @Router       /api/foods/{id} [put]
func (h *FoodHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: err.Error()})
	}
	var in dto.UpdateFoodRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.validate.Struct(in); err != nil {
		return validationError(c, err)
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: msgFoodNotFound})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar alimento
// @Tags         foods
// @Param        id  path  int  true  "ID del alimento"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/foods/{id} [delete]
func (h *FoodHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: err.Error()})
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return notFoundOrInternal(c, err, msgFoodNotFound)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
