package http

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/despensa-api/internal/application/dto"
	"github.com/jhoicas/despensa-api/internal/domain"
)

// NewValidator construye el validador compartido por los handlers.
func NewValidator() *validator.Validate {
	return validator.New()
}

// validationError traduce un error de go-playground/validator a la respuesta
// 422 con detalle por campo. Si el error no viene del validador (no debería
// ocurrir), se degrada a un 422 sin detalle.
func validationError(c *fiber.Ctx, err error) error {
	out := dto.ValidationErrorResponse{
		Code:    "VALIDATION",
		Message: "el cuerpo no pasó la validación",
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			out.Details = append(out.Details, dto.FieldError{
				Field:   fe.Field(),
				Rule:    fe.Tag(),
				Message: fe.Error(),
			})
		}
	}
	return c.Status(fiber.StatusUnprocessableEntity).JSON(out)
}

// notFoundOrInternal mapea domain.ErrNotFound a 404 con el mensaje propio de
// la entidad; cualquier otro error es un 500.
func notFoundOrInternal(c *fiber.Ctx, err error, notFoundMsg string) error {
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: notFoundMsg})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

// parseID lee el parámetro de ruta :id como entero positivo.
func parseID(c *fiber.Ctx) (int64, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, errors.New("id inválido")
	}
	return int64(id), nil
}
