package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/personal-api/internal/application/dto"
	"github.com/jhoicas/personal-api/internal/domain"
)

// respondError traduce un error de dominio a estatus HTTP y cuerpo JSON.
// Los errores sin código de dominio se tratan como INTERNAL sin filtrar detalle.
func respondError(c *fiber.Ctx, err error) error {
	var derr *domain.Error
	if !errors.As(err, &derr) {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: domain.CodeInternal, Message: "error interno"})
	}
	status := fiber.StatusInternalServerError
	switch derr.Code {
	case domain.CodeConflict:
		status = fiber.StatusConflict
	case domain.CodeNotFound:
		status = fiber.StatusNotFound
	case domain.CodeUnauthorized:
		status = fiber.StatusUnauthorized
	case domain.CodeBadRequest:
		status = fiber.StatusBadRequest
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: derr.Code, Message: derr.Message})
}
