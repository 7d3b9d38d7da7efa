package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/personal-api/internal/application/dto"
	"github.com/jhoicas/personal-api/internal/application/identity"
)

// IdentityHandler listados, detalle y cambios de estado sobre identidades.
type IdentityHandler struct {
	query  *identity.QueryUseCase
	status *identity.StatusUseCase
}

// NewIdentityHandler construye el handler.
func NewIdentityHandler(query *identity.QueryUseCase, status *identity.StatusUseCase) *IdentityHandler {
	return &IdentityHandler{query: query, status: status}
}

// List GET /api/identities?identity_type=EMPLOYEE&take=20&cursor_id=...
func (h *IdentityHandler) List(c *fiber.Ctx) error {
	var in dto.ListIdentitiesRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválida"})
	}
	resp, err := h.query.List(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// GetByID GET /api/identities/:id
func (h *IdentityHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.query.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// SetStatus PATCH /api/identities/:id/status {"active": true|false}
func (h *IdentityHandler) SetStatus(c *fiber.Ctx) error {
	var in dto.SetStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.status.SetStatus(c.Context(), c.Params("id"), in.Active); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Activate POST /api/identities/:id/activate
func (h *IdentityHandler) Activate(c *fiber.Ctx) error {
	if err := h.status.Activate(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Deactivate DELETE /api/identities/:id (desactivación lógica, no borra filas)
func (h *IdentityHandler) Deactivate(c *fiber.Ctx) error {
	if err := h.status.Deactivate(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
