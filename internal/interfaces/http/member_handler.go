package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/pos-backoffice/internal/application/dto"
	"github.com/tu-usuario/pos-backoffice/internal/application/member"
	"github.com/tu-usuario/pos-backoffice/internal/domain"
)

// MemberHandler maneja las peticiones HTTP del directorio de miembros (protegido).
type MemberHandler struct {
	uc *member.UseCase
}

// NewMemberHandler construye el handler.
func NewMemberHandler(uc *member.UseCase) *MemberHandler {
	return &MemberHandler{uc: uc}
}

// List GET /api/members?page=1&page_size=10&q=texto
func (h *MemberHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "paginación inválida"})
	}
	resp, err := h.uc.List(page, c.Query("q"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(resp)
}

// Create POST /api/members
func (h *MemberHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMemberRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.Create(in)
	if err != nil {
		return memberError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Update PUT /api/members/:id — edición parcial, los campos ausentes quedan como estaban.
func (h *MemberHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateMemberRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return memberError(c, err)
	}
	return c.JSON(resp)
}

// Delete DELETE /api/members/:id — no-op sobre un id inexistente.
func (h *MemberHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// memberError traduce los errores de dominio del directorio a estados HTTP.
func memberError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos del miembro inválidos"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe un miembro con ese email"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "miembro no encontrado"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
