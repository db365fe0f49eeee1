package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gestion-pyme/internal/application/dto"
	"github.com/jhoicas/gestion-pyme/internal/application/usecase"
	"github.com/jhoicas/gestion-pyme/internal/domain/entity"
)

// PartyHandler maneja las peticiones HTTP para una colección de terceros. El
// mismo handler sirve clientes, proveedores y empleados: el tipo queda fijado al
// construirlo y el router lo monta tres veces.
type PartyHandler struct {
	uc   *usecase.PartyUseCase
	kind entity.PartyKind
}

// NewPartyHandler construye el handler para el tipo dado.
func NewPartyHandler(uc *usecase.PartyUseCase, kind entity.PartyKind) *PartyHandler {
	return &PartyHandler{uc: uc, kind: kind}
}

// NextCode devuelve el siguiente código secuencial de la colección.
func (h *PartyHandler) NextCode(c *fiber.Ctx) error {
	code, err := h.uc.NextCode(h.kind)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"code": code})
}

// Create da de alta un tercero. Código vacío = asignar el siguiente.
func (h *PartyHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePartyRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(h.kind, in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List lista la colección; ?name= filtra por nombre sin distinguir mayúsculas ni acentos.
func (h *PartyHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(h.kind, c.Query("name"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// GetByCode devuelve un tercero con su historial completo.
func (h *PartyHandler) GetByCode(c *fiber.Ctx) error {
	out, err := h.uc.Get(h.kind, c.Params("code"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// History devuelve solo el historial del tercero.
func (h *PartyHandler) History(c *fiber.Ctx) error {
	out, err := h.uc.Get(h.kind, c.Params("code"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out.History)
}

// Update edita nombre/rol/salario; NewCode distinto de vacío renombra (re-clave).
func (h *PartyHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePartyRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(h.kind, c.Params("code"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Delete elimina el tercero con todo su historial.
func (h *PartyHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(h.kind, c.Params("code")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ClearLedger vacía historial y saldos del tercero (protegido por CanDeleteLedgers).
func (h *PartyHandler) ClearLedger(c *fiber.Ctx) error {
	if err := h.uc.ClearLedger(h.kind, c.Params("code")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
