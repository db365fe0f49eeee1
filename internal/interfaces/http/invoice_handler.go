package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gestion-pyme/internal/application/dto"
	"github.com/jhoicas/gestion-pyme/internal/application/sales"
)

// InvoiceHandler maneja las peticiones HTTP para facturas de venta y cobros.
type InvoiceHandler struct {
	uc *sales.UseCase
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(uc *sales.UseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc}
}

// NextID devuelve el siguiente número de factura (N###).
func (h *InvoiceHandler) NextID(c *fiber.Ctx) error {
	id, err := h.uc.NextInvoiceID(c.UserContext())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"id": id})
}

// Create registra una factura de venta y propaga saldo de cliente e inventario.
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.AddInvoice(c.UserContext(), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List lista facturas por fecha descendente.
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListInvoices(c.UserContext())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// GetByID devuelve una factura por número.
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetInvoice(c.UserContext(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Update reemplaza una factura y ajusta saldo e inventario por diferencia.
func (h *InvoiceHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateInvoice(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Delete elimina el registro de la factura. No revierte saldo ni inventario.
func (h *InvoiceHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.DeleteInvoice(c.UserContext(), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ClearAll vacía la colección de facturas (protegido por CanDeleteLedgers).
func (h *InvoiceHandler) ClearAll(c *fiber.Ctx) error {
	if err := h.uc.ClearAllInvoices(c.UserContext()); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AddCollection registra un cobro: sube el saldo del cliente y acredita tesorería.
func (h *InvoiceHandler) AddCollection(c *fiber.Ctx) error {
	var in dto.CollectionRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.uc.AddCollection(c.UserContext(), in); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusCreated)
}
