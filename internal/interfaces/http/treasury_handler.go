package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gestion-pyme/internal/application/dto"
	"github.com/jhoicas/gestion-pyme/internal/application/treasury"
)

// TreasuryHandler maneja las peticiones HTTP de tesorería.
type TreasuryHandler struct {
	uc *treasury.UseCase
}

// NewTreasuryHandler construye el handler.
func NewTreasuryHandler(uc *treasury.UseCase) *TreasuryHandler {
	return &TreasuryHandler{uc: uc}
}

// List lista los movimientos por id ascendente.
func (h *TreasuryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Balance devuelve el saldo derivado (suma de créditos menos débitos).
func (h *TreasuryHandler) Balance(c *fiber.Ctx) error {
	balance, err := h.uc.Balance(c.UserContext())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.TreasuryBalanceResponse{Balance: balance})
}

// AddTransfer registra una transferencia IN/OUT contra un tercero.
func (h *TreasuryHandler) AddTransfer(c *fiber.Ctx) error {
	var in dto.TransferRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.uc.AddTransfer(c.UserContext(), in); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusCreated)
}

// AddExpense registra un gasto (débito sin tercero).
func (h *TreasuryHandler) AddExpense(c *fiber.Ctx) error {
	var in dto.ExpenseRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.uc.AddExpense(c.UserContext(), in); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusCreated)
}

// AddOpeningBalance siembra la caja con un crédito inicial.
func (h *TreasuryHandler) AddOpeningBalance(c *fiber.Ctx) error {
	var in dto.OpeningBalanceRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.uc.AddOpeningBalance(c.UserContext(), in); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusCreated)
}

// Clear vacía todos los movimientos de tesorería.
func (h *TreasuryHandler) Clear(c *fiber.Ctx) error {
	if err := h.uc.ClearTreasury(c.UserContext()); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
