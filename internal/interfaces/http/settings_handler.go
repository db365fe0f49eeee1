package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gestion-pyme/internal/application/dto"
	"github.com/jhoicas/gestion-pyme/internal/application/usecase"
)

// SettingsHandler maneja el blob de configuración del negocio (datos fiscales,
// logo). Los valores se guardan y devuelven tal cual: el servidor no interpreta
// su contenido.
type SettingsHandler struct {
	uc *usecase.SettingsUseCase
}

// NewSettingsHandler construye el handler.
func NewSettingsHandler(uc *usecase.SettingsUseCase) *SettingsHandler {
	return &SettingsHandler{uc: uc}
}

func allowedSettingsKey(key string) bool {
	return key == usecase.SettingsKeyBusiness || key == usecase.SettingsKeyLogo
}

// Get devuelve el blob de la clave.
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	key := c.Params("key")
	if !allowedSettingsKey(key) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "clave desconocida"})
	}
	value, err := h.uc.Get(key)
	if err != nil {
		return fail(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(value)
}

// Put sobreescribe el blob completo de la clave con el cuerpo de la petición.
func (h *SettingsHandler) Put(c *fiber.Ctx) error {
	key := c.Params("key")
	if !allowedSettingsKey(key) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "clave desconocida"})
	}
	if err := h.uc.Put(key, c.Body()); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
