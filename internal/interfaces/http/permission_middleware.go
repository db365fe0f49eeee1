package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gestion-pyme/internal/application/dto"
	"github.com/jhoicas/gestion-pyme/internal/domain/entity"
)

// PermissionChecker resuelve los permisos efectivos de un usuario (ADMIN implica
// todas las banderas). Lo implementa usecase.UserUseCase.
type PermissionChecker interface {
	EffectivePermissions(userID string) (entity.Permissions, error)
}

// RequirePermission corta con 403 si la bandera seleccionada no está activa para
// el usuario autenticado. Debe ir después de AuthMiddleware.
func RequirePermission(checker PermissionChecker, selector func(entity.Permissions) bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := GetUserID(c)
		if userID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "usuario no autenticado"})
		}
		perms, err := checker.EffectivePermissions(userID)
		if err != nil {
			return fail(c, err)
		}
		if !selector(perms) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "permiso insuficiente"})
		}
		return c.Next()
	}
}

// RequireAdmin corta con 403 si el rol del token no es ADMIN.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if GetRole(c) != entity.RoleAdmin {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "requiere rol ADMIN"})
		}
		return c.Next()
	}
}
