package middleware

import (
	"errors"

	"hr-management-backend/internal/model"
	"hr-management-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Permission allows the request when the caller's role grants perm.
// Admin always passes.
func Permission(roles repository.RoleRepository, perm string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userRole, ok := callerRole(c)
		if !ok {
			return forbidden(c, "invalid role")
		}
		if userRole == model.RoleAdmin {
			return c.Next()
		}

		role, err := roles.GetByName(userRole)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return forbidden(c, "unknown role")
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to check permissions"})
		}

		if !role.HasPermission(perm) {
			return forbidden(c, "missing permission "+perm)
		}
		return c.Next()
	}
}
