package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// callerRole returns the role Auth stored for the request.
func callerRole(c *fiber.Ctx) (string, bool) {
	role, ok := c.Locals("role").(string)
	if !ok || role == "" {
		return "", false
	}
	return role, true
}

func forbidden(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "access denied: " + msg})
}

// Role admits callers whose role is one of allowed, compared
// case-insensitively.
func Role(allowed ...string) fiber.Handler {
	set := make(map[string]struct{}, len(allowed))
	for _, r := range allowed {
		set[strings.ToLower(r)] = struct{}{}
	}
	need := strings.Join(allowed, " or ")

	return func(c *fiber.Ctx) error {
		role, ok := callerRole(c)
		if !ok {
			return forbidden(c, "invalid role")
		}
		if _, ok := set[strings.ToLower(role)]; !ok {
			return forbidden(c, "requires role "+need)
		}
		return c.Next()
	}
}
