package session

import (
	"github.com/gofiber/fiber/v2"

	"github.com/alexandreestevao/minhasfinancas/internal/domain"
)

const localsKey = "usuario_logado"

// ToLocals stores the authenticated user for the rest of the request.
func ToLocals(c *fiber.Ctx, u domain.Usuario) {
	c.Locals(localsKey, u)
}

func FromLocals(c *fiber.Ctx) (domain.Usuario, bool) {
	u, ok := c.Locals(localsKey).(domain.Usuario)
	return u, ok && u.ID != 0
}
