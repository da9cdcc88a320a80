package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/alexandreestevao/minhasfinancas/internal/session"
)

// LoadSession puts the cookie's user (if any) into Locals. It never blocks the request.
func LoadSession(sessions *session.Manager, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if u, err := sessions.Parse(c.Cookies(cookieName)); err == nil {
			session.ToLocals(c, u)
		}
		return c.Next()
	}
}

// RequireLogin sends anonymous visitors to the login page.
func RequireLogin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := session.FromLocals(c); !ok {
			return c.Redirect("/login", fiber.StatusSeeOther)
		}
		return c.Next()
	}
}
