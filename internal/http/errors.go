package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ErrorHandler renders handler errors as an HTML page, or JSON for machine routes.
func ErrorHandler(log *zap.Logger) fiber.ErrorHandler {
	b := &base{Log: log}
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Ocorreu um erro inesperado."

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			code = fiberErr.Code
			message = fiberErr.Message
		} else {
			b.logger().Error("unhandled error", zap.String("path", c.Path()), zap.Error(err))
		}

		if strings.HasPrefix(c.Path(), "/health") || strings.Contains(c.Get(fiber.HeaderAccept), fiber.MIMEApplicationJSON) {
			return c.Status(code).JSON(fiber.Map{"error": message})
		}

		c.Status(code)
		if rerr := b.render(c, "erro", fiber.Map{"Status": code, "Mensagem": message}); rerr != nil {
			return c.Status(code).SendString(message)
		}
		return nil
	}
}
