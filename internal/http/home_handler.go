package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/alexandreestevao/minhasfinancas/internal/apiclient"
)

type SaldoService interface {
	ObterSaldoPorUsuario(ctx context.Context, id int64) (decimal.Decimal, error)
}

type HomeHandler struct {
	base
	Saldos SaldoService
}

func NewHomeHandler(svc SaldoService, cookies Cookies, log *zap.Logger) *HomeHandler {
	return &HomeHandler{base: base{Log: log, Cookies: cookies}, Saldos: svc}
}

func (h *HomeHandler) Home(c *fiber.Ctx) error {
	u, err := usuarioLogado(c)
	if err != nil {
		return err
	}

	saldo, err := h.Saldos.ObterSaldoPorUsuario(userContext(c), u.ID)
	if err != nil {
		h.logger().Warn("saldo failed", zap.Int64("usuario", u.ID), zap.Error(err))
		return h.render(c, "home", fiber.Map{"Saldo": decimal.Zero},
			erro(apiclient.MessageOf(err, "Não foi possível obter o saldo.")))
	}
	return h.render(c, "home", fiber.Map{"Saldo": saldo})
}
