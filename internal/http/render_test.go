package http

import (
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexandreestevao/minhasfinancas/internal/domain"
	"github.com/alexandreestevao/minhasfinancas/internal/session"
)

func TestConsultaURL(t *testing.T) {
	assert.Equal(t, "/consulta-lancamentos", consultaURL(""))
	assert.Equal(t, "/consulta-lancamentos", consultaURL("//evil.example"))
	assert.Equal(t, "/consulta-lancamentos?ano=2024&buscar=1&tipo=RECEITA", consultaURL("tipo=RECEITA&ano=2024&x=1"))
}

func TestErros(t *testing.T) {
	v := &domain.ValidationError{}
	v.Add("Informe o Ano.")
	v.Add("Informe o Mês.")
	assert.Equal(t, []session.Mensagem{erro("Informe o Ano."), erro("Informe o Mês.")}, erros(v, "falhou"))
	assert.Equal(t, []session.Mensagem{erro("falhou")}, erros(errors.New("boom"), "falhou"))
}

func TestErrorHandlerJSONForHealth(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler(nil), Views: NewViews()})
	app.Get("/health/deep", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusServiceUnavailable, "backend down")
	})
	app.Get("/pagina", func(c *fiber.Ctx) error {
		return errors.New("boom")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/health/deep", nil))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
	assert.JSONEq(t, `{"error":"backend down"}`, string(body))

	resp, err = app.Test(httptest.NewRequest("GET", "/pagina", nil))
	require.NoError(t, err)
	body, _ = io.ReadAll(resp.Body)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Contains(t, string(body), "Ocorreu um erro inesperado.")
	assert.NotContains(t, string(body), "boom")
}
