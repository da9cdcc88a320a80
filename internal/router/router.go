package router

import (
	"github.com/gofiber/fiber/v2"

	apphttp "github.com/alexandreestevao/minhasfinancas/internal/http"
)

type Router struct {
	AuthHandler        *apphttp.AuthHandler
	HomeHandler        *apphttp.HomeHandler
	LancamentosHandler *apphttp.LancamentosHandler
	AuthMW             fiber.Handler
	LoginLimiter       fiber.Handler
	WriteLimiter       fiber.Handler
}

func (r *Router) RegisterRoutes(app *fiber.App) {
	app.Get("/health", health)
	app.Get("/healthz", health)
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/home", fiber.StatusSeeOther)
	})

	authMW := r.AuthMW
	if authMW == nil {
		authMW = RequireLogin()
	}
	writeMW := r.WriteLimiter
	if writeMW == nil {
		writeMW = passThrough
	}
	loginMW := r.LoginLimiter
	if loginMW == nil {
		loginMW = passThrough
	}

	if r.AuthHandler != nil {
		app.Get("/login", r.AuthHandler.LoginPage)
		app.Post("/login", loginMW, r.AuthHandler.Login)
		app.Get("/logout", r.AuthHandler.Logout)
		app.Get("/cadastro-usuarios", r.AuthHandler.CadastroPage)
		app.Post("/cadastro-usuarios", loginMW, r.AuthHandler.Cadastrar)
	}

	if r.HomeHandler != nil {
		app.Get("/home", authMW, r.HomeHandler.Home)
	}

	if r.LancamentosHandler != nil {
		h := r.LancamentosHandler
		app.Get("/consulta-lancamentos", authMW, h.Consulta)
		app.Get("/consulta-lancamentos/pdf", authMW, h.ExtratoPDF)
		app.Get("/cadastro-lancamentos", authMW, h.NovoForm)
		app.Get("/cadastro-lancamentos/:id", authMW, h.EditarForm)
		app.Post("/cadastro-lancamentos", authMW, writeMW, h.Salvar)
		app.Post("/cadastro-lancamentos/:id", authMW, writeMW, h.Atualizar)
		app.Get("/lancamentos/:id/deletar", authMW, h.ConfirmarExclusao)
		app.Post("/lancamentos/:id/deletar", authMW, writeMW, h.Deletar)
		app.Post("/lancamentos/:id/status", authMW, writeMW, h.AlterarStatus)
	}
}

func health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"ok": true})
}

func passThrough(c *fiber.Ctx) error {
	return c.Next()
}
