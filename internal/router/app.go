package router

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/alexandreestevao/minhasfinancas/internal/apiclient"
	"github.com/alexandreestevao/minhasfinancas/internal/config"
	apphttp "github.com/alexandreestevao/minhasfinancas/internal/http"
	"github.com/alexandreestevao/minhasfinancas/internal/lancamentos"
	"github.com/alexandreestevao/minhasfinancas/internal/session"
	"github.com/alexandreestevao/minhasfinancas/internal/usuarios"
)

// Services are the backend clients the screens call. Nil fields are built from cfg.API.
type Services struct {
	Lancamentos apphttp.LancamentoService
	Usuarios    interface {
		apphttp.UsuarioService
		apphttp.SaldoService
	}
}

// NewApp wires the whole web application.
func NewApp(cfg *config.Config, svc Services, log *zap.Logger) (*fiber.App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}

	sessions, err := session.NewManager(cfg.Session.Secret, cfg.Session.TTL)
	if err != nil {
		return nil, err
	}

	if svc.Lancamentos == nil || svc.Usuarios == nil {
		api := apiclient.New(cfg.API.BaseURL, cfg.API.Key, cfg.API.Timeout)
		if svc.Lancamentos == nil {
			svc.Lancamentos = lancamentos.NewService(api)
		}
		if svc.Usuarios == nil {
			svc.Usuarios = usuarios.NewService(api)
		}
	}

	app := fiber.New(fiber.Config{
		AppName:               "minhasfinancas",
		Views:                 apphttp.NewViews(),
		ReadTimeout:           cfg.Server.ReadTimeout,
		WriteTimeout:          cfg.Server.WriteTimeout,
		ErrorHandler:          apphttp.ErrorHandler(log),
		DisableStartupMessage: true,
	})

	cookies := apphttp.Cookies{
		Name:   cfg.Session.CookieName,
		Secure: cfg.Session.Secure || cfg.Production(),
		TTL:    sessions.TTL(),
	}

	app.Use(RequestID())
	app.Use(RequestLogger(log))
	app.Use(LoadSession(sessions, cookies.Name))

	window := cfg.RateLimit.Window
	if window <= 0 {
		window = time.Minute
	}

	r := &Router{
		AuthHandler:        apphttp.NewAuthHandler(svc.Usuarios, sessions, cookies, log),
		HomeHandler:        apphttp.NewHomeHandler(svc.Usuarios, cookies, log),
		LancamentosHandler: apphttp.NewLancamentosHandler(svc.Lancamentos, cookies, log),
		AuthMW:             RequireLogin(),
		LoginLimiter:       RateLimitAuth(cfg.RateLimit.LoginMax, window),
		WriteLimiter:       RateLimitWrite(cfg.RateLimit.WriteMax, window),
	}
	r.RegisterRoutes(app)

	return app, nil
}
