package http

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/alexandreestevao/minhasfinancas/internal/audit"
	"github.com/alexandreestevao/minhasfinancas/internal/domain"
	"github.com/alexandreestevao/minhasfinancas/internal/session"
)

const flashCookie = "_mensagens"

// Cookies describes how the session cookie is written.
type Cookies struct {
	Name   string
	Secure bool
	TTL    time.Duration
}

// base holds what every screen needs: the logger and cookie settings.
type base struct {
	Log     *zap.Logger
	Cookies Cookies
}

func (b *base) logger() *zap.Logger {
	if b.Log == nil {
		return zap.NewNop()
	}
	return b.Log
}

// render draws view inside the layout with any pending toasts plus msgs.
func (b *base) render(c *fiber.Ctx, view string, data fiber.Map, msgs ...session.Mensagem) error {
	if data == nil {
		data = fiber.Map{}
	}

	pending := session.DecodeFlash(c.Cookies(flashCookie))
	if len(pending) > 0 {
		b.expire(c, flashCookie)
	}
	data["Mensagens"] = append(pending, msgs...)

	if u, ok := session.FromLocals(c); ok {
		data["Usuario"] = u
	}
	c.Type("html", "utf-8")
	return c.Render(view, data, layout)
}

// redirect navigates to path, carrying msgs to the next page.
func (b *base) redirect(c *fiber.Ctx, path string, msgs ...session.Mensagem) error {
	if len(msgs) > 0 {
		all := append(session.DecodeFlash(c.Cookies(flashCookie)), msgs...)
		c.Cookie(&fiber.Cookie{
			Name:     flashCookie,
			Value:    session.EncodeFlash(all),
			Path:     "/",
			Expires:  time.Now().Add(time.Minute),
			HTTPOnly: true,
			Secure:   b.Cookies.Secure,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
	}
	return c.Redirect(path, fiber.StatusSeeOther)
}

func (b *base) expire(c *fiber.Ctx, name string) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HTTPOnly: true,
		Secure:   b.Cookies.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// record writes an audit entry for e, filling in the caller's identity and marking failures.
func (b *base) record(c *fiber.Ctx, e audit.Entry, err error) {
	e.IP = c.IP()
	e.Outcome = "success"
	if e.UserID == 0 {
		if u, ok := session.FromLocals(c); ok {
			e.UserID = u.ID
		}
	}
	if rid, ok := c.Locals("request_id").(string); ok {
		e.RequestID = rid
	}
	if err != nil {
		e.Outcome = "error"
	}
	audit.Write(b.logger(), e)
}

func erro(texto string) session.Mensagem {
	return session.Mensagem{Kind: session.Erro, Texto: texto}
}

func sucesso(texto string) session.Mensagem {
	return session.Mensagem{Kind: session.Sucesso, Texto: texto}
}

func alerta(texto string) session.Mensagem {
	return session.Mensagem{Kind: session.Alerta, Texto: texto}
}

// erros turns a validation failure into one toast per message; anything else becomes fallback.
func erros(err error, fallback string) []session.Mensagem {
	var v *domain.ValidationError
	if errors.As(err, &v) {
		out := make([]session.Mensagem, 0, len(v.Mensagens))
		for _, m := range v.Mensagens {
			out = append(out, erro(m))
		}
		return out
	}
	return []session.Mensagem{erro(fallback)}
}

func usuarioLogado(c *fiber.Ctx) (domain.Usuario, error) {
	u, ok := session.FromLocals(c)
	if !ok {
		return domain.Usuario{}, fiber.ErrUnauthorized
	}
	return u, nil
}

func userContext(c *fiber.Ctx) context.Context {
	if ctx := c.UserContext(); ctx != nil {
		return ctx
	}
	return context.Background()
}
