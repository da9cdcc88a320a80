package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/alexandreestevao/minhasfinancas/internal/apiclient"
	"github.com/alexandreestevao/minhasfinancas/internal/audit"
	"github.com/alexandreestevao/minhasfinancas/internal/domain"
	"github.com/alexandreestevao/minhasfinancas/internal/session"
	"github.com/alexandreestevao/minhasfinancas/internal/usuarios"
)

// UsuarioService is the backend surface the login and sign-up screens use.
type UsuarioService interface {
	Autenticar(ctx context.Context, c domain.Credenciais) (domain.Usuario, error)
	Salvar(ctx context.Context, u domain.UsuarioCadastro) (domain.Usuario, error)
}

type AuthHandler struct {
	base
	Usuarios UsuarioService
	Sessions *session.Manager
}

func NewAuthHandler(svc UsuarioService, sessions *session.Manager, cookies Cookies, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		base:     base{Log: log, Cookies: cookies},
		Usuarios: svc,
		Sessions: sessions,
	}
}

type loginForm struct {
	Email string `form:"email"`
	Senha string `form:"senha"`
}

func (h *AuthHandler) LoginPage(c *fiber.Ctx) error {
	if _, ok := session.FromLocals(c); ok {
		return c.Redirect("/home", fiber.StatusSeeOther)
	}
	return h.render(c, "login", nil)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var body loginForm
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	cred := domain.Credenciais{Email: body.Email, Senha: body.Senha}
	data := fiber.Map{"Email": body.Email}
	if err := usuarios.ValidarLogin(cred); err != nil {
		return h.render(c, "login", data, erros(err, "")...)
	}

	u, err := h.Usuarios.Autenticar(userContext(c), cred)
	h.record(c, audit.Entry{UserID: u.ID, Action: "usuario.login", EntityType: "usuario", EntityID: u.ID}, err)
	if err != nil {
		h.logger().Info("login failed", zap.String("email", body.Email), zap.Error(err))
		return h.render(c, "login", data, erro(apiclient.MessageOf(err, "Não foi possível realizar o login.")))
	}

	token, err := h.Sessions.Issue(u)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not create session")
	}
	c.Cookie(&fiber.Cookie{
		Name:     h.Cookies.Name,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(h.Sessions.TTL()),
		HTTPOnly: true,
		Secure:   h.Cookies.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.Redirect("/home", fiber.StatusSeeOther)
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.expire(c, h.Cookies.Name)
	return c.Redirect("/login", fiber.StatusSeeOther)
}

func (h *AuthHandler) CadastroPage(c *fiber.Ctx) error {
	return h.render(c, "cadastro-usuarios", fiber.Map{"Form": usuarios.CadastroForm{}})
}

func (h *AuthHandler) Cadastrar(c *fiber.Ctx) error {
	var form usuarios.CadastroForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	// passwords are never echoed back into the page
	data := fiber.Map{"Form": usuarios.CadastroForm{Nome: form.Nome, Email: form.Email}}

	novo, err := form.Validar()
	if err != nil {
		return h.render(c, "cadastro-usuarios", data, erros(err, "")...)
	}

	u, err := h.Usuarios.Salvar(userContext(c), novo)
	h.record(c, audit.Entry{UserID: u.ID, Action: "usuario.create", EntityType: "usuario", EntityID: u.ID}, err)
	if err != nil {
		return h.render(c, "cadastro-usuarios", data, erro(apiclient.MessageOf(err, "Não foi possível cadastrar o usuário.")))
	}

	return h.redirect(c, "/login", sucesso("Usuário cadastrado com sucesso! Faça o login para acessar o sistema."))
}
