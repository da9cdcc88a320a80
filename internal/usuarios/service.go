// Package usuarios wraps the backend's user endpoints: authentication, sign-up and balance.
package usuarios

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/alexandreestevao/minhasfinancas/internal/apiclient"
	"github.com/alexandreestevao/minhasfinancas/internal/domain"
)

const basePath = "/api/usuarios"

type Service struct {
	API *apiclient.Client
}

func NewService(api *apiclient.Client) *Service {
	return &Service{API: api}
}

func (s *Service) Autenticar(ctx context.Context, c domain.Credenciais) (domain.Usuario, error) {
	var out domain.Usuario
	err := s.API.Post(ctx, basePath+"/autenticar", c, &out)
	return out, err
}

func (s *Service) Salvar(ctx context.Context, u domain.UsuarioCadastro) (domain.Usuario, error) {
	var out domain.Usuario
	err := s.API.Post(ctx, basePath, u, &out)
	return out, err
}

func (s *Service) ObterSaldoPorUsuario(ctx context.Context, id int64) (decimal.Decimal, error) {
	var out decimal.NullDecimal
	if err := s.API.Get(ctx, basePath+"/"+strconv.FormatInt(id, 10)+"/saldo", nil, &out); err != nil {
		return decimal.Zero, err
	}
	if !out.Valid {
		return decimal.Zero, nil
	}
	return out.Decimal, nil
}

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidarLogin reports the missing login fields.
func ValidarLogin(c domain.Credenciais) error {
	v := &domain.ValidationError{}
	if strings.TrimSpace(c.Email) == "" {
		v.Add("Informe o Email.")
	}
	if c.Senha == "" {
		v.Add("Informe a Senha.")
	}
	return v.Err()
}

// CadastroForm is the sign-up screen's raw input.
type CadastroForm struct {
	Nome           string `form:"nome"`
	Email          string `form:"email"`
	Senha          string `form:"senha"`
	SenhaRepeticao string `form:"senhaRepeticao"`
}

// Validar returns the sign-up payload or every problem with the form.
func (f CadastroForm) Validar() (domain.UsuarioCadastro, error) {
	v := &domain.ValidationError{}
	nome := strings.TrimSpace(f.Nome)
	email := strings.TrimSpace(f.Email)

	if nome == "" {
		v.Add("O campo Nome é obrigatório.")
	}
	if email == "" {
		v.Add("O campo Email é obrigatório.")
	} else if !emailRe.MatchString(email) {
		v.Add("Informe um Email válido.")
	}
	if f.Senha == "" || f.SenhaRepeticao == "" {
		v.Add("Digite a senha 2x.")
	} else if f.Senha != f.SenhaRepeticao {
		v.Add("As senhas não batem.")
	}

	if err := v.Err(); err != nil {
		return domain.UsuarioCadastro{}, err
	}
	return domain.UsuarioCadastro{Nome: nome, Email: email, Senha: f.Senha}, nil
}
