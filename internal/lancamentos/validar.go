package lancamentos

import (
	"strconv"
	"strings"

	"github.com/alexandreestevao/minhasfinancas/internal/domain"
	"github.com/alexandreestevao/minhasfinancas/internal/money"
)

// Validar checks the required fields of an entry about to be saved.
func Validar(l domain.Lancamento) error {
	v := &domain.ValidationError{}
	if strings.TrimSpace(l.Descricao) == "" {
		v.Add("Informe a Descrição.")
	}
	if l.Ano == 0 {
		v.Add("Informe o Ano.")
	} else if !anoValido(l.Ano) {
		v.Add("Informe um Ano válido.")
	}
	if l.Mes == 0 {
		v.Add("Informe o Mês.")
	} else if l.Mes < 1 || l.Mes > 12 {
		v.Add("Informe um Mês válido.")
	}
	if l.Valor.IsZero() {
		v.Add("Informe o Valor.")
	} else if !l.Valor.IsPositive() {
		v.Add("Informe um Valor válido.")
	}
	if l.Tipo == "" {
		v.Add("Informe o Tipo.")
	}
	return v.Err()
}

func anoValido(ano int) bool {
	return ano >= 1000 && ano <= 9999
}

// Form is the cadastro screen's raw input.
type Form struct {
	Descricao string `form:"descricao"`
	Ano       string `form:"ano"`
	Mes       string `form:"mes"`
	Valor     string `form:"valor"`
	Tipo      string `form:"tipo"`
	Status    string `form:"status"`
}

// FormFrom fills a Form from a stored entry, for the update screen.
func FormFrom(l domain.Lancamento) Form {
	f := Form{
		Descricao: l.Descricao,
		Valor:     money.FormatPlain(l.Valor),
		Tipo:      string(l.Tipo),
		Status:    string(l.Status),
	}
	if l.Ano != 0 {
		f.Ano = strconv.Itoa(l.Ano)
	}
	if l.Mes != 0 {
		f.Mes = strconv.Itoa(l.Mes)
	}
	return f
}

// Lancamento converts the form, reporting both missing and malformed fields.
func (f Form) Lancamento() (domain.Lancamento, error) {
	v := &domain.ValidationError{}
	l := domain.Lancamento{
		Descricao: strings.TrimSpace(f.Descricao),
		Status:    domain.ParseStatus(f.Status),
	}

	if l.Descricao == "" {
		v.Add("Informe a Descrição.")
	}

	if ano := strings.TrimSpace(f.Ano); ano == "" {
		v.Add("Informe o Ano.")
	} else if n, err := strconv.Atoi(ano); err != nil || len(ano) != 4 || !anoValido(n) {
		v.Add("Informe um Ano válido.")
	} else {
		l.Ano = n
	}

	if mes := strings.TrimSpace(f.Mes); mes == "" {
		v.Add("Informe o Mês.")
	} else if n, err := strconv.Atoi(mes); err != nil || n < 1 || n > 12 {
		v.Add("Informe um Mês válido.")
	} else {
		l.Mes = n
	}

	if valor := strings.TrimSpace(f.Valor); valor == "" {
		v.Add("Informe o Valor.")
	} else if d, err := money.ParseBRL(valor); err != nil || !d.IsPositive() {
		v.Add("Informe um Valor válido.")
	} else {
		l.Valor = d
	}

	if tipo := strings.TrimSpace(f.Tipo); tipo == "" {
		v.Add("Informe o Tipo.")
	} else if l.Tipo = domain.ParseTipo(tipo); l.Tipo == "" {
		v.Add("Informe um Tipo de Lançamento.")
	}

	return l, v.Err()
}
