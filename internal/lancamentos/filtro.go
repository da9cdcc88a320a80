package lancamentos

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/alexandreestevao/minhasfinancas/internal/domain"
)

// FiltroForm is the consulta screen's raw search input.
type FiltroForm struct {
	Ano       string
	Mes       string
	Descricao string
	Tipo      string
	Status    string
}

func FiltroFormFrom(q url.Values) FiltroForm {
	return FiltroForm{
		Ano:       strings.TrimSpace(q.Get("ano")),
		Mes:       strings.TrimSpace(q.Get("mes")),
		Descricao: strings.TrimSpace(q.Get("descricao")),
		Tipo:      strings.TrimSpace(q.Get("tipo")),
		Status:    strings.TrimSpace(q.Get("status")),
	}
}

// Values is the inverse of FiltroFormFrom, used to return to the same search.
func (f FiltroForm) Values() url.Values {
	q := url.Values{}
	set := func(k, v string) {
		if v != "" {
			q.Set(k, v)
		}
	}
	set("ano", f.Ano)
	set("mes", f.Mes)
	set("descricao", f.Descricao)
	set("tipo", f.Tipo)
	set("status", f.Status)
	return q
}

// Filtro validates the input for a search owned by usuario. The year is mandatory.
func (f FiltroForm) Filtro(usuario int64) (domain.LancamentoFiltro, error) {
	out := domain.LancamentoFiltro{
		Descricao: f.Descricao,
		Tipo:      domain.ParseTipo(f.Tipo),
		Status:    domain.ParseStatus(f.Status),
		Usuario:   usuario,
	}

	v := &domain.ValidationError{}
	if f.Ano == "" {
		v.Add("O campo Ano é obrigatório.")
	} else if n, err := strconv.Atoi(f.Ano); err != nil || !anoValido(n) {
		v.Add("Informe um Ano válido.")
	} else {
		out.Ano = n
	}

	if f.Mes != "" {
		if n, err := strconv.Atoi(f.Mes); err != nil || n < 1 || n > 12 {
			v.Add("Informe um Mês válido.")
		} else {
			out.Mes = n
		}
	}

	return out, v.Err()
}
