package domain

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

type TipoLancamento string

const (
	Receita TipoLancamento = "RECEITA"
	Despesa TipoLancamento = "DESPESA"
)

// ParseTipo normalizes user input; unknown values yield "".
func ParseTipo(s string) TipoLancamento {
	switch t := TipoLancamento(strings.ToUpper(strings.TrimSpace(s))); t {
	case Receita, Despesa:
		return t
	}
	return ""
}

type StatusLancamento string

const (
	Pendente  StatusLancamento = "PENDENTE"
	Cancelado StatusLancamento = "CANCELADO"
	Efetivado StatusLancamento = "EFETIVADO"
)

// ParseStatus normalizes user input; unknown values yield "".
func ParseStatus(s string) StatusLancamento {
	switch st := StatusLancamento(strings.ToUpper(strings.TrimSpace(s))); st {
	case Pendente, Cancelado, Efetivado:
		return st
	}
	return ""
}

// Lancamento is one ledger entry owned by a user.
type Lancamento struct {
	ID        int64            `json:"id,omitempty"`
	Descricao string           `json:"descricao"`
	Mes       int              `json:"mes"`
	Ano       int              `json:"ano"`
	Valor     decimal.Decimal  `json:"valor"`
	Tipo      TipoLancamento   `json:"tipo"`
	Status    StatusLancamento `json:"status,omitempty"`
	Usuario   int64            `json:"usuario"`
}

// UnmarshalJSON accepts usuario either as an id or as the nested user object.
func (l *Lancamento) UnmarshalJSON(b []byte) error {
	type plain Lancamento
	aux := struct {
		*plain
		Usuario json.RawMessage `json:"usuario"`
	}{plain: (*plain)(l)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}

	raw := bytes.TrimSpace(aux.Usuario)
	switch {
	case len(raw) == 0 || bytes.Equal(raw, []byte("null")):
		l.Usuario = 0
	case raw[0] == '{':
		var u struct {
			ID int64 `json:"id"`
		}
		if err := json.Unmarshal(raw, &u); err != nil {
			return err
		}
		l.Usuario = u.ID
	default:
		if err := json.Unmarshal(raw, &l.Usuario); err != nil {
			return err
		}
	}
	return nil
}

// Pendente reports whether the entry can still be settled or cancelled.
func (l Lancamento) Pendente() bool {
	return l.Status == Pendente
}

// LancamentoFiltro narrows a search. Zero values are left out of the query.
type LancamentoFiltro struct {
	Descricao string
	Ano       int
	Mes       int
	Tipo      TipoLancamento
	Status    StatusLancamento
	Usuario   int64
}

// Opcao is one entry of a select menu.
type Opcao struct {
	Label string
	Value string
}

var meses = []Opcao{
	{Label: "Selecione...", Value: ""},
	{Label: "Janeiro", Value: "1"},
	{Label: "Fevereiro", Value: "2"},
	{Label: "Março", Value: "3"},
	{Label: "Abril", Value: "4"},
	{Label: "Maio", Value: "5"},
	{Label: "Junho", Value: "6"},
	{Label: "Julho", Value: "7"},
	{Label: "Agosto", Value: "8"},
	{Label: "Setembro", Value: "9"},
	{Label: "Outubro", Value: "10"},
	{Label: "Novembro", Value: "11"},
	{Label: "Dezembro", Value: "12"},
}

var tipos = []Opcao{
	{Label: "Selecione...", Value: ""},
	{Label: "Despesa", Value: string(Despesa)},
	{Label: "Receita", Value: string(Receita)},
}

// Meses returns the month select list, starting with the empty choice.
func Meses() []Opcao {
	out := make([]Opcao, len(meses))
	copy(out, meses)
	return out
}

// Tipos returns the entry-type select list, starting with the empty choice.
func Tipos() []Opcao {
	out := make([]Opcao, len(tipos))
	copy(out, tipos)
	return out
}

// NomeMes returns the Portuguese month name, or "" when m is out of range.
func NomeMes(m int) string {
	if m < 1 || m > 12 {
		return ""
	}
	return meses[m].Label
}
