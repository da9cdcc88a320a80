// Package reports renders a consulta de lançamentos as a printable extrato.
package reports

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"
	"github.com/shopspring/decimal"

	"github.com/alexandreestevao/minhasfinancas/internal/domain"
	"github.com/alexandreestevao/minhasfinancas/internal/money"
)

// maxRows caps the listing; anything beyond is summarized in one line.
const maxRows = 500

type Extrato struct {
	Usuario     domain.Usuario
	Filtro      domain.LancamentoFiltro
	Lancamentos []domain.Lancamento
	GeradoEm    time.Time
}

type Totais struct {
	Receitas decimal.Decimal
	Despesas decimal.Decimal
	Saldo    decimal.Decimal
}

// Totalizar sums the entries, leaving cancelled ones out.
func Totalizar(ls []domain.Lancamento) Totais {
	var t Totais
	for _, l := range ls {
		if l.Status == domain.Cancelado {
			continue
		}
		switch l.Tipo {
		case domain.Receita:
			t.Receitas = t.Receitas.Add(l.Valor)
		case domain.Despesa:
			t.Despesas = t.Despesas.Add(l.Valor)
		}
	}
	t.Saldo = t.Receitas.Sub(t.Despesas)
	return t
}

// Periodo describes the filter's time window, e.g. "Março/2024" or "2024".
func Periodo(f domain.LancamentoFiltro) string {
	if nome := domain.NomeMes(f.Mes); nome != "" {
		return nome + "/" + strconv.Itoa(f.Ano)
	}
	return strconv.Itoa(f.Ano)
}

// Filename is the attachment name for an extrato of f.
func Filename(f domain.LancamentoFiltro) string {
	name := "extrato-" + strconv.Itoa(f.Ano)
	if f.Mes != 0 {
		name += fmt.Sprintf("-%02d", f.Mes)
	}
	return name + ".pdf"
}

var colW = []float64{70, 28, 26, 30, 28}

func header(pdf *gofpdf.Fpdf, tr func(string) string) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(245, 245, 245)
	pdf.SetTextColor(20, 20, 20)
	pdf.CellFormat(colW[0], 8, tr("DESCRIÇÃO"), "1", 0, "L", true, 0, "")
	pdf.CellFormat(colW[1], 8, tr("MÊS"), "1", 0, "C", true, 0, "")
	pdf.CellFormat(colW[2], 8, "TIPO", "1", 0, "C", true, 0, "")
	pdf.CellFormat(colW[3], 8, "STATUS", "1", 0, "C", true, 0, "")
	pdf.CellFormat(colW[4], 8, "VALOR", "1", 1, "R", true, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(30, 30, 30)
}

func BuildExtrato(e Extrato) ([]byte, error) {
	pdf := layoutExtrato(e)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf build failed: %w", err)
	}
	return buf.Bytes(), nil
}

func layoutExtrato(e Extrato) *gofpdf.Fpdf {
	if e.GeradoEm.IsZero() {
		e.GeradoEm = time.Now()
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(tr("Extrato de Lançamentos"), false)
	pdf.SetMargins(14, 14, 14)
	pdf.SetAutoPageBreak(false, 14)
	pdf.AddPage()

	pdf.SetTextColor(20, 20, 20)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, tr("Minhas Finanças - Extrato"))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(80, 80, 80)
	pdf.Cell(0, 6, tr("Período: "+Periodo(e.Filtro)))
	pdf.Ln(5)
	pdf.Cell(0, 6, tr("Usuário: "+usuarioLabel(e.Usuario)))
	pdf.Ln(10)

	t := Totalizar(e.Lancamentos)
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetFillColor(248, 248, 248)
	pdf.SetTextColor(20, 20, 20)
	pdf.SetFont("Helvetica", "B", 11)
	sumW := []float64{60.6, 60.6, 60.6}
	pdf.CellFormat(sumW[0], 10, "Receitas", "1", 0, "C", true, 0, "")
	pdf.CellFormat(sumW[1], 10, "Despesas", "1", 0, "C", true, 0, "")
	pdf.CellFormat(sumW[2], 10, "Saldo", "1", 1, "C", true, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(sumW[0], 10, money.FormatBRL(t.Receitas), "1", 0, "C", false, 0, "")
	pdf.CellFormat(sumW[1], 10, money.FormatBRL(t.Despesas), "1", 0, "C", false, 0, "")
	pdf.CellFormat(sumW[2], 10, money.FormatBRL(t.Saldo), "1", 1, "C", false, 0, "")
	pdf.Ln(6)

	header(pdf, tr)

	if len(e.Lancamentos) == 0 {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.CellFormat(0, 8, "Nenhum resultado foi encontrado.", "1", 1, "C", false, 0, "")
	}

	for i, l := range e.Lancamentos {
		if pdf.GetY() > 265 {
			pdf.AddPage()
			header(pdf, tr)
		}
		if i >= maxRows {
			pdf.SetFont("Helvetica", "I", 9)
			pdf.CellFormat(0, 8, tr(fmt.Sprintf("... mais %d lançamentos omitidos", len(e.Lancamentos)-maxRows)), "1", 1, "C", false, 0, "")
			break
		}

		valor := money.FormatBRL(l.Valor)
		if l.Tipo == domain.Despesa {
			valor = "-" + valor
		}
		pdf.CellFormat(colW[0], 8, tr(trimTo(l.Descricao, 40)), "1", 0, "L", false, 0, "")
		pdf.CellFormat(colW[1], 8, tr(domain.NomeMes(l.Mes)), "1", 0, "C", false, 0, "")
		pdf.CellFormat(colW[2], 8, string(l.Tipo), "1", 0, "C", false, 0, "")
		pdf.CellFormat(colW[3], 8, string(l.Status), "1", 0, "C", false, 0, "")
		pdf.CellFormat(colW[4], 8, valor, "1", 1, "R", false, 0, "")
	}

	pdf.SetY(-18)
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(120, 120, 120)
	pdf.CellFormat(0, 10, tr("Gerado por Minhas Finanças em "+e.GeradoEm.Format("02/01/2006 15:04")), "", 0, "C", false, 0, "")
	return pdf
}

func usuarioLabel(u domain.Usuario) string {
	switch {
	case u.Nome != "" && u.Email != "":
		return u.Nome + " <" + u.Email + ">"
	case u.Nome != "":
		return u.Nome
	default:
		return u.Email
	}
}

func trimTo(s string, max int) string {
	s = strings.TrimSpace(s)
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "..."
}
