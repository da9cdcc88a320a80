package http

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gofiber/template/html/v2"
	"github.com/shopspring/decimal"

	"github.com/alexandreestevao/minhasfinancas/internal/domain"
	"github.com/alexandreestevao/minhasfinancas/internal/money"
)

//go:embed views
var viewsFS embed.FS

const layout = "layouts/main"

// NewViews returns the template engine holding every page, the navbar layout and the view helpers.
func NewViews() *html.Engine {
	sub, err := fs.Sub(viewsFS, "views")
	if err != nil {
		panic(err)
	}

	engine := html.NewFileSystem(http.FS(sub), ".html")
	engine.AddFunc("moeda", func(d decimal.Decimal) string {
		return money.FormatBRL(d)
	})
	engine.AddFunc("nomeMes", domain.NomeMes)
	engine.AddFunc("str", func(v any) string {
		switch t := v.(type) {
		case domain.TipoLancamento:
			return string(t)
		case domain.StatusLancamento:
			return string(t)
		case string:
			return t
		}
		return ""
	})
	return engine
}
