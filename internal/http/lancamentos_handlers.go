package http

import (
	"context"
	"errors"
	"html/template"
	"net/url"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/alexandreestevao/minhasfinancas/internal/apiclient"
	"github.com/alexandreestevao/minhasfinancas/internal/audit"
	"github.com/alexandreestevao/minhasfinancas/internal/domain"
	"github.com/alexandreestevao/minhasfinancas/internal/lancamentos"
	"github.com/alexandreestevao/minhasfinancas/internal/reports"
)

// LancamentoService is the backend surface the cadastro and consulta screens use.
type LancamentoService interface {
	ObterPorID(ctx context.Context, id int64) (domain.Lancamento, error)
	Salvar(ctx context.Context, l domain.Lancamento) (domain.Lancamento, error)
	Atualizar(ctx context.Context, l domain.Lancamento) (domain.Lancamento, error)
	Deletar(ctx context.Context, id int64) error
	AlterarStatus(ctx context.Context, id int64, status domain.StatusLancamento) (domain.Lancamento, error)
	Consultar(ctx context.Context, f domain.LancamentoFiltro) ([]domain.Lancamento, error)
	ObterListaMeses() []domain.Opcao
	ObterListaTipos() []domain.Opcao
}

type LancamentosHandler struct {
	base
	Service LancamentoService
}

func NewLancamentosHandler(svc LancamentoService, cookies Cookies, log *zap.Logger) *LancamentosHandler {
	return &LancamentosHandler{base: base{Log: log, Cookies: cookies}, Service: svc}
}

const consultaPath = "/consulta-lancamentos"

var (
	errNaoEncontrado = errors.New("Lançamento não encontrado.")
	errNaoPendente   = errors.New("Somente lançamentos pendentes podem ter o status alterado.")
)

// consultaURL rebuilds the consulta address from a saved filter, dropping anything else.
func consultaURL(volta string) string {
	q, _ := url.ParseQuery(volta)
	v := lancamentos.FiltroFormFrom(q).Values()
	if len(v) == 0 {
		return consultaPath
	}
	v.Set("buscar", "1")
	return consultaPath + "?" + v.Encode()
}

func queryValues(c *fiber.Ctx) url.Values {
	q, _ := url.ParseQuery(string(c.Request().URI().QueryString()))
	return q
}

func paramID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fiber.ErrNotFound
	}
	return id, nil
}

func (h *LancamentosHandler) Consulta(c *fiber.Ctx) error {
	u, err := usuarioLogado(c)
	if err != nil {
		return err
	}

	q := queryValues(c)
	ff := lancamentos.FiltroFormFrom(q)
	volta := ff.Values().Encode()
	data := fiber.Map{
		"Filtro":      ff,
		"Meses":       h.Service.ObterListaMeses(),
		"Tipos":       h.Service.ObterListaTipos(),
		"Lancamentos": []domain.Lancamento{},
		"Volta":       volta,
		"ExtratoURL":  template.URL(consultaPath + "/pdf?" + volta),
	}

	if q.Get("buscar") == "" {
		return h.render(c, "consulta-lancamentos", data)
	}

	filtro, err := ff.Filtro(u.ID)
	if err != nil {
		return h.render(c, "consulta-lancamentos", data, erros(err, "")...)
	}

	lista, err := h.Service.Consultar(userContext(c), filtro)
	if err != nil {
		h.logger().Warn("consulta failed", zap.Int64("usuario", u.ID), zap.Error(err))
		return h.render(c, "consulta-lancamentos", data,
			erro(apiclient.MessageOf(err, "Ocorreu um erro ao consultar os Lançamentos.")))
	}

	data["Lancamentos"] = lista
	data["Buscou"] = true
	if len(lista) < 1 {
		return h.render(c, "consulta-lancamentos", data, alerta("Nenhum resultado foi encontrado."))
	}
	return h.render(c, "consulta-lancamentos", data)
}

func (h *LancamentosHandler) ExtratoPDF(c *fiber.Ctx) error {
	u, err := usuarioLogado(c)
	if err != nil {
		return err
	}

	ff := lancamentos.FiltroFormFrom(queryValues(c))
	volta := ff.Values().Encode()
	filtro, err := ff.Filtro(u.ID)
	if err != nil {
		return h.redirect(c, consultaURL(volta), erros(err, "")...)
	}

	lista, err := h.Service.Consultar(userContext(c), filtro)
	if err != nil {
		return h.redirect(c, consultaURL(volta), erro(apiclient.MessageOf(err, "Ocorreu um erro ao consultar os Lançamentos.")))
	}

	pdf, err := reports.BuildExtrato(reports.Extrato{Usuario: u, Filtro: filtro, Lancamentos: lista})
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", `attachment; filename="`+reports.Filename(filtro)+`"`)
	return c.Send(pdf)
}

func (h *LancamentosHandler) formData(atualizando bool, id int64, f lancamentos.Form) fiber.Map {
	return fiber.Map{
		"Atualizando": atualizando,
		"ID":          id,
		"Form":        f,
		"Meses":       h.Service.ObterListaMeses(),
		"Tipos":       h.Service.ObterListaTipos(),
	}
}

func (h *LancamentosHandler) NovoForm(c *fiber.Ctx) error {
	return h.render(c, "cadastro-lancamentos", h.formData(false, 0, lancamentos.Form{}))
}

// carregar fetches id and hides entries owned by someone else.
func (h *LancamentosHandler) carregar(c *fiber.Ctx, u domain.Usuario, id int64) (domain.Lancamento, error) {
	l, err := h.Service.ObterPorID(userContext(c), id)
	if err != nil {
		return domain.Lancamento{}, err
	}
	if l.Usuario != 0 && l.Usuario != u.ID {
		return domain.Lancamento{}, errNaoEncontrado
	}
	return l, nil
}

func (h *LancamentosHandler) EditarForm(c *fiber.Ctx) error {
	u, err := usuarioLogado(c)
	if err != nil {
		return err
	}
	id, err := paramID(c)
	if err != nil {
		return err
	}

	l, err := h.carregar(c, u, id)
	if err != nil {
		return h.render(c, "cadastro-lancamentos", h.formData(false, 0, lancamentos.Form{}),
			erro(mensagemCarga(err)))
	}
	return h.render(c, "cadastro-lancamentos", h.formData(true, id, lancamentos.FormFrom(l)))
}

func mensagemCarga(err error) string {
	if errors.Is(err, errNaoEncontrado) {
		return errNaoEncontrado.Error()
	}
	return apiclient.MessageOf(err, "Ocorreu um erro ao carregar o Lançamento.")
}

func (h *LancamentosHandler) Salvar(c *fiber.Ctx) error {
	u, err := usuarioLogado(c)
	if err != nil {
		return err
	}

	var form lancamentos.Form
	if err := c.BodyParser(&form); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	form.Status = ""

	l, err := form.Lancamento()
	if err != nil {
		return h.render(c, "cadastro-lancamentos", h.formData(false, 0, form), erros(err, "")...)
	}
	l.Usuario = u.ID

	salvo, err := h.Service.Salvar(userContext(c), l)
	h.record(c, audit.Entry{Action: "lancamento.create", EntityType: "lancamento", EntityID: salvo.ID}, err)
	if err != nil {
		return h.render(c, "cadastro-lancamentos", h.formData(false, 0, form),
			erro(apiclient.MessageOf(err, "Ocorreu um erro ao salvar o Lançamento.")))
	}

	return h.redirect(c, consultaPath, sucesso("Lançamento cadastrado com sucesso."))
}

func (h *LancamentosHandler) Atualizar(c *fiber.Ctx) error {
	u, err := usuarioLogado(c)
	if err != nil {
		return err
	}
	id, err := paramID(c)
	if err != nil {
		return err
	}

	atual, err := h.carregar(c, u, id)
	if err != nil {
		return h.render(c, "cadastro-lancamentos", h.formData(false, 0, lancamentos.Form{}),
			erro(mensagemCarga(err)))
	}

	var form lancamentos.Form
	if err := c.BodyParser(&form); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	// status only changes through AlterarStatus
	form.Status = string(atual.Status)

	l, err := form.Lancamento()
	if err != nil {
		return h.render(c, "cadastro-lancamentos", h.formData(true, id, form), erros(err, "")...)
	}
	l.ID = id
	l.Usuario = atual.Usuario
	if l.Usuario == 0 {
		l.Usuario = u.ID
	}

	_, err = h.Service.Atualizar(userContext(c), l)
	h.record(c, audit.Entry{Action: "lancamento.update", EntityType: "lancamento", EntityID: id}, err)
	if err != nil {
		return h.render(c, "cadastro-lancamentos", h.formData(true, id, form),
			erro(apiclient.MessageOf(err, "Ocorreu um erro ao atualizar o Lançamento.")))
	}

	return h.redirect(c, consultaPath, sucesso("Lançamento atualizado com sucesso."))
}

func (h *LancamentosHandler) ConfirmarExclusao(c *fiber.Ctx) error {
	u, err := usuarioLogado(c)
	if err != nil {
		return err
	}
	id, err := paramID(c)
	if err != nil {
		return err
	}

	volta := c.Query("volta")
	data := fiber.Map{
		"ID":       id,
		"Volta":    volta,
		"Cancelar": template.URL(consultaURL(volta)),
	}
	if l, err := h.carregar(c, u, id); err == nil {
		data["Descricao"] = l.Descricao
	}
	return h.render(c, "confirmar-exclusao", data)
}

func (h *LancamentosHandler) Deletar(c *fiber.Ctx) error {
	u, err := usuarioLogado(c)
	if err != nil {
		return err
	}
	id, err := paramID(c)
	if err != nil {
		return err
	}
	volta := c.FormValue("volta")

	if _, err := h.carregar(c, u, id); err != nil {
		h.logger().Warn("delete rejected", zap.Int64("lancamento", id), zap.Error(err))
		if errors.Is(err, errNaoEncontrado) {
			return h.redirect(c, consultaURL(volta), erro(errNaoEncontrado.Error()))
		}
		return h.redirect(c, consultaURL(volta), erro("Ocorreu um erro ao tentar deletar o Lançamento."))
	}

	err = h.Service.Deletar(userContext(c), id)
	h.record(c, audit.Entry{Action: "lancamento.delete", EntityType: "lancamento", EntityID: id}, err)
	if err != nil {
		h.logger().Warn("delete failed", zap.Int64("lancamento", id), zap.Error(err))
		return h.redirect(c, consultaURL(volta), erro("Ocorreu um erro ao tentar deletar o Lançamento."))
	}
	return h.redirect(c, consultaURL(volta), sucesso("Lançamento deletado com sucesso."))
}

func (h *LancamentosHandler) AlterarStatus(c *fiber.Ctx) error {
	u, err := usuarioLogado(c)
	if err != nil {
		return err
	}
	id, err := paramID(c)
	if err != nil {
		return err
	}
	volta := c.FormValue("volta")

	status := domain.ParseStatus(c.FormValue("status"))
	if status != domain.Efetivado && status != domain.Cancelado {
		return h.redirect(c, consultaURL(volta), erro("Informe um Status válido."))
	}

	atual, err := h.carregar(c, u, id)
	if err != nil {
		return h.redirect(c, consultaURL(volta), erro(mensagemCarga(err)))
	}
	if !atual.Pendente() {
		return h.redirect(c, consultaURL(volta), erro(errNaoPendente.Error()))
	}

	_, err = h.Service.AlterarStatus(userContext(c), id, status)
	h.record(c, audit.Entry{Action: "lancamento.status." + string(status), EntityType: "lancamento", EntityID: id}, err)
	if err != nil {
		return h.redirect(c, consultaURL(volta),
			erro(apiclient.MessageOf(err, "Ocorreu um erro ao atualizar o Status.")))
	}
	return h.redirect(c, consultaURL(volta), sucesso("Status atualizado com sucesso!"))
}
