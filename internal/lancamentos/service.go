// Package lancamentos talks to the backend's ledger-entry endpoints.
package lancamentos

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"strconv"
	"strings"

	"github.com/alexandreestevao/minhasfinancas/internal/apiclient"
	"github.com/alexandreestevao/minhasfinancas/internal/domain"
)

const basePath = "/api/lancamentos"

var ErrSemID = errors.New("lançamento sem id")

type Service struct {
	API *apiclient.Client
}

func NewService(api *apiclient.Client) *Service {
	return &Service{API: api}
}

// wire keeps valor a JSON number on the way out; decimal would quote it.
type wire struct {
	ID        int64                   `json:"id,omitempty"`
	Descricao string                  `json:"descricao"`
	Mes       int                     `json:"mes"`
	Ano       int                     `json:"ano"`
	Valor     json.Number             `json:"valor"`
	Tipo      domain.TipoLancamento   `json:"tipo"`
	Status    domain.StatusLancamento `json:"status,omitempty"`
	Usuario   int64                   `json:"usuario"`
}

func toWire(l domain.Lancamento) wire {
	return wire{
		ID:        l.ID,
		Descricao: l.Descricao,
		Mes:       l.Mes,
		Ano:       l.Ano,
		Valor:     json.Number(l.Valor.String()),
		Tipo:      l.Tipo,
		Status:    l.Status,
		Usuario:   l.Usuario,
	}
}

func (s *Service) ObterPorID(ctx context.Context, id int64) (domain.Lancamento, error) {
	var out domain.Lancamento
	err := s.API.Get(ctx, basePath+"/"+strconv.FormatInt(id, 10), nil, &out)
	return out, err
}

func (s *Service) Salvar(ctx context.Context, l domain.Lancamento) (domain.Lancamento, error) {
	var out domain.Lancamento
	err := s.API.Post(ctx, basePath, toWire(l), &out)
	return out, err
}

func (s *Service) Atualizar(ctx context.Context, l domain.Lancamento) (domain.Lancamento, error) {
	if l.ID == 0 {
		return domain.Lancamento{}, ErrSemID
	}
	var out domain.Lancamento
	err := s.API.Put(ctx, basePath+"/"+strconv.FormatInt(l.ID, 10), toWire(l), &out)
	return out, err
}

func (s *Service) Deletar(ctx context.Context, id int64) error {
	if id == 0 {
		return ErrSemID
	}
	return s.API.Delete(ctx, basePath+"/"+strconv.FormatInt(id, 10))
}

func (s *Service) AlterarStatus(ctx context.Context, id int64, status domain.StatusLancamento) (domain.Lancamento, error) {
	if id == 0 {
		return domain.Lancamento{}, ErrSemID
	}
	var out domain.Lancamento
	body := map[string]string{"status": string(status)}
	err := s.API.Put(ctx, basePath+"/"+strconv.FormatInt(id, 10)+"/atualiza-status", body, &out)
	return out, err
}

// Consultar lists the entries matching f. Empty filter fields are not sent.
func (s *Service) Consultar(ctx context.Context, f domain.LancamentoFiltro) ([]domain.Lancamento, error) {
	out := []domain.Lancamento{}
	if err := s.API.Get(ctx, basePath, Query(f), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Query renders f as backend query parameters.
func Query(f domain.LancamentoFiltro) url.Values {
	q := url.Values{}
	if f.Ano != 0 {
		q.Set("ano", strconv.Itoa(f.Ano))
	}
	if f.Mes != 0 {
		q.Set("mes", strconv.Itoa(f.Mes))
	}
	if f.Tipo != "" {
		q.Set("tipo", string(f.Tipo))
	}
	if f.Status != "" {
		q.Set("status", string(f.Status))
	}
	if d := strings.TrimSpace(f.Descricao); d != "" {
		q.Set("descricao", d)
	}
	if f.Usuario != 0 {
		q.Set("usuario", strconv.FormatInt(f.Usuario, 10))
	}
	return q
}

func (s *Service) ObterListaMeses() []domain.Opcao {
	return domain.Meses()
}

func (s *Service) ObterListaTipos() []domain.Opcao {
	return domain.Tipos()
}
