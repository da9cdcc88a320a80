package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexandreestevao/minhasfinancas/internal/apiclient"
	"github.com/alexandreestevao/minhasfinancas/internal/domain"
	"github.com/alexandreestevao/minhasfinancas/internal/lancamentos"
	"github.com/alexandreestevao/minhasfinancas/internal/money"
	"github.com/alexandreestevao/minhasfinancas/internal/usuarios"
)

type credenciais struct {
	email string
	senha string
}

func (cr *credenciais) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&cr.email, "email", "", "account email")
	cmd.Flags().StringVar(&cr.senha, "senha", "", "account password")
}

func (c *CLI) api() *apiclient.Client {
	return apiclient.New(c.cfg.API.BaseURL, c.cfg.API.Key, c.cfg.API.Timeout)
}

// login authenticates against the backend the same way the login screen does.
func (c *CLI) login(ctx context.Context, svc *usuarios.Service, cr credenciais) (domain.Usuario, error) {
	cred := domain.Credenciais{Email: cr.email, Senha: cr.senha}
	if err := usuarios.ValidarLogin(cred); err != nil {
		return domain.Usuario{}, err
	}
	u, err := svc.Autenticar(ctx, cred)
	if err != nil {
		return domain.Usuario{}, errors.New(apiclient.MessageOf(err, "Não foi possível realizar o login."))
	}
	return u, nil
}

func (c *CLI) newLancamentosCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lancamentos",
		Short: "Query lançamentos from the terminal",
	}
	cmd.AddCommand(c.newBuscarCmd())
	return cmd
}

func (c *CLI) newBuscarCmd() *cobra.Command {
	var cr credenciais
	var ff lancamentos.FiltroForm
	cmd := &cobra.Command{
		Use:   "buscar",
		Short: "List the lançamentos matching a filter",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBuscar(cmd.Context(), cr, ff)
		},
	}
	cr.bind(cmd)
	cmd.Flags().StringVar(&ff.Ano, "ano", "", "year (required)")
	cmd.Flags().StringVar(&ff.Mes, "mes", "", "month 1-12")
	cmd.Flags().StringVar(&ff.Tipo, "tipo", "", "RECEITA or DESPESA")
	cmd.Flags().StringVar(&ff.Status, "status", "", "PENDENTE, EFETIVADO or CANCELADO")
	cmd.Flags().StringVar(&ff.Descricao, "descricao", "", "description contains")
	return cmd
}

func (c *CLI) runBuscar(ctx context.Context, cr credenciais, ff lancamentos.FiltroForm) error {
	if ctx == nil {
		ctx = context.Background()
	}
	api := c.api()
	u, err := c.login(ctx, usuarios.NewService(api), cr)
	if err != nil {
		return err
	}

	filtro, err := ff.Filtro(u.ID)
	if err != nil {
		return err
	}
	lista, err := lancamentos.NewService(api).Consultar(ctx, filtro)
	if err != nil {
		return errors.New(apiclient.MessageOf(err, "Ocorreu um erro ao consultar os Lançamentos."))
	}
	if len(lista) == 0 {
		c.printf("Nenhum resultado foi encontrado.\n")
		return nil
	}

	w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	defer w.Flush()
	fprintRow(w, "ID", "DESCRIÇÃO", "VALOR", "TIPO", "MÊS", "STATUS")
	for _, l := range lista {
		fprintRow(w, strconv.FormatInt(l.ID, 10), l.Descricao, money.FormatBRL(l.Valor),
			string(l.Tipo), domain.NomeMes(l.Mes), string(l.Status))
	}
	return nil
}

func fprintRow(w io.Writer, cols ...string) {
	fmt.Fprintln(w, strings.Join(cols, "\t"))
}

func (c *CLI) newSaldoCmd() *cobra.Command {
	var cr credenciais
	cmd := &cobra.Command{
		Use:   "saldo",
		Short: "Show the account balance",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			svc := usuarios.NewService(c.api())
			u, err := c.login(ctx, svc, cr)
			if err != nil {
				return err
			}
			saldo, err := svc.ObterSaldoPorUsuario(ctx, u.ID)
			if err != nil {
				return errors.New(apiclient.MessageOf(err, "Não foi possível obter o saldo."))
			}
			c.printf("%s: %s\n", u.Nome, money.FormatBRL(saldo))
			return nil
		},
	}
	cr.bind(cmd)
	return cmd
}
