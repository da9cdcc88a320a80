// Package cli is the minhasfinancas command line: the web server plus a few
// terminal shortcuts against the same backend.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexandreestevao/minhasfinancas/internal/config"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "dev"
	BuildDate = "unknown"
)

type CLI struct {
	rootCmd *cobra.Command
	cfg     *config.Config
	out     io.Writer

	configPath string
	apiURL     string
}

func New() *CLI {
	c := &CLI{out: os.Stdout}
	c.rootCmd = c.newRootCmd()
	return c
}

// Execute runs the command line and returns the process exit code.
func (c *CLI) Execute() int {
	if err := c.rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "minhasfinancas: %v\n", err)
		return 1
	}
	return 0
}

func (c *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "minhasfinancas",
		Short:         "Minhas Finanças - controle de receitas e despesas",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.initConfig()
		},
	}

	cmd.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default: ./config.yaml or ~/.minhasfinancas/config.yaml)")
	cmd.PersistentFlags().StringVar(&c.apiURL, "api", "", "backend base URL (overrides api.baseURL)")

	cmd.AddCommand(c.newServeCmd())
	cmd.AddCommand(c.newVersionCmd())
	cmd.AddCommand(c.newLancamentosCmd())
	cmd.AddCommand(c.newSaldoCmd())
	return cmd
}

func (c *CLI) initConfig() error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	if c.apiURL != "" {
		cfg.API.BaseURL = c.apiURL
	}
	c.cfg = cfg
	return nil
}

func (c *CLI) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}
