package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/alexandreestevao/minhasfinancas/internal/observability"
	"github.com/alexandreestevao/minhasfinancas/internal/router"
)

func (c *CLI) newServeCmd() *cobra.Command {
	var port int
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the web application",
		RunE: func(cmd *cobra.Command, args []string) error {
			if port > 0 {
				c.cfg.Server.Port = port
			}
			return c.runServe(cmd.Context())
		},
	}
	cmd.Flags().IntVar(&port, "port", 0, "listen port (overrides server.port)")
	return cmd
}

func (c *CLI) runServe(ctx context.Context) error {
	if err := c.cfg.Validate(); err != nil {
		return err
	}

	log, err := observability.NewLogger(c.cfg.Logging.Level, c.cfg.Logging.Format)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	app, err := router.NewApp(c.cfg, router.Services{}, log)
	if err != nil {
		return err
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	addr := fmt.Sprintf(":%d", c.cfg.Server.Port)
	go func() {
		log.Info("listening", zap.String("addr", addr), zap.String("api", c.cfg.API.BaseURL), zap.String("env", c.cfg.Env))
		errc <- app.Listen(addr)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	return app.ShutdownWithTimeout(10 * time.Second)
}
