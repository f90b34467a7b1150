package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	pg "pet-kata/internal/adapters/storage/postgres"
	"pet-kata/internal/platform/config"
	"pet-kata/internal/platform/logger"
	"pet-kata/internal/router"
)

// @title pet-kata API
// @version 1.0
// @description Consultas de solo lectura sobre el roster del pet kata.
// @BasePath /
func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath, addr string

	cmd := &cobra.Command{
		Use:   "api",
		Short: "Servidor HTTP de solo lectura del pet kata",
		Long: `api sirve el roster del pet kata por HTTP: /people, /stats/*, /metrics y /swagger.

Sin database.dsn (o DB_DSN) usa un repositorio en memoria.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}

			log, err := logger.New(logger.Options{
				Level:  logger.ParseLevel(cfg.Logging.Level),
				Format: logger.ParseFormat(cfg.Logging.Format),
				App:    cfg.App,
			})
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			if err := run(cmd.Context(), cfg, log); err != nil {
				log.Error("server error", zap.Error(err))
				return err
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file (optional)")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address, overrides server.addr (e.g. :8080)")
	return cmd
}

func run(parent context.Context, cfg *config.Config, log *zap.Logger) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := router.Options{Logger: log}
	if cfg.Database.DSN != "" {
		db, err := pg.Open(ctx, cfg.Database.DSN)
		if err != nil {
			return err
		}
		defer db.Close()
		opts.DB = db
	}

	h, err := router.NewRouter(ctx, opts)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      h,
		ReadTimeout:  cfg.GetReadTimeout(),
		WriteTimeout: cfg.GetWriteTimeout(),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
