package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	pkgerrors "github.com/pkg/errors"
	"github.com/spf13/cobra"

	"prism-backend/internal/shared/config"
	"prism-backend/internal/shared/server"
	"prism-backend/internal/shared/telemetry"
)

const shutdownTimeout = 30 * time.Second

func newServeCmd(load func() config.Config, build appBuilder) *cobra.Command {
	var port string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server and web UI",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := load()
			if port != "" {
				cfg.Port = port
			}
			app, err := build(cfg)
			if err != nil {
				return pkgerrors.Wrap(err, "bootstrap build")
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := &http.Server{
				Addr:              server.Addr(cfg.Port),
				Handler:           app.Router,
				ReadHeaderTimeout: 10 * time.Second,
			}
			return serve(ctx, srv, cfg)
		},
	}
	cmd.Flags().StringVar(&port, "port", "", "Listen port (overrides PORT)")
	return cmd
}

func serve(ctx context.Context, srv *http.Server, cfg config.Config) error {
	errCh := make(chan error, 1)
	go func() {
		telemetry.Info("server.start", map[string]any{
			"addr":     srv.Addr,
			"env":      cfg.Env,
			"provider": cfg.LLMProvider,
			"model":    cfg.LLMModel,
		})
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return pkgerrors.Wrap(err, "listen")
	case <-ctx.Done():
	}

	telemetry.Info("server.shutdown", map[string]any{"addr": srv.Addr})
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return pkgerrors.Wrap(err, "shutdown")
	}
	return nil
}
