package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/lucalvex/hub-projeto-diag-api/internal/config"
	"github.com/lucalvex/hub-projeto-diag-api/internal/container"
	"github.com/lucalvex/hub-projeto-diag-api/internal/router"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Sobe o servidor HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := container.New()

		if migrate, _ := cmd.Flags().GetBool("migrate"); migrate {
			if err := container.Migrate(config.DB); err != nil {
				return err
			}
		}

		addr, _ := cmd.Flags().GetString("addr")
		if addr == "" {
			addr = c.Settings.HTTPAddr
		}

		srv := &http.Server{
			Addr:              addr,
			Handler:           router.New(routerConfig(c)),
			ReadHeaderTimeout: 10 * time.Second,
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			config.Logger.WithField("addr", addr).Info("HTTP server listening")
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

		config.Logger.Info("Shutting down HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Endereço de escuta (sobrepõe http_addr)")
	serveCmd.Flags().Bool("migrate", false, "Executa as migrações antes de subir")
}
