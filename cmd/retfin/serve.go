package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/pjaos/retirement-finances-sub000/internal/api"
	"github.com/pjaos/retirement-finances-sub000/internal/api/store"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP JSON API",
		Long: `Run the HTTP JSON API. The port defaults to RETFIN_API_PORT or 8080.

Routes:
  GET  /health
  POST /api/v1/tax
  POST /api/v1/projection
  GET  /api/v1/projection/:id
  GET  /api/v1/projection/:id/rows
  GET  /api/v1/projection/:id/charts/:name
  GET  /api/v1/projection/:id/reality`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, logger, err := newEngine(cmd)
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck

			port, _ := cmd.Flags().GetString("port")
			if port == "" {
				port = api.Port()
			}
			capacity, _ := cmd.Flags().GetInt("capacity")

			srv := &http.Server{
				Addr:              fmt.Sprintf(":%s", port),
				Handler:           api.NewRouter(engine, store.New(capacity), logger),
				ReadHeaderTimeout: 10 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				logger.Infow("starting API server", "addr", srv.Addr)
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return fmt.Errorf("failed to start server: %w", err)
			case <-ctx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			logger.Infow("shutting down API server")
			return srv.Shutdown(shutdownCtx)
		},
	}
	cmd.Flags().String("port", "", "Listen port (default: RETFIN_API_PORT or 8080)")
	cmd.Flags().Int("capacity", store.DefaultCapacity, "Number of projection runs kept in memory")
	return cmd
}
