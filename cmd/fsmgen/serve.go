package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/aretw0/fsmgen/internal/cli"
	httpAdapter "github.com/aretw0/fsmgen/pkg/adapters/http"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 5 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long: `Serves generation, analysis and graph endpoints plus a project store
(memory, file or redis, from the config file) over HTTP. Metrics are exposed
on /metrics.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		port := appConfig.Server.Port
		if cmd.Flags().Changed("port") {
			port, _ = cmd.Flags().GetString("port")
		}

		backend, err := cli.OpenBackend(appConfig.Store, logger)
		if err != nil {
			return err
		}
		defer backend.Close()

		renderer, err := newRenderer()
		if err != nil {
			return err
		}

		opts := []httpAdapter.Option{
			httpAdapter.WithStore(backend.Store),
			httpAdapter.WithLocker(backend.Locker),
			httpAdapter.WithGeneratorOptions(appConfig.Generator.Options()...),
			httpAdapter.WithLogger(logger),
		}
		if renderer.Available() {
			opts = append(opts, httpAdapter.WithRenderer(renderer))
		} else {
			logger.Warn("Graphviz not found, image formats disabled", "binary", appConfig.Graphviz.Binary)
		}

		srv := &http.Server{
			Addr:              ":" + port,
			Handler:           httpAdapter.NewHandler(opts...),
			ReadHeaderTimeout: 10 * time.Second,
		}

		serverErrors := make(chan error, 1)
		go func() {
			logger.Info("Starting fsmgen server", "addr", srv.Addr, "store", appConfig.Store.Backend)
			serverErrors <- srv.ListenAndServe()
		}()

		sigCtx := cli.NewSignalContext(cmd.Context())
		defer sigCtx.Cancel()

		select {
		case err := <-serverErrors:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return fmt.Errorf("server error: %w", err)

		case <-sigCtx.Done():
			logger.Info("Start shutdown", "signal", sigCtx.Signal())

			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				logger.Error("Graceful shutdown did not complete", "timeout", shutdownTimeout, "err", err)
				if err := srv.Close(); err != nil {
					return fmt.Errorf("error killing server: %w", err)
				}
			}
			logger.Info("fsmgen server stopped gracefully")
			return nil
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on (overrides server.port)")
}
