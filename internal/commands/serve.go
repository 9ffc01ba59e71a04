package commands

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nexusscout/chronicle-harvester/internal/handlers"
	"github.com/nexusscout/chronicle-harvester/internal/logging"
	"github.com/nexusscout/chronicle-harvester/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP-triggered harvester service",
	Long: `Starts an HTTP server exposing the harvest trigger endpoint along with
health and metrics endpoints. Each request to /harvest runs one full
fetch-annotate-store invocation.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	slog.Info("Starting harvester service",
		slog.Int("port", cfg.Server.Port),
		logging.SourceURL(cfg.Harvest.SourceURL),
		logging.Backend(cfg.Storage.Backend),
		logging.Bucket(cfg.Storage.Bucket),
		slog.Int("sample_size", cfg.Harvest.SampleSize),
	)

	svc, store, err := buildPipeline(cmd.Context(), logger)
	if err != nil {
		return err
	}
	defer store.Close()

	handler := handlers.NewHarvestHandler(svc)
	router := server.NewRouter(handler)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Harvester listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-quit:
	}

	slog.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.WriteTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	slog.Info("Server stopped")
	return nil
}
