package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nexusscout/chronicle-harvester/internal/config"
	"github.com/nexusscout/chronicle-harvester/internal/logging"
	"github.com/nexusscout/chronicle-harvester/internal/service"
	"github.com/nexusscout/chronicle-harvester/internal/source"
	"github.com/nexusscout/chronicle-harvester/internal/storage"
)

var (
	cfgFile string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "harvester",
	Short: "Chronicle Harvester",
	Long: `harvester collects records from a public JSON feed, stamps each one
with harvest metadata, and stores it as a JSON object in cloud storage.

Run it as a long-lived HTTP-triggered service (serve), as a one-shot
invocation from a scheduler or terminal (run), or start a local mock feed
for offline development (mockfeed).`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./config.yaml)")
}

func initConfig() {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
}

// newLogger builds the process logger from config and installs it as the
// slog default.
func newLogger() *logging.Logger {
	logger := logging.New(
		logging.ParseLevel(cfg.Logging.Level),
		cfg.Logging.Format,
	).With(logging.Service("harvester"))
	logging.SetDefault(logger)
	return logger
}

// buildPipeline wires the feed client, storage backend, and harvest service
// from config. The caller owns closing the returned store.
func buildPipeline(ctx context.Context, logger *logging.Logger) (*service.HarvestService, storage.Store, error) {
	store, err := storage.Open(ctx, storage.Config{
		Backend:   cfg.Storage.Backend,
		ProjectID: cfg.Storage.ProjectID,
		Bucket:    cfg.Storage.Bucket,
		BasePath:  cfg.Storage.BasePath,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("open storage backend: %w", err)
	}

	feed := source.New(cfg.Harvest.SourceURL, cfg.Harvest.FetchTimeout)

	svc := service.NewHarvestService(feed, store, service.Options{
		SourceURL:     cfg.Harvest.SourceURL,
		Agent:         cfg.Harvest.Agent,
		SampleSize:    cfg.Harvest.SampleSize,
		Prefix:        cfg.Storage.Prefix,
		FetchTimeout:  cfg.Harvest.FetchTimeout,
		UploadTimeout: cfg.Storage.UploadTimeout,
	}, logger)

	return svc, store, nil
}
