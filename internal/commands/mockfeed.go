package commands

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/nexusscout/chronicle-harvester/internal/mockfeed"
)

var (
	mockfeedAddr  string
	mockfeedCount int
)

var mockfeedCmd = &cobra.Command{
	Use:   "mockfeed",
	Short: "Serve a local jsonplaceholder-style feed of fake posts",
	Long: `Starts a small HTTP server that serves generated posts at /posts,
shaped like the public jsonplaceholder feed. Point harvest.source_url at it
to exercise the harvester without network access.`,
	RunE: runMockfeed,
}

func init() {
	mockfeedCmd.Flags().StringVar(&mockfeedAddr, "addr", ":8099", "listen address")
	mockfeedCmd.Flags().IntVar(&mockfeedCount, "count", 100, "number of posts to serve")
	rootCmd.AddCommand(mockfeedCmd)
}

func runMockfeed(cmd *cobra.Command, args []string) error {
	newLogger()

	slog.Info("Mock feed listening",
		slog.String("addr", mockfeedAddr),
		slog.Int("count", mockfeedCount),
	)

	srv := &http.Server{
		Addr:         mockfeedAddr,
		Handler:      mockfeed.Handler(mockfeedCount),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("mock feed server error: %w", err)
	}
	return nil
}
