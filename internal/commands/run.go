package commands

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Execute one harvest invocation and exit",
	Long: `Runs the fetch-annotate-store pipeline once, prints the invocation
result as JSON, and exits non-zero if the harvest failed. Useful from cron
or for manual runs.`,
	RunE: runOnce,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runOnce(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	svc, store, err := buildPipeline(cmd.Context(), logger)
	if err != nil {
		return err
	}
	defer store.Close()

	result, code := svc.Run(cmd.Context())

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	fmt.Fprintln(os.Stdout, string(out))

	if code != http.StatusOK {
		return fmt.Errorf("harvest failed: %s", result.Message)
	}
	return nil
}
