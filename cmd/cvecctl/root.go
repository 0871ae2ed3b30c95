package main

import (
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// runID tags every log line emitted by this invocation, the same role a
// session ID plays for Aleutian's logging package. The Prometheus
// collectors in serve.go do not carry it as a label.
var runID = uuid.NewString()

var logger = slog.New(slog.NewTextHandler(os.Stderr, nil)).With("run_id", runID)

var rootCmd = &cobra.Command{
	Use:   "cvecctl",
	Short: "Exercise and observe a cvec.Vector under load",
}

func init() {
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(benchCmd)
	rootCmd.AddCommand(serveCmd)
}
