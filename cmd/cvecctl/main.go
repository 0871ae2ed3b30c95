// Command cvecctl demonstrates and exercises the cvec package: pushing
// values under concurrent load, reading them back, and exposing the
// vector's internal counters for observability.
package main

import (
	"log/slog"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("cvecctl failed", "error", err)
		os.Exit(1)
	}
}
