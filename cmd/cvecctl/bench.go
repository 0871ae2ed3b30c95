package main

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/llxisdsh/cvec"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var (
	benchWriters    int
	benchReaders    int
	benchPerWriter  int
	benchReadRounds int
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Drive concurrent pushes and reads against a shared vector and report throughput",
	RunE:  runBench,
}

func init() {
	benchCmd.Flags().IntVar(&benchWriters, "writers", 4, "number of concurrent pusher goroutines")
	benchCmd.Flags().IntVar(&benchReaders, "readers", 4, "number of concurrent reader goroutines")
	benchCmd.Flags().IntVar(&benchPerWriter, "per-writer", 100_000, "pushes performed by each writer")
	benchCmd.Flags().IntVar(&benchReadRounds, "read-rounds", 1_000_000, "Get calls performed by each reader")
}

// runBench fans out benchWriters producers and benchReaders consumers
// against one cvec.Vector, mirroring the errgroup.WithContext pattern
// blobstore.CachingStore uses for its own concurrent block reads.
func runBench(cmd *cobra.Command, args []string) error {
	v := cvec.New[int64]()
	v.Reserve(uint64(benchWriters * benchPerWriter))

	g, ctx := errgroup.WithContext(cmd.Context())
	start := time.Now()
	var misses atomic.Int64

	for w := 0; w < benchWriters; w++ {
		base := int64(w * benchPerWriter)
		g.Go(func() error {
			for i := 0; i < benchPerWriter; i++ {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}
				v.Push(base + int64(i))
			}
			return nil
		})
	}

	for r := 0; r < benchReaders; r++ {
		g.Go(func() error {
			var localMisses int64
			for i := 0; i < benchReadRounds; i++ {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}
				n := v.Len()
				if n == 0 {
					localMisses++
					continue
				}
				if _, ok := v.Get(uint64(i % int(n))); !ok {
					localMisses++
				}
			}
			misses.Add(localMisses)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("bench run failed: %w", err)
	}

	elapsed := time.Since(start)
	total := benchWriters * benchPerWriter
	logger.Info("bench complete",
		"pushes", total,
		"len", v.Len(),
		"elapsed", elapsed,
		"pushes_per_sec", float64(total)/elapsed.Seconds(),
		"read_misses", misses.Load(),
	)
	return nil
}
