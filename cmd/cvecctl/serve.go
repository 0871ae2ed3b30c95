package main

import (
	"math/rand"
	"net/http"
	"time"

	"github.com/llxisdsh/cvec"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Push values continuously while exposing a /metrics endpoint",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":9090", "address to serve /metrics on")
}

// vecMetrics mirrors the shape of vecgo's PrometheusObserver: a small
// struct of named collectors, registered once at startup.
type vecMetrics struct {
	length       prometheus.Gauge
	pushesTotal  prometheus.Counter
	allocsTotal  prometheus.Counter
	iterDuration prometheus.Histogram
}

// newVecMetrics registers the server's collectors against reg, so tests can
// pass a throwaway prometheus.NewRegistry() instead of colliding on the
// global default registry.
func newVecMetrics(reg prometheus.Registerer) *vecMetrics {
	factory := promauto.With(reg)
	return &vecMetrics{
		length: factory.NewGauge(prometheus.GaugeOpts{
			Name: "cvec_len",
			Help: "Current reserved length of the vector.",
		}),
		pushesTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "cvec_pushes_total",
			Help: "Total number of values pushed.",
		}),
		allocsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "cvec_bucket_allocations_total",
			Help: "Total number of bucket allocations observed by the server loop.",
		}),
		iterDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "cvec_iteration_duration_seconds",
			Help:    "Time to run one full forward iteration over the vector.",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	v := cvec.New[int64]()
	metrics := newVecMetrics(prometheus.DefaultRegisterer)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	server := &http.Server{Addr: serveAddr, Handler: mux}

	go func() {
		logger.Info("serving metrics", "addr", serveAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("metrics server stopped", "error", err)
		}
	}()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	prevBuckets := 0
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for range ticker.C {
		v.Push(rng.Int63())
		metrics.pushesTotal.Inc()
		metrics.length.Set(float64(v.Len()))

		buckets := bucketsInUse(v.Len())
		if buckets > prevBuckets {
			metrics.allocsTotal.Add(float64(buckets - prevBuckets))
			prevBuckets = buckets
		}

		start := time.Now()
		it := v.Iter()
		for {
			if _, _, ok := it.Next(); !ok {
				break
			}
		}
		metrics.iterDuration.Observe(time.Since(start).Seconds())
	}

	return nil
}

// bucketsInUse estimates how many of the vector's fixed buckets have been
// touched by n reserved indices, purely for the allocation counter above.
func bucketsInUse(n uint64) int {
	if n == 0 {
		return 0
	}
	b := 0
	for cumulative := uint64(0); cumulative < n; b++ {
		if b < 2 {
			cumulative++
		} else {
			cumulative += uint64(1) << uint(b-1)
		}
	}
	return b
}
