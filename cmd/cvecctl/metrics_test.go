package main

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestVecMetrics_GaugeReflectsLen(t *testing.T) {
	m := newVecMetrics(prometheus.NewRegistry())
	m.length.Set(42)

	require.Equal(t, float64(42), testutil.ToFloat64(m.length))
}

func TestVecMetrics_CountersStartAtZero(t *testing.T) {
	m := newVecMetrics(prometheus.NewRegistry())

	require.Equal(t, float64(0), testutil.ToFloat64(m.pushesTotal))
	require.Equal(t, float64(0), testutil.ToFloat64(m.allocsTotal))
}
