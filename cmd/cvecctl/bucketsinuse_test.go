package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBucketsInUse(t *testing.T) {
	cases := []struct {
		n    uint64
		want int
	}{
		{0, 0},
		{1, 1},
		{2, 2},
		{3, 3},
		{4, 3},
		{5, 4},
		{8, 4},
		{9, 5},
	}
	for _, c := range cases {
		require.Equalf(t, c.want, bucketsInUse(c.n), "bucketsInUse(%d)", c.n)
	}
}
