package main

import (
	"github.com/llxisdsh/cvec"
	"github.com/spf13/cobra"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Push a handful of values and walk the vector forward and backward",
	RunE:  runDemo,
}

func runDemo(cmd *cobra.Command, args []string) error {
	v := cvec.New[int]()

	for i := 0; i < 9; i++ {
		idx := v.Push(i)
		logger.Info("pushed", "index", idx, "value", i)
	}

	logger.Info("state after pushes", "len", v.Len())

	it := v.Iter()
	for {
		i, val, ok := it.Next()
		if !ok {
			break
		}
		logger.Info("forward", "index", i, "value", *val)
	}

	rit := v.IterReverse()
	for {
		i, val, ok := rit.Next()
		if !ok {
			break
		}
		logger.Info("reverse", "index", i, "value", *val)
	}

	return nil
}
