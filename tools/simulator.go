package tools

/*
Simulates hatch orders and tracks the portfolio virtually.
Enables testing the full session without spending live coins.
*/

import (
	"context"
	"strconv"

	"github.com/sirupsen/logrus"
)

type CollectionSimulator struct {
	CoinsSpent int
	Hatched    map[string][]int

	// LogFile receives one line per simulated hatch; empty disables it.
	LogFile string
}

// Constructor
func NewCollectionSimulator(logFile string) *CollectionSimulator {
	return &CollectionSimulator{
		Hatched: make(map[string][]int),
		LogFile: logFile,
	}
}

// Purchase records a simulated hatch. Implements collector.Executor.
func (cs *CollectionSimulator) Purchase(_ context.Context, name string, price int) error {
	if cs.LogFile != "" {
		if err := WriteLineToFile(cs.LogFile, "Hatched "+name+" for "+strconv.Itoa(price)); err != nil {
			logrus.WithError(err).Warn("could not append to action log")
		}
	}
	cs.Hatched[name] = append(cs.Hatched[name], price)
	cs.CoinsSpent += price
	return nil
}

// Portfolio returns the virtual hatch portfolio: egg name to the
// prices paid for each hatch.
func (cs *CollectionSimulator) Portfolio() map[string][]int {
	return cs.Hatched
}
