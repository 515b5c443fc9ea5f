package tools

/*
Simulated "direct memory" egg scanner. Stands in for reading the game
client's process memory, which this project does not do: snapshots are
randomized over the configured catalog instead. Useful for exercising
the session loop without network or a running game client.
*/

import (
	"context"
	"math/rand"

	"github.com/jqcwhw/ps99stuff/collector"
	"github.com/jqcwhw/ps99stuff/config"
)

type MemoryReader struct {
	rng   *rand.Rand
	names []string
}

// NewMemoryReader builds a simulated scanner over the given egg names.
// The seed makes a run reproducible.
func NewMemoryReader(seed int64, names []string) *MemoryReader {
	return &MemoryReader{
		rng:   rand.New(rand.NewSource(seed)),
		names: append([]string(nil), names...),
	}
}

// ReadSnapshot produces a randomized availability snapshot: a subset
// of the catalog, occasionally with duplicate sightings (the real
// signal source repeats entries), and a coin balance in the configured
// range.
func (m *MemoryReader) ReadSnapshot(_ context.Context) (*collector.Snapshot, error) {
	var available []string
	for _, name := range m.names {
		if m.rng.Intn(2) == 0 {
			continue
		}
		available = append(available, name)
		if m.rng.Intn(10) == 0 { //Duplicate sighting
			available = append(available, name)
		}
	}

	coins := config.MemoryReaderMinCoins + m.rng.Intn(config.MemoryReaderMaxCoins-config.MemoryReaderMinCoins+1)
	return &collector.Snapshot{Available: available, Coins: coins}, nil
}
