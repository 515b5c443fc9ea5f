package collector

/*
Immutable catalog + priority table pair. Loaded once at startup and
swapped wholesale between rounds; never edited in place mid-allocation.
*/

import (
	"fmt"
	"sort"
	"sync/atomic"
)

// Tables holds the egg price catalog and the priority table for one
// configuration generation. Both maps are copied on construction and
// never mutated afterwards, so a *Tables is safe to share across
// goroutines.
type Tables struct {
	catalog    map[string]int
	priorities map[string]int
}

// NewTables validates and freezes a catalog/priority pair. Every
// catalog entry needs a positive price and a priority rank >= 1, and
// every priority entry needs a catalog row.
func NewTables(catalog map[string]int, priorities map[string]int) (*Tables, error) {
	c := make(map[string]int, len(catalog))
	p := make(map[string]int, len(priorities))

	for name, price := range catalog {
		if price <= 0 {
			return nil, fmt.Errorf("catalog entry %q: price must be positive, got %d", name, price)
		}
		rank, ok := priorities[name]
		if !ok {
			return nil, fmt.Errorf("catalog entry %q: missing priority rank", name)
		}
		if rank < 1 {
			return nil, fmt.Errorf("catalog entry %q: rank must be >= 1, got %d", name, rank)
		}
		c[name] = price
		p[name] = rank
	}
	for name := range priorities {
		if _, ok := catalog[name]; !ok {
			return nil, fmt.Errorf("priority entry %q: missing catalog price", name)
		}
	}

	return &Tables{catalog: c, priorities: p}, nil
}

// Price returns the unit price of an egg.
func (t *Tables) Price(name string) (int, bool) {
	price, ok := t.catalog[name]
	return price, ok
}

// Rank returns the priority rank of an egg (1 = highest).
func (t *Tables) Rank(name string) (int, bool) {
	rank, ok := t.priorities[name]
	return rank, ok
}

// Names returns all catalog names sorted by rank, with the allocator's
// price/name tie-breaks.
func (t *Tables) Names() []string {
	names := make([]string, 0, len(t.catalog))
	for name := range t.catalog {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		a, b := names[i], names[j]
		if t.priorities[a] != t.priorities[b] {
			return t.priorities[a] < t.priorities[b]
		}
		if t.catalog[a] != t.catalog[b] {
			return t.catalog[a] < t.catalog[b]
		}
		return a < b
	})
	return names
}

// Len returns the number of catalog entries.
func (t *Tables) Len() int {
	return len(t.catalog)
}

// Allocate runs the priority allocator against this table generation.
func (t *Tables) Allocate(available []string, budget int) (Result, error) {
	return Allocate(available, t.catalog, t.priorities, budget)
}

// TableSet publishes the current table generation to concurrent
// readers. A settings update builds a fresh *Tables and Swaps it in;
// rounds already running keep the snapshot they took.
type TableSet struct {
	current atomic.Pointer[Tables]
}

func NewTableSet(t *Tables) *TableSet {
	s := &TableSet{}
	s.current.Store(t)
	return s
}

// Snapshot returns the current generation. The result stays valid and
// unchanged for as long as the caller holds it.
func (s *TableSet) Snapshot() *Tables {
	return s.current.Load()
}

// Swap atomically publishes a replacement generation.
func (s *TableSet) Swap(t *Tables) {
	s.current.Store(t)
}
