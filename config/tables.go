package config

/*
Egg catalog and priority table. Loaded wholesale from a YAML file (or
the built-in defaults) into a frozen collector.Tables; a settings
update reloads the whole file and swaps the result in between rounds,
never edits the live tables.
*/

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jqcwhw/ps99stuff/collector"
)

// EggEntry is one row of the YAML egg table.
type EggEntry struct {
	Name  string `yaml:"name"`
	Price int    `yaml:"price"`
	Rank  int    `yaml:"rank"`
}

// EggTable is the YAML document shape.
type EggTable struct {
	Eggs []EggEntry `yaml:"eggs"`
}

// defaultEggs mirrors the zone-1 egg shop.
var defaultEggs = []EggEntry{
	{Name: "Common Egg", Price: 250, Rank: 7},
	{Name: "Spotted Egg", Price: 1000, Rank: 6},
	{Name: "Iceberg Egg", Price: 7500, Rank: 5},
	{Name: "Lava Egg", Price: 22500, Rank: 4},
	{Name: "Magma Egg", Price: 75000, Rank: 3},
	{Name: "Crystal Egg", Price: 250000, Rank: 2},
	{Name: "Rainbow Egg", Price: 1000000, Rank: 1},
}

// DefaultTables returns the built-in egg tables.
func DefaultTables() *collector.Tables {
	tables, err := buildTables(defaultEggs)
	if err != nil {
		// The default table is a compile-time constant; a failure here
		// is a programming error.
		panic(err)
	}
	return tables
}

// LoadTables reads an egg table file and freezes it. Falls back to the
// defaults when the file does not exist.
func LoadTables(path string) (*collector.Tables, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return DefaultTables(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read egg table: %w", err)
	}

	var table EggTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("parse egg table: %w", err)
	}
	if len(table.Eggs) == 0 {
		return nil, fmt.Errorf("egg table %s has no entries", path)
	}
	return buildTables(table.Eggs)
}

func buildTables(eggs []EggEntry) (*collector.Tables, error) {
	catalog := make(map[string]int, len(eggs))
	priorities := make(map[string]int, len(eggs))
	for _, egg := range eggs {
		if _, dup := catalog[egg.Name]; dup {
			return nil, fmt.Errorf("egg table: duplicate entry %q", egg.Name)
		}
		catalog[egg.Name] = egg.Price
		priorities[egg.Name] = egg.Rank
	}
	return collector.NewTables(catalog, priorities)
}
