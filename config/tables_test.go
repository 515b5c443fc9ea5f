package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTables(t *testing.T) {
	tables := DefaultTables()
	assert.Equal(t, len(defaultEggs), tables.Len())

	rank, ok := tables.Rank("Rainbow Egg")
	require.True(t, ok)
	assert.Equal(t, 1, rank)

	price, ok := tables.Price("Common Egg")
	require.True(t, ok)
	assert.Equal(t, 250, price)
}

func TestLoadTables_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "eggs.yaml")
	doc := `eggs:
  - name: Common Egg
    price: 300
    rank: 2
  - name: Golden Egg
    price: 50000
    rank: 1
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	tables, err := LoadTables(path)
	require.NoError(t, err)
	assert.Equal(t, 2, tables.Len())
	assert.Equal(t, []string{"Golden Egg", "Common Egg"}, tables.Names())
}

func TestLoadTables_MissingFileUsesDefaults(t *testing.T) {
	tables, err := LoadTables(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, len(defaultEggs), tables.Len())
}

func TestLoadTables_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "malformed yaml", doc: "eggs: ["},
		{name: "empty table", doc: "eggs: []"},
		{name: "duplicate entry", doc: "eggs:\n  - {name: Common Egg, price: 250, rank: 1}\n  - {name: Common Egg, price: 300, rank: 2}\n"},
		{name: "bad price", doc: "eggs:\n  - {name: Common Egg, price: -5, rank: 1}\n"},
		{name: "bad rank", doc: "eggs:\n  - {name: Common Egg, price: 250, rank: 0}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "eggs.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.doc), 0644))
			_, err := LoadTables(path)
			assert.Error(t, err)
		})
	}
}
