package collector

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	snaps []Snapshot
	calls int
	err   error
}

func (f *fakeSource) ReadSnapshot(_ context.Context) (*Snapshot, error) {
	if f.err != nil {
		return nil, f.err
	}
	snap := f.snaps[f.calls%len(f.snaps)]
	f.calls++
	return &snap, nil
}

type fakeExecutor struct {
	purchases []string
	failOn    string
}

func (f *fakeExecutor) Purchase(_ context.Context, name string, _ int) error {
	if name == f.failOn {
		return errors.New("purchase rejected")
	}
	f.purchases = append(f.purchases, name)
	return nil
}

func sessionTables(t *testing.T) *TableSet {
	t.Helper()
	tables, err := NewTables(
		map[string]int{"Common Egg": 10, "Spotted Egg": 20, "Iceberg Egg": 5},
		map[string]int{"Common Egg": 1, "Spotted Egg": 2, "Iceberg Egg": 3},
	)
	require.NoError(t, err)
	return NewTableSet(tables)
}

func TestSession_RunOnce(t *testing.T) {
	source := &fakeSource{snaps: []Snapshot{{
		Available: []string{"Spotted Egg", "Common Egg", "Iceberg Egg"},
		Coins:     10000,
	}}}
	exec := &fakeExecutor{}
	session := NewSession(SessionConfig{BudgetCap: 30}, sessionTables(t), source, exec)

	record, err := session.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 30, record.Budget)
	assert.Equal(t, []string{"Common Egg", "Spotted Egg"}, record.Selected)
	assert.Equal(t, 30, record.Spent)
	assert.NotEmpty(t, record.ID)
	assert.Equal(t, exec.purchases, record.Selected)
}

func TestSession_BudgetCappedByBalance(t *testing.T) {
	source := &fakeSource{snaps: []Snapshot{{
		Available: []string{"Common Egg", "Spotted Egg"},
		Coins:     12,
	}}}
	session := NewSession(SessionConfig{BudgetCap: 1000}, sessionTables(t), source, &fakeExecutor{})

	record, err := session.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 12, record.Budget)
	assert.Equal(t, []string{"Common Egg"}, record.Selected)
}

func TestSession_NegativeBalanceClampsToZero(t *testing.T) {
	source := &fakeSource{snaps: []Snapshot{{
		Available: []string{"Common Egg"},
		Coins:     -50,
	}}}
	session := NewSession(SessionConfig{BudgetCap: 100}, sessionTables(t), source, &fakeExecutor{})

	record, err := session.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Zero(t, record.Budget)
	assert.Empty(t, record.Selected)
}

func TestSession_FiltersUnknownEggs(t *testing.T) {
	source := &fakeSource{snaps: []Snapshot{{
		Available: []string{"Ghost Egg", "Common Egg"},
		Coins:     1000,
	}}}
	exec := &fakeExecutor{}
	session := NewSession(SessionConfig{BudgetCap: 100}, sessionTables(t), source, exec)

	record, err := session.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Common Egg"}, record.Selected)
}

func TestSession_FailedPurchaseNotCounted(t *testing.T) {
	source := &fakeSource{snaps: []Snapshot{{
		Available: []string{"Common Egg", "Spotted Egg"},
		Coins:     1000,
	}}}
	exec := &fakeExecutor{failOn: "Common Egg"}
	session := NewSession(SessionConfig{BudgetCap: 100}, sessionTables(t), source, exec)

	record, err := session.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Spotted Egg"}, record.Selected)
	assert.Equal(t, 20, record.Spent)
	assert.Equal(t, Totals{Rounds: 1, EggsHatched: 1, CoinsSpent: 20}, session.Totals())
}

func TestSession_AccumulatesTotalsAcrossRounds(t *testing.T) {
	source := &fakeSource{snaps: []Snapshot{
		{Available: []string{"Common Egg"}, Coins: 1000},
		{Available: []string{"Spotted Egg"}, Coins: 1000},
		{Available: []string{}, Coins: 1000},
	}}
	var records []RoundRecord
	session := NewSession(SessionConfig{
		BudgetCap: 100,
		Rounds:    3,
		OnRound:   func(r RoundRecord) { records = append(records, r) },
	}, sessionTables(t), source, &fakeExecutor{})

	require.NoError(t, session.Run(context.Background()))
	assert.Len(t, records, 3)
	assert.Equal(t, Totals{Rounds: 3, EggsHatched: 2, CoinsSpent: 30}, session.Totals())
}

func TestSession_RefreshSwapsTables(t *testing.T) {
	set := sessionTables(t)
	replacement, err := NewTables(
		map[string]int{"Common Egg": 999},
		map[string]int{"Common Egg": 1},
	)
	require.NoError(t, err)

	reloads := 0
	source := &fakeSource{snaps: []Snapshot{{Available: []string{"Common Egg"}, Coins: 10000}}}
	session := NewSession(SessionConfig{
		BudgetCap:    5000,
		Rounds:       4,
		RefreshEvery: 2,
		ReloadTables: func() (*Tables, error) {
			reloads++
			return replacement, nil
		},
	}, set, source, &fakeExecutor{})

	require.NoError(t, session.Run(context.Background()))
	assert.Equal(t, 1, reloads)
	price, _ := set.Snapshot().Price("Common Egg")
	assert.Equal(t, 999, price)
	// Rounds 0-1 spent 10 each on the old table, rounds 2-3 spent 999.
	assert.Equal(t, 10+10+999+999, session.Totals().CoinsSpent)
}

func TestSession_SourceErrorSkipsRound(t *testing.T) {
	source := &fakeSource{err: errors.New("feed unreachable")}
	session := NewSession(SessionConfig{BudgetCap: 100, Rounds: 2}, sessionTables(t), source, &fakeExecutor{})

	require.NoError(t, session.Run(context.Background()))
	assert.Zero(t, session.Totals().EggsHatched)
}

func TestSession_RunHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	source := &fakeSource{snaps: []Snapshot{{Available: []string{"Common Egg"}, Coins: 100}}}
	session := NewSession(SessionConfig{
		BudgetCap: 100,
		Rounds:    5,
		Throttle:  time.Millisecond,
	}, sessionTables(t), source, &fakeExecutor{})

	err := session.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
