package collector

/*
Collection session: the loop that turns availability snapshots into
hatch orders. Polls a source, allocates within the round budget,
dispatches committed eggs to an executor, and accumulates totals.
Integrates the allocator the way the deal monitor integrates the
sniper: decide first, execute second, record everything.
*/

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Snapshot is one availability reading: the eggs currently offered and
// the coin balance observed alongside them.
type Snapshot struct {
	Available []string
	Coins     int
}

// AvailabilitySource produces availability snapshots. Implementations:
// the live shop feed and the simulated memory reader.
type AvailabilitySource interface {
	ReadSnapshot(ctx context.Context) (*Snapshot, error)
}

// Executor performs one committed hatch. Implementations: the
// chromedp live executor and the collection simulator.
type Executor interface {
	Purchase(ctx context.Context, name string, price int) error
}

// Totals is the cumulative accumulator a session threads across
// rounds. Explicit value, no shared globals.
type Totals struct {
	Rounds      int
	EggsHatched int
	CoinsSpent  int
}

// RoundRecord describes one completed allocation round.
type RoundRecord struct {
	ID        string
	Timestamp time.Time
	Budget    int
	Selected  []string
	Spent     int
}

// SessionConfig carries the loop settings, normally sourced from the
// config package.
type SessionConfig struct {
	// BudgetCap is the most coins one round may spend; the effective
	// round budget is min(BudgetCap, observed coin balance).
	BudgetCap int
	// Throttle is the base delay between rounds; each wait adds up to
	// 10% random jitter on top.
	Throttle time.Duration
	// RefreshEvery reloads tables via ReloadTables after this many
	// rounds. Zero disables reloading.
	RefreshEvery int
	// Rounds is the number of rounds Run executes.
	Rounds int
	// ReloadTables rebuilds the table generation from configuration.
	// Optional; errors are logged and the old generation kept.
	ReloadTables func() (*Tables, error)
	// OnRound receives the record of every completed round. Optional.
	OnRound func(RoundRecord)
}

// Session drives allocation rounds against one table set.
type Session struct {
	cfg    SessionConfig
	tables *TableSet
	source AvailabilitySource
	exec   Executor
	totals Totals
	rng    *rand.Rand
	log    *logrus.Entry
}

func NewSession(cfg SessionConfig, tables *TableSet, source AvailabilitySource, exec Executor) *Session {
	return &Session{
		cfg:    cfg,
		tables: tables,
		source: source,
		exec:   exec,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		log:    logrus.WithField("component", "session"),
	}
}

// Totals returns the cumulative stats accumulated so far.
func (s *Session) Totals() Totals {
	return s.totals
}

// RunOnce executes a single allocation round: read a snapshot, filter
// it against the current catalog, allocate, execute, accumulate.
func (s *Session) RunOnce(ctx context.Context) (RoundRecord, error) {
	record := RoundRecord{
		ID:        uuid.NewString(),
		Timestamp: time.Now(),
	}

	snap, err := s.source.ReadSnapshot(ctx)
	if err != nil {
		return record, err
	}

	tables := s.tables.Snapshot()

	// Filter out eggs the catalog does not know; the allocator would
	// reject the whole round otherwise.
	known := make([]string, 0, len(snap.Available))
	for _, name := range snap.Available {
		if _, ok := tables.Price(name); !ok {
			s.log.WithField("egg", name).Debug("skipping egg missing from catalog")
			continue
		}
		known = append(known, name)
	}

	budget := s.cfg.BudgetCap
	if snap.Coins < budget {
		budget = snap.Coins
	}
	if budget < 0 {
		budget = 0
	}
	record.Budget = budget

	result, err := tables.Allocate(known, budget)
	if err != nil {
		return record, err
	}

	for _, name := range result.Selected {
		price, _ := tables.Price(name)
		if err := s.exec.Purchase(ctx, name, price); err != nil {
			s.log.WithError(err).WithField("egg", name).Error("hatch order failed")
			continue
		}
		record.Selected = append(record.Selected, name)
		record.Spent += price
		s.totals.EggsHatched++
		s.totals.CoinsSpent += price
	}

	s.totals.Rounds++
	s.log.WithFields(logrus.Fields{
		"round":  record.ID,
		"budget": record.Budget,
		"spent":  record.Spent,
		"eggs":   len(record.Selected),
	}).Info("round complete")

	if s.cfg.OnRound != nil {
		s.cfg.OnRound(record)
	}
	return record, nil
}

// Run executes the configured number of rounds, throttling between
// them and refreshing tables on the configured cadence. Snapshot
// errors skip the round; the loop stops only on context cancellation.
func (s *Session) Run(ctx context.Context) error {
	for i := 0; i < s.cfg.Rounds; i++ {
		if err := s.wait(ctx); err != nil {
			return err
		}

		if s.cfg.RefreshEvery > 0 && s.cfg.ReloadTables != nil && i > 0 && i%s.cfg.RefreshEvery == 0 {
			fresh, err := s.cfg.ReloadTables()
			if err != nil {
				s.log.WithError(err).Warn("could not refresh tables, keeping current generation")
			} else {
				s.tables.Swap(fresh)
			}
		}

		if _, err := s.RunOnce(ctx); err != nil {
			s.log.WithError(err).Warn("round skipped")
		}
	}
	return nil
}

// wait sleeps the throttle plus jitter, honoring cancellation.
func (s *Session) wait(ctx context.Context) error {
	d := s.cfg.Throttle
	if d <= 0 {
		return ctx.Err()
	}
	d += time.Duration(s.rng.Int63n(int64(d)/10 + 1))
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
