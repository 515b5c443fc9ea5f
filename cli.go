package main

/*
Command-line interface to run the collector session and the analysis
modules
*/

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jqcwhw/ps99stuff/collector"
	"github.com/jqcwhw/ps99stuff/config"
	"github.com/jqcwhw/ps99stuff/tools"
)

var (
	logLevel   string // Log verbosity level
	tablesFile string // Egg catalog + priority table YAML
	roundsFile string // Per-round spend records CSV

	// Flags for collect
	sourceName string // Availability source: feed or memory
	budgetCap  int    // Most coins one round may spend
	rounds     int    // Rounds to run this session
	throttle   time.Duration
	seed       int64 // Seed for the simulated memory reader

	// Flags for report / forecast
	chartFile string
	period    int
	lookback  int
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "ps99stuff",
	Short: "Priority-driven egg collector for Pet Simulator 99",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
	},
}

// newSource builds the availability source selected by flags.
func newSource(tables *collector.Tables) collector.AvailabilitySource {
	switch sourceName {
	case "feed":
		return tools.NewShopFeed()
	case "memory":
		return tools.NewMemoryReader(seed, tables.Names())
	default:
		logrus.Fatalf("Unknown source %q; valid sources: [feed, memory]", sourceName)
		return nil
	}
}

// runSession drives a full allocation session, live or simulated.
func runSession(live bool) {
	tables, err := config.LoadTables(tablesFile)
	if err != nil {
		logrus.Fatalf("Could not load egg tables: %v", err)
	}
	set := collector.NewTableSet(tables)

	if err := os.MkdirAll(filepath.Dir(roundsFile), 0755); err != nil {
		logrus.Fatalf("Could not create data directory: %v", err)
	}

	var exec collector.Executor
	if live {
		liveExec, err := NewLiveExecutor()
		if err != nil {
			logrus.Fatalf("Could not start live executor: %v", err)
		}
		defer liveExec.Close()
		exec = liveExec
	} else {
		exec = tools.NewCollectionSimulator(config.ActionLogFile)
	}

	var records []tools.RoundStat
	session := collector.NewSession(collector.SessionConfig{
		BudgetCap:    budgetCap,
		Throttle:     throttle,
		RefreshEvery: config.RefreshRate,
		Rounds:       rounds,
		ReloadTables: func() (*collector.Tables, error) { return config.LoadTables(tablesFile) },
		OnRound: func(r collector.RoundRecord) {
			records = append(records, tools.NewRoundStat(r))
		},
	}, set, newSource(tables), exec)

	logrus.Infof("Starting session: %d rounds, budget cap %d, source %s, live=%v",
		rounds, budgetCap, sourceName, live)

	if err := session.Run(context.Background()); err != nil {
		logrus.Fatalf("Session aborted: %v", err)
	}

	if err := tools.StoreRounds(roundsFile, records); err != nil {
		logrus.Errorf("Could not store round records: %v", err)
	}

	totals := session.Totals()
	logrus.Infof("Session complete | Rounds: %d | Eggs hatched: %d | Coins spent: %d",
		totals.Rounds, totals.EggsHatched, totals.CoinsSpent)
}

// collectCmd runs the live allocation session
var collectCmd = &cobra.Command{
	Use:   "collect",
	Short: "Run the live egg collection session",
	Run: func(cmd *cobra.Command, args []string) {
		runSession(true)
	},
}

// simulateCmd runs the session against the collection simulator
var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a dry-run session with the collection simulator",
	Run: func(cmd *cobra.Command, args []string) {
		runSession(false)
	},
}

// scanCmd dumps one availability snapshot
var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Read a single availability snapshot and print it",
	Run: func(cmd *cobra.Command, args []string) {
		tables, err := config.LoadTables(tablesFile)
		if err != nil {
			logrus.Fatalf("Could not load egg tables: %v", err)
		}

		snap, err := newSource(tables).ReadSnapshot(context.Background())
		if err != nil {
			logrus.Fatalf("Snapshot failed: %v", err)
		}

		logrus.Infof("Coins: %d", snap.Coins)
		for _, name := range snap.Available {
			price, ok := tables.Price(name)
			rank, _ := tables.Rank(name)
			if !ok {
				logrus.Infof("Available: %s (not in catalog)", name)
				continue
			}
			logrus.Infof("Available: %s | Price: %d | Rank: %d", name, price, rank)
		}
	},
}

// reportCmd charts cumulative spend
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Render the cumulative spend chart from stored rounds",
	Run: func(cmd *cobra.Command, args []string) {
		stats, err := tools.RetrieveRounds(roundsFile)
		if err != nil {
			logrus.Fatalf("Could not load round records: %v", err)
		}
		if err := tools.RenderSpendChart(stats, chartFile); err != nil {
			logrus.Fatalf("Could not render chart: %v", err)
		}
		logrus.Infof("Wrote %s (%d rounds)", chartFile, len(stats))
	},
}

// forecastCmd runs trend and restock-cycle analysis
var forecastCmd = &cobra.Command{
	Use:   "forecast",
	Short: "Analyze spend trend and shop restock cycles",
	Run: func(cmd *cobra.Command, args []string) {
		if err := AnalyzeSpendTrend(roundsFile, lookback); err != nil {
			logrus.Fatalf("Spend trend analysis failed: %v", err)
		}
		if err := AnalyzeRestockCycle(roundsFile, period); err != nil {
			logrus.Fatalf("Restock analysis failed: %v", err)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log verbosity level")
	rootCmd.PersistentFlags().StringVar(&tablesFile, "tables", config.TablesFile, "Egg catalog and priority table YAML")
	rootCmd.PersistentFlags().StringVar(&roundsFile, "rounds-file", config.RoundsFile, "Per-round records CSV")

	for _, sessionCmd := range []*cobra.Command{collectCmd, simulateCmd} {
		sessionCmd.Flags().StringVar(&sourceName, "source", "memory", "Availability source: feed or memory")
		sessionCmd.Flags().IntVar(&budgetCap, "budget", config.RoundBudgetCap, "Most coins one round may spend")
		sessionCmd.Flags().IntVar(&rounds, "iterations", config.TotalRounds, "Rounds to run this session")
		sessionCmd.Flags().DurationVar(&throttle, "throttle", config.MonitorThrottle, "Base delay between rounds")
		sessionCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "Seed for the simulated memory reader")
	}

	scanCmd.Flags().StringVar(&sourceName, "source", "memory", "Availability source: feed or memory")
	scanCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "Seed for the simulated memory reader")

	reportCmd.Flags().StringVar(&chartFile, "out", config.ChartFile, "Chart output file")

	forecastCmd.Flags().IntVar(&period, "period", config.RestockPeriod, "Rounds per presumed restock cycle")
	forecastCmd.Flags().IntVar(&lookback, "lookback", config.LookbackRounds, "Rounds of history to analyze")

	rootCmd.AddCommand(collectCmd, simulateCmd, scanCmd, reportCmd, forecastCmd)
}
