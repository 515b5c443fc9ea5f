package tools

/**
Stores per-round spend records to a CSV file for reporting and trend
analysis across sessions
*/
import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/jqcwhw/ps99stuff/collector"
)

// RoundStat is one allocation round's persisted record.
type RoundStat struct {
	ID        string
	Timestamp time.Time
	Budget    int
	Spent     int
	Eggs      int
}

// NewRoundStat converts a session round record for storage.
func NewRoundStat(record collector.RoundRecord) RoundStat {
	return RoundStat{
		ID:        record.ID,
		Timestamp: record.Timestamp,
		Budget:    record.Budget,
		Spent:     record.Spent,
		Eggs:      len(record.Selected),
	}
}

// StoreRounds writes round records to a CSV file, replacing previous
// contents.
func StoreRounds(path string, stats []RoundStat) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create rounds file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"ID", "Timestamp", "Budget", "Spent", "Eggs"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, stat := range stats {
		record := []string{
			stat.ID,
			strconv.FormatInt(stat.Timestamp.Unix(), 10),
			strconv.Itoa(stat.Budget),
			strconv.Itoa(stat.Spent),
			strconv.Itoa(stat.Eggs),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write record %s: %w", stat.ID, err)
		}
	}
	return nil
}

// RetrieveRounds reads all round records from a CSV file.
func RetrieveRounds(path string) ([]RoundStat, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open rounds file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 //Tolerate ragged rows, skipped below
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read rounds file: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("rounds file %s is empty", path)
	}

	var result []RoundStat
	for i := 1; i < len(records); i++ {
		record := records[i]
		if len(record) != 5 {
			continue // Skip malformed rows
		}
		ts, err := strconv.ParseInt(record[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: parse timestamp: %w", i, err)
		}
		budget, err := strconv.Atoi(record[2])
		if err != nil {
			return nil, fmt.Errorf("row %d: parse budget: %w", i, err)
		}
		spent, err := strconv.Atoi(record[3])
		if err != nil {
			return nil, fmt.Errorf("row %d: parse spent: %w", i, err)
		}
		eggs, err := strconv.Atoi(record[4])
		if err != nil {
			return nil, fmt.Errorf("row %d: parse eggs: %w", i, err)
		}

		result = append(result, RoundStat{
			ID:        record[0],
			Timestamp: time.Unix(ts, 0),
			Budget:    budget,
			Spent:     spent,
			Eggs:      eggs,
		})
	}
	return result, nil
}
