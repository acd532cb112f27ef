package tournament

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// WriteWinMatrix exports the matrix transposed: one row per loser index,
// one column per winner index, no header. Cell (row l, column w) is how
// often agent w beat agent l.
func WriteWinMatrix(path string, m *WinMatrix) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create win matrix file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	size := m.Size()
	for loser := 0; loser < size; loser++ {
		row := make([]string, size)
		for winner := 0; winner < size; winner++ {
			row[winner] = strconv.Itoa(m.Wins(winner, loser))
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write win matrix row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// WritePairingRecords exports one row per ordered pairing with its win,
// tie and match-length summary.
func WritePairingRecords(path string, result *Result, trials int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create pairing records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"player_one", "player_two", "name_one", "name_two", "wins_one", "wins_two", "ties", "avg_turns"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write pairing records header: %w", err)
	}

	for _, record := range result.Pairings {
		row := []string{
			strconv.Itoa(record.PlayerOne),
			strconv.Itoa(record.PlayerTwo),
			result.Names[record.PlayerOne],
			result.Names[record.PlayerTwo],
			strconv.Itoa(record.WinsOne),
			strconv.Itoa(record.WinsTwo),
			strconv.Itoa(record.Ties),
			strconv.FormatFloat(record.AverageTurns(trials), 'f', 2, 64),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write pairing record row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
