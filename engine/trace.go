package engine

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/Chenjox/Decision-Processes-Sandbox/game"
)

// TraceWriter records one row per resolved turn: the turn index and both
// sides' remaining hit points. The file is created fresh per run.
type TraceWriter struct {
	file   *os.File
	writer *csv.Writer
}

func NewTraceWriter(path string) (*TraceWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create trace file: %w", err)
	}
	return &TraceWriter{file: f, writer: csv.NewWriter(f)}, nil
}

// Record is shaped to hang directly off Engine.OnTurn. Write errors are
// deferred to Close, where they surface to the caller.
func (t *TraceWriter) Record(turn int, state *game.GameState) {
	_ = t.writer.Write([]string{
		strconv.Itoa(turn),
		strconv.Itoa(state.PlayerOne.CurrentHitPoints),
		strconv.Itoa(state.PlayerTwo.CurrentHitPoints),
	})
}

func (t *TraceWriter) Close() error {
	t.writer.Flush()
	if err := t.writer.Error(); err != nil {
		t.file.Close()
		return fmt.Errorf("failed to write trace rows: %w", err)
	}
	if err := t.file.Close(); err != nil {
		return fmt.Errorf("failed to close trace file: %w", err)
	}
	return nil
}
