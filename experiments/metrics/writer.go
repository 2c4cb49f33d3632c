package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// AgentConfig describes one agent taking part in an experiment.
type AgentConfig struct {
	ID        int
	Depth     int
	Targets   int
	Threats   int
	Branching int
	Swings    bool
	Memo      bool
}

type GameRecord struct {
	ID     int
	Agent1 int // AgentConfig.ID playing upper
	Agent2 int // AgentConfig.ID playing lower
	GameMetric
}

// WinnerID maps the winning side to its AgentConfig.ID, or -1 for a draw.
func (r GameRecord) WinnerID() int {
	switch r.Winner {
	case 0:
		return r.Agent1
	case 1:
		return r.Agent2
	}
	return -1
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates root/name/<timestamp> to hold one experiment's files.
func NewWriter(root, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	header := []string{"id", "depth", "targets", "threats", "branching", "swings", "memo"}
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			strconv.Itoa(config.Depth),
			strconv.Itoa(config.Targets),
			strconv.Itoa(config.Threats),
			strconv.Itoa(config.Branching),
			strconv.FormatBool(config.Swings),
			strconv.FormatBool(config.Memo),
		})
	}
	return w.write("agent_configs.csv", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "agent1", "agent2", "winner", "turns", "kills1", "kills2", "start_time", "end_time", "duration"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Agent1),
			strconv.Itoa(record.Agent2),
			strconv.Itoa(record.WinnerID()),
			strconv.Itoa(record.Turns),
			strconv.Itoa(record.Kills[0]),
			strconv.Itoa(record.Kills[1]),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
		})
	}
	return w.write("game_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "turn", "player", "action", "depth", "targets", "duration",
		"searches", "matrices", "solves", "pruned_rows", "pruned_cols", "memo_hits"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Turn),
			strconv.Itoa(record.Player),
			record.Action,
			strconv.Itoa(record.Depth),
			strconv.Itoa(record.Targets),
			record.Duration.String(),
			strconv.Itoa(record.Searches),
			strconv.Itoa(record.Matrices),
			strconv.Itoa(record.Solves),
			strconv.Itoa(record.PrunedRows),
			strconv.Itoa(record.PrunedCols),
			strconv.Itoa(record.MemoHits),
		})
	}
	return w.write("move_records.csv", header, rows)
}

func (w *Writer) write(file string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, file)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", file, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", file, err)
	}
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write %s rows: %w", file, err)
	}
	return nil
}
