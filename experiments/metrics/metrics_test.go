package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	t.Run("counting work for one decision", func(t *testing.T) {
		c := NewCollector()
		c.Start(2, 3)
		c.AddSearch()
		c.AddMatrix()
		c.AddMatrix()
		c.AddSolve()
		c.AddPruned(2, 1)
		c.AddMemoHit()

		m := c.Complete()

		require.Equal(t, 2, m.Depth)
		require.Equal(t, 3, m.Targets)
		require.Equal(t, 1, m.Searches)
		require.Equal(t, 2, m.Matrices)
		require.Equal(t, 1, m.Solves)
		require.Equal(t, 2, m.PrunedRows)
		require.Equal(t, 1, m.PrunedCols)
		require.Equal(t, 1, m.MemoHits)
	})

	t.Run("starting a decision resets the counters", func(t *testing.T) {
		c := NewCollector()
		c.Start(1, 1)
		c.AddSearch()
		c.Start(1, 1)

		require.Equal(t, 0, c.Complete().Searches)
	})

	t.Run("the dummy collector reports nothing", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start(2, 2)
		c.AddSearch()

		require.Equal(t, SearchMetric{}, c.Complete())
	})
}

func TestWriter(t *testing.T) {
	w, err := NewWriter(t.TempDir(), "depth")
	require.NoError(t, err)

	start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	records := []GameRecord{
		{ID: 1, Agent1: 7, Agent2: 9, GameMetric: GameMetric{Winner: 1, Turns: 40, Kills: [2]int{2, 5}, StartTime: start, EndTime: start.Add(time.Second), Duration: time.Second}},
		{ID: 2, Agent1: 9, Agent2: 7, GameMetric: GameMetric{Winner: -1, Turns: 360}},
	}
	require.NoError(t, w.WriteGameRecords(records))
	require.NoError(t, w.WriteMoveRecords([]MoveRecord{{Game: 1, MoveMetric: MoveMetric{Turn: 4, Player: 1, Action: "PASS"}}}))

	f, err := os.Open(filepath.Join(w.Dir(), "game_records.csv"))
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	require.Len(t, rows, 3)
	require.Equal(t, []string{"1", "7", "9", "9", "40", "2", "5", "2024-01-02T03:04:05Z", "2024-01-02T03:04:06Z", "1s"}, rows[1],
		"Lower won, so the winner is the lower agent's ID")
	require.Equal(t, "-1", rows[2][3], "Draws have no winner")
	require.FileExists(t, filepath.Join(w.Dir(), "move_records.csv"))
}
