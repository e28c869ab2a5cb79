package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriter(t *testing.T) {
	root := t.TempDir()
	w, err := NewWriter(root, "pvs_vs_greedy")
	require.NoError(t, err)
	require.DirExists(t, w.Dir())

	t.Run("writing agent configs", func(t *testing.T) {
		err := w.WriteAgentConfigs([]AgentConfig{
			{ID: 1, Kind: "pvs"},
			{ID: 2, Kind: "greedy"},
		})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(w.Dir(), "agent_configs.csv"))
		require.Len(t, rows, 3, "Should write a header and one row per config")
		require.Equal(t, []string{"1", "pvs", "0", "false"}, rows[1])
	})

	t.Run("writing game and move records", func(t *testing.T) {
		start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		err := w.WriteGameRecords([]GameRecord{{
			Agent1: 1,
			Agent2: 2,
			GameMetric: GameMetric{
				ID: "g1", Winner: 1, StartTime: start, EndTime: start.Add(time.Second),
				Duration: time.Second, TotalMoves: 31,
			},
		}})
		require.NoError(t, err)
		err = w.WriteMoveRecords([]MoveRecord{{Game: "g1", MoveMetric: MoveMetric{
			Step: 1, Player: 0, Depth: 4, Nodes: 1200, Duration: 150 * time.Millisecond, Overrun: 20 * time.Millisecond,
		}}})
		require.NoError(t, err)

		games := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
		require.Equal(t, "g1", games[1][0])
		require.Equal(t, "1", games[1][3], "Should record the winning player")
		require.Equal(t, "31", games[1][8])

		moves := readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
		require.Equal(t, []string{"g1", "1", "0", "4", "1200", "150ms", "20ms"}, moves[1])
	})
}
