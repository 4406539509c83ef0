package experiments

import (
	"encoding/csv"
	"mancala/meta"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestRunTrainingExperiment(t *testing.T) {
	t.Run("trains without writing records by default", func(t *testing.T) {
		result, err := RunTrainingExperiment(meta.Default(), 10)

		require.NoError(t, err)
		require.Len(t, result.Episodes, 10)
		require.Positive(t, result.Table.Len())
		require.Empty(t, result.Games)
		require.Empty(t, result.Dir)
		_, err = uuid.Parse(result.RunID)
		require.NoError(t, err, "Run ID should be a UUID")
	})

	t.Run("evaluates against the baseline and stores records", func(t *testing.T) {
		cfg := meta.Default()
		cfg.EvalGames = 4
		cfg.Temperature = 0.5
		cfg.Seed = 11
		cfg.OutDir = t.TempDir()

		result, err := RunTrainingExperiment(cfg, 5)

		require.NoError(t, err)
		require.Len(t, result.Games, 4)
		require.LessOrEqual(t, result.Wins, 4)
		require.Equal(t, trainedID, result.Games[0].Agent1, "Trained agent should open the first game")
		require.Equal(t, trainedID, result.Games[1].Agent2, "Seats should alternate")
		require.DirExists(t, result.Dir)
		require.Equal(t, filepath.Join(cfg.OutDir, Name), filepath.Dir(result.Dir))
		for _, name := range []string{"agent_configs.csv", "episode_records.csv", "episode_records.parquet", "game_records.csv"} {
			require.FileExists(t, filepath.Join(result.Dir, name))
		}

		f, err := os.Open(filepath.Join(result.Dir, "agent_configs.csv"))
		require.NoError(t, err)
		defer f.Close()
		rows, err := csv.NewReader(f).ReadAll()
		require.NoError(t, err)
		require.Equal(t, [][]string{
			{"id", "kind", "temperature", "seed"},
			{"1", "greedy", "0", "0"},
			{"2", "random", "0", "12"},
			{"3", "training", "0.5", "11"},
		}, rows, "Every agent of the run should be recorded, including the one that trained the table")
	})
}
