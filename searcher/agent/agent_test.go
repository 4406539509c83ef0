package agent

import (
	"mancala/game"
	"mancala/searcher"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvaluationAgent(t *testing.T) {
	table := searcher.NewValueTable()
	board := game.NewBoard(4)
	table.Set(board.EvaluateToNewState(game.Singleton(5)), 2.0)

	action, value := NewEvaluationAgent(table).FindAction(board)

	require.Equal(t, game.Singleton(5), action)
	require.Equal(t, 2.0, value)
}

func TestTrainingAgent(t *testing.T) {
	t.Run("zero temperature plays greedily", func(t *testing.T) {
		table := searcher.NewValueTable()
		board := game.NewBoard(4)
		table.Set(board.EvaluateToNewState(game.Singleton(2)), 1.0)
		a := NewTrainingAgent(table, 0, 1)

		for i := 0; i < 10; i++ {
			action, value := a.FindAction(board)
			require.Equal(t, game.Singleton(2), action)
			require.Equal(t, 1.0, value)
		}
	})

	t.Run("returned value matches the sampled action", func(t *testing.T) {
		table := searcher.NewValueTable()
		board := game.NewBoard(4)
		for i := 0; i < game.PitsPerSide; i++ {
			table.Set(board.EvaluateToNewState(game.Singleton(game.SubAction(i))), float64(i))
		}
		a := NewTrainingAgent(table, 1.0, 42)

		seen := map[game.Action]bool{}
		for i := 0; i < 500; i++ {
			action, value := a.FindAction(board)
			require.Equal(t, table.Lookup(board.EvaluateToNewState(action)), value)
			seen[action] = true
		}
		require.Greater(t, len(seen), 1, "Positive temperature should explore more than one action")
	})

	t.Run("same seed replays the same actions", func(t *testing.T) {
		table := searcher.NewValueTable()
		board := game.NewBoard(4)
		a1 := NewTrainingAgent(table, 0.5, 9)
		a2 := NewTrainingAgent(table, 0.5, 9)

		for i := 0; i < 20; i++ {
			got1, _ := a1.FindAction(board)
			got2, _ := a2.FindAction(board)
			require.Equal(t, got1, got2)
		}
	})

	t.Run("panics with negative temperature", func(t *testing.T) {
		require.Panics(t, func() {
			NewTrainingAgent(searcher.NewValueTable(), -1, 0)
		})
	})
}

func TestAdjustTemperature(t *testing.T) {
	choices := []searcher.Choice{{Value: 1.0}, {Value: 2.0}, {Value: 2.0}}

	t.Run("sums to one", func(t *testing.T) {
		policy := adjustTemperature(choices, 1.0)
		sum := 0.0
		for _, prob := range policy {
			sum += prob
		}
		require.InDelta(t, 1.0, sum, 1e-9)
		require.Greater(t, policy[1], policy[0], "Higher values should be more likely")
		require.InDelta(t, policy[1], policy[2], 1e-9)
	})

	t.Run("lower temperature sharpens", func(t *testing.T) {
		hot := adjustTemperature(choices, 10.0)
		cold := adjustTemperature(choices, 0.1)
		require.Less(t, cold[0], hot[0])
	})
}

func TestSample(t *testing.T) {
	policy := []float64{0.2, 0.5, 0.3}
	require.Equal(t, 0, sample(policy, 0.0))
	require.Equal(t, 1, sample(policy, 0.2))
	require.Equal(t, 2, sample(policy, 0.75))
	require.Equal(t, 2, sample(policy, 1.0), "Out of range draws should fall back to the last action")
}

func TestRandomAgent(t *testing.T) {
	t.Run("plays only legal actions", func(t *testing.T) {
		board := game.NewBoardFrom([game.NumPits]uint8{0, 2, 0, 5, 0, 0, 4, 4, 4, 4, 4, 4}, 0, 0)
		a := NewRandomAgent(3)

		seen := map[game.Action]bool{}
		for i := 0; i < 100; i++ {
			action, value := a.FindAction(board)
			require.Contains(t, []game.Action{game.Singleton(1), game.Singleton(3)}, action)
			require.Equal(t, 0.0, value)
			seen[action] = true
		}
		require.Len(t, seen, 2)
	})

	t.Run("panics on a terminal board", func(t *testing.T) {
		board := game.NewBoardFrom([game.NumPits]uint8{}, 24, 24)
		require.Panics(t, func() { NewRandomAgent(0).FindAction(board) })
	})
}
