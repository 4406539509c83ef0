package engine

import (
	"mancala/game"
	"mancala/searcher"
	"mancala/searcher/agent"
	"testing"

	"github.com/stretchr/testify/require"
)

type recordingAgent struct {
	agent.Agent
	seen []game.Board
}

func (a *recordingAgent) FindAction(board game.Board) (game.Action, float64) {
	a.seen = append(a.seen, board)
	return a.Agent.FindAction(board)
}

func TestLocalEngine(t *testing.T) {
	t.Run("agents alternate and always move from their own side", func(t *testing.T) {
		a1 := &recordingAgent{Agent: agent.NewEvaluationAgent(searcher.NewValueTable())}
		a2 := &recordingAgent{Agent: agent.NewEvaluationAgent(searcher.NewValueTable())}

		_, metric := LocalEngine(a1, a2, 4).Run()

		require.Equal(t, game.NewBoard(4), a1.seen[0], "First agent should start from the initial board")
		second := game.NewBoard(4).EvaluateToNewState(game.Singleton(0))
		second.SwapBoard()
		require.Equal(t, second, a2.seen[0], "Second agent should see the swapped board")
		require.Equal(t, metric.TotalMoves, len(a1.seen)+len(a2.seen))
		require.InDelta(t, len(a1.seen), len(a2.seen), 1)
		for _, board := range append(a1.seen, a2.seen...) {
			require.False(t, board.IsEnded(), "Agents should never be asked to move on a terminal board")
		}
	})

	t.Run("winner matches the scores", func(t *testing.T) {
		for seed := uint64(0); seed < 20; seed++ {
			winner, metric := LocalEngine(agent.NewRandomAgent(seed), agent.NewRandomAgent(seed+100), 4).Run()

			require.Equal(t, 48, metric.Score1+metric.Score2, "Every seed should be scored")
			require.Equal(t, winner, metric.Winner)
			switch {
			case metric.Score1 > metric.Score2:
				require.Equal(t, 1, winner)
			case metric.Score2 > metric.Score1:
				require.Equal(t, 2, winner)
			default:
				require.Equal(t, 0, winner)
			}
			require.Positive(t, metric.TotalMoves)
			require.False(t, metric.EndTime.Before(metric.StartTime))
		}
	})

	t.Run("greedy games are deterministic", func(t *testing.T) {
		table := searcher.NewValueTable()
		w1, m1 := LocalEngine(agent.NewEvaluationAgent(table), agent.NewEvaluationAgent(table), 3).Run()
		w2, m2 := LocalEngine(agent.NewEvaluationAgent(table), agent.NewEvaluationAgent(table), 3).Run()

		require.Equal(t, w1, w2)
		require.Equal(t, m1.Score1, m2.Score1)
		require.Equal(t, m1.TotalMoves, m2.TotalMoves)
	})

	t.Run("panics on invalid setup", func(t *testing.T) {
		a := agent.NewRandomAgent(0)
		require.Panics(t, func() { LocalEngine(nil, a, 4) })
		require.Panics(t, func() { LocalEngine(a, a, 0) })
	})
}
