package agent

import (
	"mancala/game"
	"mancala/searcher"
)

type evaluationAgent struct {
	values searcher.Values
}

// NewEvaluationAgent returns an agent that always plays the greedy action over values.
func NewEvaluationAgent(values searcher.Values) Agent {
	return evaluationAgent{values: values}
}

func (a evaluationAgent) FindAction(board game.Board) (game.Action, float64) {
	return searcher.PickAction(board, a.values)
}
