package searcher

import (
	"mancala/game"

	"github.com/rs/zerolog/log"
)

// Choice is a legal action paired with the value of the board it leads to.
type Choice struct {
	Action game.Action
	Value  float64
}

// ActionValues evaluates every legal action of the mover by looking up the resulting board.
// Choices are returned in generator order.
func ActionValues(board game.Board, values Values) []Choice {
	choices := []Choice{}
	it := board.GenActions()
	for action, ok := it.Next(); ok; action, ok = it.Next() {
		next := board.EvaluateToNewState(action)
		choices = append(choices, Choice{Action: action, Value: values.Lookup(next)})
	}
	return choices
}

// PickAction greedily selects the action whose resulting board has the highest value.
// Ties go to the action generated first. The board must not be terminal.
func PickAction(board game.Board, values Values) (game.Action, float64) {
	choices := ActionValues(board, values)
	if len(choices) == 0 {
		panic("cannot pick an action: mover has no legal actions")
	}
	log.Debug().Msgf("actions available to choose from: %v", choices)

	best := choices[0]
	for _, choice := range choices[1:] {
		if choice.Value > best.Value {
			best = choice
		}
	}
	return best.Action, best.Value
}
