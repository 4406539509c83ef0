package agent

import (
	"mancala/game"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns a baseline agent playing uniformly random legal actions.
// It holds no values and always reports zero.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindAction(board game.Board) (game.Action, float64) {
	actions := board.LegalActions()
	if len(actions) == 0 {
		panic("cannot pick an action: mover has no legal actions")
	}
	return actions[a.rng.Intn(len(actions))], 0
}
