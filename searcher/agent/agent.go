package agent

import (
	"mancala/game"
)

type Agent interface {
	// FindAction picks the mover's next action and returns it with the value the agent expects from it
	FindAction(board game.Board) (game.Action, float64)
}
