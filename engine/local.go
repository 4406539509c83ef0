package engine

import (
	"mancala/experiments/metrics"
	"mancala/game"
	"mancala/searcher/agent"
	"time"

	"github.com/rs/zerolog/log"
)

type localEngine struct {
	board  game.Board
	agents [2]agent.Agent
}

// LocalEngine sets up a game where agent1 moves first. Both agents always see
// the board from the mover's side. An engine plays a single game.
func LocalEngine(agent1, agent2 agent.Agent, startingSeeds uint8) Engine {
	if agent1 == nil || agent2 == nil {
		panic("need two agents")
	}
	if startingSeeds == 0 {
		panic("starting seeds cannot be 0")
	}
	return &localEngine{
		board:  game.NewBoard(startingSeeds),
		agents: [2]agent.Agent{agent1, agent2},
	}
}

// Run executes the entire game loop until one side runs out of seeds.
func (e *localEngine) Run() (int, metrics.GameMetric) {
	start := time.Now()
	mover := 0
	moves := 0
	for !e.board.IsEnded() {
		action, _ := e.agents[mover].FindAction(e.board)
		e.board.EvaluateAction(action)
		moves++
		if e.board.IsEnded() {
			break
		}
		e.board.SwapBoard()
		mover = 1 - mover
	}

	// The board is seen from the agent that made the last move
	scores := [2]int{}
	scores[mover], scores[1-mover] = e.board.Outcome()
	winner := 0
	switch e.board.Winner() {
	case game.MoverSide:
		winner = mover + 1
	case game.OpponentSide:
		winner = 2 - mover
	}
	log.Debug().Msgf("game over after %d moves, winner %d, scores %v", moves, winner, scores)

	end := time.Now()
	return winner, metrics.GameMetric{
		Winner:     winner,
		Score1:     scores[0],
		Score2:     scores[1],
		TotalMoves: moves,
		StartTime:  start,
		EndTime:    end,
		Duration:   end.Sub(start),
	}
}
