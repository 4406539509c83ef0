package player

import (
	"mancala/experiments/metrics"
	"mancala/game"
	"mancala/searcher"
	"mancala/searcher/agent"

	"github.com/rs/zerolog/log"
)

const logEvery = 1000 // Episodes between progress logs

type Option func(c *TrainingController)

// TrainingController learns a value table by SARSA(0) self-play. Both players
// share the table and the agent; the board is swapped after every move so the
// player to act is always the mover.
type TrainingController struct {
	table          *searcher.ValueTable
	agent          agent.Agent
	learningRate   float64
	discountFactor float64
	startingSeeds  uint8
	metrics        metrics.Collector
}

func WithLearningRate(rate float64) Option {
	return func(c *TrainingController) {
		if rate > 0 {
			c.learningRate = rate
		}
	}
}

func WithDiscountFactor(factor float64) Option {
	return func(c *TrainingController) {
		if factor >= 0 {
			c.discountFactor = factor
		}
	}
}

func WithStartingSeeds(seeds uint8) Option {
	return func(c *TrainingController) {
		if seeds > 0 {
			c.startingSeeds = seeds
		}
	}
}

// WithAgent replaces the greedy action selection, e.g. with an exploring training agent.
// The agent should read from the controller's table.
func WithAgent(a agent.Agent) Option {
	return func(c *TrainingController) {
		if a != nil {
			c.agent = a
		}
	}
}

func WithMetrics(collector metrics.Collector) Option {
	return func(c *TrainingController) {
		if collector != nil {
			c.metrics = collector
		}
	}
}

func NewTrainingController(table *searcher.ValueTable, options ...Option) *TrainingController {
	if table == nil {
		panic("training requires a value table")
	}
	c := &TrainingController{ // Default values
		table:          table,
		agent:          agent.NewEvaluationAgent(table),
		learningRate:   searcher.LearningRate,
		discountFactor: searcher.DiscountFactor,
		startingSeeds:  4,
		metrics:        metrics.NewCollector(),
	}
	for _, option := range options {
		option(c)
	}
	return c
}

func (c *TrainingController) Table() *searcher.ValueTable {
	return c.table
}

// Run plays the given number of self-play episodes, updating the table after every move,
// and returns one metric per episode in order.
func (c *TrainingController) Run(episodes int) []metrics.EpisodeMetric {
	if episodes < 0 {
		panic("episodes cannot be negative")
	}
	results := make([]metrics.EpisodeMetric, 0, episodes)
	for episode := 0; episode < episodes; episode++ {
		results = append(results, c.episode(episode))
		if (episode+1)%logEvery == 0 {
			log.Info().Msgf("completed episode %d of %d, %d boards valued", episode+1, episodes, c.table.Len())
		}
	}
	return results
}

func (c *TrainingController) episode(episode int) metrics.EpisodeMetric {
	board := game.NewBoard(c.startingSeeds)
	c.metrics.Start(episode)
	log.Debug().Msgf("starting episode %d", episode)

	for step := 0; ; step++ {
		if e := log.Debug(); e.Enabled() {
			e.Msgf("turn %d state %x:\n%v", step, board.Hash(), board)
		}
		c.metrics.AddCaptures(c.step(&board))
		c.metrics.AddStep()

		if board.IsEnded() {
			log.Debug().Msgf("episode %d ended after %d turns:\n%v", episode, step+1, board)
			return c.metrics.Complete(board, c.table.Len())
		}
		board.SwapBoard()
	}
}

// step plays the mover's chosen action on board and updates the value of the
// board it leads to towards reward + discount * q_next.
func (c *TrainingController) step(board *game.Board) (captures int) {
	qPrev := c.table.Lookup(*board)
	action, qNext := c.agent.FindAction(*board)
	scoreDiff := board.ScoreDiff()

	captures = board.EvaluateAction(action)
	reward := float64(board.ScoreDiff() - scoreDiff)
	value := c.table.Update(*board, c.learningRate*(reward+c.discountFactor*qNext-qPrev))
	log.Debug().Msgf("action %v reward %v: %v += %v * (%v + %v * %v - %v)",
		action, reward, value, c.learningRate, reward, c.discountFactor, qNext, qPrev)
	return captures
}
