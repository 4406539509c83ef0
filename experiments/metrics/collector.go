package metrics

import (
	"mancala/game"
	"time"
)

type AgentConfig struct {
	ID          int
	Kind        string // "greedy", "training" or "random"
	Temperature float64
	Seed        uint64
}

type EpisodeMetric struct {
	Episode       int
	Steps         int
	Captures      int
	MoverStore    int // Final stores, seen from the player who made the last move
	OpponentStore int
	TableSize     int
	FinalState    game.StateHash
	StartTime     time.Time
	Duration      time.Duration
}

type GameMetric struct {
	Winner     int // Agent index 1 or 2, 0 for a draw
	Score1     int
	Score2     int
	TotalMoves int
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
}

type Collector interface {
	Start(episode int)
	AddStep()
	AddCaptures(n int)
	Complete(final game.Board, tableSize int) EpisodeMetric
}

type collector struct {
	episode   int
	startTime time.Time
	steps     int
	captures  int
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(episode int) {
	m.episode = episode
	m.startTime = time.Now()
	m.steps = 0
	m.captures = 0
}

func (m *collector) AddStep() {
	m.steps++
}

func (m *collector) AddCaptures(n int) {
	m.captures += n
}

func (m *collector) Complete(final game.Board, tableSize int) EpisodeMetric {
	return EpisodeMetric{
		Episode:       m.episode,
		Steps:         m.steps,
		Captures:      m.captures,
		MoverStore:    int(final.MoverStore()),
		OpponentStore: int(final.OpponentStore()),
		TableSize:     tableSize,
		FinalState:    final.Hash(),
		StartTime:     m.startTime,
		Duration:      time.Since(m.startTime),
	}
}
