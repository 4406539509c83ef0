package engine

import "mancala/experiments/metrics"

type Engine interface {
	// Run plays a game to the end and reports the winning agent (1 or 2, 0 for a draw)
	Run() (winner int, gameMetric metrics.GameMetric)
}
