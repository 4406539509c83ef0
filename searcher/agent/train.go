package agent

import (
	"mancala/game"
	"mancala/searcher"
	"math"

	"golang.org/x/exp/rand"
)

type trainingAgent struct {
	values      searcher.Values
	temperature float64
	rng         *rand.Rand
}

// NewTrainingAgent returns an agent for self-play that samples actions by their
// look-ahead values. A temperature of zero plays greedily.
func NewTrainingAgent(values searcher.Values, temperature float64, seed uint64) Agent {
	if temperature < 0 {
		panic("temperature cannot be negative")
	}
	return &trainingAgent{
		values:      values,
		temperature: temperature,
		rng:         rand.New(rand.NewSource(seed)),
	}
}

func (a *trainingAgent) FindAction(board game.Board) (game.Action, float64) {
	if a.temperature == 0 {
		return searcher.PickAction(board, a.values)
	}
	choices := searcher.ActionValues(board, a.values)
	if len(choices) == 0 {
		panic("cannot pick an action: mover has no legal actions")
	}
	policy := adjustTemperature(choices, a.temperature)
	choice := choices[sample(policy, a.rng.Float64())]
	return choice.Action, choice.Value
}

// adjustTemperature turns look-ahead values into a softmax distribution.
func adjustTemperature(choices []searcher.Choice, temperature float64) []float64 {
	maxValue := math.Inf(-1)
	for _, choice := range choices {
		maxValue = math.Max(maxValue, choice.Value)
	}
	sum := 0.0
	policy := make([]float64, len(choices))
	for i, choice := range choices {
		prob := math.Exp((choice.Value - maxValue) / temperature)
		sum += prob
		policy[i] = prob
	}
	// Normalize
	for i := range policy {
		policy[i] /= sum
	}
	return policy
}

// sample returns the index selected by a uniform draw in [0, 1).
func sample(policy []float64, sampled float64) int {
	cumulative := 0.0
	for i, prob := range policy {
		cumulative += prob
		if sampled < cumulative {
			return i
		}
	}
	return len(policy) - 1 // Fallback in case of rounding errors
}
