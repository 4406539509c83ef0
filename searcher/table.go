package searcher

import (
	"mancala/game"
)

// Values looks up the expected value of a board.
type Values interface {
	Lookup(board game.Board) float64
}

// ValueTable maps exact boards to learned values. Boards that were never
// updated are worth DefaultValue. The table only grows.
type ValueTable struct {
	values       map[game.Board]float64
	defaultValue float64
}

func NewValueTable() *ValueTable {
	return &ValueTable{
		values:       make(map[game.Board]float64),
		defaultValue: DefaultValue,
	}
}

func (t *ValueTable) Lookup(board game.Board) float64 {
	if value, ok := t.values[board]; ok {
		return value
	}
	return t.defaultValue
}

// Update adds delta to the board's value, inserting it at the default value first if needed.
func (t *ValueTable) Update(board game.Board, delta float64) float64 {
	value, ok := t.values[board]
	if !ok {
		value = t.defaultValue
	}
	value += delta
	t.values[board] = value
	return value
}

func (t *ValueTable) Set(board game.Board, value float64) {
	t.values[board] = value
}

func (t *ValueTable) Len() int {
	return len(t.values)
}

// Values returns every learned value in no particular order.
func (t *ValueTable) Values() []float64 {
	values := make([]float64, 0, len(t.values))
	for _, value := range t.values {
		values = append(values, value)
	}
	return values
}
