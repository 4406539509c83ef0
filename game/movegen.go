package game

import "iter"

// ActionIter lazily yields one singleton action per non-empty pit on the
// mover's side, in increasing pit order. It cannot be restarted.
//
// Only single sub-move turns are generated: the rules never require a chained
// follow-up move after a capture.
type ActionIter struct {
	board Board
	next  int
}

// GenActions returns a generator over the legal actions of the mover.
func (b Board) GenActions() *ActionIter {
	return &ActionIter{board: b}
}

// Next returns the next legal action, or false once the mover's pits are exhausted.
func (it *ActionIter) Next() (Action, bool) {
	for ; it.next < PitsPerSide; it.next++ {
		if it.board.slots[it.next] > 0 {
			action := Singleton(SubAction(it.next))
			it.next++
			return action, true
		}
	}
	return Action{}, false
}

// All adapts the remaining actions for range-over-func.
func (it *ActionIter) All() iter.Seq[Action] {
	return func(yield func(Action) bool) {
		for {
			action, ok := it.Next()
			if !ok || !yield(action) {
				return
			}
		}
	}
}

// LegalActions collects every legal action of the mover.
func (b Board) LegalActions() []Action {
	actions := []Action{}
	for action := range b.GenActions().All() {
		actions = append(actions, action)
	}
	return actions
}
