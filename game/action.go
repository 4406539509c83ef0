package game

import (
	"fmt"
	"strings"
)

// SubAction is a pit index on the mover's side of the board.
type SubAction uint8

// Action is an ordered queue of sub-moves making up one turn. Sub-moves are
// packed four bits each into a single word so that an Action is comparable:
// two actions are equal only if they hold the same sub-moves in the same order.
type Action struct {
	packed uint64
	length uint8
}

func NewAction() Action {
	return Action{}
}

// Singleton returns an action holding exactly one sub-move.
func Singleton(sub SubAction) Action {
	a := NewAction()
	a.Push(sub)
	return a
}

// Push appends sub as the last sub-move to apply.
func (a *Action) Push(sub SubAction) {
	if sub >= PitsPerSide {
		panic(fmt.Sprintf("sub-action %d is not a pit on the mover's side", sub))
	}
	if a.length >= maxSubActions {
		panic("action queue is full")
	}
	a.packed |= uint64(sub) << (4 * uint64(a.length))
	a.length++
}

// Pop removes and returns the earliest pushed sub-move.
func (a *Action) Pop() SubAction {
	if a.length == 0 {
		panic("cannot pop from an empty action")
	}
	sub := SubAction(a.packed & 0xf)
	a.packed >>= 4
	a.length--
	return sub
}

func (a Action) IsEmpty() bool {
	return a.length == 0
}

func (a Action) Len() int {
	return int(a.length)
}

func (a Action) String() string {
	subs := make([]string, 0, a.length)
	for !a.IsEmpty() {
		subs = append(subs, fmt.Sprint(a.Pop()))
	}
	return "[" + strings.Join(subs, " ") + "]"
}
