package game

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/rs/zerolog/log"
)

// Board is the full game state seen from the player about to move ("the mover").
// Slots 0..5 are the mover's pits, slot 6 the mover's store, slots 7..12 the
// opponent's pits and slot 13 the opponent's store. Sowing walks the slots in
// increasing order modulo NumSlots.
//
// Board is a comparable value so it can key a map directly.
type Board struct {
	slots [NumSlots]uint8
}

// NewBoard initializes a board with every pit holding startingSeeds and both stores empty.
func NewBoard(startingSeeds uint8) Board {
	if startingSeeds > MaxStartingSeeds {
		panic(fmt.Sprintf("starting seeds %d exceed %d", startingSeeds, MaxStartingSeeds))
	}
	var b Board
	for i := 0; i < NumPits; i++ {
		b.slots[pitSlot(i)] = startingSeeds
	}
	return b
}

// NewBoardFrom builds a board from 12 pits (0..5 mover, 6..11 opponent) and the two stores.
func NewBoardFrom(pits [NumPits]uint8, moverStore, opponentStore uint8) Board {
	var b Board
	for i, seeds := range pits {
		b.slots[pitSlot(i)] = seeds
	}
	b.slots[MoverStore] = moverStore
	b.slots[OpponentStore] = opponentStore
	return b
}

// pitSlot maps a pit index in 0..11 onto the unified slot layout.
func pitSlot(pit int) int {
	if pit < 0 || pit >= NumPits {
		panic(fmt.Sprintf("pit %d out of range", pit))
	}
	if pit < PitsPerSide {
		return pit
	}
	return pit + 1
}

func isMoverPit(slot int) bool {
	return slot >= 0 && slot < PitsPerSide
}

// Pit returns the seeds in pit i, where 0..5 are the mover's pits and 6..11 the opponent's.
func (b Board) Pit(i int) uint8 {
	return b.slots[pitSlot(i)]
}

func (b Board) MoverStore() uint8 {
	return b.slots[MoverStore]
}

func (b Board) OpponentStore() uint8 {
	return b.slots[OpponentStore]
}

// SideSeeds counts the seeds in the six pits of one side, stores excluded.
func (b Board) SideSeeds(mover bool) int {
	first := 0
	if !mover {
		first = opponentFirst
	}
	total := 0
	for _, seeds := range b.slots[first : first+PitsPerSide] {
		total += int(seeds)
	}
	return total
}

// TotalSeeds counts every seed on the board, stores included.
func (b Board) TotalSeeds() int {
	total := 0
	for _, seeds := range b.slots {
		total += int(seeds)
	}
	return total
}

// ScoreDiff is the mover's store minus the opponent's store.
func (b Board) ScoreDiff() int {
	return int(b.slots[MoverStore]) - int(b.slots[OpponentStore])
}

// IsEnded reports whether either side has emptied all of its pits.
func (b Board) IsEnded() bool {
	return b.SideSeeds(true) == 0 || b.SideSeeds(false) == 0
}

// EvaluateSubAction plays a single sowing move from the mover's non-empty pit sub.
// All seeds are picked up and sown one per slot, stores included, wrapping
// around the board. If the last seed lands in one of the mover's own pits that
// now holds exactly one seed, that seed and the opponent's mirrored pit are
// captured into the mover's store.
func (b *Board) EvaluateSubAction(sub SubAction) (captured bool) {
	source := int(sub)
	if !isMoverPit(source) {
		panic(fmt.Sprintf("sub-action %d is not a pit on the mover's side", sub))
	}

	seeds := int(b.slots[source])
	if seeds == 0 {
		panic(fmt.Sprintf("cannot sow from empty pit %d", sub))
	}
	b.slots[source] = 0

	slot := source
	for i := 0; i < seeds; i++ {
		slot = (slot + 1) % NumSlots
		b.slots[slot]++
	}

	if isMoverPit(slot) && b.slots[slot] == 1 {
		mirror := slot + sideSpan
		b.slots[MoverStore] += 1 + b.slots[mirror]
		b.slots[slot] = 0
		b.slots[mirror] = 0
		log.Debug().Msgf("capture at pit %d", slot)
		return true
	}
	return false
}

// EvaluateAction plays every sub-move of the action in order and returns the number of captures.
// The action is received by value, so the caller's queue is left intact.
func (b *Board) EvaluateAction(action Action) (captures int) {
	for !action.IsEmpty() {
		if b.EvaluateSubAction(action.Pop()) {
			captures++
		}
	}
	return captures
}

// EvaluateToNewState returns the board reached by playing action, leaving b unchanged.
func (b Board) EvaluateToNewState(action Action) Board {
	next := b
	next.EvaluateAction(action)
	return next
}

// SwapBoard exchanges the two sides so that the opponent becomes the mover.
// Seed totals are unchanged.
func (b *Board) SwapBoard() {
	for i := 0; i < sideSpan; i++ {
		b.slots[i], b.slots[i+sideSpan] = b.slots[i+sideSpan], b.slots[i]
	}
}

func (b Board) Hash() StateHash {
	return StateHash(xxhash.Sum64(b.slots[:]))
}
