package game

// Side identifies one half of the board relative to the mover.
type Side int

const (
	NoSide Side = iota // draw or game in progress
	MoverSide
	OpponentSide
)

func (s Side) String() string {
	switch s {
	case MoverSide:
		return "mover"
	case OpponentSide:
		return "opponent"
	default:
		return "none"
	}
}

// Outcome scores a finished game: each side keeps its store plus whatever seeds
// are still left in its own pits.
func (b Board) Outcome() (moverScore, opponentScore int) {
	moverScore = int(b.MoverStore()) + b.SideSeeds(true)
	opponentScore = int(b.OpponentStore()) + b.SideSeeds(false)
	return moverScore, opponentScore
}

// Winner returns the leading side of an ended board, or NoSide for a draw or an unfinished game.
func (b Board) Winner() Side {
	if !b.IsEnded() {
		return NoSide
	}
	mover, opponent := b.Outcome()
	switch {
	case mover > opponent:
		return MoverSide
	case opponent > mover:
		return OpponentSide
	default:
		return NoSide
	}
}
