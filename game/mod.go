package game

// Board layout: the mover's pits come first and sow towards the mover's store,
// then the opponent's pits and the opponent's store.
const (
	PitsPerSide   = 6
	NumPits       = 2 * PitsPerSide
	NumSlots      = NumPits + 2
	MoverStore    = PitsPerSide     // slot 6
	OpponentStore = NumSlots - 1    // slot 13
	opponentFirst = MoverStore + 1  // slot 7
	sideSpan      = PitsPerSide + 1 // pits plus store
	maxSubActions = 16
)

// MaxStartingSeeds keeps every slot, stores included, within a byte.
const MaxStartingSeeds = 255 / NumPits

// StateHash identifies a board in logs and records.
type StateHash uint64
