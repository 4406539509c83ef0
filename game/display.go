package game

import (
	"fmt"
	"strings"
)

const boardBorder = "+-------------------------------+\n"

// String draws the board as an ASCII box: the opponent's pits on top in reverse
// order, both stores in the middle (opponent left, mover right) and the mover's
// pits at the bottom.
func (b Board) String() string {
	var sb strings.Builder
	sb.WriteString(boardBorder)

	sb.WriteString("|   |")
	for i := NumPits - 1; i >= PitsPerSide; i-- {
		fmt.Fprintf(&sb, "%2d |", b.Pit(i))
	}
	sb.WriteString("   |\n")

	fmt.Fprintf(&sb, "|%2d |                       |%2d |\n", b.OpponentStore(), b.MoverStore())

	sb.WriteString("|   |")
	for i := 0; i < PitsPerSide; i++ {
		fmt.Fprintf(&sb, "%2d |", b.Pit(i))
	}
	sb.WriteString("   |\n")

	sb.WriteString(boardBorder)
	return sb.String()
}
