package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenActions(t *testing.T) {
	t.Run("fresh board yields every pit in order", func(t *testing.T) {
		board := NewBoard(4)
		action := NewAction()
		count := 0
		for sub, got := range board.LegalActions() {
			action.Push(SubAction(sub))
			require.Equal(t, action, got)
			require.Equal(t, SubAction(sub), action.Pop(), "Popping should reproduce the pushed index")
			count++
		}
		require.Equal(t, PitsPerSide, count)
	})

	t.Run("skips empty pits", func(t *testing.T) {
		board := NewBoardFrom([NumPits]uint8{0, 3, 0, 0, 1, 0, 4, 4, 4, 4, 4, 4}, 0, 0)
		require.Equal(t, []Action{Singleton(1), Singleton(4)}, board.LegalActions())
	})

	t.Run("ignores the opponent's pits", func(t *testing.T) {
		board := NewBoardFrom([NumPits]uint8{0, 0, 0, 0, 0, 0, 4, 4, 4, 4, 4, 4}, 0, 0)
		require.Empty(t, board.LegalActions())
	})

	t.Run("cannot be restarted", func(t *testing.T) {
		it := NewBoard(4).GenActions()
		first, ok := it.Next()
		require.True(t, ok)
		require.Equal(t, Singleton(0), first)

		rest := []Action{}
		for action := range it.All() {
			rest = append(rest, action)
		}
		require.Len(t, rest, PitsPerSide-1)

		_, ok = it.Next()
		require.False(t, ok, "Exhausted generator should stay exhausted")
	})

	t.Run("early break stops the generator", func(t *testing.T) {
		it := NewBoard(4).GenActions()
		for range it.All() {
			break
		}
		next, ok := it.Next()
		require.True(t, ok)
		require.Equal(t, Singleton(1), next)
	})
}
