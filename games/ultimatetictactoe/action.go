package ultimatetictactoe

import (
	"fmt"

	"github.com/arborsearch/mcts-engine/pkg/mcts"
)

// Action places Player's mark at cell Cell (0-8) of small board Board
// (0-8), both row-major. The zero value (Player == mcts.PlayerNone) is
// the empty sentinel — a real move always names a real player.
type Action struct {
	Board  int
	Cell   int
	Player mcts.PlayerMarker
}

func (a Action) IsEmpty() bool { return a.Player == mcts.PlayerNone }

func (a Action) String() string {
	if a.IsEmpty() {
		return "<empty>"
	}
	return fmt.Sprintf("B%dc%d", a.Board, a.Cell)
}
