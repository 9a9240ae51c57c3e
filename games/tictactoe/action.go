package tictactoe

import (
	"fmt"

	"github.com/arborsearch/mcts-engine/pkg/mcts"
)

// Action places Player's mark at board cell Pos (0-8, row-major from
// the top-left). The zero value (Player == mcts.PlayerNone) is the
// empty sentinel — a real move always names a real player.
type Action struct {
	Pos    int
	Player mcts.PlayerMarker
}

// IsEmpty reports whether this is the "no move yet" sentinel.
func (a Action) IsEmpty() bool { return a.Player == mcts.PlayerNone }

func (a Action) String() string {
	if a.IsEmpty() {
		return "<empty>"
	}
	row, col := a.Pos/boardDim, a.Pos%boardDim
	return fmt.Sprintf("r%dc%d", row, col)
}
