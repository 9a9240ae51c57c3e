package connectfour

import (
	"fmt"

	"github.com/arborsearch/mcts-engine/pkg/mcts"
)

// Action drops Player's disc into column Col (0-6). The zero value
// (Player == mcts.PlayerNone) is the empty sentinel — a real move
// always names a real player.
type Action struct {
	Col    int
	Player mcts.PlayerMarker
}

func (a Action) IsEmpty() bool { return a.Player == mcts.PlayerNone }

func (a Action) String() string {
	if a.IsEmpty() {
		return "<empty>"
	}
	return fmt.Sprintf("col%d", a.Col)
}
