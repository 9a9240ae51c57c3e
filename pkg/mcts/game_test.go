package mcts

import "fmt"

// stickAction is a move in the stick-counting test game: take n sticks
// (1..3). The zero value is the empty sentinel.
type stickAction struct{ n int }

func (a stickAction) IsEmpty() bool   { return a.n == 0 }
func (a stickAction) String() string  { return fmt.Sprintf("take%d", a.n) }

// stickState is a minimal two-player game used only to exercise the
// engine: two players alternately take 1-3 sticks from a shared pile;
// whoever takes the last stick wins. It exists purely to give pkg/mcts
// its own tests without depending on any games/* package.
type stickState struct {
	sticks int
	toMove PlayerMarker
	winner PlayerMarker
}

func newStickGame(sticks int) stickState {
	return stickState{sticks: sticks, toMove: Player1, winner: PlayerNone}
}

func opponent(p PlayerMarker) PlayerMarker {
	if p == Player1 {
		return Player2
	}
	return Player1
}

func (s stickState) CurrentPlayer() PlayerMarker { return s.toMove }

func (s stickState) LegalActions() []stickAction {
	actions := make([]stickAction, 0, 3)
	for n := 1; n <= 3 && n <= s.sticks; n++ {
		actions = append(actions, stickAction{n: n})
	}
	return actions
}

func (s stickState) NextState(a stickAction) stickState {
	remaining := s.sticks - a.n
	if remaining < 0 {
		remaining = 0
	}
	next := stickState{sticks: remaining, toMove: opponent(s.toMove), winner: PlayerNone}
	if remaining == 0 {
		next.winner = s.toMove
	}
	return next
}

func (s stickState) IsTerminal() bool { return s.winner != PlayerNone }

func (s stickState) GameResult() GameResult {
	switch s.winner {
	case Player1:
		return Player1Won
	case Player2:
		return Player2Won
	default:
		return NotFinished
	}
}

func (s stickState) Rollout(maximizingPlayer PlayerMarker) Result {
	cur := s
	for !cur.IsTerminal() {
		actions := cur.LegalActions()
		cur = cur.NextState(actions[Intn(len(actions))])
	}
	switch {
	case cur.winner == maximizingPlayer:
		return ResultWin
	default:
		return ResultLoss
	}
}

func (s stickState) String() string {
	return fmt.Sprintf("sticks=%d toMove=%s winner=%s", s.sticks, s.toMove, s.winner)
}
