package connectfour

import (
	"fmt"
	"strings"

	"github.com/arborsearch/mcts-engine/pkg/mcts"
)

// State is an immutable Connect Four position: a 6-row by 7-column
// grid plus each column's current fill height. NextState always
// returns a fresh value — the board array is small enough to copy by
// value on every move, so the receiver is never mutated.
type State struct {
	board     [height][width]mcts.PlayerMarker
	colHeight [width]int8
	toMove    mcts.PlayerMarker
	result    mcts.GameResult
}

// New returns the empty starting position with Player1 to move.
func New() State {
	return State{toMove: mcts.Player1, result: mcts.NotFinished}
}

func (s State) CurrentPlayer() mcts.PlayerMarker { return s.toMove }

// LegalActions enumerates columns with room left, in ascending column
// order — the stable order that drives expansion order in the tree.
func (s State) LegalActions() []Action {
	if s.result != mcts.NotFinished {
		return nil
	}
	actions := make([]Action, 0, width)
	for col := 0; col < width; col++ {
		if s.colHeight[col] < height {
			actions = append(actions, Action{Col: col, Player: s.toMove})
		}
	}
	return actions
}

// NextState returns the position after action is played, without
// mutating s.
func (s State) NextState(action Action) State {
	next := s
	row := int(s.colHeight[action.Col])
	next.board[row][action.Col] = action.Player
	next.colHeight[action.Col]++
	next.toMove = opponent(s.toMove)
	next.result = computeResult(next.board, next.colHeight, row, action.Col, action.Player)
	return next
}

func opponent(p mcts.PlayerMarker) mcts.PlayerMarker {
	if p == mcts.Player1 {
		return mcts.Player2
	}
	return mcts.Player1
}

var directions = [4][2]int{{0, 1}, {1, 0}, {1, 1}, {1, -1}}

// computeResult checks only the four lines through the just-placed
// disc at (row, col) — the same last-move-centered scan the original
// implementation uses, rather than rescanning the whole board.
func computeResult(board [height][width]mcts.PlayerMarker, colHeight [width]int8, row, col int, player mcts.PlayerMarker) mcts.GameResult {
	for _, d := range directions {
		count := 1
		count += runLength(board, row, col, d[0], d[1], player)
		count += runLength(board, row, col, -d[0], -d[1], player)
		if count >= 4 {
			if player == mcts.Player1 {
				return mcts.Player1Won
			}
			return mcts.Player2Won
		}
	}
	for _, h := range colHeight {
		if h < height {
			return mcts.NotFinished
		}
	}
	return mcts.Draw
}

func runLength(board [height][width]mcts.PlayerMarker, row, col, dr, dc int, player mcts.PlayerMarker) int {
	n := 0
	r, c := row+dr, col+dc
	for r >= 0 && r < height && c >= 0 && c < width && board[r][c] == player {
		n++
		r += dr
		c += dc
	}
	return n
}

func (s State) IsTerminal() bool { return s.result != mcts.NotFinished }

func (s State) GameResult() mcts.GameResult { return s.result }

// Rollout plays uniform-random legal moves to termination (or, if s is
// already terminal, skips straight to scoring it) and scores the
// outcome from maximizingPlayer's perspective.
func (s State) Rollout(maximizingPlayer mcts.PlayerMarker) mcts.Result {
	cur := s
	for !cur.IsTerminal() {
		actions := cur.LegalActions()
		cur = cur.NextState(actions[mcts.Intn(len(actions))])
	}
	switch cur.result {
	case mcts.Draw:
		return mcts.ResultDraw
	case mcts.Player1Won:
		if maximizingPlayer == mcts.Player1 {
			return mcts.ResultWin
		}
		return mcts.ResultLoss
	case mcts.Player2Won:
		if maximizingPlayer == mcts.Player2 {
			return mcts.ResultWin
		}
		return mcts.ResultLoss
	default:
		return mcts.ResultDraw
	}
}

func (s State) String() string {
	var b strings.Builder
	for row := height - 1; row >= 0; row-- {
		for col := 0; col < width; col++ {
			cell := "."
			switch s.board[row][col] {
			case mcts.Player1:
				cell = "X"
			case mcts.Player2:
				cell = "O"
			}
			fmt.Fprintf(&b, "%s ", cell)
		}
		b.WriteString("\n")
	}
	return b.String()
}
