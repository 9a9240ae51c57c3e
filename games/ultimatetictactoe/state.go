package ultimatetictactoe

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/arborsearch/mcts-engine/pkg/mcts"
)

// State is an immutable Ultimate Tic-Tac-Toe position.
type State struct {
	crossBB        [boardCount]uint16
	circleBB       [boardCount]uint16
	smallResults   [boardCount]smallResult
	masterCrossBB  uint16
	masterCircleBB uint16
	forcedBoard    int // which small board the next move must land in; -1 means any unresolved board
	toMove         mcts.PlayerMarker
	result         mcts.GameResult
}

// New returns the empty starting position with Player1 to move and no
// forced board.
func New() State {
	return State{forcedBoard: -1, toMove: mcts.Player1, result: mcts.NotFinished}
}

func (s State) CurrentPlayer() mcts.PlayerMarker { return s.toMove }

// LegalActions enumerates legal moves in ascending board then cell
// order — the stable order that drives expansion order in the tree.
// If forcedBoard names an unresolved board, only that board's empty
// cells are legal; otherwise every unresolved board's empty cells are.
func (s State) LegalActions() []Action {
	if s.result != mcts.NotFinished {
		return nil
	}
	actions := make([]Action, 0, cellCount)
	if s.forcedBoard != -1 && s.smallResults[s.forcedBoard] == smallUnresolved {
		s.appendBoardActions(&actions, s.forcedBoard)
		return actions
	}
	for b := 0; b < boardCount; b++ {
		if s.smallResults[b] == smallUnresolved {
			s.appendBoardActions(&actions, b)
		}
	}
	return actions
}

func (s State) appendBoardActions(actions *[]Action, board int) {
	free := fullBoard ^ (s.crossBB[board] | s.circleBB[board])
	for free != 0 {
		cell := bits.TrailingZeros16(free)
		*actions = append(*actions, Action{Board: board, Cell: cell, Player: s.toMove})
		free &= free - 1
	}
}

// NextState returns the position after action is played, without
// mutating s.
func (s State) NextState(action Action) State {
	next := s
	bit := uint16(1) << uint(action.Cell)
	if action.Player == mcts.Player1 {
		next.crossBB[action.Board] |= bit
	} else {
		next.circleBB[action.Board] |= bit
	}

	smallRes := computeSmallResult(next.crossBB[action.Board], next.circleBB[action.Board])
	next.smallResults[action.Board] = smallRes
	boardBit := uint16(1) << uint(action.Board)
	switch smallRes {
	case smallPlayer1Won:
		next.masterCrossBB |= boardBit
	case smallPlayer2Won:
		next.masterCircleBB |= boardBit
	}

	next.result = computeMasterResult(next.masterCrossBB, next.masterCircleBB, next.smallResults)

	// The cell played selects which board the opponent is sent to; if
	// that board is already decided, the opponent may play anywhere.
	if next.smallResults[action.Cell] == smallUnresolved {
		next.forcedBoard = action.Cell
	} else {
		next.forcedBoard = -1
	}
	next.toMove = opponent(s.toMove)
	return next
}

func opponent(p mcts.PlayerMarker) mcts.PlayerMarker {
	if p == mcts.Player1 {
		return mcts.Player2
	}
	return mcts.Player1
}

func computeSmallResult(crossBB, circleBB uint16) smallResult {
	for _, pattern := range winningBitboardPatterns {
		if crossBB&pattern == pattern {
			return smallPlayer1Won
		}
		if circleBB&pattern == pattern {
			return smallPlayer2Won
		}
	}
	if crossBB|circleBB == fullBoard {
		return smallDraw
	}
	return smallUnresolved
}

func computeMasterResult(masterCrossBB, masterCircleBB uint16, smallResults [boardCount]smallResult) mcts.GameResult {
	for _, pattern := range winningBitboardPatterns {
		if masterCrossBB&pattern == pattern {
			return mcts.Player1Won
		}
		if masterCircleBB&pattern == pattern {
			return mcts.Player2Won
		}
	}
	for _, r := range smallResults {
		if r == smallUnresolved {
			return mcts.NotFinished
		}
	}
	return mcts.Draw
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
	for bigRow := 0; bigRow < 3; bigRow++ {
		for smallRow := 0; smallRow < 3; smallRow++ {
			for bigCol := 0; bigCol < 3; bigCol++ {
				board := bigRow*3 + bigCol
				for smallCol := 0; smallCol < 3; smallCol++ {
					cell := smallRow*3 + smallCol
					bit := uint16(1) << uint(cell)
					ch := " "
					switch {
					case s.crossBB[board]&bit != 0:
						ch = "X"
					case s.circleBB[board]&bit != 0:
						ch = "O"
					}
					fmt.Fprintf(&b, "%s ", ch)
				}
				b.WriteString("| ")
			}
			b.WriteString("\n")
		}
		b.WriteString("---------------------\n")
	}
	return b.String()
}
