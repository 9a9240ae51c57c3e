package tictactoe

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/arborsearch/mcts-engine/pkg/mcts"
)

// State is an immutable Tic-Tac-Toe position. NextState always
// returns a fresh value; the receiver is never mutated.
type State struct {
	crossBB  uint16
	circleBB uint16
	toMove   mcts.PlayerMarker
	result   mcts.GameResult
}

// New returns the empty starting position with Player1 (cross) to
// move.
func New() State {
	return State{toMove: mcts.Player1, result: mcts.NotFinished}
}

func (s State) CurrentPlayer() mcts.PlayerMarker { return s.toMove }

func (s State) bitboardFor(p mcts.PlayerMarker) uint16 {
	if p == mcts.Player1 {
		return s.crossBB
	}
	return s.circleBB
}

// LegalActions enumerates empty cells in ascending index order — the
// stable order that drives expansion order in the search tree.
func (s State) LegalActions() []Action {
	if s.result != mcts.NotFinished {
		return nil
	}
	free := fullBoard ^ (s.crossBB | s.circleBB)
	actions := make([]Action, 0, bits.OnesCount16(free))
	for free != 0 {
		pos := bits.TrailingZeros16(free)
		actions = append(actions, Action{Pos: pos, Player: s.toMove})
		free &= free - 1
	}
	return actions
}

// NextState returns the position after action is played, without
// mutating s.
func (s State) NextState(action Action) State {
	next := s
	bit := uint16(1) << uint(action.Pos)
	if action.Player == mcts.Player1 {
		next.crossBB |= bit
	} else {
		next.circleBB |= bit
	}
	next.toMove = opponent(s.toMove)
	next.result = computeResult(next.crossBB, next.circleBB)
	return next
}

func opponent(p mcts.PlayerMarker) mcts.PlayerMarker {
	if p == mcts.Player1 {
		return mcts.Player2
	}
	return mcts.Player1
}

func computeResult(crossBB, circleBB uint16) mcts.GameResult {
	for _, pattern := range winningBitboardPatterns {
		if crossBB&pattern == pattern {
			return mcts.Player1Won
		}
		if circleBB&pattern == pattern {
			return mcts.Player2Won
		}
	}
	if crossBB|circleBB == fullBoard {
		return mcts.Draw
	}
	return mcts.NotFinished
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
	for row := 0; row < boardDim; row++ {
		b.WriteString("+---+---+---+\n")
		for col := 0; col < boardDim; col++ {
			pos := row*boardDim + col
			bit := uint16(1) << uint(pos)
			cell := " "
			switch {
			case s.crossBB&bit != 0:
				cell = "X"
			case s.circleBB&bit != 0:
				cell = "O"
			}
			fmt.Fprintf(&b, "| %s ", cell)
		}
		b.WriteString("|\n")
	}
	b.WriteString("+---+---+---+\n")
	return b.String()
}
