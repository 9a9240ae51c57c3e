// Command tictactoe plays a self-contained game of Tic-Tac-Toe: an
// MCTS agent against a random baseline, printing the board after every
// move. It is an external collaborator of the engine, not part of its
// public API — a thin driver in the same spirit as the retrieval
// pack's own example mains.
package main

import (
	"fmt"

	"github.com/arborsearch/mcts-engine/games/tictactoe"
	"github.com/arborsearch/mcts-engine/pkg/mcts"
)

func main() {
	fmt.Println("Tic-Tac-Toe: MCTS vs Random")

	state := tictactoe.New()
	cfg := mcts.DefaultAgentConfig().WithMaxIter(20000).WithMaxSeconds(2).WithDebug(true)
	mctsAgent := mcts.NewMCTSAgent[tictactoe.Action, tictactoe.State](state, mcts.Player1, cfg)
	var randomAgent mcts.RandomAgent[tictactoe.Action, tictactoe.State]

	var last tictactoe.Action
	turn := mcts.Player1
	for !state.IsTerminal() {
		var action tictactoe.Action
		var err error
		if turn == mcts.Player1 {
			action, err = mctsAgent.GetAction(state, last)
		} else {
			action, err = randomAgent.GetAction(state, last)
		}
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		state = state.NextState(action)
		last = action
		turn = mcts.Opponent(turn)
		fmt.Println(state.String())
	}

	switch state.GameResult() {
	case mcts.Player1Won:
		fmt.Println("MCTS wins")
	case mcts.Player2Won:
		fmt.Println("Random wins")
	default:
		fmt.Println("Draw")
	}
}
