// Command ultimatetictactoe plays a self-contained game of Ultimate
// Tic-Tac-Toe: an MCTS agent against a random baseline, printing the
// board after every move.
package main

import (
	"fmt"

	"github.com/arborsearch/mcts-engine/games/ultimatetictactoe"
	"github.com/arborsearch/mcts-engine/pkg/mcts"
)

func main() {
	fmt.Println("Ultimate Tic-Tac-Toe: MCTS vs Random")

	state := ultimatetictactoe.New()
	cfg := mcts.DefaultAgentConfig().WithMaxIter(20000).WithMaxSeconds(2).WithDebug(true)
	mctsAgent := mcts.NewMCTSAgent[ultimatetictactoe.Action, ultimatetictactoe.State](state, mcts.Player1, cfg)
	var randomAgent mcts.RandomAgent[ultimatetictactoe.Action, ultimatetictactoe.State]

	var last ultimatetictactoe.Action
	turn := mcts.Player1
	for !state.IsTerminal() {
		var action ultimatetictactoe.Action
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
