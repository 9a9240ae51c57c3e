// Command connectfour plays a self-contained game of Connect Four: an
// MCTS agent against a random baseline, printing the board after every
// move.
package main

import (
	"fmt"

	"github.com/arborsearch/mcts-engine/games/connectfour"
	"github.com/arborsearch/mcts-engine/pkg/mcts"
)

func main() {
	fmt.Println("Connect Four: MCTS vs Random")

	state := connectfour.New()
	cfg := mcts.DefaultAgentConfig().WithMaxIter(20000).WithMaxSeconds(2).WithDebug(true)
	mctsAgent := mcts.NewMCTSAgent[connectfour.Action, connectfour.State](state, mcts.Player1, cfg)
	var randomAgent mcts.RandomAgent[connectfour.Action, connectfour.State]

	var last connectfour.Action
	turn := mcts.Player1
	for !state.IsTerminal() {
		var action connectfour.Action
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
