// Package connectfour is a Connect Four Action/State pair for
// pkg/mcts, grounded directly on the original C++ reference
// implementation — no Go example of this game existed in the
// retrieval pack. The board is a plain row/column grid plus per-column
// fill heights, and State is a value type that NextState copies, like
// the package's tic-tac-toe and ultimate-tic-tac-toe siblings.
package connectfour

const (
	height = 6
	width  = 7
)
