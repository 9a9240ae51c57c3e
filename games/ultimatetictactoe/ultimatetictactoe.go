// Package ultimatetictactoe is an Ultimate Tic-Tac-Toe Action/State
// pair for pkg/mcts. A position is nine small 3x3 boards plus one
// master board tracking which small boards have been won, drawn, or
// left open — grounded on the retrieval pack's own
// ultimate-tic-tac-toe/uttt/core package for the bitboard termination
// check, and on the original C++ reference for the "must play in the
// sub-board matching the opponent's last move, unless it is already
// decided" legality rule. Both sources mutate a position in place and
// undo it with a history list; State here is a plain value instead,
// since the search tree must keep every visited position alive at
// once.
package ultimatetictactoe

const (
	boardCount = 9
	cellCount  = 9
)

// winningBitboardPatterns are the eight 9-bit masks that decide a
// single 3x3 board (small or master).
var winningBitboardPatterns = [8]uint16{
	0b111000000, 0b000111000, 0b000000111,
	0b100100100, 0b010010010, 0b001001001,
	0b100010001, 0b001010100,
}

const fullBoard uint16 = 0b111111111

// smallResult is the settled state of one of the nine small boards.
type smallResult uint8

const (
	smallUnresolved smallResult = iota
	smallDraw
	smallPlayer1Won
	smallPlayer2Won
)
