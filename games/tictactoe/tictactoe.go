// Package tictactoe is a Tic-Tac-Toe Action/State pair for pkg/mcts.
// Positions are tracked as a pair of 9-bit masks, one per player, the
// same bitboard idiom the retrieval pack's own tic-tac-toe package
// uses — but State here is a plain value type: NextState returns a
// new State rather than mutating the receiver, since the search tree
// keeps every position it has ever visited alive simultaneously.
package tictactoe

const boardDim = 3
const boardSize = boardDim * boardDim

// winningBitboardPatterns are the eight 9-bit masks — three rows,
// three columns, two diagonals — that decide the game.
var winningBitboardPatterns = [8]uint16{
	0b111000000, 0b000111000, 0b000000111,
	0b100100100, 0b010010010, 0b001001001,
	0b100010001, 0b001010100,
}

const fullBoard uint16 = 1<<boardSize - 1
