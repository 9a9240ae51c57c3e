package mcts

import "errors"

// Sentinel errors for the engine's five failure kinds (spec.md §7).
// Game models wrap ErrIllegalAction with additional context; the
// engine itself returns the others unwrapped.
var (
	// ErrIllegalAction is returned by a game model when an action is
	// not legal in the state it was applied to. The engine never
	// constructs this itself and never recovers from it.
	ErrIllegalAction = errors.New("mcts: illegal action")

	// ErrNoLegalActions means LegalActions was called on a terminal
	// state. The engine never calls LegalActions on a terminal node,
	// so surfacing this indicates a game model bug.
	ErrNoLegalActions = errors.New("mcts: no legal actions")

	// ErrNoChildren is returned by selectBestChild on a childless node.
	ErrNoChildren = errors.New("mcts: node has no children")

	// ErrCannotExpand is returned by expand on a non-terminal node that
	// is already fully expanded.
	ErrCannotExpand = errors.New("mcts: node cannot be expanded further")

	// ErrTerminalState is returned by an Agent's GetAction when the
	// current state is already terminal.
	ErrTerminalState = errors.New("mcts: current state is terminal")
)
