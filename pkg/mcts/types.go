// Package mcts implements a generic Monte Carlo Tree Search engine for
// two-player, perfect-information, deterministic, turn-based games.
//
// The engine is parameterised over a caller-supplied Action and State
// pair (see Action and State below). It builds a search tree with the
// standard select/expand/simulate/back-propagate loop, uses UCT to
// balance exploration and exploitation, and re-roots the tree across
// turns so prior search work is reused rather than discarded.
package mcts

// PlayerMarker identifies which side is to move. Exactly two player
// identities are ever active; PlayerNone is a sentinel used only by
// empty actions, never by a node's maximizing player.
type PlayerMarker int8

const (
	PlayerNone PlayerMarker = iota
	Player1
	Player2
)

// Opponent returns the other player's marker. PlayerNone maps to
// itself: there is no opponent of "no player".
func Opponent(p PlayerMarker) PlayerMarker {
	switch p {
	case Player1:
		return Player2
	case Player2:
		return Player1
	default:
		return PlayerNone
	}
}

func (p PlayerMarker) String() string {
	switch p {
	case Player1:
		return "Player1"
	case Player2:
		return "Player2"
	default:
		return "None"
	}
}

// GameResult is the outcome of a finished (or in-progress) game.
type GameResult int8

const (
	NotFinished GameResult = iota
	Player1Won
	Player2Won
	Draw
)

// Result is a rollout outcome from the maximizing player's
// perspective: 1 for a win, 0.5 for a draw, 0 for a loss.
type Result float64

const (
	ResultLoss Result = 0.0
	ResultDraw Result = 0.5
	ResultWin  Result = 1.0
)

// Action is the contract a concrete game must satisfy for its move
// type. Actions are value-typed: copying one must be cheap and safe.
type Action[A any] interface {
	comparable
	// IsEmpty reports whether this is the "no action yet" sentinel,
	// used to mark the root of a tree and the first call to an Agent.
	IsEmpty() bool
	// String renders the action for humans (debug output, printStats).
	String() string
}

// State is the contract a concrete game must satisfy for its position
// type. Every operation below must be free of observable side effects
// on the receiver: NextState and Rollout return new values rather than
// mutating in place.
type State[A any, S any] interface {
	// CurrentPlayer returns the side to move.
	CurrentPlayer() PlayerMarker
	// LegalActions enumerates distinct legal actions in a stable
	// order: the same state always yields the same sequence. This
	// order controls both untried-action consumption (node expansion)
	// and insertion-order tie-breaking in selectBestChild.
	LegalActions() []A
	// NextState returns the successor state after action, without
	// mutating the receiver.
	NextState(action A) S
	// IsTerminal reports whether no further actions are possible.
	IsTerminal() bool
	// GameResult returns the current result; NotFinished iff
	// !IsTerminal().
	GameResult() GameResult
	// Rollout plays a uniform-random game to termination from this
	// state (or, if the state is already terminal, returns its fixed
	// outcome without playing further moves) and scores it from
	// maximizingPlayer's perspective.
	Rollout(maximizingPlayer PlayerMarker) Result
	// String renders the state for humans.
	String() string
}
