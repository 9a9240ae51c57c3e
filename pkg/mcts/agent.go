package mcts

import "fmt"

// Agent picks an action for the current player to play. GetAction
// receives the position currentState to move from, plus the
// opponent's previous action (empty on the very first call of a
// game) so a tree-backed agent can re-root onto it before searching.
type Agent[A Action[A], S State[A, S]] interface {
	GetAction(currentState S, opponentsLastAction A) (A, error)
}

// AgentConfig configures an MCTSAgent's search budget and debug
// output, mirroring a small builder: zero value is invalid, use
// DefaultAgentConfig and chain the With* setters.
type AgentConfig struct {
	MaxIter    int
	MaxSeconds float64
	Debug      bool
}

// DefaultAgentConfig returns the defaults named in spec.md §6.2:
// 100000 iterations, a 5 second wall-clock budget, debug output off.
func DefaultAgentConfig() AgentConfig {
	return AgentConfig{MaxIter: 100000, MaxSeconds: 5, Debug: false}
}

func (c AgentConfig) WithMaxIter(n int) AgentConfig {
	c.MaxIter = n
	return c
}

func (c AgentConfig) WithMaxSeconds(s float64) AgentConfig {
	c.MaxSeconds = s
	return c
}

func (c AgentConfig) WithDebug(debug bool) AgentConfig {
	c.Debug = debug
	return c
}

// MCTSAgent plays by growing a persistent search tree across turns,
// re-rooting it onto the opponent's move before every search. This is
// the facade spec.md §4.F names: a thin driver over Tree that owns
// the search budget and debug rendering.
type MCTSAgent[A Action[A], S State[A, S]] struct {
	tree   *Tree[A, S]
	config AgentConfig
}

// NewMCTSAgent builds an agent rooted at startingState, searching from
// maximizingPlayer's perspective for the agent's entire lifetime.
func NewMCTSAgent[A Action[A], S State[A, S]](startingState S, maximizingPlayer PlayerMarker, config AgentConfig) *MCTSAgent[A, S] {
	return &MCTSAgent[A, S]{tree: NewTree[A, S](startingState, maximizingPlayer), config: config}
}

// RootVisits returns the current search tree root's visit count —
// useful for tests and callers verifying that search work accumulates
// across turns via re-rooting rather than being discarded.
func (a *MCTSAgent[A, S]) RootVisits() int {
	return a.tree.Root().Visits()
}

// GetAction re-roots onto opponentsLastAction (if non-empty), grows
// the tree under the configured budget, picks the root's best child at
// exploration constant 0, re-roots onto it, and returns its action.
// Returns ErrTerminalState if the position reached after re-rooting is
// already terminal, or ErrNoChildren if the root still has no children
// after the search (possible when the budget allows no iteration, i.e.
// MaxIter <= 0 or MaxSeconds <= 0, on a root not yet expanded).
func (a *MCTSAgent[A, S]) GetAction(currentState S, opponentsLastAction A) (A, error) {
	var zero A
	if a.config.Debug {
		fmt.Printf("legal actions: %v\n", currentState.LegalActions())
	}
	if !opponentsLastAction.IsEmpty() {
		a.tree.AdvanceTree(opponentsLastAction)
	}
	if a.tree.CurrentState().IsTerminal() {
		return zero, ErrTerminalState
	}
	if err := a.tree.GrowTree(a.config.MaxIter, a.config.MaxSeconds); err != nil {
		return zero, err
	}
	if a.config.Debug {
		a.printStats()
	}
	best, err := a.tree.SelectBestChild()
	if err != nil {
		return zero, err
	}
	action := best.LastAction()
	a.tree.AdvanceTree(action)
	if a.config.Debug {
		fmt.Printf("MCTS action selected: %s\n", action.String())
	}
	return action, nil
}

// RandomAgent plays a uniformly random legal action every turn. It
// shares GetAction's shape with MCTSAgent but keeps no search state,
// making it a cheap opponent baseline for win-rate benchmarks.
type RandomAgent[A Action[A], S State[A, S]] struct{}

func (RandomAgent[A, S]) GetAction(currentState S, _ A) (A, error) {
	var zero A
	actions := currentState.LegalActions()
	if len(actions) == 0 {
		return zero, ErrNoLegalActions
	}
	return actions[Intn(len(actions))], nil
}
