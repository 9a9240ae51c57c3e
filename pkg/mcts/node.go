package mcts

import (
	"fmt"
	"os"
)

// Node is one position in the search tree. Children are owned (the
// node is the sole reference holder); the parent link is a
// non-owning back-reference so that re-rooting the tree never has to
// cascade-delete through a promoted child's ancestry — dropping a
// Go pointer is enough for the old siblings to become unreachable and
// garbage-collected.
type Node[A Action[A], S State[A, S]] struct {
	state            S
	lastAction       A
	parent           *Node[A, S]
	children         []*Node[A, S]
	untriedActions   []A
	terminal         bool
	visits           int
	score            float64
	maximizingPlayer PlayerMarker
}

// newNode builds a fresh, unexpanded node for state, reached via
// lastAction from parent (parent may be nil for a tree root).
// maximizingPlayer is propagated unchanged to every descendant.
func newNode[A Action[A], S State[A, S]](state S, lastAction A, parent *Node[A, S], maximizingPlayer PlayerMarker) *Node[A, S] {
	n := &Node[A, S]{
		state:            state,
		lastAction:       lastAction,
		parent:           parent,
		terminal:         state.IsTerminal(),
		maximizingPlayer: maximizingPlayer,
	}
	if !n.terminal {
		n.untriedActions = state.LegalActions()
	}
	return n
}

// State returns the position this node represents.
func (n *Node[A, S]) State() S { return n.state }

// LastAction returns the action that produced this node from its
// parent; the root's last action IsEmpty().
func (n *Node[A, S]) LastAction() A { return n.lastAction }

// Visits returns the number of times this node has been
// back-propagated through.
func (n *Node[A, S]) Visits() int { return n.visits }

// Children returns the node's owned child list, in expansion order.
func (n *Node[A, S]) Children() []*Node[A, S] { return n.children }

// IsTerminal reports whether no further moves exist from this state.
func (n *Node[A, S]) IsTerminal() bool { return n.terminal }

// IsFullyExpanded reports whether every legal action from this state
// already has a corresponding child.
func (n *Node[A, S]) IsFullyExpanded() bool {
	return len(n.untriedActions) == 0
}

// advance returns the child reached by action, creating a fresh
// (parentless-until-attached) subtree rooted at state.NextState(action)
// if no such child exists yet — this is the mechanism that lets a tree
// survive an opponent move the search never explored. The returned
// node's parent link is cleared: it becomes a new tree root.
func (n *Node[A, S]) advance(action A) *Node[A, S] {
	for _, c := range n.children {
		if c.lastAction == action {
			c.parent = nil
			return c
		}
	}
	fmt.Fprintln(os.Stderr, "INFO: child not found, starting over")
	child := newNode[A, S](n.state.NextState(action), action, nil, n.maximizingPlayer)
	return child
}

// winRate returns the fraction of this node's back-propagated score
// that favors forPlayer. Undefined (returns 0) when visits is 0 —
// callers must not rely on this case, matching spec.md's note that
// win rate is undefined at zero visits.
func (n *Node[A, S]) winRate(forPlayer PlayerMarker) float64 {
	if n.visits == 0 {
		return 0
	}
	if forPlayer == n.maximizingPlayer {
		return n.score / float64(n.visits)
	}
	return 1 - n.score/float64(n.visits)
}

// expand grows the tree by one node. If n is terminal, it re-runs a
// rollout from n itself (a harmless no-op that simply re-samples the
// fixed terminal outcome) rather than erroring — growTree must still
// terminate cleanly when every reachable leaf is terminal. Otherwise
// it pops the next untried action (in LegalActions order), builds and
// attaches the corresponding child, and rolls that child out.
// Returns ErrCannotExpand if n is non-terminal and already fully
// expanded.
func (n *Node[A, S]) expand() (*Node[A, S], error) {
	if n.terminal {
		n.rollout()
		return n, nil
	}
	if n.IsFullyExpanded() {
		return nil, ErrCannotExpand
	}
	action := n.untriedActions[0]
	n.untriedActions = n.untriedActions[1:]
	child := newNode[A, S](n.state.NextState(action), action, n, n.maximizingPlayer)
	n.children = append(n.children, child)
	child.rollout()
	return child, nil
}

// rollout plays a single random simulation from n's state to
// termination and back-propagates the resulting outcome through n and
// every ancestor.
func (n *Node[A, S]) rollout() {
	result := n.state.Rollout(n.maximizingPlayer)
	n.backPropagate(float64(result), 1)
}

// backPropagate adds w wins over n visits to this node's statistics
// and recurses into the parent, unless this node is a tree root.
func (n *Node[A, S]) backPropagate(w float64, visits int) {
	n.score += w
	n.visits += visits
	if n.parent != nil {
		n.parent.backPropagate(w, visits)
	}
}

// branchFactor returns the number of children currently attached.
func (n *Node[A, S]) branchFactor() int { return len(n.children) }
