package mcts

import (
	"math"
	"testing"
)

func TestNewNodeUntriedActionsMatchLegalActions(t *testing.T) {
	state := newStickGame(7)
	n := newNode[stickAction, stickState](state, stickAction{}, nil, Player1)

	if got, want := len(n.untriedActions), len(state.LegalActions()); got != want {
		t.Fatalf("untriedActions = %d, want %d", got, want)
	}
	if n.terminal {
		t.Fatalf("fresh non-terminal state reported terminal")
	}
}

// TestInvariantChildrenPlusUntried checks spec.md invariant I1: at any
// point, len(children)+len(untriedActions) == len(legalActions).
func TestInvariantChildrenPlusUntried(t *testing.T) {
	Seed(1)
	state := newStickGame(10)
	root := newNode[stickAction, stickState](state, stickAction{}, nil, Player1)

	total := len(state.LegalActions())
	for i := 0; i < total; i++ {
		if _, err := root.expand(); err != nil {
			t.Fatalf("expand %d: %v", i, err)
		}
		if got := len(root.children) + len(root.untriedActions); got != total {
			t.Fatalf("after expand %d: children+untried = %d, want %d", i, got, total)
		}
	}
	if !root.IsFullyExpanded() {
		t.Fatalf("root should be fully expanded after exhausting all legal actions")
	}
}

// TestInvariantChildStateMatchesNextState checks I2: a child's state
// equals parent.state.NextState(child.lastAction).
func TestInvariantChildStateMatchesNextState(t *testing.T) {
	state := newStickGame(5)
	root := newNode[stickAction, stickState](state, stickAction{}, nil, Player1)
	child, err := root.expand()
	if err != nil {
		t.Fatal(err)
	}
	want := state.NextState(child.lastAction)
	if child.state != want {
		t.Fatalf("child.state = %+v, want %+v", child.state, want)
	}
}

// TestInvariantVisitsConservation checks I3: visits equals the sum of
// children's visits plus the node's own rollout count — here verified
// indirectly via backPropagate bookkeeping across a small tree.
func TestInvariantVisitsConservation(t *testing.T) {
	Seed(2)
	state := newStickGame(9)
	root := newNode[stickAction, stickState](state, stickAction{}, nil, Player1)
	for i := 0; i < 3; i++ {
		if _, err := root.expand(); err != nil {
			t.Fatal(err)
		}
	}
	sumChildren := 0
	for _, c := range root.children {
		sumChildren += c.visits
	}
	if root.visits != sumChildren {
		t.Fatalf("root.visits = %d, want sum of children visits %d", root.visits, sumChildren)
	}
}

// TestInvariantScoreWithinVisits checks I4: 0 <= score <= visits.
func TestInvariantScoreWithinVisits(t *testing.T) {
	Seed(3)
	state := newStickGame(12)
	root := newNode[stickAction, stickState](state, stickAction{}, nil, Player1)
	for i := 0; i < 3; i++ {
		if _, err := root.expand(); err != nil {
			t.Fatal(err)
		}
	}
	if root.score < 0 || root.score > float64(root.visits) {
		t.Fatalf("score=%v out of [0, visits=%d]", root.score, root.visits)
	}
}

// TestInvariantMaximizingPlayerPropagated checks I5: maximizingPlayer
// is identical across every descendant.
func TestInvariantMaximizingPlayerPropagated(t *testing.T) {
	state := newStickGame(6)
	root := newNode[stickAction, stickState](state, stickAction{}, nil, Player2)
	child, err := root.expand()
	if err != nil {
		t.Fatal(err)
	}
	grandchild, err := child.expand()
	if err != nil {
		t.Fatal(err)
	}
	if child.maximizingPlayer != Player2 || grandchild.maximizingPlayer != Player2 {
		t.Fatalf("maximizingPlayer not propagated: child=%v grandchild=%v", child.maximizingPlayer, grandchild.maximizingPlayer)
	}
}

// TestUCTZeroVisitsIsInf checks invariant I6: uct on a zero-visit
// child is +Inf, regardless of parent.visits.
func TestUCTZeroVisitsIsInf(t *testing.T) {
	state := newStickGame(4)
	parent := newNode[stickAction, stickState](state, stickAction{}, nil, Player1)
	parent.visits = 5
	child := newNode[stickAction, stickState](state.NextState(stickAction{n: 1}), stickAction{n: 1}, parent, Player1)
	parent.children = append(parent.children, child)

	got := uct[stickAction, stickState](parent, child, DefaultExplorationParam)
	if !math.IsInf(got, 1) {
		t.Fatalf("uct with zero-visit child = %v, want +Inf", got)
	}
}

func TestSelectBestChildNoChildren(t *testing.T) {
	state := newStickGame(4)
	n := newNode[stickAction, stickState](state, stickAction{}, nil, Player1)
	if _, err := n.selectBestChild(0); err != ErrNoChildren {
		t.Fatalf("err = %v, want ErrNoChildren", err)
	}
}

func TestSelectBestChildSingleChildSkipsUCT(t *testing.T) {
	state := newStickGame(4)
	n := newNode[stickAction, stickState](state, stickAction{}, nil, Player1)
	only, err := n.expand()
	if err != nil {
		t.Fatal(err)
	}
	got, err := n.selectBestChild(DefaultExplorationParam)
	if err != nil {
		t.Fatal(err)
	}
	if got != only {
		t.Fatalf("selectBestChild with a single child returned a different node")
	}
}

func TestExpandTerminalReRolls(t *testing.T) {
	Seed(4)
	state := newStickGame(2)
	terminal := state.NextState(stickAction{n: 2})
	if !terminal.IsTerminal() {
		t.Fatalf("expected terminal state")
	}
	n := newNode[stickAction, stickState](terminal, stickAction{n: 2}, nil, Player1)
	before := n.visits
	if _, err := n.expand(); err != nil {
		t.Fatalf("expand on terminal node returned error: %v", err)
	}
	if n.visits != before+1 {
		t.Fatalf("expand on terminal node should add exactly one visit via re-rollout, got %d -> %d", before, n.visits)
	}
}

func TestExpandFullyExpandedReturnsCannotExpand(t *testing.T) {
	state := newStickGame(3)
	n := newNode[stickAction, stickState](state, stickAction{}, nil, Player1)
	total := len(state.LegalActions())
	for i := 0; i < total; i++ {
		if _, err := n.expand(); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := n.expand(); err != ErrCannotExpand {
		t.Fatalf("err = %v, want ErrCannotExpand", err)
	}
}

func TestAdvanceCreatesFreshSubtreeForUnseenAction(t *testing.T) {
	state := newStickGame(5)
	root := newNode[stickAction, stickState](state, stickAction{}, nil, Player1)
	// Never expanded — every action is unseen.
	child := root.advance(stickAction{n: 2})
	if child.parent != nil {
		t.Fatalf("advanced child must have its parent link cleared")
	}
	want := state.NextState(stickAction{n: 2})
	if child.state != want {
		t.Fatalf("fresh subtree state = %+v, want %+v", child.state, want)
	}
}

func TestAdvanceReusesExistingChild(t *testing.T) {
	state := newStickGame(5)
	root := newNode[stickAction, stickState](state, stickAction{}, nil, Player1)
	existing, err := root.expand()
	if err != nil {
		t.Fatal(err)
	}
	existing.visits = 42 // mark it so we can tell it was reused, not rebuilt
	got := root.advance(existing.lastAction)
	if got != existing {
		t.Fatalf("advance should reuse the existing child for a seen action")
	}
	if got.visits != 42 {
		t.Fatalf("reused child should keep its accumulated statistics")
	}
}
