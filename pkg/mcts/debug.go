package mcts

import (
	"fmt"
	"sort"

	"github.com/muesli/termenv"
)

var debugProfile = termenv.ColorProfile()

func styleHeading(s string) termenv.Style {
	return termenv.String(s).Foreground(debugProfile.Color("6")).Bold()
}

func styleGood(s string) termenv.Style {
	return termenv.String(s).Foreground(debugProfile.Color("2"))
}

func styleBad(s string) termenv.Style {
	return termenv.String(s).Foreground(debugProfile.Color("1"))
}

func styleDim(s string) termenv.Style {
	return termenv.String(s).Foreground(debugProfile.Color("8"))
}

// childStat is one row of a child-ranking table: an action, the
// visits its child received, and its win rate for the player the
// table was built for.
type childStat[A Action[A]] struct {
	action  A
	visits  int
	winRate float64
}

// childWinRates returns every child of n ranked by win rate for
// forPlayer, descending — the table printStats dumps at the end of a
// search.
func (n *Node[A, S]) childWinRates(forPlayer PlayerMarker) []childStat[A] {
	stats := make([]childStat[A], 0, len(n.children))
	for _, c := range n.children {
		stats = append(stats, childStat[A]{action: c.lastAction, visits: c.visits, winRate: c.winRate(forPlayer)})
	}
	sort.SliceStable(stats, func(i, j int) bool { return stats[i].winRate > stats[j].winRate })
	return stats
}

// colorForRate picks a win/loss-tinted style for a win rate, so the
// printed table reads at a glance: green above even odds, red below.
func colorForRate(s string, rate float64) termenv.Style {
	if rate >= 0.5 {
		return styleGood(s)
	}
	return styleBad(s)
}

// printStats renders the current root's search statistics: total
// visits, branching factor, the root's win probability, and every
// child's action/win-rate/visit count sorted best-first.
func (a *MCTSAgent[A, S]) printStats() {
	root := a.tree.root
	fmt.Println(styleHeading("search stats"))
	fmt.Printf("  %s %d\n", styleDim("visits:"), root.visits)
	fmt.Printf("  %s %d\n", styleDim("branching factor:"), root.branchFactor())
	winProb := root.winRate(root.maximizingPlayer)
	fmt.Printf("  %s %s\n", styleDim("win probability:"), colorForRate(fmt.Sprintf("%.4f%%", winProb*100), winProb))
	for i, stat := range root.childWinRates(root.maximizingPlayer) {
		line := fmt.Sprintf("  %d. %s -> %.4f%% (%d visits)", i+1, stat.action.String(), stat.winRate*100, stat.visits)
		fmt.Println(colorForRate(line, stat.winRate))
	}
}
