// Package arena runs matches between two mcts.Agent implementations
// and tallies the outcomes. It is grounded on the retrieval pack's
// pkg/bench/versus_arena.go — the same win/draw bookkeeping and
// per-match result shape — but deliberately runs games back-to-back
// on a single goroutine instead of spawning a worker pool: the engine
// it drives is single-threaded by design, and a byte-identical replay
// under a fixed seed (a testable property of the engine itself)
// requires one sequential draw from the shared process-wide RNG, not
// several goroutines racing over it.
package arena

import "github.com/arborsearch/mcts-engine/pkg/mcts"

// MatchResult is the outcome of a single game.
type MatchResult struct {
	Result mcts.GameResult
	Plies  int
}

// Stats tallies match results from Player1's perspective.
type Stats struct {
	Games       int
	Player1Wins int
	Player2Wins int
	Draws       int
}

func (s *Stats) record(result mcts.GameResult) {
	s.Games++
	switch result {
	case mcts.Player1Won:
		s.Player1Wins++
	case mcts.Player2Won:
		s.Player2Wins++
	case mcts.Draw:
		s.Draws++
	}
}

// Player1WinRate returns Player1Wins/Games, or 0 if no games were played.
func (s Stats) Player1WinRate() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Player1Wins) / float64(s.Games)
}

// DrawRate returns Draws/Games, or 0 if no games were played.
func (s Stats) DrawRate() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Draws) / float64(s.Games)
}

// PlayGame runs one game from start to termination, alternating
// GetAction calls between player1 (Player1) and player2 (Player2),
// each told the other's previous action so a tree-backed agent can
// re-root onto it.
func PlayGame[A mcts.Action[A], S mcts.State[A, S]](start S, player1, player2 mcts.Agent[A, S]) (MatchResult, error) {
	state := start
	var last A
	turn := mcts.Player1
	plies := 0
	for !state.IsTerminal() {
		agent := player1
		if turn == mcts.Player2 {
			agent = player2
		}
		action, err := agent.GetAction(state, last)
		if err != nil {
			return MatchResult{}, err
		}
		state = state.NextState(action)
		last = action
		turn = mcts.Opponent(turn)
		plies++
	}
	return MatchResult{Result: state.GameResult(), Plies: plies}, nil
}

// PlayMatch runs n independent games, building a fresh pair of agents
// per game via newPlayer1/newPlayer2 (a tree-backed agent's search
// state is tied to one game's starting position, so it cannot be
// reused across games) and tallies the results.
func PlayMatch[A mcts.Action[A], S mcts.State[A, S]](n int, start func() S, newPlayer1, newPlayer2 func(startingState S) mcts.Agent[A, S]) (Stats, error) {
	var stats Stats
	for i := 0; i < n; i++ {
		state := start()
		result, err := PlayGame[A, S](state, newPlayer1(state), newPlayer2(state))
		if err != nil {
			return stats, err
		}
		stats.record(result.Result)
	}
	return stats, nil
}
