package mcts

import "time"

// budget tracks the wall-clock half of a search's stop condition. It
// is only ever checked between iterations, never mid-iteration: an
// iteration already underway always runs to completion.
type budget struct {
	start      time.Time
	maxSeconds float64
}

func newBudget(maxSeconds float64) *budget {
	return &budget{start: time.Now(), maxSeconds: maxSeconds}
}

func (b *budget) elapsed() time.Duration {
	return time.Since(b.start)
}

func (b *budget) expired() bool {
	return b.elapsed().Seconds() >= b.maxSeconds
}
