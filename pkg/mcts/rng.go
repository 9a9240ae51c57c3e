package mcts

import (
	"math/rand"
	"sync"
	"time"
)

// rngMu guards the process-wide generator; MCTS itself never runs more
// than one goroutine at a time, but game models' own random-action
// pickers and external drivers may call into it from outside a search.
var (
	rngMu  sync.Mutex
	rngSrc = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// Seed reseeds the process-wide generator deterministically. Tests use
// this to get byte-identical action sequences across independent runs
// (spec.md §8, property R3).
func Seed(seed int64) {
	rngMu.Lock()
	defer rngMu.Unlock()
	rngSrc = rand.New(rand.NewSource(seed))
}

// Intn returns a pseudo-random int in [0, n), drawing from the single
// process-wide generator shared by every game model's rollout policy
// and the engine's own callers.
func Intn(n int) int {
	rngMu.Lock()
	defer rngMu.Unlock()
	return rngSrc.Intn(n)
}

// Float64 returns a pseudo-random float64 in [0, 1) from the
// process-wide generator.
func Float64() float64 {
	rngMu.Lock()
	defer rngMu.Unlock()
	return rngSrc.Float64()
}
