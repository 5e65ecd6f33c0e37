// meta/meta.go
package meta

// GO_ROUTINES defines the number of goroutines to use.
const GO_ROUTINES = 8

// EPISODES defines the number of episodes for MCTS.
const EPISODES = 150

// WITH_CUTOFF defines the cutoff value for MCTS.
const WITH_CUTOFF = 40

// MAX_TURNS is a per-game move limit. Nothing reads it; the local engine
// stops at engine.MaxMoves.
const MAX_TURNS = 200
