package engine

import "santorini/experiments/metrics"

// MaxMoves is a safety stop well above MaxGameLength; a Santorini game
// always ends before it.
const MaxMoves = 200

type Engine interface {
	// Run starts a game till there's a winner or a max number of moves is reached
	Run() (winner string, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
