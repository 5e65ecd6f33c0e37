package agent

import (
	"santorini/experiments/metrics"
	"santorini/game"
	"santorini/searcher"
)

type Agent interface {
	// FindMove returns a move and performance metrics (if collected) from the simulation process
	FindMove(state game.State, updates []searcher.Segment) (game.Move, metrics.SearchMetric)
}
