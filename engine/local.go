package engine

import (
	"time"

	"santorini/experiments/metrics"
	"santorini/game"
	"santorini/searcher"
	"santorini/searcher/agent"

	"github.com/rs/zerolog/log"
)

// localEngine runs a full game between two in-process agents, feeding each
// agent the lineage of moves since its previous turn so it can re-root its
// search tree.
type localEngine struct {
	state  *game.GameState
	agents []agent.Agent
}

func LocalEngine(agents []agent.Agent) *localEngine {
	if len(agents) != game.NumPlayers {
		panic("need exactly one agent per player")
	}

	return &localEngine{
		state:  game.NewGameState(),
		agents: agents,
	}
}

// Run executes the entire game loop until a winner is found.
func (e *localEngine) Run() (string, metrics.GameMetric, []metrics.MoveMetric) {
	// Lineage of moves each agent has not yet observed
	pending := make([][]searcher.Segment, len(e.agents))

	startTime := time.Now()
	startingPlayer := e.state.CurrentPlayer()

	log.Info().Msgf("%s is starting", e.state.Player())

	var moveMetrics []metrics.MoveMetric
	step := 1
	for e.state.Winner() == "" && step <= MaxMoves {
		currentPlayer := e.state.CurrentPlayer()

		move, metric := e.agents[currentPlayer].FindMove(e.state, pending[currentPlayer])
		pending[currentPlayer] = nil

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       currentPlayer,
			SearchMetric: metric,
		})

		e.state.Apply(move.(game.Action))

		segment := searcher.Segment{Move: move, StateHash: e.state.Hash()}
		for i := range pending {
			pending[i] = append(pending[i], segment)
		}

		log.Debug().Msgf("step %d: player %d played %v", step, currentPlayer, move)
		step++
	}

	winner := e.state.Winner()
	if winner == "" {
		log.Warn().Msgf("stopped after %d moves with no winner", MaxMoves)
	}

	endTime := time.Now()
	gameMetric := metrics.GameMetric{
		StartingPlayer: startingPlayer,
		Winner:         winner,
		StartTime:      startTime,
		EndTime:        endTime,
		Duration:       endTime.Sub(startTime),
		TotalMoves:     step - 1,
	}

	return winner, gameMetric, moveMetrics
}
