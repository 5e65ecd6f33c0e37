package main

import (
	"os"

	"santorini/engine"
	"santorini/experiments"
	"santorini/meta"
	"santorini/searcher"
	"santorini/searcher/agent"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "parallelization":
			experiments.RunParallelizationExperiment()
		case "cutoff":
			experiments.RunCutoffExperiment()
		default:
			log.Fatal().Msgf("unknown experiment %q", os.Args[1])
		}
		return
	}

	winner := runGame()
	log.Info().Msgf("game over, winner: %s", winner)
}

// runGame plays a single self-play game between two identical MCTS agents.
func runGame() string {
	agents := []agent.Agent{
		agent.NewEvaluationAgent(createMCTS()),
		agent.NewEvaluationAgent(createMCTS()),
	}

	e := engine.LocalEngine(agents)
	winner, gameMetric, _ := e.Run()

	log.Info().Msgf("played %d moves in %s", gameMetric.TotalMoves, gameMetric.Duration)
	return winner
}

func createMCTS() *searcher.MCTS {
	return searcher.NewMCTS(meta.GO_ROUTINES,
		searcher.WithEpisodes(meta.EPISODES),
		searcher.WithCutoff(meta.WITH_CUTOFF),
		searcher.WithMetrics())
}
