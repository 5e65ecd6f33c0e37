package experiments

import (
	"fmt"
	"time"

	"santorini/engine"
	"santorini/experiments/metrics"
	"santorini/searcher"
	"santorini/searcher/agent"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	NumGames   = 30 // Per match up
	TimeBudget = 10 * time.Millisecond
)

var parallelConfigs = []metrics.AgentConfig{
	{ID: 1, Goroutines: 1, Duration: TimeBudget},
	{ID: 2, Goroutines: 4, Duration: TimeBudget},
	{ID: 3, Goroutines: 8, Duration: TimeBudget},
	{ID: 4, Goroutines: 16, Duration: TimeBudget},
	{ID: 5, Goroutines: 32, Duration: TimeBudget},
	{ID: 6, Goroutines: 64, Duration: TimeBudget},
}

func RunParallelizationExperiment() {
	// Each matchup pairs an agent against the baseline sequential agent
	baseline := metrics.AgentConfig{ID: 0, Goroutines: 1, Duration: TimeBudget}
	matchUps := [][]metrics.AgentConfig{}
	for _, config := range parallelConfigs {
		matchUps = append(matchUps, []metrics.AgentConfig{baseline, config})
	}

	runExperiment("parallelization", append(parallelConfigs, baseline), matchUps)
}

func RunCutoffExperiment() {
	baseline := metrics.AgentConfig{ID: 0, Goroutines: 8, Duration: TimeBudget} // Without cutoff (full playout)
	cutoffConfigs := []metrics.AgentConfig{
		{ID: 1, Goroutines: baseline.Goroutines, Duration: baseline.Duration},
		{ID: 2, Goroutines: baseline.Goroutines, Duration: baseline.Duration, Cutoff: 10},
		{ID: 3, Goroutines: baseline.Goroutines, Duration: baseline.Duration, Cutoff: 20},
		{ID: 4, Goroutines: baseline.Goroutines, Duration: baseline.Duration, Cutoff: 40},
		{ID: 5, Goroutines: baseline.Goroutines, Duration: baseline.Duration, Cutoff: 80},
	}

	// Each matchup pairs the baseline agent against a cutoff agent
	matchUps := [][]metrics.AgentConfig{}
	for _, config := range cutoffConfigs {
		matchUps = append(matchUps, []metrics.AgentConfig{baseline, config})
	}

	runExperiment("cutoff", cutoffConfigs, matchUps)
}

func runExperiment(name string, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig) {
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		config1 := matchup[0]
		config2 := matchup[1]

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), config1, config2)

		for i := 0; i < NumGames; i++ {
			winner, gameMetric, moveMetrics := runGame(config1, config2)

			gameID := uuid.NewString()
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         gameID,
				Agent1:     config1.ID,
				Agent2:     config2.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       gameID,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d of %d with winner: %s", mi+1, len(matchUps), i+1, NumGames, winner)
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(matchUps))
	}

	log.Info().Msgf("completed %s experiment", name)

	// Store experiment metadata
	writer, err := metrics.NewWriter(name)
	if err != nil {
		panic(fmt.Sprintf("failed to create experiment writer: %v", err))
	}

	err = writer.WriteAgentConfigs(configs)
	if err != nil {
		panic(fmt.Sprintf("failed to store agent configs: %v", err))
	}
	log.Info().Msg("stored agent configs")

	// Store experiment results
	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		panic(fmt.Sprintf("failed to write game records: %v", err))
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		panic(fmt.Sprintf("failed to write move records: %v", err))
	}
	log.Info().Msg("stored move records")
}

// runGame executes a single game between two agents and returns the winner
func runGame(config1, config2 metrics.AgentConfig) (string, metrics.GameMetric, []metrics.MoveMetric) {
	agents := []agent.Agent{
		agent.NewEvaluationAgent(createMCTS(config1)),
		agent.NewEvaluationAgent(createMCTS(config2)),
	}
	e := engine.LocalEngine(agents)

	return e.Run()
}

func createMCTS(config metrics.AgentConfig) *searcher.MCTS {
	options := []searcher.Option{}

	if config.Episodes > 0 {
		options = append(options, searcher.WithEpisodes(config.Episodes))
	}
	if config.Duration > 0 {
		options = append(options, searcher.WithDuration(config.Duration))
	}
	if config.Cutoff > 0 {
		options = append(options, searcher.WithCutoff(config.Cutoff))
	}
	if config.Evaluate != nil {
		options = append(options, searcher.WithEvaluationFn(config.Evaluate))
	}

	options = append(options, searcher.WithMetrics())
	return searcher.NewMCTS(config.Goroutines, options...)
}
