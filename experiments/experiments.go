package experiments

import (
	"fmt"
	"mancala/engine"
	"mancala/experiments/metrics"
	"mancala/meta"
	"mancala/player"
	"mancala/searcher"
	"mancala/searcher/agent"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const Name = "sarsa_training"

const (
	trainedID  = 1 // AgentConfig.ID of the greedy agent over the learned table
	baselineID = 2 // AgentConfig.ID of the random baseline
	trainingID = 3 // AgentConfig.ID of the self-play agent that produced the table
)

type Result struct {
	RunID    string
	Table    *searcher.ValueTable
	Episodes []metrics.EpisodeMetric
	Games    []metrics.GameRecord
	Wins     int    // Evaluation games won by the trained agent
	Dir      string // Where records were written, empty if none
}

// RunTrainingExperiment trains a value table by self-play, optionally evaluates
// the greedy agent against a random baseline, and stores the run's records
// when an output directory is configured.
func RunTrainingExperiment(cfg meta.Config, episodes int) (Result, error) {
	result := Result{
		RunID: uuid.NewString(),
		Table: searcher.NewValueTable(),
	}
	log.Info().Msgf("starting %s run %s with %d episodes...", Name, result.RunID, episodes)

	controller := player.NewTrainingController(result.Table,
		player.WithLearningRate(cfg.LearningRate),
		player.WithDiscountFactor(cfg.DiscountFactor),
		player.WithStartingSeeds(cfg.StartingSeeds),
		player.WithAgent(agent.NewTrainingAgent(result.Table, cfg.Temperature, cfg.Seed)),
		player.WithMetrics(metrics.NewCollector()),
	)
	result.Episodes = controller.Run(episodes)
	log.Info().Msgf("completed training, %d boards valued", result.Table.Len())

	if cfg.EvalGames > 0 {
		result.Games, result.Wins = evaluate(result.Table, cfg)
		log.Info().Msgf("trained agent won %d of %d games against the random baseline", result.Wins, cfg.EvalGames)
	}

	if cfg.OutDir == "" {
		return result, nil
	}
	dir, err := writeRecords(cfg, result)
	if err != nil {
		return result, err
	}
	result.Dir = dir
	log.Info().Msgf("stored records in %s", dir)
	return result, nil
}

// evaluate plays the greedy agent against the random baseline, alternating who moves first.
func evaluate(table *searcher.ValueTable, cfg meta.Config) ([]metrics.GameRecord, int) {
	trained := agent.NewEvaluationAgent(table)
	baseline := agent.NewRandomAgent(cfg.Seed + 1)

	records := make([]metrics.GameRecord, 0, cfg.EvalGames)
	wins := 0
	for i := 0; i < cfg.EvalGames; i++ {
		record := metrics.GameRecord{ID: i + 1}
		var e engine.Engine
		trainedSeat := 1
		if i%2 == 0 {
			record.Agent1, record.Agent2 = trainedID, baselineID
			e = engine.LocalEngine(trained, baseline, cfg.StartingSeeds)
		} else {
			record.Agent1, record.Agent2 = baselineID, trainedID
			e = engine.LocalEngine(baseline, trained, cfg.StartingSeeds)
			trainedSeat = 2
		}

		winner, gameMetric := e.Run()
		record.GameMetric = gameMetric
		if winner == trainedSeat {
			wins++
		}
		records = append(records, record)
		log.Debug().Msgf("completed evaluation game %d of %d with winner: %d", i+1, cfg.EvalGames, winner)
	}
	return records, wins
}

func writeRecords(cfg meta.Config, result Result) (string, error) {
	writer, err := metrics.NewWriter(cfg.OutDir, Name, result.RunID)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	configs := []metrics.AgentConfig{
		{ID: trainedID, Kind: "greedy"},
		{ID: baselineID, Kind: "random", Seed: cfg.Seed + 1},
		{ID: trainingID, Kind: "training", Temperature: cfg.Temperature, Seed: cfg.Seed},
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}

	episodes := make([]metrics.EpisodeRecord, 0, len(result.Episodes))
	for _, episode := range result.Episodes {
		episodes = append(episodes, metrics.EpisodeRecord{RunID: result.RunID, EpisodeMetric: episode})
	}
	if err := writer.WriteEpisodeRecords(episodes); err != nil {
		return "", fmt.Errorf("failed to write episode records: %w", err)
	}
	if err := writer.WriteEpisodeParquet(episodes); err != nil {
		return "", fmt.Errorf("failed to write episode parquet: %w", err)
	}

	if err := writer.WriteGameRecords(result.Games); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	return writer.Dir(), nil
}
