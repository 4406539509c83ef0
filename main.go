package main

import (
	"flag"
	"fmt"
	"mancala/experiments"
	"mancala/game"
	"mancala/meta"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := meta.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		return
	}

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] <episodes>\n", os.Args[0])
		flag.PrintDefaults()
	}
	seeds := flag.Uint("seeds", uint(cfg.StartingSeeds), "Starting seeds per pit")
	flag.Float64Var(&cfg.LearningRate, "lr", cfg.LearningRate, "SARSA learning rate")
	flag.Float64Var(&cfg.DiscountFactor, "discount", cfg.DiscountFactor, "Discount on the look-ahead value")
	flag.Float64Var(&cfg.Temperature, "temperature", cfg.Temperature, "Sampling temperature during training, 0 plays greedily")
	flag.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed for exploration and the baseline agent")
	flag.IntVar(&cfg.EvalGames, "eval", cfg.EvalGames, "Games against a random baseline after training")
	flag.StringVar(&cfg.OutDir, "out", cfg.OutDir, "Directory for experiment records, empty to skip")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level")
	dump := flag.Bool("dump", false, "Print every learned value after training")
	flag.Parse()

	episodes, err := meta.ParseEpisodes(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v, no training performed\n", err)
		flag.Usage()
		return
	}
	if *seeds == 0 || *seeds > game.MaxStartingSeeds {
		fmt.Fprintf(os.Stderr, "starting seeds must be between 1 and %d, got %d\n", game.MaxStartingSeeds, *seeds)
		return
	}
	cfg.StartingSeeds = uint8(*seeds)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v, no training performed\n", err)
		return
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		return
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	log.Info().Msg("hello, mancala!")
	result, err := experiments.RunTrainingExperiment(cfg, episodes)
	if err != nil {
		log.Error().Err(err).Msg("failed to store experiment records")
	}

	if *dump {
		fmt.Printf("Value function: %v\n", result.Table.Values())
	}
}
