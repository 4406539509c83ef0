// meta/meta.go
package meta

import (
	"errors"
	"fmt"
	"io/fs"
	"mancala/game"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// STARTING_SEEDS defines the seeds in every pit of a new board.
const STARTING_SEEDS = 4

// LEARNING_RATE defines the SARSA step size.
const LEARNING_RATE = 0.1

// DISCOUNT_FACTOR defines the weight on the look-ahead value.
const DISCOUNT_FACTOR = 0.1

// EVAL_GAMES defines how many games the trained agent plays against the random baseline.
const EVAL_GAMES = 0

const LOG_LEVEL = "info"

// Config holds every training setting except the episode count, which comes from the command line.
type Config struct {
	StartingSeeds  uint8
	LearningRate   float64
	DiscountFactor float64
	Temperature    float64 // Zero trains greedily
	Seed           uint64
	EvalGames      int
	OutDir         string // Experiment records are only written when set
	LogLevel       string
}

func Default() Config {
	return Config{
		StartingSeeds:  STARTING_SEEDS,
		LearningRate:   LEARNING_RATE,
		DiscountFactor: DISCOUNT_FACTOR,
		EvalGames:      EVAL_GAMES,
		LogLevel:       LOG_LEVEL,
	}
}

// Load reads the optional env files (".env" when none are given) into the
// environment, then applies MANCALA_* variables on top of the defaults.
// Variables already set in the environment win over the files.
func Load(files ...string) (Config, error) {
	err := godotenv.Load(files...)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load env file: %w", err)
	}
	return FromEnv(Default())
}

// FromEnv overrides cfg with any MANCALA_* environment variables.
func FromEnv(cfg Config) (Config, error) {
	if v, ok := os.LookupEnv("MANCALA_STARTING_SEEDS"); ok {
		seeds, err := strconv.ParseUint(v, 10, 8)
		if err != nil || seeds == 0 || seeds > game.MaxStartingSeeds {
			return Config{}, fmt.Errorf("invalid MANCALA_STARTING_SEEDS %q", v)
		}
		cfg.StartingSeeds = uint8(seeds)
	}
	if err := parseFloat("MANCALA_LEARNING_RATE", &cfg.LearningRate); err != nil {
		return Config{}, err
	}
	if err := parseFloat("MANCALA_DISCOUNT_FACTOR", &cfg.DiscountFactor); err != nil {
		return Config{}, err
	}
	if err := parseFloat("MANCALA_TEMPERATURE", &cfg.Temperature); err != nil {
		return Config{}, err
	}
	if v, ok := os.LookupEnv("MANCALA_SEED"); ok {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("invalid MANCALA_SEED %q: %w", v, err)
		}
		cfg.Seed = seed
	}
	if v, ok := os.LookupEnv("MANCALA_EVAL_GAMES"); ok {
		games, err := strconv.Atoi(v)
		if err != nil || games < 0 {
			return Config{}, fmt.Errorf("invalid MANCALA_EVAL_GAMES %q", v)
		}
		cfg.EvalGames = games
	}
	if v, ok := os.LookupEnv("MANCALA_OUT_DIR"); ok && v != "" {
		cfg.OutDir = v
	}
	if v, ok := os.LookupEnv("MANCALA_LOG_LEVEL"); ok && v != "" {
		cfg.LogLevel = v
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid environment: %w", err)
	}
	return cfg, nil
}

// Validate reports the first setting training cannot run with.
func (c Config) Validate() error {
	if c.StartingSeeds == 0 || c.StartingSeeds > game.MaxStartingSeeds {
		return fmt.Errorf("starting seeds must be between 1 and %d, got %d", game.MaxStartingSeeds, c.StartingSeeds)
	}
	if c.LearningRate <= 0 {
		return fmt.Errorf("learning rate must be positive, got %v", c.LearningRate)
	}
	if c.DiscountFactor < 0 {
		return fmt.Errorf("discount factor cannot be negative, got %v", c.DiscountFactor)
	}
	if c.Temperature < 0 {
		return fmt.Errorf("temperature cannot be negative, got %v", c.Temperature)
	}
	if c.EvalGames < 0 {
		return fmt.Errorf("eval games cannot be negative, got %d", c.EvalGames)
	}
	return nil
}

func parseFloat(key string, dst *float64) error {
	v, ok := os.LookupEnv(key)
	if !ok {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f < 0 {
		return fmt.Errorf("invalid %s %q", key, v)
	}
	*dst = f
	return nil
}

// ParseEpisodes validates the episode count given on the command line.
func ParseEpisodes(arg string) (int, error) {
	if arg == "" {
		return 0, errors.New("missing number of episodes")
	}
	episodes, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("number of episodes must be an integer, got %q", arg)
	}
	if episodes < 0 {
		return 0, fmt.Errorf("number of episodes cannot be negative, got %d", episodes)
	}
	return episodes, nil
}
