package meta

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"hexrps/agent"
	"hexrps/experiments/metrics"
	"hexrps/game"
	"hexrps/searcher"

	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config holds one agent's tuning, read from YAML and the environment.
type Config struct {
	Depth         int          `yaml:"depth"`
	Targets       int          `yaml:"targets"`
	Threats       int          `yaml:"threats"`
	History       int          `yaml:"history"`
	Branching     int          `yaml:"branching"` // 0 keeps every candidate
	ThrowInterval int          `yaml:"throw_interval"`
	Swings        bool         `yaml:"swings"`
	Memo          bool         `yaml:"memo"`
	Seed          uint64       `yaml:"seed"` // 0 seeds from the clock
	BoardRadius   int          `yaml:"board_radius"`
	Weights       game.Weights `yaml:"weights"`
}

func Default() Config {
	return Config{
		Depth:       DefaultDepth,
		Targets:     DefaultTargets,
		Threats:     DefaultThreats,
		History:     DefaultHistory,
		Memo:        true,
		BoardRadius: BoardRadius,
		Weights:     game.DefaultWeights,
	}
}

// Load reads path over the defaults, then applies environment overrides.
// An empty path skips the file.
func Load(path string) (Config, error) {
	config := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
		if err := yaml.Unmarshal(data, &config); err != nil {
			return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	if err := config.applyEnv(); err != nil {
		return Config{}, err
	}
	return config, config.Validate()
}

func (c *Config) applyEnv() error {
	for key, field := range map[string]*int{
		"HEXRPS_DEPTH":   &c.Depth,
		"HEXRPS_TARGETS": &c.Targets,
		"HEXRPS_THREATS": &c.Threats,
	} {
		v, err := strconv.Atoi(envOrDefault(key, strconv.Itoa(*field)))
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidConfig, key, err)
		}
		*field = v
	}

	seed, err := strconv.ParseUint(envOrDefault("HEXRPS_SEED", strconv.FormatUint(c.Seed, 10)), 10, 64)
	if err != nil {
		return fmt.Errorf("%w: HEXRPS_SEED: %w", ErrInvalidConfig, err)
	}
	c.Seed = seed
	return nil
}

func (c Config) Validate() error {
	switch {
	case c.Depth < 0:
		return fmt.Errorf("%w: depth %d is negative", ErrInvalidConfig, c.Depth)
	case c.Targets < 0 || c.Threats < 0:
		return fmt.Errorf("%w: targets %d and threats %d must not be negative", ErrInvalidConfig, c.Targets, c.Threats)
	case c.History < 0 || c.Branching < 0 || c.ThrowInterval < 0:
		return fmt.Errorf("%w: history, branching and throw interval must not be negative", ErrInvalidConfig)
	case c.BoardRadius < 1:
		return fmt.Errorf("%w: board radius %d must be positive", ErrInvalidConfig, c.BoardRadius)
	case c.Targets+c.Threats == 0:
		return fmt.Errorf("%w: an agent must watch at least one enemy", ErrInvalidConfig)
	}
	return nil
}

func (c Config) Board() game.Board {
	return game.Board{Radius: c.BoardRadius}
}

// AgentOptions builds the options for an agent.Player reporting to collector.
func (c Config) AgentOptions(collector metrics.Collector) []agent.Option {
	lookaheadOptions := []searcher.Option{
		searcher.WithDepth(c.Depth),
		searcher.WithBranching(c.Branching),
		searcher.WithBoard(c.Board()),
		searcher.WithEvaluationFn(c.Weights.Score),
		searcher.WithMetrics(collector),
	}
	if c.Swings {
		lookaheadOptions = append(lookaheadOptions, searcher.WithSwings(game.NewStandardRules()))
	}
	if !c.Memo {
		lookaheadOptions = append(lookaheadOptions, searcher.WithoutMemo())
	}

	options := []agent.Option{
		agent.WithTargets(c.Targets),
		agent.WithThreats(c.Threats),
		agent.WithHistory(c.History),
		agent.WithThrowInterval(c.ThrowInterval),
		agent.WithLookahead(searcher.NewLookahead(lookaheadOptions...)),
		agent.WithMetrics(collector),
	}
	if c.Seed != 0 {
		options = append(options, agent.WithSeed(c.Seed))
	}
	return options
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
