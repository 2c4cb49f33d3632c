package main

import (
	"context"
	"flag"
	"os"
	"os/signal"

	"hexrps/agent"
	"hexrps/engine"
	"hexrps/experiments"
	"hexrps/experiments/metrics"
	"hexrps/game"
	"hexrps/logger"
	"hexrps/meta"

	"github.com/rs/zerolog/log"
)

func main() {
	experiment := flag.String("experiment", "play", "One of play, depth, targets or throughput")
	configPath := flag.String("config", "", "YAML agent config; defaults apply when empty")
	games := flag.Int("games", 30, "Games per matchup")
	parallelism := flag.Int("parallelism", 0, "Concurrent games, 0 for one per CPU")
	maxTurns := flag.Int("max-turns", meta.MaxTurns, "Turns before a game is drawn")
	out := flag.String("out", "results", "Directory for experiment records")
	seed := flag.Uint64("seed", 0, "Random seed, 0 for the clock")
	level := flag.String("log-level", "info", "Log level")
	flag.Parse()

	logger.Init(*level)

	config, err := meta.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("loading config")
	}
	if *seed != 0 {
		config.Seed = *seed
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	settings := experiments.Settings{
		Games:       *games,
		Parallelism: *parallelism,
		MaxTurns:    *maxTurns,
		OutputDir:   *out,
		Base:        config,
	}
	switch *experiment {
	case "play":
		err = play(config, *maxTurns)
	case "depth":
		err = experiments.RunDepthExperiment(ctx, settings)
	case "targets":
		err = experiments.RunTargetsExperiment(ctx, settings)
	case "throughput":
		err = experiments.RunThroughputExperiment(ctx, settings)
	default:
		log.Fatal().Msgf("unknown experiment %q", *experiment)
	}
	if err != nil {
		log.Fatal().Err(err).Msgf("%s failed", *experiment)
	}
}

// play runs one self-play game with config on both sides.
func play(config meta.Config, maxTurns int) error {
	upperConfig, lowerConfig := config, config
	if config.Seed != 0 {
		lowerConfig.Seed = config.Seed + 1
	}
	upper := agent.NewPlayer(game.Upper, meta.ThrowsPerKind, upperConfig.AgentOptions(metrics.NewCollector())...)
	lower := agent.NewPlayer(game.Lower, meta.ThrowsPerKind, lowerConfig.AgentOptions(metrics.NewCollector())...)
	e := engine.LocalEngine(upper, lower, engine.WithBoard(config.Board()), engine.WithMaxTurns(maxTurns))

	winner, gameMetric, _, err := e.Run()
	if err != nil {
		return err
	}
	log.Info().
		Int("winner", winner).
		Int("turns", gameMetric.Turns).
		Interface("upper", upper.Stats()).
		Interface("lower", lower.Stats()).
		Dur("duration", gameMetric.Duration).
		Msg("self-play finished")
	return nil
}
