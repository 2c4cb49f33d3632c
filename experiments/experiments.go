package experiments

import (
	"context"
	"fmt"
	"runtime"

	"hexrps/agent"
	"hexrps/engine"
	"hexrps/experiments/metrics"
	"hexrps/game"
	"hexrps/meta"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Settings are shared by every game of an experiment.
type Settings struct {
	Games       int // per matchup
	Parallelism int // concurrent games, 0 for one per CPU
	MaxTurns    int
	OutputDir   string
	Base        meta.Config // tuning not varied by the experiment
}

func DefaultSettings() Settings {
	return Settings{
		Games:     30,
		MaxTurns:  meta.MaxTurns,
		OutputDir: "results",
		Base:      meta.Default(),
	}
}

// RunDepthExperiment pits agents searching to different depths against the
// default depth.
func RunDepthExperiment(ctx context.Context, settings Settings) error {
	baseline := configFrom(0, settings.Base)
	var variants []metrics.AgentConfig
	for depth := 0; depth <= meta.DefaultDepth+1; depth++ {
		variant := configFrom(depth+1, settings.Base)
		variant.Depth = depth
		variants = append(variants, variant)
	}
	return runExperiment(ctx, "depth", settings, append(variants, baseline), against(baseline, variants))
}

// RunTargetsExperiment pits agents watching different numbers of prey
// against the default.
func RunTargetsExperiment(ctx context.Context, settings Settings) error {
	baseline := configFrom(0, settings.Base)
	var variants []metrics.AgentConfig
	for targets := 1; targets <= meta.DefaultTargets+2; targets++ {
		variant := configFrom(targets, settings.Base)
		variant.Targets = targets
		variants = append(variants, variant)
	}
	return runExperiment(ctx, "targets", settings, append(variants, baseline), against(baseline, variants))
}

func configFrom(id int, c meta.Config) metrics.AgentConfig {
	return metrics.AgentConfig{
		ID:        id,
		Depth:     c.Depth,
		Targets:   c.Targets,
		Threats:   c.Threats,
		Branching: c.Branching,
		Swings:    c.Swings,
		Memo:      c.Memo,
	}
}

// against pairs baseline with every variant.
func against(baseline metrics.AgentConfig, variants []metrics.AgentConfig) [][2]metrics.AgentConfig {
	matchUps := make([][2]metrics.AgentConfig, 0, len(variants))
	for _, variant := range variants {
		matchUps = append(matchUps, [2]metrics.AgentConfig{baseline, variant})
	}
	return matchUps
}

type match struct {
	id     int
	upper  metrics.AgentConfig
	lower  metrics.AgentConfig
	record metrics.GameRecord
	moves  []metrics.MoveMetric
}

// runExperiment plays settings.Games games per matchup, alternating sides,
// and writes the records under settings.OutputDir/name.
func runExperiment(ctx context.Context, name string, settings Settings, configs []metrics.AgentConfig, matchUps [][2]metrics.AgentConfig) error {
	var matches []*match
	for _, matchUp := range matchUps {
		for i := 0; i < settings.Games; i++ {
			g := &match{id: len(matches) + 1, upper: matchUp[0], lower: matchUp[1]}
			if i%2 == 1 {
				g.upper, g.lower = matchUp[1], matchUp[0]
			}
			matches = append(matches, g)
		}
	}

	log.Info().Msgf("starting %s experiment with %d games...", name, len(matches))

	limit := settings.Parallelism
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(limit)
	for _, g := range matches {
		g := g
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := playGame(g, settings); err != nil {
				return fmt.Errorf("game %d: %w", g.id, err)
			}
			log.Info().Msgf("completed game %d of %d between agent%d and agent%d, winner: agent%d",
				g.id, len(matches), g.upper.ID, g.lower.ID, g.record.WinnerID())
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return fmt.Errorf("%s experiment: %w", name, err)
	}

	log.Info().Msgf("completed %s experiment", name)
	return store(name, settings.OutputDir, configs, matches)
}

func playGame(g *match, settings Settings) error {
	upper := newPlayer(game.Upper, g.upper, settings.Base, g.id)
	lower := newPlayer(game.Lower, g.lower, settings.Base, g.id)
	e := engine.LocalEngine(upper, lower,
		engine.WithBoard(settings.Base.Board()),
		engine.WithMaxTurns(settings.MaxTurns))

	_, gameMetric, moveMetrics, err := e.Run()
	if err != nil {
		return err
	}
	g.record = metrics.GameRecord{ID: g.id, Agent1: g.upper.ID, Agent2: g.lower.ID, GameMetric: gameMetric}
	g.moves = moveMetrics
	return nil
}

func newPlayer(side game.Side, config metrics.AgentConfig, base meta.Config, gameID int) *agent.Player {
	c := base
	c.Depth = config.Depth
	c.Targets = config.Targets
	c.Threats = config.Threats
	c.Branching = config.Branching
	c.Swings = config.Swings
	c.Memo = config.Memo
	if base.Seed != 0 {
		// Reproducible, but distinct per game and side.
		c.Seed = base.Seed + uint64(2*gameID+int(side))
	}
	return agent.NewPlayer(side, meta.ThrowsPerKind, c.AgentOptions(metrics.NewCollector())...)
}

func store(name, root string, configs []metrics.AgentConfig, matches []*match) error {
	gameRecords := make([]metrics.GameRecord, 0, len(matches))
	moveRecords := []metrics.MoveRecord{}
	for _, g := range matches {
		gameRecords = append(gameRecords, g.record)
		for _, mm := range g.moves {
			moveRecords = append(moveRecords, metrics.MoveRecord{Game: g.id, MoveMetric: mm})
		}
	}

	writer, err := metrics.NewWriter(root, name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored move records in %s", writer.Dir())
	return nil
}
