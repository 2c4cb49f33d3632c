package experiments

import (
	"context"

	"hexrps/experiments/metrics"
	"hexrps/meta"
)

// RunThroughputExperiment measures search work per move at each depth, with
// and without memoisation. Both seats use the same config for the same
// playing strength and similar game length.
func RunThroughputExperiment(ctx context.Context, settings Settings) error {
	var configs []metrics.AgentConfig
	var matchUps [][2]metrics.AgentConfig
	for depth := 0; depth <= meta.DefaultDepth; depth++ {
		for _, memo := range []bool{true, false} {
			config := configFrom(len(configs)+1, settings.Base)
			config.Depth = depth
			config.Memo = memo
			configs = append(configs, config)
			matchUps = append(matchUps, [2]metrics.AgentConfig{config, config})
		}
	}
	return runExperiment(ctx, "throughput", settings, configs, matchUps)
}
