package bench

import (
	"fmt"
	"maps"
	"slices"

	"github.com/kbukum/seqkit/errors"
)

// Registered scenario names.
const (
	ScenarioQuicksort     = "quicksort"
	ScenarioQuicksortDups = "quicksort-dups"
)

// dupsScale squeezes values into a small range so most elements collide.
const dupsScale = 16

var scenarios = map[string]func(Config) ScenarioConfig{
	ScenarioQuicksort: func(c Config) ScenarioConfig {
		return c.ScenarioConfig(ScenarioQuicksort)
	},
	ScenarioQuicksortDups: func(c Config) ScenarioConfig {
		sc := c.ScenarioConfig(ScenarioQuicksortDups)
		sc.Scale = dupsScale
		return sc
	},
}

// ScenarioNames lists the registered scenarios in sorted order.
func ScenarioNames() []string {
	return slices.Sorted(maps.Keys(scenarios))
}

// Entries builds a runner entry for every scenario named in cfg, in order.
func Entries(cfg Config) ([]Entry, error) {
	entries := make([]Entry, 0, len(cfg.Scenarios))
	for _, name := range cfg.Scenarios {
		build, ok := scenarios[name]
		if !ok {
			return nil, errors.InvalidInput("scenarios",
				fmt.Sprintf("unknown scenario %q (known: %v)", name, ScenarioNames()))
		}
		s, err := NewScenario(build(cfg))
		if err != nil {
			return nil, err
		}
		entries = append(entries, s.Entry())
	}
	return entries, nil
}
