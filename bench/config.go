package bench

import (
	"math"
	"time"

	"github.com/kbukum/seqkit/validation"
)

// Config is the bench section of the seqbench configuration.
type Config struct {
	Count     int           `yaml:"count" mapstructure:"count" validate:"gte=0"`
	Scale     float64       `yaml:"scale" mapstructure:"scale" validate:"gt=0"`
	Seed      uint64        `yaml:"seed" mapstructure:"seed"`
	Duration  time.Duration `yaml:"duration" mapstructure:"duration" validate:"gte=0"`
	MaxRuns   int           `yaml:"max_runs" mapstructure:"max_runs" validate:"gte=0"`
	RunID     string        `yaml:"run_id" mapstructure:"run_id"`
	Scenarios []string      `yaml:"scenarios" mapstructure:"scenarios"`
}

// DefaultDuration is the per-entry time budget.
const DefaultDuration = time.Second

// ApplyDefaults fills unset values.
func (c *Config) ApplyDefaults() {
	if c.Count == 0 {
		c.Count = DefaultCount
	}
	if c.Scale == 0 {
		c.Scale = DefaultScale
	}
	if c.Duration == 0 {
		c.Duration = DefaultDuration
	}
	if len(c.Scenarios) == 0 {
		c.Scenarios = []string{ScenarioQuicksort}
	}
}

// Validate checks tag rules, the run ID format and that every scenario is
// registered.
func (c *Config) Validate() error {
	v := validation.New().Merge("", validation.Validate(c))
	v.OptionalUUID("run_id", c.RunID)
	v.Custom(!math.IsInf(c.Scale, 0) && !math.IsNaN(c.Scale), "scale", "must be finite")
	for _, name := range c.Scenarios {
		v.OneOf("scenarios", name, ScenarioNames())
	}
	return v.Validate()
}

// RunnerConfig derives the runner settings. A blank run ID maps to
// uuid.Nil; a malformed one is INVALID_INPUT.
func (c *Config) RunnerConfig() (RunnerConfig, error) {
	id, err := validation.ParseUUID("run_id", c.RunID)
	if err != nil {
		return RunnerConfig{}, err
	}
	return RunnerConfig{Duration: c.Duration, MaxRuns: c.MaxRuns, RunID: id}, nil
}

// ScenarioConfig derives the input description for the named scenario.
func (c *Config) ScenarioConfig(name string) ScenarioConfig {
	return ScenarioConfig{Name: name, Count: c.Count, Scale: c.Scale, Seed: c.Seed}
}
