package cli

import (
	"github.com/kbukum/seqkit/bench"
	"github.com/kbukum/seqkit/config"
	"github.com/kbukum/seqkit/errors"
	"github.com/kbukum/seqkit/observability"
	"github.com/kbukum/seqkit/validation"
)

const (
	appName   = "seqbench"
	envPrefix = "SEQBENCH"
)

// Config is the full seqbench configuration.
type Config struct {
	config.BaseConfig `yaml:",inline" mapstructure:",squash"`
	Bench             bench.Config         `yaml:"bench" mapstructure:"bench"`
	Observability     observability.Config `yaml:"observability" mapstructure:"observability"`
}

// ApplyDefaults fills unset values in every section.
func (c *Config) ApplyDefaults() {
	if c.Name == "" {
		c.Name = appName
	}
	c.BaseConfig.ApplyDefaults()
	c.Bench.ApplyDefaults()
	c.Observability.ApplyDefaults()
}

// Validate checks every section.
func (c *Config) Validate() error {
	if err := c.BaseConfig.Validate(); err != nil {
		return errors.InvalidConfig("base", err.Error()).WithCause(err)
	}
	if err := c.Bench.Validate(); err != nil {
		return err
	}
	return validation.Validate(&c.Observability)
}

// loadConfig reads config.yml, .env and SEQBENCH_* variables. An explicit
// path must exist.
func loadConfig(path string) (*Config, error) {
	opts := []config.LoaderOption{config.WithEnvPrefix(envPrefix)}
	if path != "" {
		opts = append(opts, config.WithConfigFile(path))
	}
	var cfg Config
	if err := config.LoadConfig(appName, &cfg, opts...); err != nil {
		return nil, err
	}
	return &cfg, nil
}
