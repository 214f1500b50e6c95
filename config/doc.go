// Package config loads tool configuration with Viper.
//
// Values are layered: registered defaults, then config.yml found in the
// standard locations (or given explicitly), then environment variables,
// which may come from a .env file loaded with godotenv.
//
// # Usage
//
//	var cfg Config
//	err := config.LoadConfig("seqbench", &cfg, config.WithEnvPrefix("SEQBENCH"))
package config
