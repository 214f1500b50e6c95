// Package logger provides structured logging for seqkit tools using zerolog.
//
// It supports JSON and console output, level configuration, component
// scoped loggers and a run identifier carried on the context.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "json"
//	  output: "stderr"
//
// # Usage
//
//	log := logger.Get("bench")
//	log.Info("run finished", logger.RunFields(3, 5000, elapsed))
package logger
