// Package errors provides the structured error type shared by seqkit
// packages. Every error carries a machine-readable code so callers can
// tell construction mistakes apart from failures raised while a pipeline
// is being drained.
package errors
