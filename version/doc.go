// Package version reports build information for seqkit binaries.
//
// Version, commit and build time are set at compile time via -ldflags:
//
//	go build -ldflags "-X github.com/kbukum/seqkit/version.Version=1.0.0" ./cmd/seqbench
//
// Anything left unset falls back to the VCS settings embedded by the toolchain.
package version
