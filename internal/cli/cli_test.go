package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/kbukum/seqkit/bench"
	"github.com/kbukum/seqkit/errors"
)

const testConfig = `
name: seqbench
environment: ci
logging:
  level: error
  format: json
bench:
  count: 50
  seed: 11
`

func writeConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(testConfig), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := Root()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRunText(t *testing.T) {
	out, err := execute(t, "run", "--config", writeConfig(t), "--max-runs", "2", "--duration", "1h")
	if err != nil {
		t.Fatalf("run failed: %v\n%s", err, out)
	}
	for _, want := range []string{"quicksort:", "runs=2", "elements=50"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}

func TestRunJSON(t *testing.T) {
	id := uuid.NewString()
	out, err := execute(t, "run",
		"--config", writeConfig(t),
		"--count", "20",
		"--max-runs", "1",
		"--run-id", id,
		"-s", bench.ScenarioQuicksort,
		"-s", bench.ScenarioQuicksortDups,
		"-o", "json",
	)
	if err != nil {
		t.Fatalf("run failed: %v\n%s", err, out)
	}

	var reports []reportJSON
	if err := json.Unmarshal([]byte(out), &reports); err != nil {
		t.Fatalf("invalid JSON output %q: %v", out, err)
	}
	if len(reports) != 2 {
		t.Fatalf("expected 2 reports, got %d", len(reports))
	}
	for i, want := range []string{bench.ScenarioQuicksort, bench.ScenarioQuicksortDups} {
		r := reports[i]
		if r.Name != want || r.ID != id || r.Runs != 1 || r.Elements != 20 || len(r.DurationsMs) != 1 {
			t.Errorf("unexpected report %+v", r)
		}
	}
}

func TestRunErrors(t *testing.T) {
	cfg := writeConfig(t)
	tests := []struct {
		name string
		args []string
		code errors.ErrorCode
	}{
		{"bad output", []string{"run", "--config", cfg, "-o", "xml"}, errors.ErrCodeInvalidInput},
		{"bad run id", []string{"run", "--config", cfg, "--run-id", "abc"}, errors.ErrCodeInvalidInput},
		{"unknown scenario", []string{"run", "--config", cfg, "-s", "bogosort"}, errors.ErrCodeInvalidInput},
		{"negative count", []string{"run", "--config", cfg, "--count", "-1"}, errors.ErrCodeInvalidInput},
		{"missing config", []string{"run", "--config", "/nonexistent/config.yml"}, errors.ErrCodeInvalidConfig},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := execute(t, tc.args...)
			if !errors.HasCode(err, tc.code) {
				t.Errorf("expected %s, got %v", tc.code, err)
			}
		})
	}
}

func TestList(t *testing.T) {
	out, err := execute(t, "list")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	got := strings.Fields(out)
	if strings.Join(got, ",") != strings.Join(bench.ScenarioNames(), ",") {
		t.Errorf("list printed %v, want %v", got, bench.ScenarioNames())
	}
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.HasPrefix(out, "seqbench ") {
		t.Errorf("unexpected version output %q", out)
	}

	out, err = execute(t, "version", "--json")
	if err != nil {
		t.Fatalf("version --json failed: %v", err)
	}
	var info map[string]any
	if err := json.Unmarshal([]byte(out), &info); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}
	if _, ok := info["version"]; !ok {
		t.Errorf("missing version key in %v", info)
	}
}

func TestApplyFlagsOnlyChanged(t *testing.T) {
	cmd := Run()
	if err := cmd.ParseFlags([]string{"--seed", "9", "--log-level", "debug"}); err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}

	cfg := &Config{}
	cfg.Bench.Count = 77
	var f runFlags
	f.seed = 9
	f.logLevel = "debug"
	applyFlags(cmd, &f, cfg)

	if cfg.Bench.Count != 77 {
		t.Errorf("unchanged flag overwrote count: %d", cfg.Bench.Count)
	}
	if cfg.Bench.Seed != 9 || cfg.Logging.Level != "debug" {
		t.Errorf("changed flags not applied: %+v", cfg)
	}
}

func TestConfigDefaultsAndValidate(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()
	if cfg.Name != appName {
		t.Errorf("name = %q, want %q", cfg.Name, appName)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}

	cfg.Environment = "staging"
	if err := cfg.Validate(); !errors.HasCode(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("expected INVALID_CONFIG for bad environment, got %v", err)
	}

	cfg.Environment = "ci"
	cfg.Observability.SampleRate = 2
	if err := cfg.Validate(); !errors.HasCode(err, errors.ErrCodeInvalidInput) {
		t.Errorf("expected INVALID_INPUT for sample rate, got %v", err)
	}
}

func TestRunExplicitZeroCount(t *testing.T) {
	out, err := execute(t, "run", "--config", writeConfig(t), "--count", "0", "--max-runs", "1")
	if err != nil {
		t.Fatalf("run failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "runs=1") || !strings.Contains(out, "elements=0") {
		t.Errorf("explicit --count 0 not honored: %q", out)
	}
}

func TestResolveConfigKeepsExplicitZeros(t *testing.T) {
	cmd := Run()
	args := []string{"--config", writeConfig(t), "--count", "0", "--duration", "0"}
	if err := cmd.ParseFlags(args); err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}
	f := runFlags{configFile: args[1]}
	cfg, err := resolveConfig(cmd, &f)
	if err != nil {
		t.Fatalf("resolveConfig failed: %v", err)
	}
	if cfg.Bench.Count != 0 || cfg.Bench.Duration != 0 {
		t.Errorf("explicit zeros replaced: count=%d duration=%v", cfg.Bench.Count, cfg.Bench.Duration)
	}
	if cfg.Bench.Scale != bench.DefaultScale || cfg.Bench.Seed != 11 {
		t.Errorf("defaults or file values lost: %+v", cfg.Bench)
	}
}

func TestResolveConfigDefaultsUnsetValues(t *testing.T) {
	cmd := Run()
	path := writeConfig(t)
	if err := cmd.ParseFlags([]string{"--config", path}); err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}
	cfg, err := resolveConfig(cmd, &runFlags{configFile: path})
	if err != nil {
		t.Fatalf("resolveConfig failed: %v", err)
	}
	if cfg.Bench.Count != 50 || cfg.Bench.Duration != bench.DefaultDuration {
		t.Errorf("count=%d duration=%v", cfg.Bench.Count, cfg.Bench.Duration)
	}
}
