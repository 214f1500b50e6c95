package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func jsonLogger(level string) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	cfg := &Config{Level: level, Format: FormatJSON, Output: "stdout"}
	return NewWithWriter(cfg, "test", &buf), &buf
}

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	line := strings.TrimSpace(buf.String())
	if line == "" {
		t.Fatal("expected a log line, got nothing")
	}
	var out map[string]any
	if err := json.Unmarshal([]byte(line), &out); err != nil {
		t.Fatalf("invalid JSON log line %q: %v", line, err)
	}
	return out
}

func TestNewDefault(t *testing.T) {
	l := NewDefault("seqbench")
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
	if l.Name() != "seqbench" {
		t.Errorf("expected name 'seqbench', got %q", l.Name())
	}
}

func TestNewInvalidLevel(t *testing.T) {
	l, buf := jsonLogger("invalid-level")
	l.Debug("hidden")
	l.Info("shown")
	if strings.Contains(buf.String(), "hidden") {
		t.Error("invalid level should fall back to info")
	}
	if !strings.Contains(buf.String(), "shown") {
		t.Error("expected info message to be written")
	}
}

func TestNewFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")

	l := NewFromEnv("env-tool")
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
	if l.GetLogger().GetLevel().String() != "debug" {
		t.Errorf("expected debug level, got %s", l.GetLogger().GetLevel())
	}
}

func TestLevelFiltering(t *testing.T) {
	l, buf := jsonLogger("warn")
	l.Info("quiet")
	l.Warn("loud")
	out := decodeLine(t, buf)
	if out["message"] != "loud" {
		t.Errorf("expected only the warning, got %v", out)
	}
	if out["level"] != "warn" {
		t.Errorf("expected level warn, got %v", out["level"])
	}
}

func TestWithComponent(t *testing.T) {
	l, buf := jsonLogger("info")
	cl := l.WithComponent("bench")
	if cl.Name() != "test" {
		t.Errorf("name should be preserved, got %q", cl.Name())
	}
	cl.Info("hello")
	out := decodeLine(t, buf)
	if out[FieldComponent] != "bench" {
		t.Errorf("expected component field, got %v", out)
	}
}

func TestWithContext(t *testing.T) {
	tests := []struct {
		name  string
		ctx   context.Context
		runID any
	}{
		{"with run id", ContextWithRunID(context.Background(), "run-1"), "run-1"},
		{"without run id", context.Background(), nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l, buf := jsonLogger("info")
			l.WithContext(tc.ctx).Info("msg")
			out := decodeLine(t, buf)
			if out[FieldRunID] != tc.runID {
				t.Errorf("run_id = %v, want %v", out[FieldRunID], tc.runID)
			}
		})
	}
}

func TestRunIDFromContext(t *testing.T) {
	if _, ok := RunIDFromContext(context.Background()); ok {
		t.Error("expected no run id on empty context")
	}
	id, ok := RunIDFromContext(ContextWithRunID(context.Background(), "abc"))
	if !ok || id != "abc" {
		t.Errorf("got (%q, %v), want (abc, true)", id, ok)
	}
}

func TestWithFields(t *testing.T) {
	l, buf := jsonLogger("info")
	l.WithFields(map[string]any{"key": "value"}).Info("msg", Fields("extra", 3))
	out := decodeLine(t, buf)
	if out["key"] != "value" {
		t.Errorf("expected key=value, got %v", out)
	}
	if out["extra"] != float64(3) {
		t.Errorf("expected extra=3, got %v", out["extra"])
	}
}

func TestWithError(t *testing.T) {
	l, buf := jsonLogger("info")
	l.WithError(errors.New("boom")).Error("failed")
	out := decodeLine(t, buf)
	if out["error"] != "boom" {
		t.Errorf("expected error field, got %v", out)
	}
}

func TestNop(t *testing.T) {
	l := Nop()
	l.Info("nothing")
	l.WithComponent("x").Error("still nothing")
}

func TestInit(t *testing.T) {
	Init(Config{Level: "info", Format: FormatJSON, Output: "stdout"})
	if GetGlobalLogger() == nil {
		t.Fatal("expected global logger to be set after Init")
	}
}

func TestInitWithConsoleFormat(t *testing.T) {
	Init(Config{Level: "debug", Format: FormatConsole, Output: "stdout", NoColor: true})
	if GetGlobalLogger() == nil {
		t.Fatal("expected global logger to be set after Init")
	}
}

func TestGetGlobalLoggerDefault(t *testing.T) {
	globalLogger = nil
	if GetGlobalLogger() == nil {
		t.Fatal("expected default global logger to be created")
	}
}

func TestSetGlobalLogger(t *testing.T) {
	l := NewDefault("custom")
	SetGlobalLogger(l)
	if GetGlobalLogger() != l {
		t.Error("expected SetGlobalLogger to set the global logger")
	}
}

func TestPackageLevelFunctions(t *testing.T) {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	l, buf := jsonLogger("debug")
	SetGlobalLogger(l)
	defer SetGlobalLogger(nil)

	Debug("d")
	Info("i")
	Warn("w")
	Error("e")
	WithComponent("cli").Info("c")
	WithContext(ContextWithRunID(context.Background(), "r")).Info("r")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 6 {
		t.Errorf("expected 6 log lines, got %d", len(lines))
	}
}

func TestConsoleLoggerFormat(t *testing.T) {
	var buf bytes.Buffer
	cfg := &Config{Level: "info", Format: FormatConsole, NoColor: true}
	l := NewWithWriter(cfg, "seqbench", &buf)
	l.Info("hello", Fields("elements", 10))

	got := buf.String()
	for _, want := range []string{"[seqbench]", "[INF]", "hello", "elements:"} {
		if !strings.Contains(got, want) {
			t.Errorf("console output %q missing %q", got, want)
		}
	}
}

func TestConfigApplyDefaults(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()
	if cfg.Level != "info" {
		t.Errorf("expected level info, got %q", cfg.Level)
	}
	if cfg.Format != FormatConsole {
		t.Errorf("expected format console, got %q", cfg.Format)
	}
	if cfg.Output != "stderr" {
		t.Errorf("expected output stderr, got %q", cfg.Output)
	}
	if !cfg.Timestamp {
		t.Error("expected timestamp enabled")
	}

	custom := Config{Level: "debug", Format: FormatJSON, Output: "stdout"}
	custom.ApplyDefaults()
	if custom.Level != "debug" || custom.Format != FormatJSON || custom.Output != "stdout" {
		t.Errorf("explicit values should be kept, got %+v", custom)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{Level: "info", Format: FormatJSON, Output: "stdout"}, false},
		{"pretty", Config{Level: "debug", Format: FormatPretty, Output: "stderr"}, false},
		{"bad level", Config{Level: "verbose", Format: FormatJSON, Output: "stdout"}, true},
		{"bad format", Config{Level: "info", Format: "xml", Output: "stdout"}, true},
		{"bad output", Config{Level: "info", Format: FormatJSON, Output: "file"}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestRegisterAndGet(t *testing.T) {
	l := NewDefault("custom-component")
	Register("my-component", l)
	if Get("my-component") != l {
		t.Error("expected Get to return the registered logger")
	}
}

func TestGetUnregistered(t *testing.T) {
	if Get("unregistered-component") == nil {
		t.Fatal("expected non-nil logger for unregistered component")
	}
}

func TestRegisterDefaults(t *testing.T) {
	Init(Config{Level: "info", Format: FormatJSON, Output: "stdout"})
	RegisterDefaults("bench", "cli")
	for _, name := range []string{"bench", "cli"} {
		if Get(name) == nil {
			t.Errorf("expected non-nil logger for %q", name)
		}
	}
}

func TestFields(t *testing.T) {
	tests := []struct {
		name string
		kvs  []any
		want map[string]any
	}{
		{"empty", nil, map[string]any{}},
		{"pairs", []any{"a", 1, "b", "two"}, map[string]any{"a": 1, "b": "two"}},
		{"odd count drops tail", []any{"a", 1, "b"}, map[string]any{"a": 1}},
		{"non-string key skipped", []any{42, "x", "k", "v"}, map[string]any{"k": "v"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Fields(tc.kvs...)
			if len(got) != len(tc.want) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
			for k, v := range tc.want {
				if got[k] != v {
					t.Errorf("key %q: got %v, want %v", k, got[k], v)
				}
			}
		})
	}
}

func TestErrorFields(t *testing.T) {
	f := ErrorFields("sort", errors.New("bad"))
	if f[FieldOperation] != "sort" || f[FieldError] != "bad" {
		t.Errorf("unexpected fields %v", f)
	}
}

func TestDurationFields(t *testing.T) {
	f := DurationFields("sort", 1500*time.Microsecond)
	if f[FieldDuration] != 1.5 {
		t.Errorf("expected 1.5ms, got %v", f[FieldDuration])
	}
}

func TestRunFields(t *testing.T) {
	f := RunFields(2, 5000, 3*time.Millisecond)
	if f[FieldRun] != 2 || f[FieldElements] != 5000 || f[FieldDuration] != 3.0 {
		t.Errorf("unexpected fields %v", f)
	}
}

func TestLevelPrefix(t *testing.T) {
	tests := []struct {
		level, name string
		noColor     bool
		want        string
	}{
		{"info", "default", true, "[INF]"},
		{"warn", "bench", true, "[bench][WRN]"},
		{"error", "", false, "\033[31m[ERR]" + colorReset},
		{"custom", "cli", true, "[cli][CUSTOM]"},
	}
	for _, tc := range tests {
		t.Run(tc.level+"/"+tc.name, func(t *testing.T) {
			if got := levelPrefix(tc.level, tc.name, tc.noColor); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestConsoleOutputCarriesName(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&Config{Level: "info", Format: FormatConsole, NoColor: true}, "bench", &buf)
	l.Info("scenario done", Fields(FieldScenario, "quicksort"))
	out := buf.String()
	if !strings.Contains(out, "[bench][INF]") || !strings.Contains(out, "scenario:quicksort") {
		t.Errorf("unexpected console line %q", out)
	}
}
