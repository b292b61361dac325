package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func newBufferLogger(t *testing.T, level string) (*Logger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	cfg := &Config{Level: level, Format: "json", Writer: &buf}
	return New(cfg, "test-svc"), &buf
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]interface{}
		if err := json.Unmarshal([]byte(line), &m); err != nil {
			t.Fatalf("invalid json line %q: %v", line, err)
		}
		out = append(out, m)
	}
	return out
}

func TestNewDefault(t *testing.T) {
	l := NewDefault("test-svc")
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
	if l.Service() != "test-svc" {
		t.Errorf("expected service 'test-svc', got %q", l.Service())
	}
}

func TestNewInvalidLevel(t *testing.T) {
	l, buf := newBufferLogger(t, "invalid-level")
	l.Debug("hidden")
	l.Info("shown")
	lines := decodeLines(t, buf)
	if len(lines) != 1 {
		t.Fatalf("expected invalid level to fall back to info, got %d lines", len(lines))
	}
}

func TestNewFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")

	l := NewFromEnv("env-svc")
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
}

func TestJSONOutputFields(t *testing.T) {
	l, buf := newBufferLogger(t, "debug")
	l.WithComponent("global").Info("installed", Fields(FieldGlobal, "settings", FieldType, "Config"))

	lines := decodeLines(t, buf)
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	got := lines[0]
	if got[FieldComponent] != "global" {
		t.Errorf("expected component=global, got %v", got[FieldComponent])
	}
	if got[FieldGlobal] != "settings" {
		t.Errorf("expected global=settings, got %v", got[FieldGlobal])
	}
	if got["service"] != "test-svc" {
		t.Errorf("expected service=test-svc, got %v", got["service"])
	}
	if got["message"] != "installed" {
		t.Errorf("expected message 'installed', got %v", got["message"])
	}
}

func TestLevelFiltering(t *testing.T) {
	l, buf := newBufferLogger(t, "warn")
	l.Debug("d")
	l.Info("i")
	l.Warn("w")
	l.Error("e")

	lines := decodeLines(t, buf)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines at warn level, got %d", len(lines))
	}
	if lines[0]["level"] != "warn" || lines[1]["level"] != "error" {
		t.Errorf("unexpected levels: %v, %v", lines[0]["level"], lines[1]["level"])
	}
}

func TestWithFieldsAndError(t *testing.T) {
	l, buf := newBufferLogger(t, "info")
	l.WithFields(map[string]interface{}{"key": "value"}).WithError(errors.New("boom")).Info("msg")

	got := decodeLines(t, buf)[0]
	if got["key"] != "value" {
		t.Errorf("expected key=value, got %v", got["key"])
	}
	if got[FieldError] != "boom" {
		t.Errorf("expected error=boom, got %v", got[FieldError])
	}
}

func TestInitSetsGlobalLogger(t *testing.T) {
	prev := GetGlobalLogger()
	t.Cleanup(func() { SetGlobalLogger(prev) })

	var buf bytes.Buffer
	Init(&Config{Level: "info", Format: "json", ServiceName: "init-test", Writer: &buf})
	if GetGlobalLogger().Service() != "init-test" {
		t.Errorf("expected global service 'init-test', got %q", GetGlobalLogger().Service())
	}

	Info("hello")
	Debug("not shown")
	if lines := decodeLines(t, &buf); len(lines) != 1 {
		t.Errorf("expected 1 line from package-level functions, got %d", len(lines))
	}
}

func TestGetGlobalLoggerDefault(t *testing.T) {
	prev := GetGlobalLogger()
	t.Cleanup(func() { SetGlobalLogger(prev) })

	globalLogger.Store(nil)
	if GetGlobalLogger() == nil {
		t.Fatal("expected default global logger to be created")
	}
}

func TestRegistryGet(t *testing.T) {
	l, _ := newBufferLogger(t, "info")
	Register("custom", l)
	t.Cleanup(func() { Unregister("custom") })

	if Get("custom") != l {
		t.Error("expected registered logger to be returned")
	}
	if Get("unregistered") == nil {
		t.Error("expected fallback logger for unregistered name")
	}
}

func TestConfigApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.Level != "info" {
		t.Errorf("expected level 'info', got %q", cfg.Level)
	}
	if cfg.Format != "console" {
		t.Errorf("expected format 'console', got %q", cfg.Format)
	}
	if cfg.Output != "stdout" {
		t.Errorf("expected output 'stdout', got %q", cfg.Output)
	}
	if !cfg.Timestamp {
		t.Error("expected Timestamp to be true")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{Level: "info", Format: "json"}, false},
		{"valid console", Config{Level: "debug", Format: "console"}, false},
		{"invalid level", Config{Level: "bad", Format: "json"}, true},
		{"invalid format", Config{Level: "info", Format: "xml"}, true},
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

func TestConsoleLoggerNoColor(t *testing.T) {
	var buf bytes.Buffer
	l := New(&Config{Level: "info", Format: "console", NoColor: true, Writer: &buf}, "svc-name")
	l.Warn("careful")

	out := buf.String()
	if !strings.Contains(out, "[SVC][WRN]") {
		t.Errorf("expected service and level tags, got %q", out)
	}
	if strings.Contains(out, "\033[") {
		t.Errorf("expected no color codes, got %q", out)
	}
}

func TestFieldsHelpers(t *testing.T) {
	f := Fields("a", 1, "b", "two", 3, "ignored")
	if f["a"] != 1 || f["b"] != "two" {
		t.Errorf("unexpected fields %v", f)
	}
	if len(f) != 2 {
		t.Errorf("expected non-string keys to be skipped, got %v", f)
	}

	ef := ErrorFields("set", errors.New("x"))
	if ef[FieldOperation] != "set" || ef[FieldError] != "x" {
		t.Errorf("unexpected error fields %v", ef)
	}

	merged := MergeWithError(nil, errors.New("y"))
	if merged[FieldError] != "y" {
		t.Errorf("unexpected merged fields %v", merged)
	}
}
