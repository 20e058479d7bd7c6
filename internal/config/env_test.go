package config

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("METEOR_TEST_STR", "value")
	if got := GetEnv("METEOR_TEST_STR", "fallback"); got != "value" {
		t.Errorf("GetEnv = %q, want value", got)
	}
	if got := GetEnv("METEOR_TEST_UNSET", "fallback"); got != "fallback" {
		t.Errorf("GetEnv unset = %q, want fallback", got)
	}
}

func TestGetEnvInt64(t *testing.T) {
	t.Setenv("METEOR_TEST_INT", " 42 ")
	if got := GetEnvInt64("METEOR_TEST_INT", 1); got != 42 {
		t.Errorf("GetEnvInt64 = %d, want 42", got)
	}
	t.Setenv("METEOR_TEST_INT", "nope")
	if got := GetEnvInt64("METEOR_TEST_INT", 1); got != 1 {
		t.Errorf("GetEnvInt64 bad = %d, want fallback 1", got)
	}
}

func TestGetEnvBool(t *testing.T) {
	tests := []struct {
		value    string
		fallback bool
		want     bool
	}{
		{"off", true, false},
		{"TRUE", false, true},
		{"1", false, true},
		{"maybe", true, true},
		{"maybe", false, false},
	}
	for _, tt := range tests {
		t.Setenv("METEOR_TEST_BOOL", tt.value)
		if got := GetEnvBool("METEOR_TEST_BOOL", tt.fallback); got != tt.want {
			t.Errorf("GetEnvBool(%q, %v) = %v, want %v", tt.value, tt.fallback, got, tt.want)
		}
	}
}

func TestDataPath(t *testing.T) {
	t.Setenv("METEOR_DATA", "/tmp/x.json")
	if got := DataPath(); got != "/tmp/x.json" {
		t.Errorf("DataPath = %q", got)
	}
	t.Setenv("METEOR_DATA", "")
	if got := DataPath(); filepath.Base(got) != "data.json" && got != ".meteordodge.json" {
		t.Errorf("DataPath default = %q", got)
	}
}

func TestNewLoggerLevel(t *testing.T) {
	t.Setenv("METEOR_LOG_LEVEL", "warn")
	var buf bytes.Buffer
	logger := NewLogger(&buf, "test")
	logger.Info("hidden")
	logger.Warn("shown", "k", 1)
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info line leaked at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "test") {
		t.Errorf("warn line missing message or prefix: %q", out)
	}
}
