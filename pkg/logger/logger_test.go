package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLogLevelGating(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.txt")
	if err := Initialize(LogLevelError, path); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	defer Close()

	LogCPU("should not appear: %d", 1)
	LogConsole("also should not appear")
	LogError("boom: %s", "failure")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	out := string(data)
	if strings.Contains(out, "should not appear") {
		t.Fatalf("log output contained a message below the configured level: %q", out)
	}
	if !strings.Contains(out, "boom: failure") {
		t.Fatalf("log output missing expected ERROR line: %q", out)
	}
}

func TestComponentDisableSuppressesMessages(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.txt")
	if err := Initialize(LogLevelTrace, path); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	defer Close()

	SetMapperLogging(false)
	LogMapper("bank copied")
	SetMapperLogging(true)
	LogMapper("bank copied again")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	out := string(data)
	if strings.Contains(out, "bank copied\n") {
		t.Fatalf("mapper log appeared while disabled: %q", out)
	}
	if !strings.Contains(out, "bank copied again") {
		t.Fatalf("mapper log missing after re-enabling: %q", out)
	}
}

func TestGetLogLevelFromString(t *testing.T) {
	cases := map[string]LogLevel{
		"off": LogLevelOff, "error": LogLevelError, "warn": LogLevelWarn,
		"info": LogLevelInfo, "debug": LogLevelDebug, "trace": LogLevelTrace,
		"garbage": LogLevelInfo,
	}
	for s, want := range cases {
		if got := GetLogLevelFromString(s); got != want {
			t.Errorf("GetLogLevelFromString(%q) = %v, want %v", s, got, want)
		}
	}
}
