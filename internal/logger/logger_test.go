package logger

import (
	"testing"

	"go.uber.org/zap"

	"github.com/aliskhannn/git-tutor/internal/config"
)

func TestNew_AppliesLevel(t *testing.T) {
	log, err := New(&config.Config{Env: "production", Log: config.Log{Level: "error"}})
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	if log.Core().Enabled(zap.WarnLevel) {
		t.Fatalf("warn must be disabled at error level")
	}
	if !log.Core().Enabled(zap.ErrorLevel) {
		t.Fatalf("error must be enabled")
	}
}

func TestNew_DevelopmentDefaultsToDebug(t *testing.T) {
	log, err := New(&config.Config{Env: "local"})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if !log.Core().Enabled(zap.DebugLevel) {
		t.Fatalf("development logger must enable debug")
	}
}

func TestNew_RejectsUnknownLevel(t *testing.T) {
	if _, err := New(&config.Config{Log: config.Log{Level: "loud"}}); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}
