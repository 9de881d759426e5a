package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNew_Levels(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		logger, err := New(level)
		if err != nil {
			t.Fatalf("New(%q) returned error: %v", level, err)
		}
		lvl, _ := zapcore.ParseLevel(level)
		if !logger.Core().Enabled(lvl) {
			t.Errorf("New(%q) does not enable its own level", level)
		}
		if lvl > zapcore.DebugLevel && logger.Core().Enabled(lvl-1) {
			t.Errorf("New(%q) enables a lower level", level)
		}
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	if _, err := New("chatty"); err == nil {
		t.Fatal("expected error for invalid level")
	}
}
