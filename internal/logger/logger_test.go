package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewModes(t *testing.T) {
	for _, mode := range []string{"dev", "prod", "PRODUCTION", ""} {
		l, err := New(mode, false)
		if err != nil {
			t.Fatalf("mode %q: %v", mode, err)
		}
		l.Debug("dropped")
		l.Sync()
	}
}

func TestDebugLevel(t *testing.T) {
	l, err := New("dev", true)
	if err != nil {
		t.Fatal(err)
	}
	if !l.SugaredLogger.Desugar().Core().Enabled(zap.DebugLevel) {
		t.Error("debug level should be enabled")
	}

	l, err = New("dev", false)
	if err != nil {
		t.Fatal(err)
	}
	if l.SugaredLogger.Desugar().Core().Enabled(zap.DebugLevel) {
		t.Error("debug level should be disabled")
	}
}

func TestWithFields(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := &Logger{SugaredLogger: zap.New(core).Sugar()}

	l.With("preset", "planck18").Info("survey done", "rows", 51)
	l.Warn("slow")

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["preset"] != "planck18" || fields["rows"] != int64(51) {
		t.Errorf("unexpected fields: %v", fields)
	}
	if entries[1].Level != zap.WarnLevel {
		t.Errorf("expected warn, got %v", entries[1].Level)
	}
}

func TestOrNop(t *testing.T) {
	OrNop(nil).Info("ignored")

	l := Nop()
	if OrNop(l) != l {
		t.Error("OrNop should return a non-nil logger unchanged")
	}
}
