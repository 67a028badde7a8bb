package utils

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestStopwatchRecordsStages(t *testing.T) {
	sw := NewStopwatch()
	sw.Record("stage_a", 1500*time.Millisecond)

	err := sw.Time("stage_b", func() error { return nil })
	if err != nil {
		t.Fatalf("Time: %v", err)
	}

	if got := sw.Stage("stage_a"); got != 1.5 {
		t.Errorf("stage_a = %g s, want 1.5", got)
	}
	if sw.Stage("stage_b") < 0 {
		t.Errorf("stage_b negative")
	}
}

func TestStopwatchTimePropagatesError(t *testing.T) {
	sw := NewStopwatch()
	sentinel := errors.New("boom")
	if err := sw.Time("failing", func() error { return sentinel }); !errors.Is(err, sentinel) {
		t.Errorf("Time err = %v, want sentinel", err)
	}
	// duration is still recorded for the failed stage
	names := sw.StageNames()
	if len(names) != 1 || names[0] != "failing" {
		t.Errorf("stages = %v", names)
	}
}

func TestStopwatchWriteJSON(t *testing.T) {
	sw := NewStopwatch()
	sw.Record("solver_angle_90", 2*time.Second)

	path := filepath.Join(t.TempDir(), "timings.json")
	if err := sw.WriteJSON(path); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	var got map[string]float64
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got["solver_angle_90"] != 2 {
		t.Errorf("solver_angle_90 = %g, want 2", got["solver_angle_90"])
	}
	if _, ok := got["total_duration"]; !ok {
		t.Error("total_duration missing")
	}
}
