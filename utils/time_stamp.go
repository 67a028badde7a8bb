package utils

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"sync"
	"time"
)

// SessionName returns a unique run directory name:
//
//	<prefix>_YYYYMMDD_HHMMSS
func SessionName(prefix string) string {
	return fmt.Sprintf("%s_%s", prefix, time.Now().Format("20060102_150405"))
}

// Stopwatch accumulates named stage durations across the batch so a
// run leaves a timings.json next to its samples. Stage names carry the
// angle (e.g. "solver_angle_90") so per-configuration cost stays visible.
type Stopwatch struct {
	mu      sync.Mutex
	started time.Time
	stages  map[string]float64 // seconds
}

func NewStopwatch() *Stopwatch {
	return &Stopwatch{
		started: time.Now(),
		stages:  make(map[string]float64),
	}
}

// Time runs fn and records its wall-clock duration under name.
func (s *Stopwatch) Time(name string, fn func() error) error {
	t0 := time.Now()
	err := fn()
	s.Record(name, time.Since(t0))
	return err
}

// Record stores a duration measured elsewhere.
func (s *Stopwatch) Record(name string, d time.Duration) {
	s.mu.Lock()
	s.stages[name] = d.Seconds()
	s.mu.Unlock()
}

// Stage returns a recorded duration in seconds (0 if absent).
func (s *Stopwatch) Stage(name string) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stages[name]
}

// WriteJSON finalises the total duration and writes all stages as a
// flat JSON object, sorted keys, indented for hand inspection.
func (s *Stopwatch) WriteJSON(path string) error {
	s.mu.Lock()
	s.stages["total_duration"] = time.Since(s.started).Seconds()
	out := make(map[string]float64, len(s.stages))
	for k, v := range s.stages {
		out[k] = v
	}
	s.mu.Unlock()

	data, err := json.MarshalIndent(out, "", "    ")
	if err != nil {
		return fmt.Errorf("marshal timings: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write timings: %w", err)
	}
	return nil
}

// StageNames returns the recorded stage names, sorted, for log summaries.
func (s *Stopwatch) StageNames() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, 0, len(s.stages))
	for k := range s.stages {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
