package anim

import (
	"errors"
	"math"
	"testing"
	"time"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func TestAtPhases(t *testing.T) {
	tm := DefaultTiming()
	ms := time.Millisecond

	tests := []struct {
		name     string
		elapsed  time.Duration
		phase    Phase
		progress float64
	}{
		{"start", 0, PhaseSlide, 0},
		{"mid slide", 75 * ms, PhaseSlide, 0.5},
		{"grow start", 150 * ms, PhaseGrow, 0},
		{"mid grow", 200 * ms, PhaseGrow, 0.5},
		{"shrink start", 250 * ms, PhaseShrink, 1},
		{"late shrink", 325 * ms, PhaseShrink, 0.25},
		{"exact end", 350 * ms, PhaseDone, 1},
		{"past end", time.Second, PhaseDone, 1},
		{"negative clamps to start", -5 * ms, PhaseSlide, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := tm.At(tt.elapsed)
			if f.Phase != tt.phase {
				t.Errorf("At(%v).Phase = %v, want %v", tt.elapsed, f.Phase, tt.phase)
			}
			if !near(f.Progress, tt.progress) {
				t.Errorf("At(%v).Progress = %v, want %v", tt.elapsed, f.Progress, tt.progress)
			}
		})
	}
}

func TestScale(t *testing.T) {
	tm := DefaultTiming()
	ms := time.Millisecond

	tests := []struct {
		elapsed time.Duration
		scale   float64
	}{
		{50 * ms, 1},     // slide: pulsing tiles are not scaled yet
		{150 * ms, 0.5},  // grow starts at min
		{200 * ms, 0.8},  // halfway from 0.5 to 1.1
		{250 * ms, 1.1},  // peak overshoot
		{300 * ms, 1.05}, // halfway back to 1
		{350 * ms, 1},    // done
	}

	for _, tt := range tests {
		got := tm.Scale(tm.At(tt.elapsed))
		if !near(got, tt.scale) {
			t.Errorf("Scale at %v = %v, want %v", tt.elapsed, got, tt.scale)
		}
	}
}

func TestOffset(t *testing.T) {
	tm := DefaultTiming()
	if got := tm.Offset(tm.At(30 * time.Millisecond)); !near(got, 0.2) {
		t.Errorf("Offset at 30ms = %v, want 0.2", got)
	}
	if got := tm.Offset(tm.At(200 * time.Millisecond)); got != 1 {
		t.Errorf("Offset after slide = %v, want 1", got)
	}
}

func TestZeroLengthPhasesAreSkipped(t *testing.T) {
	tm := Timing{Slide: 0, Grow: 0, Shrink: 40 * time.Millisecond, MinScale: 0.5, MaxScale: 1.2}

	if f := tm.At(0); f.Phase != PhaseShrink || !near(f.Progress, 1) {
		t.Errorf("At(0) = %+v, want shrink at 1", f)
	}

	instant := Timing{MinScale: 0.5, MaxScale: 1.2}
	if !instant.Done(0) {
		t.Error("zero-length animation should be done immediately")
	}
}

func TestTotalAndDone(t *testing.T) {
	tm := DefaultTiming()
	if tm.Total() != 350*time.Millisecond {
		t.Errorf("Total() = %v, want 350ms", tm.Total())
	}
	if tm.Done(349 * time.Millisecond) {
		t.Error("should not be done before total")
	}
	if !tm.Done(350 * time.Millisecond) {
		t.Error("should be done at total")
	}
}

func TestValidate(t *testing.T) {
	if err := DefaultTiming().Validate(); err != nil {
		t.Fatalf("default timing invalid: %v", err)
	}

	bad := []Timing{
		{Slide: -1, MinScale: 0.5, MaxScale: 1.1},
		{MinScale: 0, MaxScale: 1.1},
		{MinScale: 0.5, MaxScale: 1},
		{MinScale: 1.5, MaxScale: 1.2},
	}
	for _, tm := range bad {
		if err := tm.Validate(); !errors.Is(err, ErrInvalidTiming) {
			t.Errorf("Validate(%+v) = %v, want ErrInvalidTiming", tm, err)
		}
	}
}
