// Package anim implements the phased move animation clock: tiles slide to
// their destinations, then merged and spawned tiles grow past full size
// and shrink back. Everything is a pure function of the time elapsed since
// the move started.
package anim

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidTiming is returned by Timing.Validate.
var ErrInvalidTiming = errors.New("anim: invalid timing")

// Phase is a stage of the move animation.
type Phase int

const (
	PhaseSlide Phase = iota
	PhaseGrow
	PhaseShrink
	PhaseDone
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseSlide:
		return "slide"
	case PhaseGrow:
		return "grow"
	case PhaseShrink:
		return "shrink"
	case PhaseDone:
		return "done"
	default:
		return "unknown"
	}
}

// Timing holds phase durations and the pulse scale range.
type Timing struct {
	Slide    time.Duration
	Grow     time.Duration
	Shrink   time.Duration
	MinScale float64 // Scale of a pulsing tile when the grow phase starts
	MaxScale float64 // Overshoot reached between grow and shrink, > 1
}

// DefaultTiming returns the stock animation timing.
func DefaultTiming() Timing {
	return Timing{
		Slide:    150 * time.Millisecond,
		Grow:     100 * time.Millisecond,
		Shrink:   100 * time.Millisecond,
		MinScale: 0.5,
		MaxScale: 1.1,
	}
}

// Validate checks durations and the scale range.
func (t Timing) Validate() error {
	switch {
	case t.Slide < 0 || t.Grow < 0 || t.Shrink < 0:
		return fmt.Errorf("%w: negative phase duration", ErrInvalidTiming)
	case t.MinScale <= 0:
		return fmt.Errorf("%w: min scale %v must be positive", ErrInvalidTiming, t.MinScale)
	case t.MaxScale <= 1:
		return fmt.Errorf("%w: max scale %v must exceed 1", ErrInvalidTiming, t.MaxScale)
	case t.MinScale > t.MaxScale:
		return fmt.Errorf("%w: min scale %v above max scale %v", ErrInvalidTiming, t.MinScale, t.MaxScale)
	}
	return nil
}

// Total returns the length of the whole animation.
func (t Timing) Total() time.Duration {
	return t.Slide + t.Grow + t.Shrink
}

// Frame is the animation state at one instant. Progress is in [0, 1]: it
// rises through slide and grow and falls through shrink.
type Frame struct {
	Phase    Phase
	Progress float64
}

// At evaluates the clock elapsed time after the move started. Phases with
// zero duration are skipped.
func (t Timing) At(elapsed time.Duration) Frame {
	if elapsed < 0 {
		elapsed = 0
	}

	growStart := t.Slide
	shrinkStart := growStart + t.Grow
	total := shrinkStart + t.Shrink

	switch {
	case elapsed < growStart:
		return Frame{Phase: PhaseSlide, Progress: ratio(elapsed, t.Slide)}
	case elapsed < shrinkStart:
		return Frame{Phase: PhaseGrow, Progress: ratio(elapsed-growStart, t.Grow)}
	case elapsed < total:
		return Frame{Phase: PhaseShrink, Progress: ratio(total-elapsed, t.Shrink)}
	default:
		return Frame{Phase: PhaseDone, Progress: 1}
	}
}

// Done reports whether the animation has finished elapsed after its start.
func (t Timing) Done(elapsed time.Duration) bool {
	return elapsed >= t.Total()
}

// Scale returns the size factor for a pulsing tile (a merge target or a
// spawned tile) in frame f. Every other tile always renders at scale 1.
func (t Timing) Scale(f Frame) float64 {
	switch f.Phase {
	case PhaseGrow:
		return t.MinScale + (t.MaxScale-t.MinScale)*f.Progress
	case PhaseShrink:
		return 1 + (t.MaxScale-1)*f.Progress
	default:
		return 1
	}
}

// Offset returns how far along its path a sliding tile is in frame f:
// linear progress during the slide, then 1.
func (t Timing) Offset(f Frame) float64 {
	if f.Phase == PhaseSlide {
		return f.Progress
	}
	return 1
}

func ratio(part, whole time.Duration) float64 {
	if whole <= 0 {
		return 1
	}
	return float64(part) / float64(whole)
}
