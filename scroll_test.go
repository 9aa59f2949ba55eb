package scrub

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestScrollRegionProgress(t *testing.T) {
	tests := []struct {
		name     string
		region   ScrollRegion
		offset   float64
		progress float64
	}{
		{"start", ScrollRegion{SpacerHeight: 4000, ViewportHeight: 1000}, 0, 0},
		{"midway", ScrollRegion{SpacerHeight: 4000, ViewportHeight: 1000}, 1500, 0.5},
		{"end", ScrollRegion{SpacerHeight: 4000, ViewportHeight: 1000}, 3000, 1},
		{"clamped low", ScrollRegion{SpacerHeight: 4000, ViewportHeight: 1000}, -50, 0},
		{"clamped high", ScrollRegion{SpacerHeight: 4000, ViewportHeight: 1000}, 9999, 1},
		{"spacer equals viewport", ScrollRegion{SpacerHeight: 1000, ViewportHeight: 1000}, 500, 0},
		{"spacer shorter than viewport", ScrollRegion{SpacerHeight: 400, ViewportHeight: 1000}, 500, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			almostEqual(t, tt.region.Progress(tt.offset), tt.progress, "Progress")
		})
	}
}

func newTestBinding(v *float64, smoothTime float64) *Binding {
	tl := TweenEngine{}.NewTimeline([]Track{
		{Target: v, Start: 0, Duration: 1, Ease: ease.Linear, From: 0, To: 1},
	})
	return SmoothBinder{SmoothTime: smoothTime}.Bind(tl, ScrollRegion{
		SpacerHeight: 4000, ViewportHeight: 1000,
	})
}

func TestBindingLagsBehindTarget(t *testing.T) {
	var v float64
	b := newTestBinding(&v, 0.18)

	// Jump the target to the end; one frame of smoothing must not snap
	// the displayed value there.
	b.SetOffset(3000)
	b.Step(1.0 / 60)
	if b.Progress() <= 0 {
		t.Fatal("progress should have moved off zero")
	}
	if b.Progress() > 0.5 {
		t.Errorf("progress = %f, want a lagged value well below the target", b.Progress())
	}
	almostEqual(t, v, b.Progress(), "timeline value follows displayed progress")
}

func TestBindingConvergesToTarget(t *testing.T) {
	var v float64
	b := newTestBinding(&v, 0.18)

	b.SetOffset(3000)
	for i := 0; i < 300; i++ {
		b.Step(1.0 / 60)
	}
	almostEqual(t, b.Progress(), 1, "progress after settling")
	almostEqual(t, v, 1, "timeline value after settling")
}

func TestBindingApproachIsMonotonic(t *testing.T) {
	var v float64
	b := newTestBinding(&v, 0.18)

	b.SetOffset(3000)
	prev := 0.0
	for i := 0; i < 120; i++ {
		b.Step(1.0 / 60)
		if b.Progress() < prev-epsilon {
			t.Fatalf("progress reversed at frame %d: %f -> %f", i, prev, b.Progress())
		}
		prev = b.Progress()
	}
}

func TestBinderZeroSmoothTimeUsesDefault(t *testing.T) {
	var v float64
	b := newTestBinding(&v, 0)
	if b.smoothTime != DefaultSmoothTime {
		t.Errorf("smoothTime = %f, want DefaultSmoothTime", b.smoothTime)
	}
}

func TestSmoothStepZeroTimeConstantSnaps(t *testing.T) {
	if got := smoothStep(0, 1, 1.0/60, 0); got != 1 {
		t.Errorf("smoothStep with zero smoothTime = %f, want 1", got)
	}
}

func TestBindingDisposeDetaches(t *testing.T) {
	var v float64
	b := newTestBinding(&v, 0.18)

	b.SetOffset(3000)
	b.Step(1.0 / 60)
	before := v

	b.Dispose()
	b.SetOffset(0)
	b.Step(1)
	almostEqual(t, v, before, "value after dispose")

	b.Dispose() // idempotent
	var nilBinding *Binding
	nilBinding.Dispose() // safe on nil
}

func TestSmoothStepDecay(t *testing.T) {
	// After exactly one time constant, about 63% of the distance is
	// covered.
	got := smoothStep(0, 1, 0.18, 0.18)
	want := 1 - math.Exp(-1)
	if math.Abs(got-want) > 0.01 {
		t.Errorf("smoothStep after one time constant = %f, want ~%f", got, want)
	}
}

func TestSmoothStepSnapsNearTarget(t *testing.T) {
	got := smoothStep(1-snapEpsilon/2, 1, 1.0/60, 0.18)
	if got != 1 {
		t.Errorf("smoothStep near target = %f, want exact snap to 1", got)
	}
}
