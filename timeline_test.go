package scrub

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

const epsilon = 1e-3

func almostEqual(t *testing.T, got, want float64, name string) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %f, want %f", name, got, want)
	}
}

func TestTimelineSeekEndpoints(t *testing.T) {
	var v float64 = 5
	tl := TweenEngine{}.NewTimeline([]Track{
		{Target: &v, Start: 0, Duration: 1, Ease: ease.Linear, From: 0, To: 10},
	})

	tl.Seek(0)
	almostEqual(t, v, 0, "value at start")

	tl.Seek(1)
	almostEqual(t, v, 10, "value at end")

	// Positions beyond the ends clamp.
	tl.Seek(-4)
	almostEqual(t, v, 0, "value below range")
	tl.Seek(99)
	almostEqual(t, v, 10, "value above range")
}

func TestTimelineSeekIsDeterministic(t *testing.T) {
	var v float64
	tl := TweenEngine{}.NewTimeline([]Track{
		{Target: &v, Start: 0.2, Duration: 0.6, Ease: ease.InOutQuad, From: 3, To: 7},
	})

	tl.Seek(0.5)
	first := v
	tl.Seek(0.9)
	tl.Seek(0.1)
	tl.Seek(0.5)
	almostEqual(t, v, first, "value after revisiting the same position")
}

func TestTimelineTrackBeforeStartWritesFrom(t *testing.T) {
	v := 99.0
	tl := TweenEngine{}.NewTimeline([]Track{
		{Target: &v, Start: 0.45, Duration: 0.55, Ease: ease.OutCubic, From: 20, To: 0},
	})

	tl.Seek(0)
	almostEqual(t, v, 20, "From value applied before track start")

	tl.Seek(0.44)
	almostEqual(t, v, 20, "From value held until track start")

	tl.Seek(1)
	almostEqual(t, v, 0, "To value at track end")
}

func TestTimelineSeekBackwards(t *testing.T) {
	var v float64
	tl := TweenEngine{}.NewTimeline([]Track{
		{Target: &v, Start: 0, Duration: 1, Ease: ease.Linear, From: 0, To: 100},
	})

	tl.Seek(1)
	tl.Seek(0.25)
	almostEqual(t, v, 25, "value after seeking backwards")
}

func TestTimelineNilEaseDefaultsToLinear(t *testing.T) {
	var v float64
	tl := TweenEngine{}.NewTimeline([]Track{
		{Target: &v, Start: 0, Duration: 1, From: 0, To: 2},
	})

	tl.Seek(0.5)
	almostEqual(t, v, 1, "midpoint with default ease")
}

func TestTimelineSkipsNilTargets(t *testing.T) {
	var v float64
	tl := TweenEngine{}.NewTimeline([]Track{
		{Target: nil, Start: 0, Duration: 1, From: 0, To: 1},
		{Target: &v, Start: 0, Duration: 1, Ease: ease.Linear, From: 0, To: 1},
	})

	tl.Seek(1) // must not panic
	almostEqual(t, v, 1, "surviving track value")
}

func TestTimelineDisposedOwnerStopsWrites(t *testing.T) {
	n := NewContainer("victim")
	tl := TweenEngine{}.NewTimeline([]Track{
		{Target: &n.Alpha, Owner: n, Start: 0, Duration: 1, Ease: ease.Linear, From: 1, To: 0},
	})

	tl.Seek(0.5)
	if n.Alpha >= 1 {
		t.Fatalf("Alpha = %f, want < 1 before dispose", n.Alpha)
	}

	before := n.Alpha
	n.Dispose()
	tl.Seek(1)
	almostEqual(t, n.Alpha, before, "Alpha after owner disposed")
}

func TestTimelineDuration(t *testing.T) {
	var a, b float64
	tl := TweenEngine{}.NewTimeline([]Track{
		{Target: &a, Start: 0, Duration: 0.5, From: 0, To: 1},
		{Target: &b, Start: 0.9, Duration: 0.6, From: 0, To: 1},
	})
	almostEqual(t, tl.Duration(), 1.5, "Duration")
}

func TestPlayerPlaysOnce(t *testing.T) {
	var v float64
	tl := TweenEngine{}.NewTimeline([]Track{
		{Target: &v, Start: 0, Duration: 1, Ease: ease.Linear, From: 0, To: 10},
	})
	p := NewPlayer(tl)

	p.Update(0.5)
	if p.Done {
		t.Fatal("should not be done at halfway")
	}
	almostEqual(t, v, 5, "value at halfway")

	p.Update(0.5)
	if !p.Done {
		t.Fatal("should be done after full duration")
	}
	almostEqual(t, v, 10, "value at end")

	// Further updates are no-ops: a finished player never seeks again.
	v = -1
	p.Update(1)
	almostEqual(t, v, -1, "value untouched after Done")
}

func TestPlayerStopCancelsImmediately(t *testing.T) {
	var v float64
	tl := TweenEngine{}.NewTimeline([]Track{
		{Target: &v, Start: 0, Duration: 1, Ease: ease.Linear, From: 0, To: 10},
	})
	p := NewPlayer(tl)

	p.Update(0.3)
	p.Stop()
	if !p.Done {
		t.Fatal("Stop should set Done")
	}
	before := v
	p.Update(0.5)
	almostEqual(t, v, before, "value after Stop")
}

func TestPlayerNilTimeline(t *testing.T) {
	p := NewPlayer(nil)
	p.Update(1) // must not panic
}
