package scrub

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Track is one property animation: a (target, start, duration, easing,
// from, to) tuple. Start and Duration are in timeline units — normalized
// [0, 1] progress for scroll-bound timelines, seconds for time-based
// ones. The track holds the WHAT (keyframe values and timing); the
// timeline's interpolation is the HOW.
type Track struct {
	Target   *float64
	Owner    *Node // optional; a disposed owner stops the track's writes
	Start    float64
	Duration float64
	Ease     ease.TweenFunc
	From, To float64
}

// Timeline is a seekable animation sequence. Seeking is deterministic:
// the same position always produces the same property values, with no
// hidden state beyond the position itself. Positions before a track's
// start write its From value, positions past its end write its To value,
// so Seek(0) establishes the declared initial state of every target.
type Timeline interface {
	// Seek evaluates every track at the given position (clamped to
	// [0, Duration]) and writes the values through the target pointers.
	Seek(pos float64)
	// Duration returns the end of the last track.
	Duration() float64
}

// Engine builds timelines from track lists. It is injected into the
// sequencer; a nil Engine disables animation entirely (the markup stays
// static).
type Engine interface {
	NewTimeline(tracks []Track) Timeline
}

// TweenEngine is the default Engine, backed by gween tweens.
type TweenEngine struct{}

// NewTimeline builds a gween-backed timeline from the given tracks.
func (TweenEngine) NewTimeline(tracks []Track) Timeline {
	return newTweenTimeline(tracks)
}

// tweenTimeline seeks a set of gween tweens laid out along a shared axis.
type tweenTimeline struct {
	tracks []boundTrack
	end    float64
}

type boundTrack struct {
	tween    *gween.Tween
	target   *float64
	owner    *Node
	start    float64
	duration float64
}

const minTrackDuration = 1e-6

func newTweenTimeline(tracks []Track) *tweenTimeline {
	tl := &tweenTimeline{tracks: make([]boundTrack, 0, len(tracks))}
	for _, t := range tracks {
		if t.Target == nil {
			continue
		}
		fn := t.Ease
		if fn == nil {
			fn = ease.Linear
		}
		dur := t.Duration
		if dur < minTrackDuration {
			dur = minTrackDuration
		}
		tl.tracks = append(tl.tracks, boundTrack{
			tween:    gween.New(float32(t.From), float32(t.To), float32(dur), fn),
			target:   t.Target,
			owner:    t.Owner,
			start:    t.Start,
			duration: dur,
		})
		if end := t.Start + dur; end > tl.end {
			tl.end = end
		}
	}
	return tl
}

func (tl *tweenTimeline) Seek(pos float64) {
	pos = clamp(pos, 0, tl.end)
	for i := range tl.tracks {
		bt := &tl.tracks[i]
		if bt.owner != nil && bt.owner.IsDisposed() {
			continue
		}
		local := clamp(pos-bt.start, 0, bt.duration)
		v, _ := bt.tween.Set(float32(local))
		*bt.target = float64(v)
	}
}

func (tl *tweenTimeline) Duration() float64 {
	return tl.end
}
