package scrub

import (
	"math"

	"github.com/tanema/gween/ease"
)

// Scroll-bound choreography, in normalized progress units. The sub-ranges
// overlap on purpose: block A fades out while block B is still hidden,
// the highlight sweep begins slightly before block B's fade-in, and B
// finishes at the very end of the range. The overlaps avoid a visible
// gap between the two blocks.
const (
	ringSpinTo = 2 * math.Pi / 3 // 120 degrees across the full range

	descAFadeStart = 0.0
	descAFadeDur   = 0.35
	descARise      = -30.0

	descBFadeStart = 0.45
	descBFadeDur   = 0.55
	descBDrop      = 20.0

	fillStart = 0.40
	fillDur   = 0.60
)

// Entrance choreography, in seconds from sequence start.
const (
	entStatusDur       = 0.50
	entStatusDrop      = -16.0
	entOrbitalDur      = 0.90
	entOrbitalScale    = 0.60
	entHeadlineStart   = 0.30
	entHeadlineDur     = 0.70
	entHeadlineStagger = 0.12
	entHeadlineRise    = 24.0
	entMetaStart       = 0.55
	entMetaDur         = 0.50
	entMetaStagger     = 0.10
	entMetaSlide       = -18.0
	entDescStart       = 0.90
	entDescDur         = 0.60
	entDescRise        = 16.0
)

// SequencerOptions carries the injected capabilities and feature toggles
// for MountSequencer. Engine and Binder default to nothing: when either
// is nil the sequencer mounts inert and the screen stays static.
type SequencerOptions struct {
	// Engine builds the timelines. Typically TweenEngine{}.
	Engine Engine
	// Binder attaches the scroll-bound timeline to the spacer geometry.
	// Typically SmoothBinder{}.
	Binder Binder
	// Entrance enables the one-shot, time-based entrance sequence played
	// once on mount, independent of scroll position.
	Entrance bool
}

// Sequencer owns the animation state of one mounted screen: the
// scroll-bound timeline, its binding, and the optional entrance player.
// At most one of each exists per mounted instance, and Dispose tears them
// all down together. Everything the sequencer mutates is restored on
// Dispose, so a remount starts from the declared initial state with no
// residue.
type Sequencer struct {
	screen   *Screen
	scroll   Timeline
	binding  *Binding
	entrance *Player
	restore  []restoreEntry
	mounted  bool
	disposed bool
}

type restoreEntry struct {
	target *float64
	value  float64
}

// MountSequencer binds the animation choreography onto the screen's
// nodes. If either capability is absent the returned sequencer is inert:
// no setup is performed, no animation occurs, and Dispose is a no-op.
// This is a silent fallback, not an error. Setup runs exactly once per
// mount; call Dispose before mounting the same screen again.
func MountSequencer(screen *Screen, opts SequencerOptions) *Sequencer {
	s := &Sequencer{screen: screen}
	if opts.Engine == nil || opts.Binder == nil {
		return s
	}

	scrollTracks := scrollChoreography(screen)
	var entranceTracks []Track
	if opts.Entrance {
		entranceTracks = entranceChoreography(screen)
	}

	// Snapshot every animated property before the first seek so Dispose
	// can put the static markup back exactly as it found it.
	s.restore = snapshotTargets(scrollTracks, entranceTracks)

	s.scroll = opts.Engine.NewTimeline(scrollTracks)
	s.binding = opts.Binder.Bind(s.scroll, screen.Region())

	// Establish the declared initial state: block B hidden and dropped,
	// block A fully visible, highlight unswept, ring at zero.
	s.scroll.Seek(0)

	if opts.Entrance {
		tl := opts.Engine.NewTimeline(entranceTracks)
		tl.Seek(0)
		s.entrance = NewPlayer(tl)
	}

	s.mounted = true
	return s
}

// Scroll records the current scroll offset in pixels. The visible
// progress catches up during Step.
func (s *Sequencer) Scroll(offset float64) {
	if !s.mounted {
		return
	}
	s.binding.SetOffset(offset)
}

// Step advances the sequencer by dt seconds: the scroll binding seeks
// first, then the entrance player (while running) seeks over it, so the
// entrance owns any shared targets until it finishes.
func (s *Sequencer) Step(dt float64) {
	if !s.mounted {
		return
	}
	s.binding.Step(dt)
	if s.entrance != nil && !s.entrance.Done {
		s.entrance.Update(dt)
	}
}

// Progress returns the smoothed scroll progress in [0, 1], or 0 when the
// sequencer is inert.
func (s *Sequencer) Progress() float64 {
	if !s.mounted {
		return 0
	}
	return s.binding.Progress()
}

// Mounted reports whether the animation capabilities were present at
// mount time and the sequencer is still live.
func (s *Sequencer) Mounted() bool {
	return s.mounted
}

// Dispose cancels any in-flight interpolation, detaches the scroll
// binding, and restores every mutated property to its pre-mount value.
// Idempotent: only the first call does work.
func (s *Sequencer) Dispose() {
	if s.disposed {
		return
	}
	s.disposed = true
	if !s.mounted {
		return
	}
	s.mounted = false
	if s.entrance != nil {
		s.entrance.Stop()
		s.entrance = nil
	}
	s.binding.Dispose()
	s.binding = nil
	s.scroll = nil
	for _, r := range s.restore {
		*r.target = r.value
	}
	s.restore = nil
}

// scrollChoreography builds the scroll-bound tracks for the screen.
func scrollChoreography(sc *Screen) []Track {
	tracks := []Track{
		{Target: &sc.Orbital.Rotation, Owner: sc.Orbital, Start: 0, Duration: 1, Ease: ease.Linear, From: 0, To: ringSpinTo},

		{Target: &sc.DescA.Alpha, Owner: sc.DescA, Start: descAFadeStart, Duration: descAFadeDur, Ease: ease.InCubic, From: 1, To: 0},
		{Target: &sc.DescA.OffsetY, Owner: sc.DescA, Start: descAFadeStart, Duration: descAFadeDur, Ease: ease.InCubic, From: 0, To: descARise},

		{Target: &sc.DescB.Alpha, Owner: sc.DescB, Start: descBFadeStart, Duration: descBFadeDur, Ease: ease.OutCubic, From: 0, To: 1},
		{Target: &sc.DescB.OffsetY, Owner: sc.DescB, Start: descBFadeStart, Duration: descBFadeDur, Ease: ease.OutCubic, From: descBDrop, To: 0},
	}
	for _, span := range sc.Highlights {
		tracks = append(tracks, Track{
			Target: &span.FillPos, Owner: span,
			Start: fillStart, Duration: fillDur,
			Ease: ease.Linear, From: 0, To: 1,
		})
	}
	return tracks
}

// entranceChoreography builds the one-shot entrance tracks: status bar
// drops in, the ring scales up from 60% with a slight overshoot while
// fading in, headline lines rise with a stagger starting partway through
// the ring, metadata rows slide in from the left after the headlines
// begin, and description block A fades up last.
func entranceChoreography(sc *Screen) []Track {
	tracks := []Track{
		{Target: &sc.StatusBar.OffsetY, Owner: sc.StatusBar, Start: 0, Duration: entStatusDur, Ease: ease.OutQuad, From: entStatusDrop, To: 0},
		{Target: &sc.StatusBar.Alpha, Owner: sc.StatusBar, Start: 0, Duration: entStatusDur, Ease: ease.OutQuad, From: 0, To: 1},

		{Target: &sc.Orbital.ScaleX, Owner: sc.Orbital, Start: 0, Duration: entOrbitalDur, Ease: ease.OutBack, From: entOrbitalScale, To: 1},
		{Target: &sc.Orbital.ScaleY, Owner: sc.Orbital, Start: 0, Duration: entOrbitalDur, Ease: ease.OutBack, From: entOrbitalScale, To: 1},
		{Target: &sc.Orbital.Alpha, Owner: sc.Orbital, Start: 0, Duration: entOrbitalDur, Ease: ease.OutQuad, From: 0, To: 1},
	}
	for i, line := range sc.Headline {
		start := entHeadlineStart + float64(i)*entHeadlineStagger
		tracks = append(tracks,
			Track{Target: &line.OffsetY, Owner: line, Start: start, Duration: entHeadlineDur, Ease: ease.OutCubic, From: entHeadlineRise, To: 0},
			Track{Target: &line.Alpha, Owner: line, Start: start, Duration: entHeadlineDur, Ease: ease.OutQuad, From: 0, To: 1},
		)
	}
	for i, row := range sc.Meta {
		start := entMetaStart + float64(i)*entMetaStagger
		tracks = append(tracks,
			Track{Target: &row.OffsetX, Owner: row, Start: start, Duration: entMetaDur, Ease: ease.OutCubic, From: entMetaSlide, To: 0},
			Track{Target: &row.Alpha, Owner: row, Start: start, Duration: entMetaDur, Ease: ease.OutQuad, From: 0, To: 1},
		)
	}
	tracks = append(tracks,
		Track{Target: &sc.DescA.OffsetY, Owner: sc.DescA, Start: entDescStart, Duration: entDescDur, Ease: ease.OutQuad, From: entDescRise, To: 0},
		Track{Target: &sc.DescA.Alpha, Owner: sc.DescA, Start: entDescStart, Duration: entDescDur, Ease: ease.OutQuad, From: 0, To: 1},
	)
	return tracks
}

// snapshotTargets records the current value behind every distinct target
// pointer across the given track sets.
func snapshotTargets(trackSets ...[]Track) []restoreEntry {
	seen := make(map[*float64]bool)
	var out []restoreEntry
	for _, tracks := range trackSets {
		for _, t := range tracks {
			if t.Target == nil || seen[t.Target] {
				continue
			}
			seen[t.Target] = true
			out = append(out, restoreEntry{target: t.Target, value: *t.Target})
		}
	}
	return out
}
