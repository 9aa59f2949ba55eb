// Package scrub renders a scroll-driven quote screen for [Ebitengine],
// built around scroll-scrubbed animation timelines.
//
// The package has two halves. The engine half is a small declarative
// animation system: a [Timeline] is an ordered list of [Track] tuples
// (target field, start offset, duration, easing, from, to) that can be
// seeked to any progress value, and a [Binding] maps scroll offset
// through spacer geometry to timeline progress with critically damped
// smoothing so scrubbing feels eased rather than snappy. The
// presentation half is the screen itself: a static node tree (phone
// mock with status bar, headline, timeline metadata, orbital ring, and
// two crossfading description blocks) plus the [Sequencer] that wires
// the choreography onto it.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and
// game loop for you:
//
//	scrub.Run(scrub.RunConfig{
//		Title: "Scrub", Width: 420, Height: 840, Entrance: true,
//	})
//
// For full control, build the pieces yourself:
//
//	screen := scrub.NewScreen(420, 840)
//	seq := scrub.MountSequencer(screen, scrub.SequencerOptions{
//		Engine: scrub.TweenEngine{},
//		Binder: scrub.SmoothBinder{},
//	})
//	defer seq.Dispose()
//	// each frame:
//	seq.Scroll(offset)
//	seq.Step(dt)
//	scrub.Render(dst, screen.Root)
//
// # Capabilities
//
// The animation engine and the scroll binder are injected through
// [SequencerOptions]. When either is nil the sequencer mounts as an
// inert no-op and the static markup remains fully readable — absence
// of animation is a deliberate fallback, not an error.
//
// Interpolation is backed by [gween]; all easing functions come from
// gween/ease.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package scrub
