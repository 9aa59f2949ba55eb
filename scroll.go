package scrub

// ScrollRegion describes the spacer geometry that maps scroll offset to
// timeline progress. Progress 0 is the spacer's top aligned to the
// viewport top; progress 1 is the spacer's bottom aligned to the viewport
// bottom, i.e. the scrollable range is SpacerHeight - ViewportHeight.
type ScrollRegion struct {
	SpacerHeight   float64
	ViewportHeight float64
}

// Progress converts a scroll offset into normalized [0, 1] progress,
// clamped at both ends. A spacer no taller than the viewport has no
// scrollable range and pins progress to 0.
func (r ScrollRegion) Progress(offset float64) float64 {
	span := r.SpacerHeight - r.ViewportHeight
	if span <= 0 {
		return 0
	}
	return clamp(offset/span, 0, 1)
}

// Binder creates scroll bindings. It is injected into the sequencer; a
// nil Binder disables the scroll-bound timeline.
type Binder interface {
	Bind(tl Timeline, region ScrollRegion) *Binding
}

// SmoothBinder is the default Binder. SmoothTime is the time constant of
// the critically damped scrub smoothing; zero selects DefaultSmoothTime.
type SmoothBinder struct {
	SmoothTime float64
}

// DefaultSmoothTime is the scrub smoothing time constant in seconds.
const DefaultSmoothTime = 0.18

// Bind attaches a timeline to the scroll region and returns the binding,
// which doubles as the disposer handle.
func (b SmoothBinder) Bind(tl Timeline, region ScrollRegion) *Binding {
	st := b.SmoothTime
	if st <= 0 {
		st = DefaultSmoothTime
	}
	return &Binding{tl: tl, region: region, smoothTime: st}
}

// Binding connects scroll offset to a timeline. The visible position lags
// the raw scroll target and eases toward it every frame, producing a
// scrubbed rather than jumpy feel. Dispose detaches the binding: further
// SetOffset and Step calls become no-ops.
type Binding struct {
	tl         Timeline
	region     ScrollRegion
	smoothTime float64
	target     float64
	display    float64
	disposed   bool
}

// SetOffset records the current scroll offset. The timeline is not
// seeked here; Step performs the smoothed catch-up.
func (b *Binding) SetOffset(offset float64) {
	if b.disposed {
		return
	}
	b.target = b.region.Progress(offset)
}

// Step moves the displayed progress toward the target by critically
// damped smoothing over dt seconds and seeks the timeline.
func (b *Binding) Step(dt float64) {
	if b.disposed || b.tl == nil {
		return
	}
	b.display = smoothStep(b.display, b.target, dt, b.smoothTime)
	b.tl.Seek(b.display)
}

// Progress returns the currently displayed (smoothed) progress.
func (b *Binding) Progress() float64 {
	return b.display
}

// Dispose detaches the binding. Idempotent; safe on a nil receiver so a
// degraded sequencer can dispose unconditionally.
func (b *Binding) Dispose() {
	if b == nil {
		return
	}
	b.disposed = true
	b.tl = nil
}
