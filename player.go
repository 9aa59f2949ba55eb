package scrub

// Player plays a Timeline once against wall-clock time. Used for the
// one-shot entrance sequence; scroll-bound timelines are driven by a
// Binding instead. Call Update(dt) each frame until Done.
type Player struct {
	tl      Timeline
	elapsed float64
	Done    bool
}

// NewPlayer creates a player positioned at the start of the timeline.
// The caller should Seek(0) (or call Update(0)) to apply the initial
// track values before the first real frame.
func NewPlayer(tl Timeline) *Player {
	return &Player{tl: tl}
}

// Update advances playback by dt seconds and seeks the timeline. Once the
// end is reached Done is set and further calls are no-ops, so finished
// entrance tracks never fight a scroll-bound timeline over shared targets.
func (p *Player) Update(dt float64) {
	if p.Done || p.tl == nil {
		return
	}
	p.elapsed += dt
	if p.elapsed >= p.tl.Duration() {
		p.elapsed = p.tl.Duration()
		p.Done = true
	}
	p.tl.Seek(p.elapsed)
}

// Stop cancels playback immediately. The timeline is left at its current
// position; the owner is expected to restore state itself.
func (p *Player) Stop() {
	p.Done = true
}
