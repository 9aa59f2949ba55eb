package scrub

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// RunConfig configures the Run helper.
type RunConfig struct {
	Title  string
	Width  int
	Height int

	// Entrance plays the one-shot entrance sequence on mount.
	Entrance bool

	// Static mounts without animation capabilities: the screen renders
	// as a plain, unanimated page (degraded mode).
	Static bool

	// SmoothTime overrides the scrub smoothing time constant in seconds.
	// Zero selects DefaultSmoothTime.
	SmoothTime float64

	// Script, when set, drives the scroll offset instead of user input.
	Script *ScrollScript

	ShowFPS bool
}

const (
	defaultWidth  = 420
	defaultHeight = 840

	wheelStep = 36 // scroll pixels per wheel notch
	keyStep   = 6  // scroll pixels per frame while an arrow key is held
)

// game adapts the screen and sequencer to the ebiten game loop.
type game struct {
	cfg    RunConfig
	screen *Screen
	seq    *Sequencer
	offset float64
}

// Run creates the window, builds the screen, mounts the sequencer, and
// runs the game loop until the window closes. Scroll with the mouse
// wheel or the up/down arrow keys.
func Run(cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = defaultWidth
	}
	if cfg.Height <= 0 {
		cfg.Height = defaultHeight
	}

	screen := NewScreen(float64(cfg.Width), float64(cfg.Height))
	opts := SequencerOptions{Entrance: cfg.Entrance}
	if !cfg.Static {
		opts.Engine = TweenEngine{}
		opts.Binder = SmoothBinder{SmoothTime: cfg.SmoothTime}
	}
	seq := MountSequencer(screen, opts)

	g := &game{cfg: cfg, screen: screen, seq: seq}

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	err := ebiten.RunGame(g)

	seq.Dispose()
	screen.Dispose()
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

func (g *game) Update() error {
	dt := 1.0 / float64(ebiten.TPS())

	if g.cfg.Script != nil && !g.cfg.Script.Done() {
		g.offset = g.cfg.Script.step(g.offset)
	} else {
		_, wy := ebiten.Wheel()
		g.offset -= wy * wheelStep
		if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
			g.offset += keyStep
		}
		if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
			g.offset -= keyStep
		}
	}
	g.offset = clamp(g.offset, 0, g.screen.MaxScroll())

	g.seq.Scroll(g.offset)
	g.seq.Step(dt)
	return nil
}

func (g *game) Draw(dst *ebiten.Image) {
	Render(dst, g.screen.Root)
	if g.cfg.ShowFPS {
		ebitenutil.DebugPrint(dst, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}
