package scrub

// Screen is the static quote-screen markup: a phone-style mock with a
// status bar, headline, timeline metadata, an orbital ring, and two
// description blocks that share an origin so they visually overlap. The
// named fields are the animation targets the Sequencer binds to; the
// tree is fully readable with no animation mounted at all.
type Screen struct {
	Root          *Node
	Width, Height float64

	// Spacer is the invisible ghost container whose Height defines how
	// much scroll distance maps to one full pass of the bound timeline.
	Spacer *Node

	StatusBar  *Node
	Headline   []*Node
	Meta       []*Node
	Orbital    *Node
	DescA      *Node
	DescB      *Node
	Highlights []*Node
}

// Palette of the quote screen.
var (
	colorBackdrop  = Color{R: 0.05, G: 0.05, B: 0.08, A: 1}
	colorInk       = Color{R: 0.93, G: 0.92, B: 0.88, A: 1}
	colorDim       = Color{R: 0.55, G: 0.55, B: 0.60, A: 1}
	colorAccent    = Color{R: 0.98, G: 0.76, B: 0.25, A: 1}
	colorHighlight = Color{R: 0.25, G: 0.22, B: 0.10, A: 1}
)

// spacerScreens is the spacer height in viewport heights. Four screens of
// scroll distance map to one full timeline pass.
const spacerScreens = 4

// NewScreen builds the static markup tree for a w x h viewport.
func NewScreen(w, h float64) *Screen {
	s := &Screen{Width: w, Height: h}
	s.Root = NewContainer("root")

	backdrop := NewBox("backdrop", w, h, colorBackdrop)
	s.Root.AddChild(backdrop)

	// Ghost spacer: no visual output, only scroll length.
	s.Spacer = NewContainer("spacer")
	s.Spacer.Height = h * spacerScreens
	s.Spacer.Visible = false
	s.Root.AddChild(s.Spacer)

	s.StatusBar = buildStatusBar(w)
	s.Root.AddChild(s.StatusBar)

	s.Orbital = NewRing("orbital", w*0.38, 3)
	s.Orbital.X = w / 2
	s.Orbital.Y = h * 0.46
	s.Orbital.Color = colorDim
	s.Root.AddChild(s.Orbital)

	s.Headline = buildHeadline(s.Root, w, h)
	s.Meta = buildMeta(s.Root, w, h)

	s.DescA, s.DescB, s.Highlights = buildDescriptions(s.Root, w, h)

	return s
}

// buildStatusBar assembles the phone status bar: clock on the left,
// signal and battery dots on the right.
func buildStatusBar(w float64) *Node {
	bar := NewContainer("status-bar")
	bar.Y = 14

	clock := NewText("status-clock", "9:41", 1)
	clock.X = 18
	clock.Color = colorInk
	bar.AddChild(clock)

	for i := 0; i < 3; i++ {
		dot := NewBox("status-dot", 6, 6, colorInk)
		dot.X = w - 60 + float64(i)*14
		dot.Y = 5
		bar.AddChild(dot)
	}
	return bar
}

func buildHeadline(root *Node, w, h float64) []*Node {
	lines := []string{
		"TO STRIVE,",
		"TO SEEK, TO FIND,",
		"AND NOT TO YIELD.",
	}
	out := make([]*Node, 0, len(lines))
	for i, text := range lines {
		n := NewText("headline", text, 3)
		n.X = 28
		n.Y = h*0.10 + float64(i)*54
		n.Color = colorInk
		root.AddChild(n)
		out = append(out, n)
	}
	return out
}

func buildMeta(root *Node, w, h float64) []*Node {
	rows := []string{
		"ULYSSES - ALFRED, LORD TENNYSON",
		"POEMS, 1842",
		"LINES 65-70",
	}
	out := make([]*Node, 0, len(rows))
	for i, text := range rows {
		row := NewContainer("meta-row")
		row.X = 28
		row.Y = h*0.33 + float64(i)*26

		tick := NewBox("meta-tick", 10, 2, colorAccent)
		tick.Y = 7
		row.AddChild(tick)

		label := NewText("meta-label", text, 1)
		label.X = 18
		label.Color = colorDim
		row.AddChild(label)

		root.AddChild(row)
		out = append(out, row)
	}
	return out
}

// buildDescriptions creates the two crossfading description blocks. Both
// are positioned at the same origin (block B overlays block A) so the
// scroll timeline can fade one out while the other fades in without the
// layout shifting.
func buildDescriptions(root *Node, w, h float64) (descA, descB *Node, highlights []*Node) {
	const lineStep = 24
	originY := h * 0.74

	descA = NewContainer("desc-a")
	descA.X = 28
	descA.Y = originY
	for i, text := range []string{
		"Though much is taken, much abides;",
		"and though we are not now that strength",
		"which in old days moved earth and heaven,",
		"that which we are, we are.",
	} {
		line := NewText("desc-a-line", text, 1)
		line.Y = float64(i) * lineStep
		line.Color = colorInk
		descA.AddChild(line)
	}
	root.AddChild(descA)

	descB = NewContainer("desc-b")
	descB.X = 28
	descB.Y = originY
	for i, text := range []string{
		"One equal temper of heroic hearts,",
		"made weak by time and fate,",
		"but strong in will",
	} {
		line := NewText("desc-b-line", text, 1)
		line.Y = float64(i) * lineStep
		line.Color = colorInk
		descB.AddChild(line)
	}
	span := NewText("desc-b-highlight", "to strive, to seek, to find, and not to yield.", 1)
	span.Y = 3 * lineStep
	span.Color = colorInk
	span.Highlight = true
	span.HighlightBase = colorHighlight
	span.HighlightFill = colorAccent
	descB.AddChild(span)
	root.AddChild(descB)

	return descA, descB, []*Node{span}
}

// Region returns the scroll region implied by the spacer and viewport.
func (s *Screen) Region() ScrollRegion {
	return ScrollRegion{SpacerHeight: s.Spacer.Height, ViewportHeight: s.Height}
}

// MaxScroll returns the largest meaningful scroll offset.
func (s *Screen) MaxScroll() float64 {
	span := s.Spacer.Height - s.Height
	if span < 0 {
		return 0
	}
	return span
}

// Dispose tears down the whole tree.
func (s *Screen) Dispose() {
	s.Root.Dispose()
}
