package scrub

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Debug font metrics used for text sizing. One line of single-height text.
const (
	glyphWidth = 6
	lineHeight = 16
)

const ringDots = 48

// Render traverses the node tree depth-first and draws it onto dst.
// Children inherit their parent's accumulated offset and alpha. All
// drawing goes through WhitePixel quads and the debug font, so property
// mutation is synchronous and always succeeds while the node is live.
func Render(dst *ebiten.Image, root *Node) {
	drawNode(dst, root, 0, 0, 1)
}

func drawNode(dst *ebiten.Image, n *Node, parentX, parentY, parentAlpha float64) {
	if n == nil || n.disposed || !n.Visible {
		return
	}
	x := parentX + n.X + n.OffsetX
	y := parentY + n.Y + n.OffsetY
	alpha := parentAlpha * clamp(n.Alpha, 0, 1)
	if alpha <= 0 {
		return
	}

	switch n.Kind {
	case KindBox:
		drawBox(dst, n, x, y, alpha)
	case KindText:
		drawText(dst, n, x, y, alpha)
	case KindRing:
		drawRing(dst, n, x, y, alpha)
	}

	for _, child := range n.children {
		drawNode(dst, child, x, y, alpha)
	}
}

// fillQuad draws a solid w x h rectangle at (x, y) by scaling WhitePixel.
func fillQuad(dst *ebiten.Image, x, y, w, h float64, c Color, alpha float64) {
	if w <= 0 || h <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale = colorScale(c, alpha)
	dst.DrawImage(WhitePixel, op)
}

func drawBox(dst *ebiten.Image, n *Node, x, y, alpha float64) {
	fillQuad(dst, x, y, n.Width*n.ScaleX, n.Height*n.ScaleY, n.Color, alpha)
}

func drawText(dst *ebiten.Image, n *Node, x, y, alpha float64) {
	img := n.ensureTextImage()
	if img == nil {
		return
	}
	sx := n.TextScale * n.ScaleX
	sy := n.TextScale * n.ScaleY
	w := float64(img.Bounds().Dx()) * sx
	h := float64(img.Bounds().Dy()) * sy

	// Highlight spans carry a two-stop background: the base stop covers
	// the whole span, the fill stop sweeps across it as FillPos goes 0->1.
	if n.Highlight {
		fillQuad(dst, x-2, y-1, w+4, h+2, n.HighlightBase, alpha)
		swept := clamp(n.FillPos, 0, 1) * (w + 4)
		fillQuad(dst, x-2, y-1, swept, h+2, n.HighlightFill, alpha)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(sx, sy)
	op.GeoM.Translate(x, y)
	op.ColorScale = colorScale(n.Color, alpha)
	dst.DrawImage(img, op)
}

// drawRing draws the orbital flourish: a faint dotted circle plus a few
// larger satellite dots whose angular position follows n.Rotation.
func drawRing(dst *ebiten.Image, n *Node, x, y, alpha float64) {
	radius := n.Radius * n.ScaleX
	for i := 0; i < ringDots; i++ {
		a := 2 * math.Pi * float64(i) / ringDots
		dx := x + radius*math.Cos(a)
		dy := y + radius*math.Sin(a)
		fillQuad(dst, dx-1, dy-1, 2, 2, n.Color, alpha*0.6)
	}
	for i := 0; i < n.Satellites; i++ {
		a := n.Rotation + 2*math.Pi*float64(i)/float64(n.Satellites)
		dx := x + radius*math.Cos(a)
		dy := y + radius*math.Sin(a)
		fillQuad(dst, dx-3, dy-3, 6, 6, ColorWhite, alpha)
	}
}

// ensureTextImage lazily renders the node's text (single line, debug
// font) into a cached image. The cache is released on Dispose.
func (n *Node) ensureTextImage() *ebiten.Image {
	if n.textImage != nil {
		return n.textImage
	}
	if n.Text == "" {
		return nil
	}
	w := glyphWidth*len(n.Text) + 2
	img := ebiten.NewImage(w, lineHeight+2)
	ebitenutil.DebugPrint(img, n.Text)
	n.textImage = img
	return img
}

// colorScale converts a Color plus accumulated alpha into a premultiplied
// ebiten.ColorScale.
func colorScale(c Color, alpha float64) ebiten.ColorScale {
	var cs ebiten.ColorScale
	a := clamp(c.A*alpha, 0, 1)
	cs.Scale(float32(c.R*a), float32(c.G*a), float32(c.B*a), float32(a))
	return cs
}
