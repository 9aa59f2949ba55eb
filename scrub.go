package scrub

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at draw submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// toRGBA converts the color to a premultiplied color.RGBA.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp(c.R*c.A, 0, 1) * 255),
		G: uint8(clamp(c.G*c.A, 0, 1) * 255),
		B: uint8(clamp(c.B*c.A, 0, 1) * 255),
		A: uint8(clamp(c.A, 0, 1) * 255),
	}
}

// WhitePixel is a 1x1 white image used for solid color boxes and dots.
var WhitePixel *ebiten.Image

func init() {
	WhitePixel = ebiten.NewImage(1, 1)
	WhitePixel.Fill(ColorWhite.toRGBA())
}

// clamp limits v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// smoothStep moves current toward target by critically damped exponential
// decay over dt seconds. smoothTime is the time constant: after one
// smoothTime roughly 63% of the remaining distance is covered. Values
// within snapEpsilon of the target snap exactly so scrubbing settles.
func smoothStep(current, target, dt, smoothTime float64) float64 {
	if smoothTime <= 0 {
		return target
	}
	next := current + (target-current)*(1-math.Exp(-dt/smoothTime))
	if math.Abs(target-next) < snapEpsilon {
		return target
	}
	return next
}

const snapEpsilon = 0.0005
