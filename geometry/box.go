package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
)

// BoxFromMatrix builds an axis-aligned box centred on the matrix translation
// with width and height taken from its scale.
func BoxFromMatrix(m mgl64.Mat3) cp.BB {
	sx := math.Hypot(m[0], m[1])
	sy := math.Hypot(m[3], m[4])
	return BoxAt(cp.Vector{X: m[6], Y: m[7]}, sx/2, sy/2)
}

// BoxAt builds a box from a centre and half extents.
func BoxAt(c cp.Vector, hw, hh float64) cp.BB {
	return cp.BB{L: c.X - hw, B: c.Y - hh, R: c.X + hw, T: c.Y + hh}
}

// Translate moves a box by v.
func Translate(bb cp.BB, v cp.Vector) cp.BB {
	return cp.BB{L: bb.L + v.X, B: bb.B + v.Y, R: bb.R + v.X, T: bb.T + v.Y}
}

// Contact describes how far two boxes interpenetrate.
// Normal points from the first box toward the second along the axis of
// least penetration; Depth is the penetration along that axis. Overlap
// holds the penetration on both axes.
type Contact struct {
	Depth   float64
	Normal  cp.Vector
	Overlap cp.Vector
	Points  []cp.Vector
}

// Overlap reports whether a and b interpenetrate. Boxes that only touch
// do not overlap.
func Overlap(a, b cp.BB) (Contact, bool) {
	if !a.Intersects(b) {
		return Contact{}, false
	}
	dx := math.Min(a.R, b.R) - math.Max(a.L, b.L)
	dy := math.Min(a.T, b.T) - math.Max(a.B, b.B)
	if dx <= 0 || dy <= 0 {
		return Contact{}, false
	}

	ac := a.Center()
	bc := b.Center()
	c := Contact{
		Overlap: cp.Vector{X: dx, Y: dy},
		Points: []cp.Vector{{
			X: (math.Max(a.L, b.L) + math.Min(a.R, b.R)) / 2,
			Y: (math.Max(a.B, b.B) + math.Min(a.T, b.T)) / 2,
		}},
	}
	if dx <= dy {
		c.Depth = dx
		c.Normal = cp.Vector{X: sign(bc.X - ac.X)}
	} else {
		c.Depth = dy
		c.Normal = cp.Vector{Y: sign(bc.Y - ac.Y)}
	}
	return c, true
}

// sign never returns zero so coincident centres still separate.
func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
