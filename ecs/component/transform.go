package component

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
)

// Transform places an entity in the stage. A negative ScaleX mirrors every
// part of the entity's pose, collision volumes included.
type Transform struct {
	X      float64
	Y      float64
	ScaleX float64
	ScaleY float64
}

var TransformComponent = NewComponent[Transform]()

// Position returns the entity origin.
func (t Transform) Position() cp.Vector {
	return cp.Vector{X: t.X, Y: t.Y}
}

// Matrix is the root matrix for the entity's pose.
func (t Transform) Matrix() mgl64.Mat3 {
	return mgl64.Translate2D(t.X, t.Y).Mul3(mgl64.Scale2D(t.ScaleX, t.ScaleY))
}
