package geometry

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

var ErrParentOrder = errors.New("geometry: parent must precede child")

// Transform is a 2D local transform: translate, then rotate, then scale.
type Transform struct {
	X, Y     float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
}

// Identity is the transform that leaves points unchanged.
func Identity() Transform {
	return Transform{ScaleX: 1, ScaleY: 1}
}

// Matrix returns the homogeneous matrix for t.
func (t Transform) Matrix() mgl64.Mat3 {
	m := mgl64.Translate2D(t.X, t.Y)
	if t.Rotation != 0 {
		m = m.Mul3(mgl64.HomogRotate2D(t.Rotation))
	}
	return m.Mul3(mgl64.Scale2D(t.ScaleX, t.ScaleY))
}

// Globals resolves node matrices in index order. parents[i] is -1 for a
// root, otherwise the index of an earlier node. A node whose parent does not
// precede it is reported in the error and left invalid, as are its
// descendants.
func Globals(root mgl64.Mat3, parents []int, locals []mgl64.Mat3) ([]mgl64.Mat3, []bool, error) {
	globals := make([]mgl64.Mat3, len(locals))
	valid := make([]bool, len(locals))
	var errs []error
	for i := range locals {
		p := -1
		if i < len(parents) {
			p = parents[i]
		}
		switch {
		case p < 0:
			globals[i] = root.Mul3(locals[i])
			valid[i] = true
		case p >= i:
			errs = append(errs, fmt.Errorf("%w: node %d parent %d", ErrParentOrder, i, p))
		case valid[p]:
			globals[i] = globals[p].Mul3(locals[i])
			valid[i] = true
		}
	}
	return globals, valid, errors.Join(errs...)
}
