package system

import (
	"math"

	"github.com/milk9111/fightcore/ecs"
	"github.com/milk9111/fightcore/ecs/component"
	"github.com/milk9111/fightcore/input"
)

// DirectionSystem mirrors each entity's transform to match its facing.
type DirectionSystem struct{}

func NewDirectionSystem() *DirectionSystem { return &DirectionSystem{} }

func (s *DirectionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.DirectionComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, d *component.Direction, t *component.Transform) {
		sx := math.Abs(t.ScaleX)
		if sx == 0 {
			sx = 1
		}
		if d.Facing == input.FacingLeft {
			sx = -sx
		}
		t.ScaleX = sx
	})
}
