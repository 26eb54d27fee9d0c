package system

import (
	"github.com/milk9111/fightcore/animation"
	"github.com/milk9111/fightcore/ecs"
	"github.com/milk9111/fightcore/ecs/component"
)

// MoveSystem applies the move keys of every animation frame the clock
// entered this tick to the entity's transform. Horizontal moves follow the
// sign of the transform's x scale, so a positive move is always forward.
// Entities never sink below the floor at y zero.
type MoveSystem struct {
	library *animation.Library
}

func NewMoveSystem(library *animation.Library) *MoveSystem {
	return &MoveSystem{library: library}
}

func (s *MoveSystem) Update(w *ecs.World) {
	if w == nil || s.library == nil {
		return
	}

	ecs.ForEach3(w, component.AnimationStateComponent.Kind(), component.AnimationClockComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, state *component.AnimationState, clock *component.AnimationClock, t *component.Transform) {
		if !clock.Stepped || state.Key.IsZero() {
			return
		}
		clip, ok := s.library.Clip(state.Key)
		if !ok {
			return
		}

		var frames []int
		if clock.Previous == clock.Current {
			f, _ := clip.FrameAt(clock.Current)
			frames = []int{f}
		} else {
			frames = clip.Entered(clock.Previous, clock.Current)
		}

		facing := 1.0
		if t.ScaleX < 0 {
			facing = -1
		}
		for _, f := range frames {
			m := clip.MoveAt(f)
			t.X += m.X * facing
			t.Y += m.Y
		}
		if t.Y < 0 {
			t.Y = 0
		}
	})
}
