package system

import (
	"github.com/milk9111/fightcore/animation"
	"github.com/milk9111/fightcore/ecs"
	"github.com/milk9111/fightcore/ecs/component"
	"github.com/milk9111/fightcore/logger"
)

// AnimationSystem advances each clock and samples the current clip into the
// entity's Pose. Frozen clocks burn down their hitstop instead.
type AnimationSystem struct {
	library *animation.Library
	dt      float64
}

func NewAnimationSystem(library *animation.Library, dt float64) *AnimationSystem {
	return &AnimationSystem{library: library, dt: dt}
}

func (s *AnimationSystem) Update(w *ecs.World) {
	if w == nil || s.library == nil {
		return
	}

	ecs.ForEach2(w, component.AnimationStateComponent.Kind(), component.AnimationClockComponent.Kind(), func(e ecs.Entity, state *component.AnimationState, clock *component.AnimationClock) {
		clock.Advance(s.dt)
		if state.Key.IsZero() {
			return
		}
		pose, finished, err := s.library.Pose(state.Key, clock.Current)
		if err != nil {
			logger.L().Debug("animation: sample failed", "entity", e, "clip", state.Key, "err", err)
			return
		}
		p := ecs.GetOrAdd(w, e, component.PoseComponent.Kind())
		if p == nil {
			return
		}
		*p = pose
		state.Finished = finished
	})
}
