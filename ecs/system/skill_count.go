package system

import (
	"github.com/milk9111/fightcore/ecs"
	"github.com/milk9111/fightcore/ecs/component"
)

// SkillCountSystem counts clip starts. It runs after the pose advance and
// before registration so every frame of a swing sees the same count.
type SkillCountSystem struct{}

func NewSkillCountSystem() *SkillCountSystem { return &SkillCountSystem{} }

func (s *SkillCountSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	for _, evt := range w.Events().Drain(EventAnimationChanged) {
		key, ok := evt.Data.(component.AnimationKey)
		if !ok {
			continue
		}
		if sc := ecs.GetOrAdd(w, evt.Entity, component.SkillCountComponent.Kind()); sc != nil {
			sc.Increment(key)
		}
	}
}
