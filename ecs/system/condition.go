package system

import (
	"github.com/milk9111/fightcore/ecs"
	"github.com/milk9111/fightcore/ecs/component"
)

// ConditionSystem derives the transition conditions of each entity.
type ConditionSystem struct{}

func NewConditionSystem() *ConditionSystem { return &ConditionSystem{} }

func (s *ConditionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.ConditionComponent.Kind(), func(e ecs.Entity, c *component.Condition) {
		*c = 0
		if kb, ok := ecs.Get(w, e, component.KnockbackComponent.Kind()); ok && kb.Active() {
			*c |= component.ConditionKnockback
		}
		if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok && t.Y > 0 {
			*c |= component.ConditionAir
		}
	})
}
