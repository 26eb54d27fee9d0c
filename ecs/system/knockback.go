package system

import (
	"github.com/milk9111/fightcore/ecs"
	"github.com/milk9111/fightcore/ecs/component"
)

// KnockbackSystem counts down active knockback while the entity's clock is
// playing. When a knockback ends the entity's Damaged record is cleared.
type KnockbackSystem struct {
	dt float64
}

func NewKnockbackSystem(dt float64) *KnockbackSystem {
	return &KnockbackSystem{dt: dt}
}

func (s *KnockbackSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.KnockbackComponent.Kind(), func(e ecs.Entity, kb *component.Knockback) {
		if !kb.Active() {
			return
		}
		if clock, ok := ecs.Get(w, e, component.AnimationClockComponent.Kind()); ok && !clock.Playing() {
			return
		}
		if kb.Decrement(s.dt) {
			if d, ok := ecs.Get(w, e, component.DamagedComponent.Kind()); ok {
				d.Clear()
			}
		}
	})
}
