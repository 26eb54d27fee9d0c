package system

import (
	"github.com/milk9111/fightcore/ecs"
	"github.com/milk9111/fightcore/ecs/component"
)

// HitstopFPS converts hitstop and knockback frame counts into seconds.
const HitstopFPS = 60

// ApplyHitInfoSystem consumes the HitInfo written by the judge: it freezes
// clocks for hitstop, records swings in Damaged and restarts knockback.
// Every HitInfo is reset, touched or not.
type ApplyHitInfoSystem struct{}

func NewApplyHitInfoSystem() *ApplyHitInfoSystem { return &ApplyHitInfoSystem{} }

func (s *ApplyHitInfoSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.HitInfoComponent.Kind(), func(e ecs.Entity, info *component.HitInfo) {
		defer info.Reset()
		if info.IsDefault() {
			return
		}
		if info.Hitstop.Set {
			if clock, ok := ecs.Get(w, e, component.AnimationClockComponent.Kind()); ok {
				clock.Freeze(float64(info.Hitstop.Frames) / HitstopFPS)
			}
		}
		if len(info.DamageCollisionIDs) > 0 {
			if d := ecs.GetOrAdd(w, e, component.DamagedComponent.Kind()); d != nil {
				for _, id := range info.DamageCollisionIDs {
					d.Add(id)
				}
			}
		}
		if info.Knockback.Set {
			if kb := ecs.GetOrAdd(w, e, component.KnockbackComponent.Kind()); kb != nil {
				kb.Set(float64(info.Knockback.Frames) / HitstopFPS)
			}
		}
	})
}
