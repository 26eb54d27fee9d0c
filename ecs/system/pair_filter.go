package system

import (
	"github.com/milk9111/fightcore/ecs"
	"github.com/milk9111/fightcore/ecs/component"
)

// FilterPair decides whether an overlapping pair is processed. It reads the
// victim's Damaged record and changes nothing, and swapping a and b never
// changes the answer.
func FilterPair(w *ecs.World, a, b Body) bool {
	if a.Entity == b.Entity {
		return false
	}
	ka, kb := a.Volume.Type.Kind, b.Volume.Type.Kind
	switch {
	case ka == component.Extrusion && kb == component.Extrusion:
		return true
	case ka == component.Damaged && kb.IsAttack():
		return !alreadyHit(w, a.Entity, b.Volume)
	case kb == component.Damaged && ka.IsAttack():
		return !alreadyHit(w, b.Entity, a.Volume)
	}
	return false
}

// alreadyHit reports whether victim has recorded the swing of attack.
// Volumes without an id, such as throws, are never deduplicated.
func alreadyHit(w *ecs.World, victim ecs.Entity, attack component.Volume) bool {
	if attack.ID == nil {
		return false
	}
	d, _ := ecs.Get(w, victim, component.DamagedComponent.Kind())
	return d.Contains(*attack.ID)
}
