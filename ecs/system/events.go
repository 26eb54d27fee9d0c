package system

import (
	"github.com/milk9111/fightcore/ecs"
	"github.com/milk9111/fightcore/ecs/component"
	"github.com/milk9111/fightcore/geometry"
)

const (
	// EventCommand carries a command.ID recognized for the event entity.
	EventCommand ecs.EventType = "command"
	// EventAnimationChanged carries the component.AnimationKey just started.
	EventAnimationChanged ecs.EventType = "animation_changed"
	// EventExtrusionContact carries a Contact between two Extrusion volumes.
	EventExtrusionContact ecs.EventType = "extrusion_contact"
	// EventHitContact carries a Contact between an attack and a Damaged volume.
	EventHitContact ecs.EventType = "hit_contact"
)

// Body is one registered volume and the entity presenting it.
type Body struct {
	Entity ecs.Entity
	Volume component.Volume
}

// Contact is an accepted overlapping pair in broad-phase order.
type Contact struct {
	A       Body
	B       Body
	Contact geometry.Contact
}
