package system

import (
	"github.com/milk9111/fightcore/ecs"
	"github.com/milk9111/fightcore/ecs/component"
	"github.com/milk9111/fightcore/geometry"
)

// CollideSystem is the broad phase. Volumes are listed in ascending entity
// slot order and then registration order, and pairs (i, j) with i < j are
// tested in that order, so contacts come out the same for the same world.
type CollideSystem struct {
	bodies []Body
}

func NewCollideSystem() *CollideSystem { return &CollideSystem{} }

func (s *CollideSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	s.bodies = s.bodies[:0]
	ecs.ForEach(w, component.CollisionsComponent.Kind(), func(e ecs.Entity, c *component.Collisions) {
		for _, v := range c.Volumes {
			s.bodies = append(s.bodies, Body{Entity: e, Volume: v})
		}
	})

	for i := range s.bodies {
		for j := i + 1; j < len(s.bodies); j++ {
			a, b := s.bodies[i], s.bodies[j]
			if a.Entity == b.Entity {
				continue
			}
			contact, ok := geometry.Overlap(a.Volume.Box, b.Volume.Box)
			if !ok || !FilterPair(w, a, b) {
				continue
			}
			typ := EventHitContact
			if a.Volume.Type.Kind == component.Extrusion {
				typ = EventExtrusionContact
			}
			w.Events().Push(ecs.Event{Type: typ, Entity: a.Entity, Data: Contact{A: a, B: b, Contact: contact}})
		}
	}
	clear(s.bodies)
}
