package system

import (
	"fmt"
	"strings"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/fightcore/ecs"
	"github.com/milk9111/fightcore/ecs/component"
)

// ExtrusionPolicy selects the axes along which bodies are pushed apart.
type ExtrusionPolicy uint8

const (
	// ExtrudeHorizontal separates along x by the horizontal penetration,
	// whatever the shape of the overlap.
	ExtrudeHorizontal ExtrusionPolicy = iota
	// ExtrudeBoth separates along the axis of least penetration.
	ExtrudeBoth
)

func (p ExtrusionPolicy) String() string {
	if p == ExtrudeBoth {
		return "both"
	}
	return "horizontal"
}

func ParseExtrusionPolicy(s string) (ExtrusionPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "horizontal":
		return ExtrudeHorizontal, nil
	case "both":
		return ExtrudeBoth, nil
	}
	return 0, fmt.Errorf("system: unknown extrusion policy %q", s)
}

// Separation returns the full correction that moves b away from a. Each
// side takes half of it in opposite directions.
func (p ExtrusionPolicy) Separation(c Contact) cp.Vector {
	if p == ExtrudeBoth {
		return cp.Vector{X: c.Contact.Normal.X * c.Contact.Depth, Y: c.Contact.Normal.Y * c.Contact.Depth}
	}
	nx := 1.0
	if c.B.Volume.Box.Center().X < c.A.Volume.Box.Center().X {
		nx = -1
	}
	return cp.Vector{X: nx * c.Contact.Overlap.X}
}

// ExtrudeSystem pushes overlapping Extrusion volumes apart. When several
// volume pairs of the same two entities overlap, only the deepest is used.
type ExtrudeSystem struct {
	policy ExtrusionPolicy
}

func NewExtrudeSystem(policy ExtrusionPolicy) *ExtrudeSystem {
	return &ExtrudeSystem{policy: policy}
}

type entityPair struct {
	a ecs.Entity
	b ecs.Entity
}

func (s *ExtrudeSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	events := w.Events().Drain(EventExtrusionContact)
	if len(events) == 0 {
		return
	}
	var order []entityPair
	deepest := map[entityPair]cp.Vector{}
	for _, evt := range events {
		c, ok := evt.Data.(Contact)
		if !ok {
			continue
		}
		sep := s.policy.Separation(c)
		pair := entityPair{c.A.Entity, c.B.Entity}
		prev, seen := deepest[pair]
		if !seen {
			order = append(order, pair)
		}
		if !seen || lengthSq(sep) > lengthSq(prev) {
			deepest[pair] = sep
		}
	}

	for _, pair := range order {
		ta, okA := ecs.Get(w, pair.a, component.TransformComponent.Kind())
		tb, okB := ecs.Get(w, pair.b, component.TransformComponent.Kind())
		if !okA || !okB {
			continue
		}
		sep := deepest[pair]
		ta.X -= sep.X / 2
		ta.Y -= sep.Y / 2
		tb.X += sep.X / 2
		tb.Y += sep.Y / 2
	}
}

func lengthSq(v cp.Vector) float64 {
	return v.X*v.X + v.Y*v.Y
}
