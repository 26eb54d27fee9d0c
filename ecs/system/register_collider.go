package system

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/fightcore/ecs"
	"github.com/milk9111/fightcore/ecs/component"
	"github.com/milk9111/fightcore/geometry"
	"github.com/milk9111/fightcore/logger"
)

// RegisterColliderSystem rebuilds every entity's collision volumes from its
// current pose. Last tick's volumes are always discarded first.
type RegisterColliderSystem struct{}

func NewRegisterColliderSystem() *RegisterColliderSystem { return &RegisterColliderSystem{} }

func (s *RegisterColliderSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach3(w, component.TransformComponent.Kind(), component.PoseComponent.Kind(), component.AnimationStateComponent.Kind(), func(e ecs.Entity, t *component.Transform, pose *component.Pose, state *component.AnimationState) {
		col := ecs.GetOrAdd(w, e, component.CollisionsComponent.Kind())
		if col == nil {
			return
		}
		col.Reset()
		count, _ := ecs.Get(w, e, component.SkillCountComponent.Kind())
		r := registration{
			entity: e,
			key:    state.Key,
			count:  count.Count(state.Key),
			out:    col,
		}
		r.add(pose, t.Matrix())
	})
}

// registration carries what every volume of one entity shares. Nested
// instances register under the owner's identity and animation key.
type registration struct {
	entity ecs.Entity
	key    component.AnimationKey
	count  uint64
	out    *component.Collisions
}

func (r registration) add(pose *component.Pose, root mgl64.Mat3) {
	parents := make([]int, len(pose.Nodes))
	locals := make([]mgl64.Mat3, len(pose.Nodes))
	for i, n := range pose.Nodes {
		parents[i] = n.Parent
		locals[i] = n.Local.Matrix()
	}
	globals, valid, err := geometry.Globals(root, parents, locals)
	if err != nil {
		logger.L().Debug("collider: bad pose", "entity", r.entity, "clip", pose.Key, "err", err)
	}

	for i, n := range pose.Nodes {
		if !valid[i] || !n.Visible {
			continue
		}
		if n.Instance != nil {
			r.add(n.Instance, globals[i])
		}
		if n.Tag == nil || n.Tag.Collision == nil {
			continue
		}
		v := component.Volume{
			Part: n.Part,
			Box:  geometry.BoxFromMatrix(globals[i]),
			Type: *n.Tag.Collision,
		}
		if v.Type.HasID() {
			v.ID = &component.DamageCollisionID{
				Owner: uint64(r.entity),
				Key:   r.key,
				Swing: v.Type.Attack.Swing,
				Count: r.count,
			}
		}
		r.out.Add(v)
	}
}
