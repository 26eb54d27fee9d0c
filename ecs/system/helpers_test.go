package system

import (
	"testing"

	"github.com/milk9111/fightcore/ecs"
	"github.com/milk9111/fightcore/ecs/component"
	"github.com/milk9111/fightcore/geometry"
)

const testDT = 1.0 / 60

var jabKey = component.AnimationKey{File: "fighter", Pack: "normal", Anim: "jab"}

func jabAttack() component.Attack {
	return component.Attack{
		Damage: 10,
		Ground: component.HitEffect{Frame: 18, Reaction: "stagger"},
		Air:    component.HitEffect{Frame: 30, Reaction: "launch"},
		Level:  component.HitLevel{Tier: component.Level2},
		Swing:  1,
	}
}

// node is a root pose node whose box is centred at (x, y) relative to the
// entity with size w by h.
func node(part int, kind component.CollisionKind, x, y, w, h float64) component.PoseNode {
	typ := &component.CollisionType{Kind: kind}
	if kind == component.Blow || kind == component.Projectile {
		typ.Attack = jabAttack()
	}
	return component.PoseNode{
		Part:    part,
		Parent:  -1,
		Local:   geometry.Transform{X: x, Y: y, ScaleX: w, ScaleY: h},
		Visible: true,
		Tag:     &component.KeyframeTag{Collision: typ},
	}
}

// fighter creates an entity posed with nodes at x.
func fighter(t *testing.T, w *ecs.World, x float64, nodes ...component.PoseNode) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	kb := component.NewKnockback()
	must(t, ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, ScaleX: 1, ScaleY: 1}))
	must(t, ecs.Add(w, e, component.AnimationStateComponent.Kind(), &component.AnimationState{Key: jabKey}))
	must(t, ecs.Add(w, e, component.AnimationClockComponent.Kind(), &component.AnimationClock{}))
	must(t, ecs.Add(w, e, component.PoseComponent.Kind(), &component.Pose{Key: jabKey, Nodes: nodes}))
	must(t, ecs.Add(w, e, component.KnockbackComponent.Kind(), &kb))
	must(t, ecs.Add(w, e, component.HitInfoComponent.Kind(), &component.HitInfo{}))
	return e
}

func must(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// hitLog records the victim's HitInfo between the judge and the applicator.
type hitLog struct {
	victim ecs.Entity
	seen   [][]component.DamageCollisionID
	info   []component.HitInfo
}

func (p *hitLog) Update(w *ecs.World) {
	info, _ := ecs.Get(w, p.victim, component.HitInfoComponent.Kind())
	var snapshot component.HitInfo
	if info != nil {
		snapshot = *info
		snapshot.DamageCollisionIDs = append([]component.DamageCollisionID(nil), info.DamageCollisionIDs...)
	}
	p.seen = append(p.seen, snapshot.DamageCollisionIDs)
	p.info = append(p.info, snapshot)
}

// combatScheduler is the collision half of the pipeline with the clock
// advance in front. Poses are fixed by the test, so no clips are needed.
func combatScheduler(p *hitLog) *ecs.Scheduler {
	return ecs.NewScheduler(
		ecs.SystemFunc(func(w *ecs.World) {
			ecs.ForEach(w, component.AnimationClockComponent.Kind(), func(_ ecs.Entity, c *component.AnimationClock) {
				c.Advance(testDT)
			})
		}),
		NewRegisterColliderSystem(),
		NewCollideSystem(),
		NewDamageJudgeSystem(nil, true),
		p,
		NewApplyHitInfoSystem(),
		NewExtrudeSystem(ExtrudeHorizontal),
		NewKnockbackSystem(testDT),
	)
}
