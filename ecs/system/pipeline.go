package system

import (
	"github.com/milk9111/fightcore/animation"
	"github.com/milk9111/fightcore/command"
	"github.com/milk9111/fightcore/ecs"
)

// DefaultTickRate is the fixed simulation rate in ticks per second.
const DefaultTickRate = 60

// Options configures the tick pipeline. Zero values select defaults.
type Options struct {
	Library       *animation.Library
	TickRate      int
	AxisThreshold float64
	BufferSize    int
	Facing        command.FacingPolicy
	Extrusion     ExtrusionPolicy
	Rule          HitRule
	Strict        bool
}

// Pipeline runs the systems of one tick in their fixed order:
//
//	input, command match, command activate, condition, transition,
//	animation, move, skill count, direction, register collider, collide,
//	damage judge, apply hit info, extrude, knockback
//
// Each stage sees state fully settled by the stages before it.
type Pipeline struct {
	scheduler *ecs.Scheduler
	judge     *DamageJudgeSystem
}

func NewPipeline(opts Options) *Pipeline {
	rate := opts.TickRate
	if rate <= 0 {
		rate = DefaultTickRate
	}
	dt := 1 / float64(rate)
	judge := NewDamageJudgeSystem(opts.Rule, opts.Strict)

	return &Pipeline{
		judge: judge,
		scheduler: ecs.NewScheduler(
			NewInputSystem(opts.AxisThreshold, opts.BufferSize),
			NewCommandMatchSystem(opts.Facing),
			NewCommandActivateSystem(),
			NewConditionSystem(),
			NewTransitionSystem(opts.Library),
			NewAnimationSystem(opts.Library, dt),
			NewMoveSystem(opts.Library),
			NewSkillCountSystem(),
			NewDirectionSystem(),
			NewRegisterColliderSystem(),
			NewCollideSystem(),
			judge,
			NewApplyHitInfoSystem(),
			NewExtrudeSystem(opts.Extrusion),
			NewKnockbackSystem(dt),
		),
	}
}

// Update runs one tick and closes it.
func (p *Pipeline) Update(w *ecs.World) {
	if p == nil {
		return
	}
	p.scheduler.Update(w)
}

// SetHitRule swaps the judge's rule between ticks.
func (p *Pipeline) SetHitRule(rule HitRule) {
	p.judge.SetRule(rule)
}

func (p *Pipeline) Systems() []ecs.System {
	return p.scheduler.Systems()
}
