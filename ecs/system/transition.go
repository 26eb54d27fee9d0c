package system

import (
	"github.com/milk9111/fightcore/animation"
	"github.com/milk9111/fightcore/ecs"
	"github.com/milk9111/fightcore/ecs/component"
)

// TransitionSystem picks the clip each entity plays this tick. Knockback
// forces the damage clip. Otherwise the highest ranked active command whose
// skill may interrupt the current keyframe wins. Finished clips, and loops
// no command holds anymore, fall back to neutral.
//
// Transitions also run while the clock is frozen for hitstop. A keyframe
// that allows it can be cancelled during the freeze: the new clip waits on
// frame zero and plays once the freeze ends, since a restart keeps it.
type TransitionSystem struct {
	library *animation.Library
}

func NewTransitionSystem(library *animation.Library) *TransitionSystem {
	return &TransitionSystem{library: library}
}

func (s *TransitionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach3(w, component.AnimationStateComponent.Kind(), component.AnimationClockComponent.Kind(), component.SkillSetComponent.Kind(), func(e ecs.Entity, state *component.AnimationState, clock *component.AnimationClock, set *component.SkillSet) {
		next, restart := s.next(w, e, state, set)
		if next.IsZero() || (next == state.Key && !restart) {
			return
		}
		state.Key = next
		state.Finished = false
		clock.Restart()
		w.Events().Push(ecs.Event{Type: EventAnimationChanged, Entity: e, Data: next})
	})
}

// next returns the clip to play and whether it starts over even when it is
// the clip already playing.
func (s *TransitionSystem) next(w *ecs.World, e ecs.Entity, state *component.AnimationState, set *component.SkillSet) (component.AnimationKey, bool) {
	if cond, ok := ecs.Get(w, e, component.ConditionComponent.Kind()); ok && cond.Has(component.ConditionKnockback) {
		return set.Damage, false
	}

	pose, _ := ecs.Get(w, e, component.PoseComponent.Kind())
	cancel := pose.Cancel()
	idle := state.Finished || state.Key.IsZero() || state.Key == set.Neutral
	if active, ok := ecs.Get(w, e, component.ActiveCommandComponent.Kind()); ok {
		for _, id := range active.Descending() {
			key, ok := set.Skill(id)
			if !ok {
				continue
			}
			if key == state.Key && !state.Finished {
				return key, false
			}
			if idle || cancel.IsCancelable(id) {
				return key, state.Finished
			}
		}
	}

	if state.Finished {
		return set.Neutral, true
	}
	if state.Key.IsZero() {
		return set.Neutral, false
	}
	if clip, ok := s.library.Clip(state.Key); ok && clip.Loop {
		return set.Neutral, false
	}
	return state.Key, false
}
