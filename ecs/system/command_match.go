package system

import (
	"github.com/milk9111/fightcore/command"
	"github.com/milk9111/fightcore/ecs"
	"github.com/milk9111/fightcore/ecs/component"
)

// CommandMatchSystem scans every input history against the entity's command
// table and emits one EventCommand per recognized command.
type CommandMatchSystem struct {
	policy command.FacingPolicy
}

func NewCommandMatchSystem(policy command.FacingPolicy) *CommandMatchSystem {
	return &CommandMatchSystem{policy: policy}
}

func (s *CommandMatchSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.InputComponent.Kind(), component.CommandTableComponent.Kind(), func(e ecs.Entity, in *component.Input, ct *component.CommandTable) {
		if ct.Table == nil || in.History.Len() == 0 {
			return
		}
		keys := command.Keys(in.History.Frames(), facing(w, e), s.policy)
		for _, id := range ct.Table.Match(keys) {
			w.Events().Push(ecs.Event{Type: EventCommand, Entity: e, Data: id})
		}
	})
}
