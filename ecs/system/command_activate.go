package system

import (
	"github.com/milk9111/fightcore/command"
	"github.com/milk9111/fightcore/ecs"
	"github.com/milk9111/fightcore/ecs/component"
)

// CommandActivateSystem rebuilds ActiveCommand from this tick's command
// events. Sets are emptied first so nothing carries over between ticks.
type CommandActivateSystem struct{}

func NewCommandActivateSystem() *CommandActivateSystem { return &CommandActivateSystem{} }

func (s *CommandActivateSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.ActiveCommandComponent.Kind(), func(_ ecs.Entity, ac *component.ActiveCommand) {
		ac.Clear()
	})

	for _, evt := range w.Events().Drain(EventCommand) {
		id, ok := evt.Data.(command.ID)
		if !ok {
			continue
		}
		if ac, ok := ecs.Get(w, evt.Entity, component.ActiveCommandComponent.Kind()); ok {
			ac.Add(id)
		}
	}
}
