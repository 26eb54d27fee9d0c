package system

import (
	"github.com/milk9111/fightcore/ecs"
	"github.com/milk9111/fightcore/ecs/component"
	"github.com/milk9111/fightcore/input"
)

// InputSystem samples each entity's raw controller state and pushes the
// result into its history together with the facing at sample time.
type InputSystem struct {
	threshold float64
	capacity  int
}

func NewInputSystem(threshold float64, capacity int) *InputSystem {
	if threshold <= 0 {
		threshold = input.DefaultAxisThreshold
	}
	if capacity <= 0 {
		capacity = input.DefaultBufferSize
	}
	return &InputSystem{threshold: threshold, capacity: capacity}
}

func (s *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.InputComponent.Kind(), func(e ecs.Entity, in *component.Input) {
		if in.History == nil {
			in.History = input.NewBuffer(s.capacity)
		}
		sig := input.Sample(in.Raw, in.Previous(), s.threshold)
		in.History.Push(input.Frame{Signal: sig, Facing: facing(w, e)})
	})
}

// facing defaults to right for entities without a Direction.
func facing(w *ecs.World, e ecs.Entity) input.Direction {
	if d, ok := ecs.Get(w, e, component.DirectionComponent.Kind()); ok {
		return d.Facing
	}
	return input.FacingRight
}
