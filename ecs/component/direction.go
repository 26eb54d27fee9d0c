package component

import "github.com/milk9111/fightcore/input"

// Direction is the side an entity currently faces.
type Direction struct {
	Facing input.Direction
}

var DirectionComponent = NewComponent[Direction]()
