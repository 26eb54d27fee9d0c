package component

// PlayerTag names the controller slot that drives an entity ("p1", "p2").
type PlayerTag struct {
	ID string
}

var PlayerTagComponent = NewComponent[PlayerTag]()
