package component

import "github.com/milk9111/fightcore/input"

// Input carries the controller read for this tick and the sampled history.
// The host writes Raw before the tick; the input system samples it into
// History.
type Input struct {
	Raw     input.RawState
	History *input.Buffer
}

var InputComponent = NewComponent[Input]()

// Previous returns the newest buffered signal, if any.
func (in *Input) Previous() *input.Signal {
	if in == nil {
		return nil
	}
	f, ok := in.History.Last()
	if !ok {
		return nil
	}
	return &f.Signal
}
