package input

// DefaultAxisThreshold is the stick deflection above which a direction counts as held.
const DefaultAxisThreshold = 0.2

// RawState is one controller read for one player.
// AxisX is positive to the right, AxisY positive upward.
type RawState struct {
	A, B, C, D   bool
	AxisX, AxisY float64
}

// Signal is the per-tick snapshot of one player's inputs.
type Signal struct {
	Down     Flag
	Pushed   Flag
	Released Flag
}

// Sample converts a raw read into a Signal, diffing against prev.
// With no previous signal every held input counts as pushed.
func Sample(raw RawState, prev *Signal, threshold float64) Signal {
	down := decodeButtons(raw) | decodeStick(raw.AxisX, raw.AxisY, threshold)
	return NewSignal(down, prev)
}

// NewSignal builds a Signal from already decoded bits.
func NewSignal(down Flag, prev *Signal) Signal {
	if prev == nil {
		return Signal{Down: down, Pushed: down}
	}
	changed := down ^ prev.Down
	return Signal{
		Down:     down,
		Pushed:   down & changed,
		Released: ^down & changed,
	}
}

func decodeButtons(raw RawState) Flag {
	var f Flag
	if raw.A {
		f |= A
	}
	if raw.B {
		f |= B
	}
	if raw.C {
		f |= C
	}
	if raw.D {
		f |= D
	}
	return f
}

// decodeStick checks diagonals before single axes, so exactly one
// directional bit is produced.
func decodeStick(lr, ud, threshold float64) Flag {
	right := lr > threshold
	left := lr < -threshold
	up := ud > threshold
	down := ud < -threshold

	switch {
	case up && right:
		return RightUp
	case up && left:
		return LeftUp
	case down && right:
		return RightDown
	case down && left:
		return LeftDown
	case right:
		return Right
	case left:
		return Left
	case up:
		return Up
	case down:
		return Down
	}
	return 0
}
