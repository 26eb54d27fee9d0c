package input

import "strings"

// Flag is a bitset with one bit per logical input.
type Flag uint32

const (
	A Flag = 1 << iota
	B
	C
	D
	Down
	Up
	Right
	Left
	RightDown
	LeftDown
	RightUp
	LeftUp
)

const (
	Buttons    = A | B | C | D
	Directions = Down | Up | Right | Left | RightDown | LeftDown | RightUp | LeftUp
)

// Has reports whether every bit of o is set in f.
func (f Flag) Has(o Flag) bool {
	return f&o == o
}

// Any reports whether at least one bit of o is set in f.
func (f Flag) Any(o Flag) bool {
	return f&o != 0
}

// Direction returns only the directional bits.
func (f Flag) Direction() Flag {
	return f & Directions
}

var flagNames = []struct {
	flag Flag
	name string
}{
	{Up, "8"},
	{Down, "2"},
	{Right, "6"},
	{Left, "4"},
	{RightUp, "9"},
	{RightDown, "3"},
	{LeftUp, "7"},
	{LeftDown, "1"},
	{A, "A"},
	{B, "B"},
	{C, "C"},
	{D, "D"},
}

// String renders the flag in numpad notation as seen by a right-facing player.
func (f Flag) String() string {
	if f == 0 {
		return "5"
	}
	var sb strings.Builder
	for _, n := range flagNames {
		if f&n.flag != 0 {
			sb.WriteString(n.name)
		}
	}
	return sb.String()
}
