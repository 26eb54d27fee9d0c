package input

import (
	"fmt"
	"strings"
)

// Direction is the side an entity faces. Right is the reference facing for
// command recognition.
type Direction uint8

const (
	FacingRight Direction = iota
	FacingLeft
)

func (d Direction) String() string {
	if d == FacingLeft {
		return "left"
	}
	return "right"
}

// Opposite returns the other facing.
func (d Direction) Opposite() Direction {
	if d == FacingLeft {
		return FacingRight
	}
	return FacingLeft
}

// ParseDirection accepts "left" or "right" (case-insensitive). Empty means right.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "right":
		return FacingRight, nil
	case "left":
		return FacingLeft, nil
	}
	return FacingRight, fmt.Errorf("input: unknown direction %q", s)
}

// Mirror swaps left and right bits, diagonals included.
func Mirror(f Flag) Flag {
	out := f &^ (Right | Left | RightDown | LeftDown | RightUp | LeftUp)
	if f&Right != 0 {
		out |= Left
	}
	if f&Left != 0 {
		out |= Right
	}
	if f&RightDown != 0 {
		out |= LeftDown
	}
	if f&LeftDown != 0 {
		out |= RightDown
	}
	if f&RightUp != 0 {
		out |= LeftUp
	}
	if f&LeftUp != 0 {
		out |= RightUp
	}
	return out
}
