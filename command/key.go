package command

import (
	"fmt"
	"strings"

	"github.com/milk9111/fightcore/input"
)

// Key is a facing-relative input bitset. Forward always points toward the
// side a right-facing entity looks at.
type Key uint32

const (
	KeyA Key = 1 << iota
	KeyB
	KeyC
	KeyD
	KeyDown
	KeyUp
	KeyForward
	KeyBackward
	KeyDownForward
	KeyDownBackward
	KeyUpForward
	KeyUpBackward
	KeyNeutral
)

const (
	buttonKeys    = KeyA | KeyB | KeyC | KeyD
	directionKeys = KeyDown | KeyUp | KeyForward | KeyBackward |
		KeyDownForward | KeyDownBackward | KeyUpForward | KeyUpBackward | KeyNeutral
)

// KeyOf converts held input bits into keys, mirroring left and right when
// the entity faces left. No held direction yields KeyNeutral.
func KeyOf(down input.Flag, facing input.Direction) Key {
	if facing == input.FacingLeft {
		down = input.Mirror(down)
	}

	var k Key
	if down&input.A != 0 {
		k |= KeyA
	}
	if down&input.B != 0 {
		k |= KeyB
	}
	if down&input.C != 0 {
		k |= KeyC
	}
	if down&input.D != 0 {
		k |= KeyD
	}

	switch {
	case down&input.RightDown != 0:
		k |= KeyDownForward
	case down&input.LeftDown != 0:
		k |= KeyDownBackward
	case down&input.RightUp != 0:
		k |= KeyUpForward
	case down&input.LeftUp != 0:
		k |= KeyUpBackward
	case down&input.Right != 0:
		k |= KeyForward
	case down&input.Left != 0:
		k |= KeyBackward
	case down&input.Down != 0:
		k |= KeyDown
	case down&input.Up != 0:
		k |= KeyUp
	default:
		k |= KeyNeutral
	}
	return k
}

var numpad = map[byte]Key{
	'1': KeyDownBackward,
	'2': KeyDown,
	'3': KeyDownForward,
	'4': KeyBackward,
	'5': KeyNeutral,
	'6': KeyForward,
	'7': KeyUpBackward,
	'8': KeyUp,
	'9': KeyUpForward,
	'A': KeyA,
	'B': KeyB,
	'C': KeyC,
	'D': KeyD,
}

// parseToken reads one numpad digit or button letter.
func parseToken(tok string) (Key, error) {
	tok = strings.ToUpper(strings.TrimSpace(tok))
	if len(tok) != 1 {
		return 0, fmt.Errorf("%w: %q", ErrBadToken, tok)
	}
	k, ok := numpad[tok[0]]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrBadToken, tok)
	}
	return k, nil
}

func (k Key) String() string {
	if k == 0 {
		return "-"
	}
	var parts []string
	for _, d := range "123456789ABCD" {
		if bit := numpad[byte(d)]; k&bit != 0 {
			parts = append(parts, string(d))
		}
	}
	return strings.Join(parts, "+")
}
