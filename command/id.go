package command

import "fmt"

// ID names a recognized command. Higher values outrank lower ones when the
// transition logic has to pick one.
type ID int

const (
	Walk ID = iota + 1
	Back
	Crouch
	BackCrouch
	FrontCrouch
	Dash
	BackDash
	VerticalJump
	BackJump
	FrontJump
	A
	B
	C
	D
	QuarterCircleForward
	QuarterCircleBack
	DragonPunch
)

var idNames = map[ID]string{
	Walk:                 "walk",
	Back:                 "back",
	Crouch:               "crouch",
	BackCrouch:           "back_crouch",
	FrontCrouch:          "front_crouch",
	Dash:                 "dash",
	BackDash:             "back_dash",
	VerticalJump:         "vertical_jump",
	BackJump:             "back_jump",
	FrontJump:            "front_jump",
	A:                    "a",
	B:                    "b",
	C:                    "c",
	D:                    "d",
	QuarterCircleForward: "quarter_circle_forward",
	QuarterCircleBack:    "quarter_circle_back",
	DragonPunch:          "dragon_punch",
}

func (id ID) String() string {
	if name, ok := idNames[id]; ok {
		return name
	}
	return fmt.Sprintf("command(%d)", int(id))
}

// ParseID resolves a command name as written in data files.
func ParseID(name string) (ID, error) {
	for id, n := range idNames {
		if n == name {
			return id, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCommand, name)
}

// UnmarshalText lets IDs appear as map keys and values in YAML.
func (id *ID) UnmarshalText(text []byte) error {
	parsed, err := ParseID(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}
