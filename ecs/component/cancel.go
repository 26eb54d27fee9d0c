package component

import (
	"fmt"
	"strings"

	"github.com/milk9111/fightcore/command"
)

// Cancel lists what the current keyframe may be cancelled into.
type Cancel uint64

const (
	CancelSpecialSkill Cancel = 1 << iota
	CancelFrontJump
	CancelVerticalJump
	CancelBackJump
	CancelBarrage
	CancelNormalSkill
	CancelWalk
	CancelBack
	CancelFrontDash
	CancelBackDash
	CancelCrouch
	CancelStance
	CancelCrouchGuard
	CancelStandGuard

	CancelMove  = CancelWalk | CancelBack
	CancelDash  = CancelFrontDash | CancelBackDash
	CancelJump  = CancelFrontJump | CancelVerticalJump | CancelBackJump
	CancelSkill = CancelSpecialSkill | CancelNormalSkill
	CancelGuard = CancelCrouchGuard | CancelStandGuard
)

// cancelNames is ordered so aliases are written before single flags.
var cancelNames = []struct {
	flag Cancel
	name string
}{
	{CancelMove, "move"},
	{CancelDash, "dash"},
	{CancelJump, "jump"},
	{CancelSkill, "skill"},
	{CancelGuard, "guard"},
	{CancelSpecialSkill, "special"},
	{CancelNormalSkill, "normal"},
	{CancelFrontJump, "front_jump"},
	{CancelVerticalJump, "vertical_jump"},
	{CancelBackJump, "back_jump"},
	{CancelBarrage, "barrage"},
	{CancelWalk, "walk"},
	{CancelBack, "back"},
	{CancelFrontDash, "front_dash"},
	{CancelBackDash, "back_dash"},
	{CancelCrouch, "crouch"},
	{CancelStance, "stance"},
	{CancelStandGuard, "stand_guard"},
	{CancelCrouchGuard, "crouch_guard"},
}

func (c Cancel) Has(o Cancel) bool {
	return c&o == o
}

// IsCancelable reports whether a recognized command may interrupt a
// keyframe carrying these flags.
func (c Cancel) IsCancelable(id command.ID) bool {
	switch id {
	case command.Back:
		return c.Has(CancelBack)
	case command.Walk:
		return c.Has(CancelWalk)
	case command.BackDash:
		return c.Has(CancelBackDash)
	case command.Dash:
		return c.Has(CancelFrontDash)
	case command.VerticalJump:
		return c.Has(CancelVerticalJump)
	case command.BackJump:
		return c.Has(CancelBackJump)
	case command.FrontJump:
		return c.Has(CancelFrontJump)
	case command.Crouch, command.BackCrouch, command.FrontCrouch:
		return c.Has(CancelCrouch)
	case command.A, command.B, command.C, command.D:
		return c.Has(CancelNormalSkill)
	case command.QuarterCircleForward, command.QuarterCircleBack, command.DragonPunch:
		return c.Has(CancelSpecialSkill)
	}
	return false
}

// ParseCancel combines flag names, aliases included.
func ParseCancel(names []string) (Cancel, error) {
	var c Cancel
	for _, name := range names {
		flag, ok := lookupCancel(strings.ToLower(strings.TrimSpace(name)))
		if !ok {
			return 0, fmt.Errorf("component: unknown cancel flag %q", name)
		}
		c |= flag
	}
	return c, nil
}

func lookupCancel(name string) (Cancel, bool) {
	for _, n := range cancelNames {
		if n.name == name {
			return n.flag, true
		}
	}
	return 0, false
}

// Names lists the flags, preferring aliases when every member is set.
func (c Cancel) Names() []string {
	var out []string
	rest := c
	for _, n := range cancelNames {
		if rest.Has(n.flag) {
			out = append(out, n.name)
			rest &^= n.flag
		}
	}
	return out
}

// Condition describes the entity state that gates animation transitions.
type Condition uint64

const (
	ConditionKnockback Condition = 1 << iota
	ConditionAir
)

var ConditionComponent = NewComponent[Condition]()

func (c Condition) Has(o Condition) bool {
	return c&o == o
}
