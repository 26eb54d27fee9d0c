// Package gamepad reads keyboards and standard gamepads through ebiten and
// turns them into per-player raw input states.
package gamepad

import (
	"fmt"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/fightcore/config"
	"github.com/milk9111/fightcore/input"
)

type keys struct {
	a, b, c, d            ebiten.Key
	up, down, left, right ebiten.Key
}

type player struct {
	tag     string
	keys    keys
	gamepad int
}

// Source polls devices once per tick. It must be read on the ebiten
// update goroutine.
type Source struct {
	players  []player
	deadzone float64
}

// New builds a source from per-player bindings. deadzone 0 selects the
// default axis threshold.
func New(bindings map[string]config.Binding, deadzone float64) (*Source, error) {
	if deadzone <= 0 {
		deadzone = input.DefaultAxisThreshold
	}
	s := &Source{deadzone: deadzone}
	for _, tag := range config.Tags(bindings) {
		b := bindings[tag]
		var k keys
		for _, f := range []struct {
			dst  *ebiten.Key
			name string
		}{
			{&k.a, b.A}, {&k.b, b.B}, {&k.c, b.C}, {&k.d, b.D},
			{&k.up, b.Up}, {&k.down, b.Down}, {&k.left, b.Left}, {&k.right, b.Right},
		} {
			key, err := ParseKey(f.name)
			if err != nil {
				return nil, fmt.Errorf("gamepad: [%s]: %w", tag, err)
			}
			*f.dst = key
		}
		s.players = append(s.players, player{tag: tag, keys: k, gamepad: b.Gamepad})
	}
	return s, nil
}

// ParseKey accepts ebiten key names with or without the "Key" prefix.
func ParseKey(name string) (ebiten.Key, error) {
	name = strings.TrimSpace(name)
	var k ebiten.Key
	if err := k.UnmarshalText([]byte(name)); err == nil {
		return k, nil
	}
	if trimmed, ok := strings.CutPrefix(name, "Key"); ok && trimmed != "" {
		if err := k.UnmarshalText([]byte(trimmed)); err == nil {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown key %q", name)
}

// Read samples every bound player.
func (s *Source) Read() map[string]input.RawState {
	pads := ebiten.AppendGamepadIDs(nil)
	out := make(map[string]input.RawState, len(s.players))
	for _, p := range s.players {
		raw := p.keyboard()
		if p.gamepad >= 0 && p.gamepad < len(pads) {
			s.readPad(pads[p.gamepad], &raw)
		}
		out[p.tag] = raw
	}
	return out
}

func (p player) keyboard() input.RawState {
	raw := input.RawState{
		A: ebiten.IsKeyPressed(p.keys.a),
		B: ebiten.IsKeyPressed(p.keys.b),
		C: ebiten.IsKeyPressed(p.keys.c),
		D: ebiten.IsKeyPressed(p.keys.d),
	}
	if ebiten.IsKeyPressed(p.keys.left) {
		raw.AxisX -= 1
	}
	if ebiten.IsKeyPressed(p.keys.right) {
		raw.AxisX += 1
	}
	if ebiten.IsKeyPressed(p.keys.down) {
		raw.AxisY -= 1
	}
	if ebiten.IsKeyPressed(p.keys.up) {
		raw.AxisY += 1
	}
	return raw
}

func (s *Source) readPad(id ebiten.GamepadID, raw *input.RawState) {
	if !ebiten.IsStandardGamepadLayoutAvailable(id) {
		return
	}
	pressed := func(b ebiten.StandardGamepadButton) bool {
		return ebiten.IsStandardGamepadButtonPressed(id, b)
	}
	raw.A = raw.A || pressed(ebiten.StandardGamepadButtonRightBottom)
	raw.B = raw.B || pressed(ebiten.StandardGamepadButtonRightRight)
	raw.C = raw.C || pressed(ebiten.StandardGamepadButtonRightLeft)
	raw.D = raw.D || pressed(ebiten.StandardGamepadButtonRightTop)

	// ebiten's vertical stick axis grows downward.
	lx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
	ly := -ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
	if math.Hypot(lx, ly) > s.deadzone {
		raw.AxisX, raw.AxisY = lx, ly
	}

	if pressed(ebiten.StandardGamepadButtonLeftLeft) {
		raw.AxisX = -1
	}
	if pressed(ebiten.StandardGamepadButtonLeftRight) {
		raw.AxisX = 1
	}
	if pressed(ebiten.StandardGamepadButtonLeftBottom) {
		raw.AxisY = -1
	}
	if pressed(ebiten.StandardGamepadButtonLeftTop) {
		raw.AxisY = 1
	}
}
