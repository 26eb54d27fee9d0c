package config

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/ini.v1"
)

// Binding maps one player's buttons and directions to keyboard key names
// and an optional gamepad index (-1 for none). Key names are ebiten's,
// e.g. "KeyZ" or "ArrowLeft".
type Binding struct {
	A, B, C, D            string
	Up, Down, Left, Right string
	Gamepad               int
}

const defaultBindings = `
[p1]
a       = KeyZ
b       = KeyX
c       = KeyC
d       = KeyV
up      = KeyW
down    = KeyS
left    = KeyA
right   = KeyD
gamepad = 0

[p2]
a       = KeyJ
b       = KeyK
c       = KeyL
d       = Semicolon
up      = ArrowUp
down    = ArrowDown
left    = ArrowLeft
right   = ArrowRight
gamepad = 1
`

func bindingOptions() ini.LoadOptions {
	return ini.LoadOptions{
		Insensitive:             false,
		IgnoreInlineComment:     false,
		SkipUnrecognizableLines: true,
		AllowShadows:            false,
	}
}

// LoadBindings reads per-player key bindings, one section per player tag.
// The built-in bindings are loaded first; a missing file leaves them as is.
func LoadBindings(path string) (map[string]Binding, error) {
	sources := []any{[]byte(defaultBindings)}
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			sources = append(sources, path)
		}
	}
	f, err := ini.LoadSources(bindingOptions(), sources[0], sources[1:]...)
	if err != nil {
		return nil, fmt.Errorf("config: bindings: %w", err)
	}
	return readBindings(f)
}

// ParseBindings reads bindings from data layered over the built-in ones.
func ParseBindings(data []byte) (map[string]Binding, error) {
	f, err := ini.LoadSources(bindingOptions(), []byte(defaultBindings), data)
	if err != nil {
		return nil, fmt.Errorf("config: bindings: %w", err)
	}
	return readBindings(f)
}

func readBindings(f *ini.File) (map[string]Binding, error) {
	out := map[string]Binding{}
	for _, section := range f.Sections() {
		name := section.Name()
		if name == ini.DefaultSection {
			continue
		}
		key := func(k string) string {
			return strings.TrimSpace(section.Key(k).String())
		}
		b := Binding{
			A:       key("a"),
			B:       key("b"),
			C:       key("c"),
			D:       key("d"),
			Up:      key("up"),
			Down:    key("down"),
			Left:    key("left"),
			Right:   key("right"),
			Gamepad: section.Key("gamepad").MustInt(-1),
		}
		if b.Gamepad < -1 {
			return nil, fmt.Errorf("%w: bindings [%s]: gamepad %d", ErrInvalid, name, b.Gamepad)
		}
		out[name] = b
	}
	return out, nil
}

// Tags returns the bound player tags in sorted order.
func Tags(bindings map[string]Binding) []string {
	tags := make([]string, 0, len(bindings))
	for tag := range bindings {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}
