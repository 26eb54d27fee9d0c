package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/milk9111/fightcore/command"
	"github.com/milk9111/fightcore/ecs/system"
)

func TestDefaultValidates(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.FacingPolicy() != command.FacingAtInput {
		t.Fatalf("facing policy = %v", cfg.FacingPolicy())
	}
	if cfg.ExtrusionPolicy() != system.ExtrudeHorizontal {
		t.Fatalf("extrusion policy = %v", cfg.ExtrusionPolicy())
	}
	tol := cfg.Tolerance()
	if tol.Slack != command.DefaultSlack || tol.Window != command.DefaultWindow {
		t.Fatalf("tolerance = %+v", tol)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr bool
		check   func(t *testing.T, c *Config)
	}{
		{
			name: "empty keeps defaults",
			yaml: "",
			check: func(t *testing.T, c *Config) {
				if len(c.Players) != 2 || c.TickRate != system.DefaultTickRate {
					t.Fatalf("got %+v", c)
				}
			},
		},
		{
			name: "overrides",
			yaml: "tick_rate: 30\nstrict: true\ncollision:\n  extrusion: both\ncommand:\n  slack: 4\n",
			check: func(t *testing.T, c *Config) {
				if c.TickRate != 30 || !c.Strict {
					t.Fatalf("got tick=%d strict=%v", c.TickRate, c.Strict)
				}
				if c.ExtrusionPolicy() != system.ExtrudeBoth {
					t.Fatalf("extrusion = %v", c.ExtrusionPolicy())
				}
				if c.Command.Slack != 4 || c.Command.Window != command.DefaultWindow {
					t.Fatalf("command = %+v", c.Command)
				}
			},
		},
		{
			name: "players replace the default list",
			yaml: "players:\n  - tag: solo\n    character: fighter.yaml\n",
			check: func(t *testing.T, c *Config) {
				if len(c.Players) != 1 || c.Players[0].Tag != "solo" {
					t.Fatalf("players = %+v", c.Players)
				}
			},
		},
		{name: "bad extrusion", yaml: "collision:\n  extrusion: vertical\n", wantErr: true},
		{name: "bad facing policy", yaml: "input:\n  facing: sideways\n", wantErr: true},
		{name: "zero tick rate", yaml: "tick_rate: 0\n", wantErr: true},
		{name: "threshold out of range", yaml: "input:\n  axis_threshold: 1.5\n", wantErr: true},
		{name: "duplicate tags", yaml: "players:\n  - {tag: p1, character: a.yaml}\n  - {tag: p1, character: b.yaml}\n", wantErr: true},
		{name: "missing character", yaml: "players:\n  - {tag: p1}\n", wantErr: true},
		{name: "bad player facing", yaml: "players:\n  - {tag: p1, character: a.yaml, facing: up}\n", wantErr: true},
		{name: "malformed yaml", yaml: "tick_rate: [\n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.yaml))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %+v", cfg)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tt.check(t, cfg)
		})
	}
}

func TestValidateJoinsErrors(t *testing.T) {
	cfg := Default()
	cfg.TickRate = -1
	cfg.Players = nil
	err := cfg.Validate()
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
	joined, ok := err.(interface{ Unwrap() []error })
	if !ok || len(joined.Unwrap()) != 2 {
		t.Fatalf("expected two joined errors, got %v", err)
	}
}

func TestLoadWrapsPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fight.yaml")
	if err := os.WriteFile(path, []byte("tick_rate: -5\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	_, err := Load(path)
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist, got %v", err)
	}
}

func TestBindings(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		b, err := LoadBindings("")
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		if got := Tags(b); len(got) != 2 || got[0] != "p1" || got[1] != "p2" {
			t.Fatalf("tags = %v", got)
		}
		if b["p1"].A != "KeyZ" || b["p1"].Gamepad != 0 || b["p2"].Left != "ArrowLeft" {
			t.Fatalf("bindings = %+v", b)
		}
	})

	t.Run("missing file keeps defaults", func(t *testing.T) {
		b, err := LoadBindings(filepath.Join(t.TempDir(), "nope.ini"))
		if err != nil || len(b) != 2 {
			t.Fatalf("got %v, %v", b, err)
		}
	})

	t.Run("file overrides single keys", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "keys.ini")
		data := "[p1]\na = KeyJ\ngamepad = -1\n\n[p3]\nup = KeyI\n"
		if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
		b, err := LoadBindings(path)
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		if b["p1"].A != "KeyJ" || b["p1"].B != "KeyX" || b["p1"].Gamepad != -1 {
			t.Fatalf("p1 = %+v", b["p1"])
		}
		if b["p3"].Up != "KeyI" || b["p3"].Gamepad != -1 {
			t.Fatalf("p3 = %+v", b["p3"])
		}
	})

	t.Run("bad gamepad index", func(t *testing.T) {
		if _, err := ParseBindings([]byte("[p1]\ngamepad = -4\n")); !errors.Is(err, ErrInvalid) {
			t.Fatalf("expected ErrInvalid, got %v", err)
		}
	})
}
