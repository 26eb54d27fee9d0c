package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/fightcore/command"
	"github.com/milk9111/fightcore/ecs/system"
	"github.com/milk9111/fightcore/input"
	"github.com/milk9111/fightcore/prefabs"
)

var ErrInvalid = errors.New("config: invalid")

type Config struct {
	TickRate  int             `yaml:"tick_rate"`
	Strict    bool            `yaml:"strict"`
	Log       LogConfig       `yaml:"log"`
	Input     InputConfig     `yaml:"input"`
	Command   CommandConfig   `yaml:"command"`
	Collision CollisionConfig `yaml:"collision"`
	HitRule   HitRuleConfig   `yaml:"hit_rule"`
	Players   []PlayerConfig  `yaml:"players"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type InputConfig struct {
	BufferSize    int     `yaml:"buffer_size"`
	AxisThreshold float64 `yaml:"axis_threshold"`
	Facing        string  `yaml:"facing"`
}

// CommandConfig holds the matcher tolerances used by tables that do not
// set their own.
type CommandConfig struct {
	Slack  int `yaml:"slack"`
	Window int `yaml:"window"`
}

type CollisionConfig struct {
	Extrusion string `yaml:"extrusion"`
}

type HitRuleConfig struct {
	Script string `yaml:"script"`
}

type PlayerConfig struct {
	Tag       string  `yaml:"tag"`
	Character string  `yaml:"character"`
	X         float64 `yaml:"x"`
	Y         float64 `yaml:"y"`
	Facing    string  `yaml:"facing"`
}

// Default is the configuration used for anything a file leaves out.
func Default() *Config {
	return &Config{
		TickRate: system.DefaultTickRate,
		Log:      LogConfig{Level: "info", Format: "console"},
		Input: InputConfig{
			BufferSize:    input.DefaultBufferSize,
			AxisThreshold: input.DefaultAxisThreshold,
			Facing:        "input",
		},
		Command:   CommandConfig{Slack: command.DefaultSlack, Window: command.DefaultWindow},
		Collision: CollisionConfig{Extrusion: "horizontal"},
		Players: []PlayerConfig{
			{Tag: "p1", Character: "fighter.yaml", X: -80, Facing: "right"},
			{Tag: "p2", Character: "fighter.yaml", X: 80, Facing: "left"},
		},
	}
}

// Load reads a YAML config over the defaults and validates it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every problem found, joined.
func (c *Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if c.TickRate <= 0 {
		bad("tick_rate must be positive, got %d", c.TickRate)
	}
	if c.Input.BufferSize <= 0 {
		bad("input.buffer_size must be positive, got %d", c.Input.BufferSize)
	}
	if c.Input.AxisThreshold <= 0 || c.Input.AxisThreshold >= 1 {
		bad("input.axis_threshold must be in (0, 1), got %v", c.Input.AxisThreshold)
	}
	if _, err := command.ParseFacingPolicy(c.Input.Facing); err != nil {
		errs = append(errs, err)
	}
	if c.Command.Slack < 0 || c.Command.Window < 1 {
		bad("command.slack must be >= 0 and command.window >= 1")
	}
	if _, err := system.ParseExtrusionPolicy(c.Collision.Extrusion); err != nil {
		errs = append(errs, err)
	}

	if len(c.Players) == 0 {
		bad("no players")
	}
	seen := map[string]bool{}
	for i, p := range c.Players {
		if strings.TrimSpace(p.Tag) == "" {
			bad("players[%d]: empty tag", i)
		} else if seen[p.Tag] {
			bad("players[%d]: duplicate tag %q", i, p.Tag)
		}
		seen[p.Tag] = true
		if strings.TrimSpace(p.Character) == "" {
			bad("players[%d]: no character", i)
		}
		if _, err := input.ParseDirection(p.Facing); err != nil {
			errs = append(errs, fmt.Errorf("players[%d]: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

// FacingPolicy returns the validated input facing policy.
func (c *Config) FacingPolicy() command.FacingPolicy {
	p, _ := command.ParseFacingPolicy(c.Input.Facing)
	return p
}

// ExtrusionPolicy returns the validated extrusion policy.
func (c *Config) ExtrusionPolicy() system.ExtrusionPolicy {
	p, _ := system.ParseExtrusionPolicy(c.Collision.Extrusion)
	return p
}

// Tolerance returns the command matcher defaults as a prefab tolerance.
func (c *Config) Tolerance() prefabs.Tolerance {
	return prefabs.Tolerance{Slack: c.Command.Slack, Window: c.Command.Window}
}
