package main

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/milk9111/fightcore/ecs"
	"github.com/milk9111/fightcore/ecs/component"
	"github.com/milk9111/fightcore/input"
	"github.com/milk9111/fightcore/input/gamepad"
	"github.com/milk9111/fightcore/logger"
	"github.com/milk9111/fightcore/prefabs"
	"github.com/milk9111/fightcore/replay"
	"github.com/milk9111/fightcore/sim"
)

const (
	baseWidth  = 1280
	baseHeight = 720
	groundY    = 600
)

var volumeColors = map[component.CollisionKind]color.RGBA{
	component.Extrusion:  colornames.Lightgrey,
	component.Damaged:    colornames.Limegreen,
	component.Blow:       colornames.Red,
	component.Throw:      colornames.Dodgerblue,
	component.Projectile: colornames.Orange,
}

type Game struct {
	sim      *sim.Sim
	source   *gamepad.Source
	recorder *sim.Recorder
	playback *replay.Reader
	watcher  *prefabs.Watcher

	paused bool
	debug  bool
	done   bool
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.debug = !g.debug
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
	}
	step := inpututil.IsKeyJustPressed(ebiten.KeyPeriod)

	g.applyReloads()

	if g.done || (g.paused && !step) {
		return nil
	}

	raw, err := g.nextInput()
	if err != nil {
		return err
	}
	if raw == nil {
		g.done = true
		logger.L().Info("game: replay finished", "tick", g.sim.Tick())
		return nil
	}

	if g.recorder != nil {
		return g.recorder.Step(raw)
	}
	g.sim.Step(raw)
	return nil
}

func (g *Game) nextInput() (map[string]input.RawState, error) {
	if g.playback == nil {
		return g.source.Read(), nil
	}
	f, err := g.playback.Next()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if f.Inputs == nil {
		f.Inputs = map[string]input.RawState{}
	}
	return f.Inputs, nil
}

// applyReloads swaps in edited tables and scripts between ticks.
func (g *Game) applyReloads() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case ch, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			if err := g.sim.Reload(ch.Path); err != nil {
				logger.L().Warn("game: reload failed", "path", ch.Path, "err", err)
			}
		case err, ok := <-g.watcher.Errors:
			if ok {
				logger.L().Warn("game: watcher", "err", err)
			}
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	vector.StrokeLine(screen, 0, groundY, baseWidth, groundY, 1, colornames.Dimgray, false)

	w := g.sim.World()
	for _, p := range g.sim.Players() {
		c, ok := ecs.Get(w, p.Entity, component.CollisionsComponent.Kind())
		if !ok {
			continue
		}
		for _, v := range c.Volumes {
			x, y := toScreen(v.Box.L, v.Box.T)
			clr := volumeColors[v.Type.Kind]
			fill := clr
			fill.A = 48
			vector.FillRect(screen, x, y, float32(v.Box.R-v.Box.L), float32(v.Box.T-v.Box.B), fill, false)
			vector.StrokeRect(screen, x, y, float32(v.Box.R-v.Box.L), float32(v.Box.T-v.Box.B), 1, clr, false)
		}
	}

	ebitenutil.DebugPrint(screen, g.status())
}

func (g *Game) status() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Tick: %d    FPS: %.2f", g.sim.Tick(), ebiten.ActualFPS())
	if g.paused {
		b.WriteString("    PAUSED")
	}
	if g.done {
		b.WriteString("    REPLAY DONE")
	}
	b.WriteString("\n")
	if !g.debug {
		return b.String()
	}
	for _, st := range g.sim.Snapshot().Players {
		fmt.Fprintf(&b, "%s %-24s x=%7.2f kb=%.3f cmds=%v damaged=%d\n",
			st.Tag, st.Anim, st.X, st.Knockback, st.Commands, len(st.Damaged))
	}
	return b.String()
}

// toScreen maps stage coordinates (origin at the centre of the floor,
// y up) to screen pixels.
func toScreen(x, y float64) (float32, float32) {
	return float32(baseWidth/2 + x), float32(groundY - y)
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
