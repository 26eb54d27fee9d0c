package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/fightcore/config"
	"github.com/milk9111/fightcore/input/gamepad"
	"github.com/milk9111/fightcore/logger"
	"github.com/milk9111/fightcore/prefabs"
	"github.com/milk9111/fightcore/replay"
	"github.com/milk9111/fightcore/sim"
)

func main() {
	configPath := flag.String("config", "", "simulation config (yaml); defaults when empty")
	bindingsPath := flag.String("bindings", "bindings.ini", "key bindings (ini)")
	recordPath := flag.String("record", "", "record inputs to this replay file")
	replayPath := flag.String("replay", "", "play back a replay file instead of live input")
	watch := flag.Bool("watch", false, "hot reload command tables and scripts under prefabs/")
	debug := flag.Bool("debug", false, "start with the debug overlay shown")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	if *recordPath != "" && *replayPath != "" {
		log.Fatal("-record and -replay are exclusive")
	}

	cfg := config.Default()
	if *configPath != "" {
		c, err := config.Load(*configPath)
		if err != nil {
			log.Fatal(err)
		}
		cfg = c
	}

	game := &Game{debug: *debug}

	if *replayPath != "" {
		f, err := os.Open(*replayPath)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		rd := replay.NewReader(f)
		h, err := rd.Header()
		if err != nil {
			log.Fatal(err)
		}
		if len(h.Config) > 0 {
			if cfg, err = config.Parse(h.Config); err != nil {
				log.Fatal(err)
			}
		}
		game.playback = rd
	}

	logger.Init(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})

	s, err := sim.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	game.sim = s

	if game.playback == nil {
		bindings, err := config.LoadBindings(*bindingsPath)
		if err != nil {
			log.Fatal(err)
		}
		source, err := gamepad.New(bindings, cfg.Input.AxisThreshold)
		if err != nil {
			log.Fatal(err)
		}
		game.source = source
	}

	if *recordPath != "" {
		f, err := os.Create(*recordPath)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		rec, err := sim.NewRecorder(s, f)
		if err != nil {
			log.Fatal(err)
		}
		game.recorder = rec
	}

	if *watch {
		w, err := prefabs.NewWatcher(prefabs.Dir, filepath.Join(prefabs.Dir, "scripts"))
		if err != nil {
			logger.L().Warn("main: watcher disabled", "err", err)
		} else {
			defer w.Close()
			game.watcher = w
		}
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetTPS(cfg.TickRate)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("fightcore")

	if err := ebiten.RunGame(game); err != nil {
		logger.L().Error("main: run", "err", err)
		os.Exit(1)
	}
}
