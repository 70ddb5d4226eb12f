package main

import (
	"errors"
	"flag"
	"io/fs"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/younwookim/catfight/internal/application/game"
	"github.com/younwookim/catfight/internal/application/match"
	"github.com/younwookim/catfight/internal/application/scene"
	"github.com/younwookim/catfight/internal/application/scene/playing"
	"github.com/younwookim/catfight/internal/application/scene/result"
	"github.com/younwookim/catfight/internal/application/system"
	"github.com/younwookim/catfight/internal/infrastructure/assets"
	"github.com/younwookim/catfight/internal/infrastructure/audio"
	"github.com/younwookim/catfight/internal/infrastructure/config"
	"github.com/younwookim/catfight/internal/infrastructure/observability"
)

func main() {
	appPath := flag.String("config", "", "Application settings file (YAML)")
	tuningDir := flag.String("tuning", "", "Directory holding tuning.yaml; empty uses the built-in copy")
	assetsDir := flag.String("assets", "", "Sprite directory, overrides the config file")
	seed := flag.Int64("seed", 0, "Random seed, 0 seeds from the clock")
	flag.Parse()

	app, err := config.LoadApp(*appPath)
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}
	if *assetsDir != "" {
		app.Assets.Dir = *assetsDir
	}
	if *seed != 0 {
		app.Seed = *seed
	}

	logger, err := observability.NewLogger(app.Logging)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	tuning, err := loadTuning(*tuningDir)
	if err != nil {
		logger.Fatal("failed to load tuning", zap.Error(err))
	}

	var sounds scene.SoundPlayer = audio.Nop{}
	if app.Audio.Enabled {
		sounds = audio.NewPlayer(app.Audio, logger)
	}

	images := assets.NewLoader(app.Assets.Dir, logger).Load()
	keyboard := system.NewKeyboard()
	keys := system.NewEbitenKeySource()

	round := int64(0)
	var newFight func() scene.Scene
	newResult := func(r match.Result) scene.Scene {
		return result.New(r, keyboard, keys, sounds, logger, newFight)
	}
	newFight = func() scene.Scene {
		round++
		fightSeed := app.Seed
		if fightSeed != 0 {
			fightSeed += round - 1
		}
		return playing.New(playing.Deps{
			Tuning:   tuning,
			Controls: app.Controls,
			Keyboard: keyboard,
			Keys:     keys,
			Sounds:   sounds,
			Assets:   images,
			Logger:   logger,
			Seed:     fightSeed,
		}, newResult)
	}

	screenW := int(tuning.Arena.Width)
	screenH := int(tuning.Arena.Height)
	g := game.New(newFight(), screenW, screenH, logger)
	defer g.Close()

	ebiten.SetWindowSize(screenW*app.Display.Scale, screenH*app.Display.Scale)
	ebiten.SetWindowTitle(app.Display.Title)
	ebiten.SetTPS(tuning.Display.Framerate)

	logger.Info("starting",
		zap.Int("width", screenW),
		zap.Int("height", screenH),
		zap.Int("tps", tuning.Display.Framerate),
		zap.Bool("audio", app.Audio.Enabled),
		zap.String("assets", app.Assets.Dir),
	)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("game exited with error", zap.Error(err))
	}
}

// loadTuning reads tuning.yaml from dir, or the embedded copy when dir is empty
func loadTuning(dir string) (*config.Tuning, error) {
	if dir != "" {
		return config.NewLoader(dir).LoadTuning()
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, err
	}
	return config.NewFSLoader(fsys, "configs").LoadTuning()
}
