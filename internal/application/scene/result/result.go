// Package result provides the card shown after a fight.
package result

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/younwookim/catfight/internal/application/match"
	"github.com/younwookim/catfight/internal/application/scene"
	"github.com/younwookim/catfight/internal/application/system"
	"github.com/younwookim/catfight/internal/domain/entity"
)

// InputDelay is how many frames the card ignores keys, so a button mashed
// during the final blow does not skip it
const InputDelay = 30

// RematchKeys start the next fight
var RematchKeys = []string{"space", "enter"}

var (
	colorWin  = color.RGBA{60, 220, 90, 255}
	colorLose = color.RGBA{230, 40, 40, 255}
	colorHint = color.RGBA{220, 220, 220, 255}
)

// Result is the victory or game-over card
type Result struct {
	outcome  match.Result
	keyboard *system.Keyboard
	keys     system.KeySource
	sounds   scene.SoundPlayer
	logger   *zap.Logger
	rematch  func() scene.Scene

	frames int
}

// New creates the card for outcome. rematch builds the next fight; nil
// leaves the card up.
func New(outcome match.Result, keyboard *system.Keyboard, keys system.KeySource, sounds scene.SoundPlayer, logger *zap.Logger, rematch func() scene.Scene) *Result {
	if keyboard == nil {
		keyboard = system.NewKeyboard()
	}
	if keys == nil {
		keys = system.NewEbitenKeySource()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Result{
		outcome:  outcome,
		keyboard: keyboard,
		keys:     keys,
		sounds:   sounds,
		logger:   logger,
		rematch:  rematch,
	}
}

// Update waits for a rematch key
func (r *Result) Update() (scene.Scene, error) {
	r.keys.Poll(r.keyboard)
	r.frames++

	snap := r.keyboard.Snapshot()
	if r.frames <= InputDelay || r.rematch == nil {
		return nil, nil
	}
	for _, k := range RematchKeys {
		if snap.Pressed(k) {
			r.logger.Info("rematch", zap.Stringer("previous", r.outcome))
			return r.rematch(), nil
		}
	}
	return nil, nil
}

// Draw renders the card
func (r *Result) Draw(screen *ebiten.Image) {
	w := float64(screen.Bounds().Dx())
	h := float64(screen.Bounds().Dy())

	scene.Dim(screen, 0.7)
	title, clr := "GAME OVER", colorLose
	if r.outcome == match.ResultVictory {
		title, clr = "VICTORY!", colorWin
	}
	scene.DrawText(screen, title, w/2, h/2-80, 6, clr)
	if r.frames > InputDelay {
		scene.DrawText(screen, "Press SPACE or ENTER to fight again", w/2, h/2+40, 2, colorHint)
	}
}

// OnEnter plays the fanfare for the outcome
func (r *Result) OnEnter() {
	r.keyboard.Reset()
	r.frames = 0
	if r.sounds == nil {
		return
	}
	if r.outcome == match.ResultVictory {
		r.sounds.Play(entity.SoundWin)
	} else {
		r.sounds.Play(entity.SoundLose)
	}
}

// OnExit does nothing
func (r *Result) OnExit() {}

// Outcome returns the result being shown
func (r *Result) Outcome() match.Result {
	return r.outcome
}
