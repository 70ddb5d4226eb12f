// Package playing provides the fight scene.
package playing

import (
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/younwookim/catfight/internal/application/match"
	"github.com/younwookim/catfight/internal/application/scene"
	"github.com/younwookim/catfight/internal/application/state"
	"github.com/younwookim/catfight/internal/application/system"
	"github.com/younwookim/catfight/internal/domain/entity"
	"github.com/younwookim/catfight/internal/infrastructure/assets"
	"github.com/younwookim/catfight/internal/infrastructure/audio"
	"github.com/younwookim/catfight/internal/infrastructure/config"
)

const (
	// PauseKey toggles the pause overlay
	PauseKey = "escape"
	// ResultDelay is how many frames the final blow stays on screen before
	// the result card
	ResultDelay = 60
)

// Deps are the collaborators a fight needs
type Deps struct {
	Tuning   *config.Tuning
	Controls config.ControlsConfig
	Keyboard *system.Keyboard
	Keys     system.KeySource
	Sounds   scene.SoundPlayer
	Assets   assets.Set
	Logger   *zap.Logger
	// Seed fixes the match's random sources; 0 seeds from the clock.
	Seed int64
}

// Playing is the fight scene
type Playing struct {
	deps     Deps
	onFinish func(match.Result) scene.Scene

	match  *match.Match
	state  state.GameState
	linger int
	health map[entity.Control]int

	render *renderer
}

// New creates a fight scene with a fresh match. onFinish builds the scene
// shown once the match has a result; nil keeps the final frame on screen.
func New(deps Deps, onFinish func(match.Result) scene.Scene) *Playing {
	if deps.Keyboard == nil {
		deps.Keyboard = system.NewKeyboard()
	}
	if deps.Keys == nil {
		deps.Keys = system.NewEbitenKeySource()
	}
	if deps.Sounds == nil {
		deps.Sounds = audio.Nop{}
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Controls == (config.ControlsConfig{}) {
		deps.Controls = config.DefaultControls()
	}

	opts := []match.Option{
		match.WithLogger(deps.Logger),
		match.WithControls(deps.Controls),
	}
	if deps.Seed != 0 {
		opts = append(opts, match.WithSeed(deps.Seed))
	}
	m := match.New(deps.Tuning, deps.Keyboard, match.Assets{
		Player:     visual(deps.Assets.Player),
		Opponent:   visual(deps.Assets.Opponent),
		Background: visual(deps.Assets.Background),
	}, opts...)

	p := &Playing{
		deps:     deps,
		onFinish: onFinish,
		match:    m,
		state:    state.StatePlaying,
		health: map[entity.Control]int{
			entity.ControlPlayer:     m.Player().MaxHealth,
			entity.ControlAutonomous: m.Opponent().MaxHealth,
		},
		render: newRenderer(deps.Tuning, deps.Logger),
	}

	m.Events.OnSound = deps.Sounds.Play
	m.Events.OnHealthChanged = func(c entity.Control, health int) {
		p.health[c] = max(health, 0)
	}
	m.OnResult = p.finish
	return p
}

// visual keeps a missing image a nil interface
func visual(img *ebiten.Image) entity.Visual {
	if img == nil {
		return nil
	}
	return img
}

func (p *Playing) finish(r match.Result) {
	p.state = state.StateVictory
	if r == match.ResultGameOver {
		p.state = state.StateGameOver
	}
	p.linger = 0
}

// Update advances the fight by one frame
func (p *Playing) Update() (scene.Scene, error) {
	p.deps.Keys.Poll(p.deps.Keyboard)

	switch p.state {
	case state.StatePlaying:
		if p.deps.Keyboard.Consume(PauseKey) {
			p.state = state.StatePaused
			p.deps.Logger.Debug("paused", zap.Int("frame", p.match.Frame()))
			return nil, nil
		}
		p.match.Step()

	case state.StatePaused:
		if p.deps.Keyboard.Consume(PauseKey) {
			p.state = state.StatePlaying
			p.deps.Logger.Debug("resumed", zap.Int("frame", p.match.Frame()))
		}
		// Presses made while paused do not carry over.
		p.deps.Keyboard.Snapshot()

	case state.StateVictory, state.StateGameOver:
		p.linger++
		if p.linger >= ResultDelay && p.onFinish != nil {
			return p.onFinish(p.match.Result()), nil
		}
	}
	return nil, nil
}

// Draw renders the arena, both fighters and the HUD
func (p *Playing) Draw(screen *ebiten.Image) {
	playerName, oppName := p.match.Names()
	p.render.draw(screen, frame{
		player:     p.match.Player(),
		opponent:   p.match.Opponent(),
		playerName: playerName,
		oppName:    oppName,
		background: p.match.Background(),
		health:     p.health,
		state:      p.state,
	})
}

// OnEnter drops keys still held from the previous screen
func (p *Playing) OnEnter() {
	p.deps.Keyboard.Reset()
	p.deps.Logger.Info("fight", zap.String("match_id", p.match.ID()))
}

// OnExit stops the match and frees the fighter canvases
func (p *Playing) OnExit() {
	p.match.Stop()
	p.render.dispose()
}

// State returns the current phase
func (p *Playing) State() state.GameState {
	return p.state
}

// Match returns the running match
func (p *Playing) Match() *match.Match {
	return p.match
}

// Health returns the health shown on the HUD for one fighter
func (p *Playing) Health(c entity.Control) int {
	return p.health[c]
}
