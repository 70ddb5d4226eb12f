// Package match runs one bout between the player and the autonomous opponent.
//
// A Match owns both fighters. Each call to Step advances exactly one frame:
// player intent, player physics, opponent intent, opponent physics, then the
// terminal check. Once a result is reached or Stop is called, Step does nothing.
package match

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/younwookim/catfight/internal/application/system"
	"github.com/younwookim/catfight/internal/domain/entity"
	"github.com/younwookim/catfight/internal/infrastructure/config"
)

// Result is the terminal outcome of a match
type Result int

const (
	ResultNone Result = iota
	ResultVictory
	ResultGameOver
)

// String returns the string representation of the result
func (r Result) String() string {
	switch r {
	case ResultVictory:
		return "VICTORY"
	case ResultGameOver:
		return "GAME_OVER"
	default:
		return "NONE"
	}
}

// Assets are the optional visuals handed to the fighters
type Assets struct {
	Player     entity.Visual
	Opponent   entity.Visual
	Background entity.Visual
}

type options struct {
	rng      system.Rand
	cosmetic system.Rand
	logger   *zap.Logger
	controls config.ControlsConfig
}

// Option configures a Match
type Option func(*options)

// WithRand sets the source for gameplay rolls (AI, stumbles, vocal flavor)
func WithRand(rng system.Rand) Option {
	return func(o *options) { o.rng = rng }
}

// WithCosmeticRand sets the source for blinks
func WithCosmeticRand(rng system.Rand) Option {
	return func(o *options) { o.cosmetic = rng }
}

// WithSeed seeds both random sources
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.rng = rand.New(rand.NewSource(seed))
		o.cosmetic = rand.New(rand.NewSource(seed + 1))
	}
}

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithControls overrides the player's key bindings
func WithControls(c config.ControlsConfig) Option {
	return func(o *options) { o.controls = c }
}

// Match is one bout
type Match struct {
	id     uuid.UUID
	config *config.Tuning
	logger *zap.Logger

	player   *entity.Fighter
	opponent *entity.Fighter
	assets   Assets

	keyboard *system.Keyboard
	input    *system.InputSystem
	ai       *system.AISystem
	actions  *system.ActionSystem
	physics  *system.PhysicsSystem

	frame   int
	result  Result
	stopped bool

	// Events receives sounds and health changes as they happen
	Events *system.Events
	// OnResult fires exactly once when the match reaches a result
	OnResult func(Result)
}

// New creates a match with both fighters at their spawn points.
// keyboard is read once per Step; it may be shared with an input source
// running elsewhere.
func New(cfg *config.Tuning, keyboard *system.Keyboard, assets Assets, opts ...Option) *Match {
	seed := time.Now().UnixNano()
	o := options{
		rng:      rand.New(rand.NewSource(seed)),
		cosmetic: rand.New(rand.NewSource(seed + 1)),
		logger:   zap.NewNop(),
		controls: config.DefaultControls(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if keyboard == nil {
		keyboard = system.NewKeyboard()
	}

	id := uuid.New()
	logger := o.logger.With(zap.String("match_id", id.String()))
	events := &system.Events{}
	combat := system.NewCombatSystem(cfg, o.rng, events, logger)

	m := &Match{
		id:       id,
		config:   cfg,
		logger:   logger,
		player:   spawn(cfg, entity.ControlPlayer, assets.Player),
		opponent: spawn(cfg, entity.ControlAutonomous, assets.Opponent),
		assets:   assets,
		keyboard: keyboard,
		input:    system.NewInputSystem(cfg, o.controls),
		ai:       system.NewAISystem(cfg, o.rng),
		actions:  system.NewActionSystem(cfg, combat, events),
		physics:  system.NewPhysicsSystem(cfg, o.cosmetic),
		Events:   events,
	}
	m.opponent.MumbleTimer = cfg.AI.MumbleTimer

	logger.Info("match started",
		zap.String("player", cfg.Fighters.Player.Name),
		zap.String("opponent", cfg.Fighters.Opponent.Name),
	)
	return m
}

func spawn(cfg *config.Tuning, c entity.Control, visual entity.Visual) *entity.Fighter {
	fc := cfg.Fighter(c)
	f := entity.NewFighter(c, fc.SpawnX, fc.Width, fc.Height, cfg.Arena.GroundY, fc.MaxHealth, entity.Direction(fc.Facing))
	f.Visual = visual
	return f
}

// Step advances one frame. It returns false once the match is over or stopped.
func (m *Match) Step() bool {
	if m.Done() {
		return false
	}
	m.frame++

	keys := m.keyboard.Snapshot()
	m.actions.Apply(m.player, m.opponent, m.input.Intent(keys, *m.player))
	m.physics.Update(m.player)

	m.actions.Apply(m.opponent, m.player, m.ai.Decide(*m.opponent, *m.player))
	m.physics.Update(m.opponent)

	return !m.checkResult()
}

// checkResult ends the match when either fighter is down.
// A double knockout counts against the player.
func (m *Match) checkResult() bool {
	playerDown := m.player.IsDefeated()
	opponentDown := m.opponent.IsDefeated()
	if !playerDown && !opponentDown {
		return false
	}

	if playerDown {
		*m.player = system.Defeat(*m.player)
	}
	if opponentDown {
		*m.opponent = system.Defeat(*m.opponent)
	}

	m.result = ResultVictory
	if playerDown {
		m.result = ResultGameOver
	}

	m.logger.Info("match finished",
		zap.Stringer("result", m.result),
		zap.Int("frames", m.frame),
		zap.Int("playerHealth", m.player.Health),
		zap.Int("opponentHealth", m.opponent.Health),
	)
	if m.OnResult != nil {
		m.OnResult(m.result)
	}
	return true
}

// Stop revokes all further frames. Safe to call more than once.
func (m *Match) Stop() {
	if m.stopped {
		return
	}
	m.stopped = true
	m.logger.Debug("match stopped", zap.Int("frames", m.frame))
}

// Done reports whether Step will do nothing
func (m *Match) Done() bool {
	return m.stopped || m.result != ResultNone
}

// Result returns the outcome, ResultNone while running
func (m *Match) Result() Result {
	return m.result
}

// ID returns the match identifier used in logs
func (m *Match) ID() string {
	return m.id.String()
}

// Frame returns the number of frames stepped so far
func (m *Match) Frame() int {
	return m.frame
}

// Player returns a snapshot of the player
func (m *Match) Player() entity.Snapshot {
	return m.player.Snapshot()
}

// Opponent returns a snapshot of the opponent
func (m *Match) Opponent() entity.Snapshot {
	return m.opponent.Snapshot()
}

// Background returns the background visual, nil when none was supplied
func (m *Match) Background() entity.Visual {
	return m.assets.Background
}

// Names returns the display names of the player and the opponent
func (m *Match) Names() (player, opponent string) {
	return m.config.Fighters.Player.Name, m.config.Fighters.Opponent.Name
}
