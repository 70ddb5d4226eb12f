package system

import (
	"strings"
	"sync"

	"github.com/younwookim/catfight/internal/domain/entity"
	"github.com/younwookim/catfight/internal/infrastructure/config"
)

// NormalizeKey maps a key name to its lowercase table form.
// A literal space is stored as "space".
func NormalizeKey(key string) string {
	if key == " " {
		return "space"
	}
	return strings.ToLower(strings.TrimSpace(key))
}

// Keyboard is the shared key-state table. Input sources write to it from
// whatever goroutine delivers key events; the frame loop reads it once per
// frame through Snapshot.
type Keyboard struct {
	mu      sync.Mutex
	held    map[string]bool
	pressed map[string]bool // down edges since the last snapshot
}

// NewKeyboard creates an empty key table
func NewKeyboard() *Keyboard {
	return &Keyboard{
		held:    make(map[string]bool),
		pressed: make(map[string]bool),
	}
}

// KeyDown records a key press. Repeats of a held key are not new edges.
func (k *Keyboard) KeyDown(key string) {
	key = NormalizeKey(key)
	k.mu.Lock()
	defer k.mu.Unlock()
	if !k.held[key] {
		k.pressed[key] = true
	}
	k.held[key] = true
}

// KeyUp records a key release
func (k *Keyboard) KeyUp(key string) {
	key = NormalizeKey(key)
	k.mu.Lock()
	defer k.mu.Unlock()
	delete(k.held, key)
}

// Consume reports and clears a pending down edge for one key, leaving the
// other edges for the next snapshot
func (k *Keyboard) Consume(key string) bool {
	key = NormalizeKey(key)
	k.mu.Lock()
	defer k.mu.Unlock()
	if !k.pressed[key] {
		return false
	}
	delete(k.pressed, key)
	return true
}

// Reset releases every key
func (k *Keyboard) Reset() {
	k.mu.Lock()
	defer k.mu.Unlock()
	clear(k.held)
	clear(k.pressed)
}

// Snapshot copies the table and consumes the pending down edges
func (k *Keyboard) Snapshot() KeySnapshot {
	k.mu.Lock()
	defer k.mu.Unlock()

	snap := KeySnapshot{
		held:    make(map[string]bool, len(k.held)),
		pressed: make(map[string]bool, len(k.pressed)),
	}
	for key := range k.held {
		snap.held[key] = true
	}
	for key := range k.pressed {
		snap.pressed[key] = true
	}
	clear(k.pressed)
	return snap
}

// KeySnapshot is an immutable view of the keyboard for one frame
type KeySnapshot struct {
	held    map[string]bool
	pressed map[string]bool
}

// Held reports whether key is down
func (s KeySnapshot) Held(key string) bool {
	return s.held[NormalizeKey(key)]
}

// Pressed reports whether key went down since the previous frame
func (s KeySnapshot) Pressed(key string) bool {
	return s.pressed[NormalizeKey(key)]
}

// InputSystem maps the player's key snapshot to an intent
type InputSystem struct {
	config   *config.Tuning
	bindings config.ControlsConfig
}

// NewInputSystem creates a new input system
func NewInputSystem(cfg *config.Tuning, bindings config.ControlsConfig) *InputSystem {
	return &InputSystem{
		config:   cfg,
		bindings: bindings,
	}
}

// Intent builds this frame's intent for f. Left wins over right; laser wins
// over kick, which wins over punch. Movement is dropped while an attack pins
// the fighter.
func (s *InputSystem) Intent(keys KeySnapshot, f entity.Fighter) Intent {
	in := Intent{Speed: s.config.Physics.WalkSpeed}

	if !MovementLocked(f, s.config.MeleeCooldown(f.Control), s.config.Combat.MoveLockWindow) {
		switch {
		case keys.Held(s.bindings.Left):
			in.Move = -1
			in.Face = entity.Left
		case keys.Held(s.bindings.Right):
			in.Move = 1
			in.Face = entity.Right
		}
	}

	in.Jump = keys.Pressed(s.bindings.Jump)

	switch {
	case keys.Held(s.bindings.Laser):
		in.Attack = entity.AttackLaser
	case keys.Held(s.bindings.Kick):
		in.Attack = entity.AttackKick
	case keys.Held(s.bindings.Punch):
		in.Attack = entity.AttackPunch
	}

	return in
}
