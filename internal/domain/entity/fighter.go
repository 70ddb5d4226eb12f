package entity

// Rect is an axis-aligned rectangle in arena units
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Right returns the right edge
func (r Rect) Right() float64 {
	return r.X + r.Width
}

// Bottom returns the bottom edge
func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

// CenterX returns the horizontal center
func (r Rect) CenterX() float64 {
	return r.X + r.Width/2
}

// Fighter is a combatant's simulated physical and behavioral state
type Fighter struct {
	Rect
	VX, VY float64

	Grounded bool

	Health    int
	MaxHealth int

	Direction  Direction
	State      State
	AttackType AttackType

	// AttackCooldown doubles as the stun counter while stumbling
	AttackCooldown int

	// Cosmetic
	Tick        int
	BlinkTimer  int
	MumbleTimer int

	Control Control
	Visual  Visual
}

// NewFighter creates a grounded, idle fighter at full health.
// x is the left edge; y is derived so the feet rest on groundY.
func NewFighter(control Control, x, width, height, groundY float64, maxHealth int, facing Direction) *Fighter {
	return &Fighter{
		Rect: Rect{
			X:      x,
			Y:      groundY - height,
			Width:  width,
			Height: height,
		},
		Grounded:  true,
		Health:    maxHealth,
		MaxHealth: maxHealth,
		Direction: facing,
		State:     StateIdle,
		Control:   control,
	}
}

// IsDefeated returns true once health has dropped to zero or below
func (f *Fighter) IsDefeated() bool {
	return f.Health <= 0
}

// Bounds returns the fighter's bounding rectangle
func (f *Fighter) Bounds() Rect {
	return f.Rect
}

// Snapshot returns a read-only copy for renderers
func (f *Fighter) Snapshot() Snapshot {
	return Snapshot{
		Rect:           f.Rect,
		VX:             f.VX,
		VY:             f.VY,
		Grounded:       f.Grounded,
		Health:         f.Health,
		MaxHealth:      f.MaxHealth,
		Direction:      f.Direction,
		State:          f.State,
		AttackType:     f.AttackType,
		AttackCooldown: f.AttackCooldown,
		Tick:           f.Tick,
		BlinkTimer:     f.BlinkTimer,
		Control:        f.Control,
		Visual:         f.Visual,
	}
}

// Snapshot is a per-frame value copy of a fighter
type Snapshot struct {
	Rect
	VX, VY         float64
	Grounded       bool
	Health         int
	MaxHealth      int
	Direction      Direction
	State          State
	AttackType     AttackType
	AttackCooldown int
	Tick           int
	BlinkTimer     int
	Control        Control
	Visual         Visual
}

// HealthRatio returns health/maxHealth floored at 0
func (s Snapshot) HealthRatio() float64 {
	if s.MaxHealth <= 0 || s.Health <= 0 {
		return 0
	}
	return float64(s.Health) / float64(s.MaxHealth)
}

// DisplayHealth returns the health value floored at 0 for status displays
func (s Snapshot) DisplayHealth() int {
	if s.Health < 0 {
		return 0
	}
	return s.Health
}
