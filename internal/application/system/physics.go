package system

import (
	"github.com/younwookim/catfight/internal/domain/entity"
	"github.com/younwookim/catfight/internal/infrastructure/config"
)

// PhysicsSystem advances one fighter by one frame: gravity, integration,
// ground contact, arena bounds and timers
type PhysicsSystem struct {
	config *config.Tuning
	rng    Rand // cosmetic only
}

// NewPhysicsSystem creates a new physics system
func NewPhysicsSystem(cfg *config.Tuning, rng Rand) *PhysicsSystem {
	return &PhysicsSystem{
		config: cfg,
		rng:    rng,
	}
}

// Update advances f by one frame
func (s *PhysicsSystem) Update(f *entity.Fighter) {
	f.Tick++

	if f.State == entity.StateStumble {
		s.updateStumble(f)
	}

	s.integrate(f)
	s.clampToArena(f)

	// Stumble counts its own frames
	if f.AttackCooldown > 0 && f.State != entity.StateStumble {
		f.AttackCooldown--
	}

	s.updateBlink(f)

	*f = FinishAttack(*f, s.recovery(f.AttackType))
}

func (s *PhysicsSystem) updateStumble(f *entity.Fighter) {
	f.VX *= s.config.Physics.StumbleFriction
	if f.AttackCooldown > 0 {
		f.AttackCooldown--
	}
	if f.AttackCooldown == 0 {
		f.State = entity.StateIdle
	}
}

func (s *PhysicsSystem) integrate(f *entity.Fighter) {
	f.VY += s.config.Physics.Gravity
	f.X += f.VX
	f.Y += f.VY

	ground := s.config.Arena.GroundY
	if f.Bottom() >= ground {
		f.Y = ground - f.Height
		f.VY = 0
		f.Grounded = true
		*f = Land(*f)
		return
	}
	f.Grounded = false
}

func (s *PhysicsSystem) clampToArena(f *entity.Fighter) {
	margin := s.config.Arena.EdgeMargin
	if f.X < -margin {
		f.X = -margin
	}
	if limit := s.config.Arena.Width + margin; f.Right() > limit {
		f.X = limit - f.Width
	}
}

func (s *PhysicsSystem) updateBlink(f *entity.Fighter) {
	if f.BlinkTimer > 0 {
		f.BlinkTimer--
		return
	}
	if s.rng != nil && chance(s.rng, s.config.Cosmetic.BlinkChance) {
		f.BlinkTimer = s.config.Cosmetic.BlinkDuration
	}
}

func (s *PhysicsSystem) recovery(t entity.AttackType) int {
	if t == entity.AttackLaser {
		return s.config.LaserRecovery()
	}
	return s.config.MeleeRecovery()
}
