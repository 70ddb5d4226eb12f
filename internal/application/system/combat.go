package system

import (
	"go.uber.org/zap"

	"github.com/younwookim/catfight/internal/domain/entity"
	"github.com/younwookim/catfight/internal/infrastructure/config"
)

// CombatSystem starts attacks and resolves them against the opponent
// on the frame they are triggered
type CombatSystem struct {
	config *config.Tuning
	rng    Rand
	events *Events
	logger *zap.Logger
}

// NewCombatSystem creates a new combat system
func NewCombatSystem(cfg *config.Tuning, rng Rand, events *Events, logger *zap.Logger) *CombatSystem {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CombatSystem{
		config: cfg,
		rng:    rng,
		events: events,
		logger: logger,
	}
}

// TryAttack starts an attack of type t for attacker and, if it started,
// tests its hit-box against target. A miss still spends the cooldown.
func (s *CombatSystem) TryAttack(attacker, target *entity.Fighter, t entity.AttackType) (started, hit bool) {
	next, ok := StartAttack(*attacker, t, s.cooldown(attacker.Control, t))
	if !ok {
		return false, false
	}
	*attacker = next
	s.announce(attacker.Control, t)

	box := entity.AttackHitbox(*attacker, t, s.config.HitboxGeometry())
	if target.State == entity.StateDead || !Overlaps(box, target.Bounds(), s.config.Combat.CollisionShrink) {
		s.logger.Debug("attack missed",
			zap.Stringer("attacker", attacker.Control),
			zap.Stringer("attack", t),
		)
		return true, false
	}

	s.applyHit(attacker, target, t)
	return true, true
}

func (s *CombatSystem) cooldown(c entity.Control, t entity.AttackType) int {
	if t == entity.AttackLaser {
		return s.config.Combat.LaserCooldown
	}
	return s.config.MeleeCooldown(c)
}

func (s *CombatSystem) announce(c entity.Control, t entity.AttackType) {
	if t == entity.AttackLaser {
		s.events.Sound(entity.SoundLaser)
		return
	}
	s.events.Sound(entity.SoundAttack)
	if c == entity.ControlAutonomous {
		s.events.Sound(entity.SoundVocalizeLong)
		return
	}
	if chance(s.rng, s.config.Combat.FlavorChance) {
		s.events.Sound(entity.SoundVocalizeShort)
	}
}

func (s *CombatSystem) applyHit(attacker, target *entity.Fighter, t entity.AttackType) {
	damage := s.config.Combat.MeleeDamage
	kb := Knockback{
		VX:   attacker.Direction.Sign() * s.config.Combat.MeleeKnockback,
		Lift: s.config.Fighter(attacker.Control).MeleeLift,
	}
	if t == entity.AttackLaser {
		damage = s.config.Combat.LaserDamage
		kb = Knockback{VX: attacker.Direction.Sign() * s.config.Combat.LaserKnockback}
	}

	*target = TakeHit(*target, damage, kb)
	s.events.HealthChanged(target.Control, target.Health)
	s.events.Sound(entity.SoundHit)
	s.events.Sound(entity.SoundGrunt)

	s.logger.Debug("attack landed",
		zap.Stringer("attacker", attacker.Control),
		zap.Stringer("attack", t),
		zap.Int("damage", damage),
		zap.Int("targetHealth", target.Health),
	)
}
