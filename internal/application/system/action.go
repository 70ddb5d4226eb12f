package system

import (
	"github.com/younwookim/catfight/internal/domain/entity"
	"github.com/younwookim/catfight/internal/infrastructure/config"
)

// ActionSystem applies intents to fighters through the state machine.
// It is the only place controller output turns into entity changes.
type ActionSystem struct {
	config *config.Tuning
	combat *CombatSystem
	events *Events
}

// NewActionSystem creates a new action system
func NewActionSystem(cfg *config.Tuning, combat *CombatSystem, events *Events) *ActionSystem {
	return &ActionSystem{
		config: cfg,
		combat: combat,
		events: events,
	}
}

// Apply carries out in for self; attacks resolve against opponent
func (s *ActionSystem) Apply(self, opponent *entity.Fighter, in Intent) {
	if self.State == entity.StateDead {
		return
	}

	if in.Jump {
		if next, ok := Jump(*self, s.config.Physics.JumpForce); ok {
			*self = next
			s.events.Sound(entity.SoundJump)
		}
	}

	if in.Stumble {
		if next, ok := Stumble(*self, s.config.AI.StumbleDuration); ok {
			*self = next
			s.events.Sound(entity.SoundGrunt)
			if in.Vocalize {
				s.events.Sound(entity.SoundVocalizeLong)
			}
		}
		return
	}

	switch {
	case self.State == entity.StateHit:
		*self = RecoverFromHit(*self, s.config.Physics.HitRecoverySpeed, s.config.Physics.Friction)
		return
	case self.State.Incapacitated():
		return
	}

	move := in.Move
	if MovementLocked(*self, s.config.MeleeCooldown(self.Control), s.config.Combat.MoveLockWindow) {
		move = 0
	}
	*self = Face(*self, in.Face)
	*self = Walk(*self, move, in.Speed)

	if in.Attack != entity.AttackNone {
		s.combat.TryAttack(self, opponent, in.Attack)
	}
}
