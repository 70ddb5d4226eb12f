package system

import (
	"math"

	"github.com/younwookim/catfight/internal/domain/entity"
	"github.com/younwookim/catfight/internal/infrastructure/config"
)

// AISystem decides the autonomous fighter's intent each frame
type AISystem struct {
	config *config.Tuning
	rng    Rand
}

// NewAISystem creates a new AI system
func NewAISystem(cfg *config.Tuning, rng Rand) *AISystem {
	return &AISystem{
		config: cfg,
		rng:    rng,
	}
}

// Decide returns the intent for self against opponent. A stumble roll comes
// first and, when it fires, replaces everything else for the frame.
func (s *AISystem) Decide(self, opponent entity.Fighter) Intent {
	ai := s.config.AI

	if self.State == entity.StateIdle || self.State == entity.StateWalk {
		if chance(s.rng, ai.StumbleChance) {
			return Intent{
				Stumble:  true,
				Vocalize: chance(s.rng, ai.StumbleVocalizeChance),
			}
		}
	}

	if self.State.Incapacitated() {
		return Intent{}
	}

	dist := opponent.CenterX() - self.CenterX()
	toward := entity.Toward(dist)
	in := Intent{Face: toward}

	if math.Abs(dist) > ai.ApproachDistance {
		in.Move = int(toward)
		in.Speed = ai.ApproachSpeed
		return in
	}

	// In range: hold position and maybe swing
	if self.AttackCooldown == 0 && chance(s.rng, ai.AttackChance) {
		in.Attack = entity.AttackKick
		if s.rng.Float64() > 0.5 {
			in.Attack = entity.AttackPunch
		}
	}
	return in
}
