package system

import "github.com/younwookim/catfight/internal/domain/entity"

// Intent is one frame's desired action for a fighter.
// Controllers only produce intents; ActionSystem applies them.
type Intent struct {
	Move  int     // -1 left, 0 stop, +1 right
	Speed float64 // horizontal speed for Move
	Face  entity.Direction

	Jump    bool
	Attack  entity.AttackType
	Stumble bool
	// Vocalize adds a long vocal to a stumble
	Vocalize bool
}

// Rand is the random source used by stochastic rules. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// chance draws once from rng and reports whether the draw fell under p
func chance(rng Rand, p float64) bool {
	return rng.Float64() < p
}
