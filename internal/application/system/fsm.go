package system

import (
	"math"

	"github.com/younwookim/catfight/internal/domain/entity"
)

// The functions below are the fighter state machine. Each takes a fighter
// value and returns the next one; guarded transitions also report whether
// they fired.

// Walk sets horizontal velocity from a -1/0/+1 intent. Facing follows a
// non-zero intent. The IDLE/WALK label only changes while grounded and not
// busy with another state.
func Walk(f entity.Fighter, dir int, speed float64) entity.Fighter {
	if f.State.Incapacitated() {
		return f
	}
	f.VX = float64(dir) * speed
	if dir != 0 {
		f.Direction = entity.Toward(float64(dir))
	}
	if f.Grounded && (f.State == entity.StateIdle || f.State == entity.StateWalk) {
		f.State = entity.StateIdle
		if dir != 0 {
			f.State = entity.StateWalk
		}
	}
	return f
}

// Face turns the fighter without moving it
func Face(f entity.Fighter, d entity.Direction) entity.Fighter {
	if d == 0 || f.State.Incapacitated() {
		return f
	}
	f.Direction = d
	return f
}

// Jump launches a grounded fighter
func Jump(f entity.Fighter, force float64) (entity.Fighter, bool) {
	if !f.Grounded || f.State.Incapacitated() {
		return f, false
	}
	f.VY = force
	f.Grounded = false
	f.State = entity.StateJump
	return f, true
}

// StartAttack begins an attack when the cooldown has run out
func StartAttack(f entity.Fighter, t entity.AttackType, cooldown int) (entity.Fighter, bool) {
	if t == entity.AttackNone || f.AttackCooldown != 0 || f.State.Incapacitated() {
		return f, false
	}
	f.State = entity.StateAttack
	f.AttackType = t
	f.AttackCooldown = cooldown
	return f, true
}

// Knockback is the impulse dealt with a hit. A zero Lift leaves VY untouched.
type Knockback struct {
	VX   float64
	Lift float64
}

// TakeHit applies damage and knockback and puts the fighter in hit-stun.
// Health may go negative.
func TakeHit(f entity.Fighter, damage int, kb Knockback) entity.Fighter {
	if f.State == entity.StateDead {
		return f
	}
	f.Health -= damage
	f.VX = kb.VX
	if kb.Lift != 0 {
		f.VY = -kb.Lift
	}
	f.State = entity.StateHit
	return f
}

// Stumble stuns an idle or walking autonomous fighter for duration frames.
// The stun counter shares AttackCooldown.
func Stumble(f entity.Fighter, duration int) (entity.Fighter, bool) {
	if f.Control != entity.ControlAutonomous {
		return f, false
	}
	if f.State != entity.StateIdle && f.State != entity.StateWalk {
		return f, false
	}
	f.State = entity.StateStumble
	f.AttackCooldown = duration
	return f, true
}

// RecoverFromHit ends hit-stun once the fighter is grounded and nearly still,
// then applies friction to what is left of the knockback
func RecoverFromHit(f entity.Fighter, threshold, friction float64) entity.Fighter {
	if f.State != entity.StateHit {
		return f
	}
	if f.Grounded && math.Abs(f.VX) < threshold {
		f.State = entity.StateIdle
	}
	f.VX *= friction
	return f
}

// Land ends a jump on ground contact
func Land(f entity.Fighter) entity.Fighter {
	if f.State == entity.StateJump {
		f.State = entity.StateIdle
	}
	return f
}

// FinishAttack returns to IDLE once the cooldown drops below recovery
func FinishAttack(f entity.Fighter, recovery int) entity.Fighter {
	if f.State == entity.StateAttack && f.AttackCooldown < recovery {
		f.State = entity.StateIdle
	}
	return f
}

// Defeat is terminal
func Defeat(f entity.Fighter) entity.Fighter {
	f.State = entity.StateDead
	f.VX = 0
	return f
}

// MovementLocked reports whether an attack currently pins the fighter in place.
// A laser locks for the whole attack; melee only for the first lockWindow
// frames after the fighter's own full melee cooldown is set.
func MovementLocked(f entity.Fighter, meleeCooldown, lockWindow int) bool {
	if f.State != entity.StateAttack {
		return false
	}
	if f.AttackType == entity.AttackLaser {
		return true
	}
	return f.AttackCooldown >= meleeCooldown-lockWindow
}
