package entity

// State is the behavioral state of a fighter
type State int

const (
	StateIdle State = iota
	StateWalk
	StateJump
	StateAttack
	StateHit
	StateStumble
	StateDead
)

// String returns the string representation of the state
func (s State) String() string {
	switch s {
	case StateIdle:
		return "IDLE"
	case StateWalk:
		return "WALK"
	case StateJump:
		return "JUMP"
	case StateAttack:
		return "ATTACK"
	case StateHit:
		return "HIT"
	case StateStumble:
		return "STUMBLE"
	case StateDead:
		return "DEAD"
	default:
		return "UNKNOWN"
	}
}

// Incapacitated reports whether the fighter has lost control (hit-stun, stumble or defeat)
func (s State) Incapacitated() bool {
	return s == StateHit || s == StateStumble || s == StateDead
}

// AttackType identifies which attack a fighter is performing
type AttackType int

const (
	AttackNone AttackType = iota
	AttackPunch
	AttackKick
	AttackLaser
)

// String returns the string representation of the attack type
func (a AttackType) String() string {
	switch a {
	case AttackNone:
		return "NONE"
	case AttackPunch:
		return "PUNCH"
	case AttackKick:
		return "KICK"
	case AttackLaser:
		return "LASER"
	default:
		return "UNKNOWN"
	}
}

// IsMelee returns true for punch and kick
func (a AttackType) IsMelee() bool {
	return a == AttackPunch || a == AttackKick
}

// Direction is the facing of a fighter: -1 left, +1 right
type Direction int

const (
	Left  Direction = -1
	Right Direction = 1
)

// Sign returns the direction as a float multiplier
func (d Direction) Sign() float64 {
	if d < 0 {
		return -1
	}
	return 1
}

// Toward returns the facing that points along the signed distance dx.
// Zero distance faces left, matching a strict "dx > 0" test.
func Toward(dx float64) Direction {
	if dx > 0 {
		return Right
	}
	return Left
}

// Control says who produces a fighter's intents
type Control int

const (
	ControlPlayer Control = iota
	ControlAutonomous
)

// String returns the string representation of the control kind
func (c Control) String() string {
	if c == ControlAutonomous {
		return "autonomous"
	}
	return "player"
}

// Sound is a discrete named sound trigger emitted by the simulation
type Sound int

const (
	SoundJump Sound = iota
	SoundAttack
	SoundHit
	SoundWin
	SoundLose
	SoundVocalizeShort
	SoundGrunt
	SoundLaser
	SoundVocalizeLong
)

// AllSounds lists every sound event in declaration order
var AllSounds = []Sound{
	SoundJump, SoundAttack, SoundHit, SoundWin, SoundLose,
	SoundVocalizeShort, SoundGrunt, SoundLaser, SoundVocalizeLong,
}

// String returns the string representation of the sound
func (s Sound) String() string {
	switch s {
	case SoundJump:
		return "JUMP"
	case SoundAttack:
		return "ATTACK"
	case SoundHit:
		return "HIT"
	case SoundWin:
		return "WIN"
	case SoundLose:
		return "LOSE"
	case SoundVocalizeShort:
		return "VOCALIZE_SHORT"
	case SoundGrunt:
		return "GRUNT"
	case SoundLaser:
		return "LASER"
	case SoundVocalizeLong:
		return "VOCALIZE_LONG"
	default:
		return "UNKNOWN"
	}
}

// Visual is an opaque presentation handle (sprite, background).
// The simulation carries it without inspecting it; nil means "no visual".
type Visual any
