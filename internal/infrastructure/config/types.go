package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/younwookim/catfight/internal/domain/entity"
)

// Tuning is the root config for tuning.yaml.
// All durations are in frames and all distances in arena units.
type Tuning struct {
	Display  DisplayConfig   `yaml:"display"`
	Arena    ArenaConfig     `yaml:"arena"`
	Physics  PhysicsSettings `yaml:"physics"`
	Fighters FightersConfig  `yaml:"fighters"`
	Combat   CombatConfig    `yaml:"combat"`
	AI       AIConfig        `yaml:"ai"`
	Cosmetic CosmeticConfig  `yaml:"cosmetic"`
}

type DisplayConfig struct {
	Framerate int `yaml:"framerate"`
}

type ArenaConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	GroundY    float64 `yaml:"groundY"`
	EdgeMargin float64 `yaml:"edgeMargin"` // how far a fighter may leave the arena on either side
}

type PhysicsSettings struct {
	Gravity          float64 `yaml:"gravity"`
	JumpForce        float64 `yaml:"jumpForce"` // negative is up
	WalkSpeed        float64 `yaml:"walkSpeed"`
	Friction         float64 `yaml:"friction"`         // vx multiplier per frame while hit
	StumbleFriction  float64 `yaml:"stumbleFriction"`  // vx multiplier per frame while stumbling
	HitRecoverySpeed float64 `yaml:"hitRecoverySpeed"` // |vx| below which hit-stun ends
}

type FightersConfig struct {
	Player   FighterConfig `yaml:"player"`
	Opponent FighterConfig `yaml:"opponent"`
}

type FighterConfig struct {
	Name            string  `yaml:"name"`
	SpawnX          float64 `yaml:"spawnX"`
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	MaxHealth       int     `yaml:"maxHealth"`
	Facing          int     `yaml:"facing"`          // -1 left, 1 right
	MeleeLift       float64 `yaml:"meleeLift"`       // upward impulse dealt by this fighter's melee hits
	CooldownPenalty int     `yaml:"cooldownPenalty"` // extra frames added to this fighter's melee cooldown
	Color           string  `yaml:"color"`           // placeholder color when no sprite is available
}

type CombatConfig struct {
	AttackDuration    int     `yaml:"attackDuration"`
	AttackCooldown    int     `yaml:"attackCooldown"`
	LaserCooldown     int     `yaml:"laserCooldown"`
	LaserRecoveryTail int     `yaml:"laserRecoveryTail"`
	MoveLockWindow    int     `yaml:"moveLockWindow"`
	MeleeDamage       int     `yaml:"meleeDamage"`
	LaserDamage       int     `yaml:"laserDamage"`
	CollisionShrink   float64 `yaml:"collisionShrink"`
	MeleeReach        float64 `yaml:"meleeReach"`
	MeleeInset        float64 `yaml:"meleeInset"`
	BeamHeight        float64 `yaml:"beamHeight"`
	BeamHeightRatio   float64 `yaml:"beamHeightRatio"`
	MeleeKnockback    float64 `yaml:"meleeKnockback"`
	LaserKnockback    float64 `yaml:"laserKnockback"`
	FlavorChance      float64 `yaml:"flavorChance"` // chance of the player's extra vocal on melee
}

type AIConfig struct {
	ApproachDistance      float64 `yaml:"approachDistance"`
	ApproachSpeed         float64 `yaml:"approachSpeed"`
	AttackChance          float64 `yaml:"attackChance"`
	StumbleChance         float64 `yaml:"stumbleChance"`
	StumbleDuration       int     `yaml:"stumbleDuration"`
	StumbleVocalizeChance float64 `yaml:"stumbleVocalizeChance"`
	MumbleTimer           int     `yaml:"mumbleTimer"`
}

type CosmeticConfig struct {
	BlinkChance   float64 `yaml:"blinkChance"`
	BlinkDuration int     `yaml:"blinkDuration"`
}

// HitboxGeometry returns the attack geometry derived from combat and arena settings
func (t *Tuning) HitboxGeometry() entity.HitboxGeometry {
	return entity.HitboxGeometry{
		MeleeReach:      t.Combat.MeleeReach,
		MeleeInset:      t.Combat.MeleeInset,
		BeamLength:      t.Arena.Width,
		BeamHeight:      t.Combat.BeamHeight,
		BeamHeightRatio: t.Combat.BeamHeightRatio,
	}
}

// MeleeCooldown is the full melee cooldown for one fighter, penalty included
func (t *Tuning) MeleeCooldown(c entity.Control) int {
	return t.Combat.AttackCooldown + t.Fighter(c).CooldownPenalty
}

// MeleeRecovery is the cooldown value below which a melee attack is over
func (t *Tuning) MeleeRecovery() int {
	return t.Combat.AttackCooldown - t.Combat.AttackDuration
}

// LaserRecovery is the cooldown value below which a laser attack is over
func (t *Tuning) LaserRecovery() int {
	return t.Combat.LaserCooldown - t.Combat.LaserRecoveryTail
}

// Validate checks the tuning invariants and reports every violation at once
func (t *Tuning) Validate() error {
	var errs []string

	if t.Display.Framerate < 1 {
		errs = append(errs, fmt.Sprintf("display.framerate must be >= 1, got %d", t.Display.Framerate))
	}
	if t.Arena.Width <= 0 || t.Arena.Height <= 0 {
		errs = append(errs, "arena.width and arena.height must be positive")
	}
	if t.Arena.GroundY <= 0 || t.Arena.GroundY > t.Arena.Height {
		errs = append(errs, fmt.Sprintf("arena.groundY must be within (0, %v], got %v", t.Arena.Height, t.Arena.GroundY))
	}
	if t.Arena.EdgeMargin < 0 {
		errs = append(errs, "arena.edgeMargin must not be negative")
	}
	if t.Physics.Friction < 0 || t.Physics.Friction > 1 {
		errs = append(errs, "physics.friction must be within [0, 1]")
	}
	if t.Physics.StumbleFriction < 0 || t.Physics.StumbleFriction > 1 {
		errs = append(errs, "physics.stumbleFriction must be within [0, 1]")
	}
	errs = append(errs, validateFighter("fighters.player", t.Fighters.Player)...)
	errs = append(errs, validateFighter("fighters.opponent", t.Fighters.Opponent)...)

	c := t.Combat
	if c.AttackCooldown < 1 || c.LaserCooldown < 1 {
		errs = append(errs, "combat.attackCooldown and combat.laserCooldown must be >= 1")
	}
	if c.AttackDuration < 0 || c.AttackDuration > c.AttackCooldown {
		errs = append(errs, "combat.attackDuration must be within [0, attackCooldown]")
	}
	if c.LaserRecoveryTail < 0 || c.LaserRecoveryTail > c.LaserCooldown {
		errs = append(errs, "combat.laserRecoveryTail must be within [0, laserCooldown]")
	}
	if c.MeleeDamage < 0 || c.LaserDamage < 0 {
		errs = append(errs, "combat damage must not be negative")
	}
	if c.MeleeReach <= 0 || c.BeamHeight <= 0 {
		errs = append(errs, "combat.meleeReach and combat.beamHeight must be positive")
	}
	for _, p := range []struct {
		name  string
		value float64
	}{
		{"combat.flavorChance", c.FlavorChance},
		{"ai.attackChance", t.AI.AttackChance},
		{"ai.stumbleChance", t.AI.StumbleChance},
		{"ai.stumbleVocalizeChance", t.AI.StumbleVocalizeChance},
		{"cosmetic.blinkChance", t.Cosmetic.BlinkChance},
	} {
		if p.value < 0 || p.value > 1 {
			errs = append(errs, fmt.Sprintf("%s must be a probability, got %v", p.name, p.value))
		}
	}
	if t.AI.StumbleDuration < 0 || t.Cosmetic.BlinkDuration < 0 {
		errs = append(errs, "ai.stumbleDuration and cosmetic.blinkDuration must not be negative")
	}

	if len(errs) > 0 {
		return errors.New("tuning validation failed: " + strings.Join(errs, "; "))
	}
	return nil
}

func validateFighter(prefix string, f FighterConfig) []string {
	var errs []string
	if f.Width <= 0 || f.Height <= 0 {
		errs = append(errs, prefix+" size must be positive")
	}
	if f.MaxHealth < 1 {
		errs = append(errs, fmt.Sprintf("%s.maxHealth must be >= 1, got %d", prefix, f.MaxHealth))
	}
	if f.Facing != -1 && f.Facing != 1 {
		errs = append(errs, fmt.Sprintf("%s.facing must be -1 or 1, got %d", prefix, f.Facing))
	}
	if f.CooldownPenalty < 0 {
		errs = append(errs, prefix+".cooldownPenalty must not be negative")
	}
	return errs
}

// Fighter returns the per-fighter settings for a control kind
func (t *Tuning) Fighter(c entity.Control) FighterConfig {
	if c == entity.ControlAutonomous {
		return t.Fighters.Opponent
	}
	return t.Fighters.Player
}
