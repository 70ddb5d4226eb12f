package config

// DefaultTuning returns the stock arcade tuning.
// cmd/game/configs/tuning.yaml carries the same values.
func DefaultTuning() *Tuning {
	return &Tuning{
		Display: DisplayConfig{Framerate: 60},
		Arena: ArenaConfig{
			Width:      800,
			Height:     600,
			GroundY:    520,
			EdgeMargin: 50,
		},
		Physics: PhysicsSettings{
			Gravity:          0.8,
			JumpForce:        -18,
			WalkSpeed:        5,
			Friction:         0.8,
			StumbleFriction:  0.5,
			HitRecoverySpeed: 1,
		},
		Fighters: FightersConfig{
			Player: FighterConfig{
				Name:      "RHETT & CAT",
				SpawnX:    50,
				Width:     240,
				Height:    240,
				MaxHealth: 500,
				Facing:    1,
				MeleeLift: 8,
				Color:     "#3b82f6",
			},
			Opponent: FighterConfig{
				Name:            "ZOMBIE",
				SpawnX:          500,
				Width:           220,
				Height:          240,
				MaxHealth:       500,
				Facing:          -1,
				MeleeLift:       5,
				CooldownPenalty: 15,
				Color:           "#ef4444",
			},
		},
		Combat: CombatConfig{
			AttackDuration:    20,
			AttackCooldown:    30,
			LaserCooldown:     120,
			LaserRecoveryTail: 30,
			MoveLockWindow:    10,
			MeleeDamage:       10,
			LaserDamage:       25,
			CollisionShrink:   40,
			MeleeReach:        100,
			MeleeInset:        50,
			BeamHeight:        20,
			BeamHeightRatio:   0.4,
			MeleeKnockback:    15,
			LaserKnockback:    5,
			FlavorChance:      0.5,
		},
		AI: AIConfig{
			ApproachDistance:      150,
			ApproachSpeed:         2.5,
			AttackChance:          0.03,
			StumbleChance:         0.005,
			StumbleDuration:       90,
			StumbleVocalizeChance: 0.5,
			MumbleTimer:           100,
		},
		Cosmetic: CosmeticConfig{
			BlinkChance:   0.005,
			BlinkDuration: 10,
		},
	}
}
