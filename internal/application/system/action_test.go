package system

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"pgregory.net/rapid"

	"github.com/younwookim/catfight/internal/domain/entity"
	"github.com/younwookim/catfight/internal/infrastructure/config"
)

func createTestActions(rng Rand) (*ActionSystem, *soundRecorder) {
	cfg := createTestTuning()
	events, rec := newRecordingEvents()
	combat := NewCombatSystem(cfg, rng, events, zap.NewNop())
	return NewActionSystem(cfg, combat, events), rec
}

func TestActionSystem_Jump(t *testing.T) {
	actions, rec := createTestActions(neverRand())
	p, o := createTestPlayer(50), createTestOpponent(500)

	actions.Apply(p, o, Intent{Jump: true, Speed: 5})

	assert.Equal(t, entity.StateJump, p.State)
	assert.Equal(t, -18.0, p.VY)
	assert.Equal(t, []entity.Sound{entity.SoundJump}, rec.sounds)

	t.Run("no double jump", func(t *testing.T) {
		actions.Apply(p, o, Intent{Jump: true, Speed: 5})
		assert.Len(t, rec.sounds, 1)
	})
}

func TestActionSystem_MoveAndAttack(t *testing.T) {
	actions, rec := createTestActions(neverRand())
	p, o := createTestPlayer(50), createTestOpponent(250)

	actions.Apply(p, o, Intent{Move: 1, Face: entity.Right, Speed: 5, Attack: entity.AttackPunch})

	assert.Equal(t, 5.0, p.VX)
	assert.Equal(t, entity.StateAttack, p.State, "attack overrides walk in the same frame")
	assert.Equal(t, 490, o.Health)
	assert.Contains(t, rec.sounds, entity.SoundHit)

	t.Run("locked attacker stands still", func(t *testing.T) {
		actions.Apply(p, o, Intent{Move: -1, Speed: 5})

		assert.Equal(t, 0.0, p.VX)
		assert.Equal(t, entity.Right, p.Direction)
		assert.Equal(t, entity.StateAttack, p.State)
	})
}

func TestActionSystem_HitRecovery(t *testing.T) {
	actions, _ := createTestActions(neverRand())
	p, o := createTestPlayer(50), createTestOpponent(500)
	p.State = entity.StateHit
	p.VX = -15

	actions.Apply(p, o, Intent{Move: 1, Face: entity.Right, Speed: 5, Attack: entity.AttackPunch})

	assert.InDelta(t, -12.0, p.VX, 1e-9, "friction, not input")
	assert.Equal(t, entity.StateHit, p.State)
	assert.Equal(t, 0, p.AttackCooldown)
	assert.Equal(t, entity.Right, p.Direction)
}

func TestActionSystem_Stumble(t *testing.T) {
	actions, rec := createTestActions(neverRand())
	p, o := createTestPlayer(50), createTestOpponent(500)

	actions.Apply(o, p, Intent{Stumble: true, Vocalize: true})

	assert.Equal(t, entity.StateStumble, o.State)
	assert.Equal(t, 90, o.AttackCooldown)
	assert.Equal(t, []entity.Sound{entity.SoundGrunt, entity.SoundVocalizeLong}, rec.sounds)
}

func TestActionSystem_StumbleBlocksUntilRecovered(t *testing.T) {
	cfg := createTestTuning()
	actions, _ := createTestActions(neverRand())
	physics := NewPhysicsSystem(cfg, neverRand())
	p, o := createTestPlayer(50), createTestOpponent(200)

	actions.Apply(o, p, Intent{Stumble: true})
	physics.Update(o)

	// Stumble friction bleeds this off; the controller never adds to it.
	o.VX = -4

	frames := 1
	for o.State == entity.StateStumble {
		prevX, prevVX := o.X, o.VX
		actions.Apply(o, p, Intent{Move: -1, Face: entity.Right, Speed: 2.5, Attack: entity.AttackPunch})
		assert.Equal(t, prevVX, o.VX, "intent does not touch velocity")
		assert.Equal(t, entity.Left, o.Direction, "intent does not turn")

		physics.Update(o)
		frames++
		assert.Equal(t, 500, p.Health, "no attacks while stumbling")
		assert.LessOrEqual(t, math.Abs(o.VX), math.Abs(prevVX))
		assert.LessOrEqual(t, math.Abs(o.X-prevX), math.Abs(prevVX), "only drift left over from before the stumble")
	}
	assert.InDelta(t, 0.0, o.VX, 1e-6, "drift is gone by the end of the stun")

	assert.Equal(t, cfg.AI.StumbleDuration, frames)
	assert.Equal(t, entity.StateIdle, o.State)
	assert.Equal(t, 0, o.AttackCooldown)

	actions.Apply(o, p, Intent{Face: entity.Left, Attack: entity.AttackPunch})
	assert.Equal(t, entity.StateAttack, o.State, "acts on the very next frame")
	assert.Equal(t, 490, p.Health)
}

func TestActionSystem_DeadIgnoresIntent(t *testing.T) {
	actions, rec := createTestActions(neverRand())
	p, o := createTestPlayer(50), createTestOpponent(250)
	p.State = entity.StateDead

	actions.Apply(p, o, Intent{Move: 1, Speed: 5, Jump: true, Attack: entity.AttackPunch})

	assert.Equal(t, 0.0, p.VX)
	assert.Equal(t, 500, o.Health)
	assert.Empty(t, rec.sounds)
}

func TestActionSystem_IdleIsStable(t *testing.T) {
	cfg := createTestTuning()
	actions, _ := createTestActions(neverRand())
	physics := NewPhysicsSystem(cfg, nil)
	p, o := createTestPlayer(50), createTestOpponent(500)
	input := NewInputSystem(cfg, config.DefaultControls())
	kb := NewKeyboard()

	for i := 0; i < 300; i++ {
		actions.Apply(p, o, input.Intent(kb.Snapshot(), *p))
		physics.Update(p)
	}

	assert.Equal(t, 50.0, p.X)
	assert.Equal(t, 280.0, p.Y)
	assert.Equal(t, 500, p.Health)
	assert.Equal(t, entity.StateIdle, p.State)
}

func TestActionSystem_HealthNeverRisesProperty(t *testing.T) {
	cfg := createTestTuning()

	rapid.Check(t, func(t *rapid.T) {
		actions, _ := createTestActions(&scriptedRand{fallback: rapid.Float64Range(0, 1).Draw(t, "roll")})
		physics := NewPhysicsSystem(cfg, nil)
		ai := NewAISystem(cfg, neverRand())
		p := createTestPlayer(rapid.Float64Range(-50, 610).Draw(t, "px"))
		o := createTestOpponent(rapid.Float64Range(-50, 630).Draw(t, "ox"))

		steps := rapid.SliceOfN(rapid.IntRange(0, 15), 1, 120).Draw(t, "steps")
		for _, bits := range steps {
			before := [2]int{p.Health, o.Health}
			in := Intent{Speed: cfg.Physics.WalkSpeed, Jump: bits&1 != 0}
			switch bits >> 2 {
			case 1:
				in.Attack = entity.AttackPunch
			case 2:
				in.Attack = entity.AttackKick
			case 3:
				in.Attack = entity.AttackLaser
			}
			if bits&2 != 0 {
				in.Move, in.Face = 1, entity.Right
			}

			actions.Apply(p, o, in)
			physics.Update(p)
			actions.Apply(o, p, ai.Decide(*o, *p))
			physics.Update(o)

			if p.Health > before[0] || o.Health > before[1] {
				t.Fatalf("health rose: %v -> %d/%d", before, p.Health, o.Health)
			}
			if p.AttackCooldown < 0 || o.AttackCooldown < 0 {
				t.Fatalf("negative cooldown")
			}
		}
	})
}

func TestActionSystem_OpponentLockWindow(t *testing.T) {
	actions, _ := createTestActions(neverRand())
	p, o := createTestPlayer(50), createTestOpponent(500)
	o.State = entity.StateAttack
	o.AttackType = entity.AttackKick

	o.AttackCooldown = 35
	actions.Apply(o, p, Intent{Move: -1, Face: entity.Left, Speed: 2.5})
	assert.Equal(t, 0.0, o.VX, "first ten frames of a 45-frame cooldown are pinned")

	o.AttackCooldown = 34
	actions.Apply(o, p, Intent{Move: -1, Face: entity.Left, Speed: 2.5})
	assert.Equal(t, -2.5, o.VX)
	assert.Equal(t, entity.StateAttack, o.State)
}
