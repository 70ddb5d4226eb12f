package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/catfight/internal/domain/entity"
)

func TestWalk(t *testing.T) {
	t.Run("grounded idle starts walking", func(t *testing.T) {
		f := Walk(*createTestPlayer(100), -1, 5)

		assert.Equal(t, -5.0, f.VX)
		assert.Equal(t, entity.Left, f.Direction)
		assert.Equal(t, entity.StateWalk, f.State)
	})

	t.Run("no intent goes idle", func(t *testing.T) {
		p := createTestPlayer(100)
		p.State = entity.StateWalk
		p.VX = 5

		f := Walk(*p, 0, 5)

		assert.Equal(t, 0.0, f.VX)
		assert.Equal(t, entity.StateIdle, f.State)
		assert.Equal(t, entity.Right, f.Direction, "facing is kept")
	})

	t.Run("airborne keeps jump label", func(t *testing.T) {
		p := createTestPlayer(100)
		p.Grounded = false
		p.State = entity.StateJump

		f := Walk(*p, 1, 5)

		assert.Equal(t, 5.0, f.VX)
		assert.Equal(t, entity.StateJump, f.State)
	})

	t.Run("attack label survives movement", func(t *testing.T) {
		p := createTestPlayer(100)
		p.State = entity.StateAttack

		f := Walk(*p, 1, 5)

		assert.Equal(t, entity.StateAttack, f.State)
	})

	t.Run("ignored while hit", func(t *testing.T) {
		p := createTestPlayer(100)
		p.State = entity.StateHit
		p.VX = 12

		f := Walk(*p, -1, 5)

		assert.Equal(t, 12.0, f.VX)
		assert.Equal(t, entity.Right, f.Direction)
	})
}

func TestFace(t *testing.T) {
	o := createTestOpponent(500)

	assert.Equal(t, entity.Right, Face(*o, entity.Right).Direction)
	assert.Equal(t, entity.Left, Face(*o, 0).Direction)

	o.State = entity.StateStumble
	assert.Equal(t, entity.Left, Face(*o, entity.Right).Direction)
}

func TestJump(t *testing.T) {
	f, ok := Jump(*createTestPlayer(100), -18)

	assert.True(t, ok)
	assert.Equal(t, -18.0, f.VY)
	assert.False(t, f.Grounded)
	assert.Equal(t, entity.StateJump, f.State)

	t.Run("not while airborne", func(t *testing.T) {
		_, ok := Jump(f, -18)
		assert.False(t, ok)
	})

	t.Run("not while stunned", func(t *testing.T) {
		p := createTestPlayer(100)
		for _, s := range []entity.State{entity.StateHit, entity.StateStumble, entity.StateDead} {
			p.State = s
			_, ok := Jump(*p, -18)
			assert.False(t, ok, s.String())
		}
	})

	t.Run("cancels an attack", func(t *testing.T) {
		p := createTestPlayer(100)
		p.State = entity.StateAttack
		p.AttackCooldown = 20

		f, ok := Jump(*p, -18)

		assert.True(t, ok)
		assert.Equal(t, entity.StateJump, f.State)
		assert.Equal(t, 20, f.AttackCooldown)
	})
}

func TestStartAttack(t *testing.T) {
	f, ok := StartAttack(*createTestPlayer(100), entity.AttackKick, 30)

	assert.True(t, ok)
	assert.Equal(t, entity.StateAttack, f.State)
	assert.Equal(t, entity.AttackKick, f.AttackType)
	assert.Equal(t, 30, f.AttackCooldown)

	t.Run("blocked by cooldown", func(t *testing.T) {
		_, ok := StartAttack(f, entity.AttackPunch, 30)
		assert.False(t, ok)
	})

	t.Run("blocked while hit", func(t *testing.T) {
		p := createTestPlayer(100)
		p.State = entity.StateHit
		_, ok := StartAttack(*p, entity.AttackPunch, 30)
		assert.False(t, ok)
	})

	t.Run("none is not an attack", func(t *testing.T) {
		_, ok := StartAttack(*createTestPlayer(100), entity.AttackNone, 30)
		assert.False(t, ok)
	})
}

func TestTakeHit(t *testing.T) {
	t.Run("melee lifts", func(t *testing.T) {
		f := TakeHit(*createTestOpponent(300), 10, Knockback{VX: 15, Lift: 8})

		assert.Equal(t, 490, f.Health)
		assert.Equal(t, 15.0, f.VX)
		assert.Equal(t, -8.0, f.VY)
		assert.Equal(t, entity.StateHit, f.State)
	})

	t.Run("zero lift keeps vertical speed", func(t *testing.T) {
		o := createTestOpponent(300)
		o.VY = 3

		f := TakeHit(*o, 25, Knockback{VX: -5})

		assert.Equal(t, 475, f.Health)
		assert.Equal(t, -5.0, f.VX)
		assert.Equal(t, 3.0, f.VY)
	})

	t.Run("health may go negative", func(t *testing.T) {
		o := createTestOpponent(300)
		o.Health = 5

		f := TakeHit(*o, 10, Knockback{})

		assert.Equal(t, -5, f.Health)
	})

	t.Run("dead is terminal", func(t *testing.T) {
		o := createTestOpponent(300)
		o.State = entity.StateDead
		o.Health = 0

		f := TakeHit(*o, 10, Knockback{VX: 15})

		assert.Equal(t, 0, f.Health)
		assert.Equal(t, entity.StateDead, f.State)
	})
}

func TestStumble(t *testing.T) {
	o := createTestOpponent(500)
	o.State = entity.StateWalk

	f, ok := Stumble(*o, 90)

	assert.True(t, ok)
	assert.Equal(t, entity.StateStumble, f.State)
	assert.Equal(t, 90, f.AttackCooldown)

	t.Run("player never stumbles", func(t *testing.T) {
		_, ok := Stumble(*createTestPlayer(100), 90)
		assert.False(t, ok)
	})

	t.Run("only from idle or walk", func(t *testing.T) {
		o := createTestOpponent(500)
		o.State = entity.StateAttack
		_, ok := Stumble(*o, 90)
		assert.False(t, ok)
	})
}

func TestRecoverFromHit(t *testing.T) {
	o := createTestOpponent(500)
	o.State = entity.StateHit
	o.VX = 15

	f := RecoverFromHit(*o, 1, 0.8)
	assert.Equal(t, entity.StateHit, f.State)
	assert.InDelta(t, 12.0, f.VX, 1e-9)

	f.VX = 0.9
	f = RecoverFromHit(f, 1, 0.8)
	assert.Equal(t, entity.StateIdle, f.State)
	assert.InDelta(t, 0.72, f.VX, 1e-9)

	t.Run("airborne stays hit", func(t *testing.T) {
		o := createTestOpponent(500)
		o.State = entity.StateHit
		o.Grounded = false

		f := RecoverFromHit(*o, 1, 0.8)

		assert.Equal(t, entity.StateHit, f.State)
	})
}

func TestLandAndFinishAttack(t *testing.T) {
	p := createTestPlayer(100)
	p.State = entity.StateJump
	assert.Equal(t, entity.StateIdle, Land(*p).State)

	p.State = entity.StateAttack
	assert.Equal(t, entity.StateAttack, Land(*p).State)

	p.AttackCooldown = 10
	assert.Equal(t, entity.StateAttack, FinishAttack(*p, 10).State)
	p.AttackCooldown = 9
	assert.Equal(t, entity.StateIdle, FinishAttack(*p, 10).State)
}

func TestDefeat(t *testing.T) {
	p := createTestPlayer(100)
	p.VX = 5

	f := Defeat(*p)

	assert.Equal(t, entity.StateDead, f.State)
	assert.Equal(t, 0.0, f.VX)
}

func TestMovementLocked(t *testing.T) {
	tests := []struct {
		name     string
		state    entity.State
		attack   entity.AttackType
		cooldown int
		expected bool
	}{
		{"idle", entity.StateIdle, entity.AttackNone, 0, false},
		{"melee start", entity.StateAttack, entity.AttackPunch, 30, true},
		{"melee window edge", entity.StateAttack, entity.AttackKick, 20, true},
		{"melee after window", entity.StateAttack, entity.AttackKick, 19, false},
		{"laser whole attack", entity.StateAttack, entity.AttackLaser, 91, true},
		{"cooldown outside attack", entity.StateWalk, entity.AttackLaser, 80, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := *createTestPlayer(100)
			f.State = tt.state
			f.AttackType = tt.attack
			f.AttackCooldown = tt.cooldown

			assert.Equal(t, tt.expected, MovementLocked(f, 30, 10))
		})
	}

	t.Run("window follows the fighter's own cooldown", func(t *testing.T) {
		f := *createTestOpponent(300)
		f.State = entity.StateAttack
		f.AttackType = entity.AttackPunch

		f.AttackCooldown = 35
		assert.True(t, MovementLocked(f, 45, 10))

		f.AttackCooldown = 34
		assert.False(t, MovementLocked(f, 45, 10), "ten frames, not twenty-five")
	})
}
