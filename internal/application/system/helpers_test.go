package system

import (
	"github.com/younwookim/catfight/internal/domain/entity"
	"github.com/younwookim/catfight/internal/infrastructure/config"
)

// scriptedRand replays fixed draws, then returns fallback forever
type scriptedRand struct {
	values   []float64
	fallback float64
	draws    int
}

func (r *scriptedRand) Float64() float64 {
	r.draws++
	if len(r.values) == 0 {
		return r.fallback
	}
	v := r.values[0]
	r.values = r.values[1:]
	return v
}

// neverRand makes every chance roll fail
func neverRand() *scriptedRand {
	return &scriptedRand{fallback: 0.99}
}

func createTestTuning() *config.Tuning {
	return config.DefaultTuning()
}

func createTestPlayer(x float64) *entity.Fighter {
	return entity.NewFighter(entity.ControlPlayer, x, 240, 240, 520, 500, entity.Right)
}

func createTestOpponent(x float64) *entity.Fighter {
	return entity.NewFighter(entity.ControlAutonomous, x, 220, 240, 520, 500, entity.Left)
}

// soundRecorder collects emitted events in order
type soundRecorder struct {
	sounds []entity.Sound
	health map[entity.Control][]int
}

func newRecordingEvents() (*Events, *soundRecorder) {
	rec := &soundRecorder{health: make(map[entity.Control][]int)}
	events := &Events{
		OnSound: func(s entity.Sound) {
			rec.sounds = append(rec.sounds, s)
		},
		OnHealthChanged: func(c entity.Control, h int) {
			rec.health[c] = append(rec.health[c], h)
		},
	}
	return events, rec
}
