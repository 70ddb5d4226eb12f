package system

import "github.com/younwookim/catfight/internal/domain/entity"

// Events carries the simulation's outbound signals.
// Callbacks fire synchronously at the moment the event happens; nil callbacks are skipped.
type Events struct {
	OnSound         func(sound entity.Sound)
	OnHealthChanged func(control entity.Control, health int)
}

// Sound emits a sound trigger
func (e *Events) Sound(s entity.Sound) {
	if e != nil && e.OnSound != nil {
		e.OnSound(s)
	}
}

// HealthChanged reports a fighter's new health
func (e *Events) HealthChanged(c entity.Control, health int) {
	if e != nil && e.OnHealthChanged != nil {
		e.OnHealthChanged(c, health)
	}
}
