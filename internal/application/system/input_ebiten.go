package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// KeySource feeds key events into a Keyboard once per tick
type KeySource interface {
	Poll(kb *Keyboard)
}

// EbitenKeySource forwards ebiten's key edges to a Keyboard
type EbitenKeySource struct {
	keys []ebiten.Key
}

// NewEbitenKeySource creates a key source backed by ebiten's input state
func NewEbitenKeySource() *EbitenKeySource {
	return &EbitenKeySource{keys: make([]ebiten.Key, 0, 8)}
}

// Poll must be called from ebiten's Update
func (s *EbitenKeySource) Poll(kb *Keyboard) {
	s.keys = inpututil.AppendJustPressedKeys(s.keys[:0])
	for _, k := range s.keys {
		kb.KeyDown(KeyName(k))
	}

	s.keys = inpututil.AppendJustReleasedKeys(s.keys[:0])
	for _, k := range s.keys {
		kb.KeyUp(KeyName(k))
	}
}

// KeyName returns the table name for an ebiten key, e.g. "arrowleft"
func KeyName(k ebiten.Key) string {
	return NormalizeKey(k.String())
}
