// Package scene defines the Scene interface for game screens.
//
// Each screen (the fight, the result card) implements Scene to handle its
// own update logic and rendering.
package scene

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/catfight/internal/domain/entity"
)

// Scene represents a game screen.
//
// The game loop delegates Update and Draw calls to the current scene.
// Scene transitions are handled by returning a new Scene from Update.
type Scene interface {
	// Update advances the scene by one tick.
	// Returns the next scene if a transition is needed, nil to stay on current scene.
	// Returns an error to terminate the game.
	Update() (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called when entering this scene.
	OnEnter()

	// OnExit is called when leaving this scene, and once more at shutdown
	// for the scene that is current then. Scenes release timers and stop
	// simulations here.
	OnExit()
}

// SoundPlayer plays sound events
type SoundPlayer interface {
	Play(s entity.Sound)
}
