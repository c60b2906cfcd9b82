package system

import (
	"github.com/lixenwraith/trinket/engine"
)

// Register adds every simulation system to the world in one call
func Register(world *engine.World) {
	world.AddSystem(NewPickingSystem(world))
	world.AddSystem(NewCameraSystem(world))
	world.AddSystem(NewMovementSystem(world))
	world.AddSystem(NewInteractionSystem(world))
	world.AddSystem(NewAudioSystem(world))
	world.AddSystem(NewEffectSystem(world))
}
