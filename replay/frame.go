package replay

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/ghostplay/utils"
)

// Frame is a single recorded tick of a run.
type Frame struct {
	// Tick is the index of the frame in the recording.
	Tick int
	// Position is the world position of the player's origin.
	Position mgl32.Vec3
	// EyeAngles holds the pitch, yaw and roll of the player's view, in that order.
	EyeAngles mgl32.Vec3
	// Buttons is the input mask of the tick, indexed by the game.Button* constants.
	Buttons uint32
	// ViewOffset is the offset of the first-person camera from the origin.
	ViewOffset mgl32.Vec3
}

// Pitch ...
func (f Frame) Pitch() float32 {
	return f.EyeAngles[0]
}

// Yaw ...
func (f Frame) Yaw() float32 {
	return f.EyeAngles[1]
}

// Pressing returns true if the button given was held down during the frame.
func (f Frame) Pressing(button uint32) bool {
	return utils.HasFlag(f.Buttons, button)
}
