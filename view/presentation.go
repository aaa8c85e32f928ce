package view

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/ghostplay/game"
)

// Presentation is what a single viewer sees of the ghost during a tick.
type Presentation struct {
	// Tick is the index of the frame being presented.
	Tick int
	// Mode is the camera mode the viewer watches in, either ObserverInEye or ObserverChase.
	Mode ObserverMode
	// Origin is the position of the ghost.
	Origin mgl32.Vec3
	// Angles is the rotation the ghost is drawn with.
	Angles mgl32.Vec3
	// Hidden is true if the ghost model should not be drawn, which is the case in first person.
	Hidden bool
	// Velocity is the velocity of the ghost.
	Velocity mgl32.Vec3
	// ViewOffset is the camera offset used when watching in first person.
	ViewOffset mgl32.Vec3
	// Buttons holds the buttons pressed during the frame, for key press displays.
	Buttons uint32
	// Ducking is true if the ghost is crouched.
	Ducking bool
}

// Body is the state of the ghost entity shared by all viewers.
type Body struct {
	Origin mgl32.Vec3
	// EyeAngles are the recorded angles of the current frame.
	EyeAngles mgl32.Vec3
	// RenderAngles are the angles the ghost model was last drawn with.
	RenderAngles mgl32.Vec3
	Velocity     mgl32.Vec3
	ViewOffset   mgl32.Vec3
	Buttons      uint32

	Ducking  bool
	Hidden   bool
	OnGround bool
}

// Hull returns the collision envelope of the body at its origin.
func (b Body) Hull() cube.BBox {
	return game.Hull(b.Origin, b.Ducking)
}

// ChaseAngles returns the angles the ghost is drawn with in third person. Pitch is dampened so the model
// does not tilt unnaturally.
func ChaseAngles(eye mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{eye[0] / game.ChasePitchDamping, eye[1], eye[2]}
}
