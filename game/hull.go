package game

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

var (
	// StandingHull is the collision envelope of a standing player, relative to its origin.
	StandingHull = cube.Box(-16, 0, -16, 16, 72, 16)
	// DuckingHull is the collision envelope of a crouched player, relative to its origin.
	DuckingHull = cube.Box(-16, 0, -16, 16, 36, 16)
)

// Hull returns the collision envelope for the ducking state given, translated to pos.
func Hull(pos mgl32.Vec3, ducking bool) cube.BBox {
	if ducking {
		return DuckingHull.Translate(pos)
	}
	return StandingHull.Translate(pos)
}

// UnduckOrigin returns the origin a ducked hull has to be moved to before standing up. On the ground
// the feet stay put; in the air the hull is re-centred so the player's eyes keep their height.
func UnduckOrigin(pos mgl32.Vec3, onGround bool) mgl32.Vec3 {
	if onGround {
		return pos
	}
	diff := StandingHull.Max()[1] - DuckingHull.Max()[1]
	return pos.Sub(mgl32.Vec3{0, diff * 0.5, 0})
}
