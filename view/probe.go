package view

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/ghostplay/game"
)

// groundDistance is how far below the feet a surface still counts as ground contact.
const groundDistance = float32(2)

// StaticWorld is a CollisionProbe and GroundProbe over a fixed set of solid boxes.
type StaticWorld struct {
	Solids []cube.BBox
}

// CanStand ...
func (w StaticWorld) CanStand(origin mgl32.Vec3) bool {
	hull := game.Hull(origin, false)
	for _, bb := range w.Solids {
		if hull.IntersectsWith(bb) {
			return false
		}
	}
	return true
}

// OnGround ...
func (w StaticWorld) OnGround(origin mgl32.Vec3) bool {
	min, max := game.StandingHull.Min(), game.StandingHull.Max()
	feet := cube.Box(
		origin[0]+min[0], origin[1]-groundDistance, origin[2]+min[2],
		origin[0]+max[0], origin[1]+0.1, origin[2]+max[2],
	)
	for _, bb := range w.Solids {
		if feet.IntersectsWith(bb) {
			return true
		}
	}
	return false
}
