package main

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/ghostplay/game"
	"github.com/oomph-ac/ghostplay/replay"
	"github.com/oomph-ac/ghostplay/utils"
)

const (
	demoFrames    = 66 * 20
	demoHopTicks  = 44
	demoAirTicks  = 40
	demoJumpSpeed = float32(268)
	demoGravity   = float32(800)
)

// demoRecording builds a recording of a player bunny hopping across a flat floor while air strafing.
func demoRecording(interval float32) (*replay.MemoryStore, error) {
	frames := make([]replay.Frame, demoFrames)

	var (
		pos   mgl32.Vec3
		speed = float32(250)
	)
	for i := range frames {
		hop := i % demoHopTicks
		airborne := hop < demoAirTicks

		// Yaw sways left and right once per hop, turning towards the pressed move key.
		phase := float32(hop) / demoHopTicks * 2 * math32.Pi
		yaw := 20 * math32.Sin(phase)
		turnLeft := math32.Cos(phase) > 0

		var buttons uint32
		if airborne {
			t := float32(hop) * interval
			pos[1] = max(demoJumpSpeed*t-0.5*demoGravity*t*t, 0)
			speed += 1.5
			if turnLeft {
				buttons = utils.WithFlags(game.ButtonMoveLeft)
			} else {
				buttons = utils.WithFlags(game.ButtonMoveRight)
			}
		} else {
			pos[1] = 0
			buttons = utils.WithFlags(game.ButtonJump, game.ButtonForward)
		}
		if hop == demoAirTicks-2 {
			buttons |= utils.WithFlags(game.ButtonDuck)
		}

		rad := mgl32.DegToRad(yaw)
		pos[0] += math32.Cos(rad) * speed * interval
		pos[2] += math32.Sin(rad) * speed * interval

		frames[i] = replay.Frame{
			Tick:       i,
			Position:   pos,
			EyeAngles:  mgl32.Vec3{5, yaw, 0},
			Buttons:    buttons,
			ViewOffset: mgl32.Vec3{0, game.DefaultViewHeight, 0},
		}
	}
	return replay.NewMemoryStore("demo", interval, frames)
}
