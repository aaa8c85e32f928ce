// Package stats derives live movement statistics, such as strafe synchronisation and jump counts, from
// the frames of a run as they are played back.
package stats

import (
	"slices"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/ghostplay/game"
	"github.com/oomph-ac/ghostplay/replay"
	"github.com/oomph-ac/ghostplay/utils"
)

// RunStats holds the statistics of a single run.
type RunStats struct {
	// StrafeTicks is the amount of airborne ticks in which the player turned.
	StrafeTicks int
	// PerfectSyncTicks is the amount of StrafeTicks in which only the move key matching the turn was held.
	PerfectSyncTicks int
	// AccelTicks is the amount of StrafeTicks in which horizontal speed increased.
	AccelTicks int

	// StrafeSync is the percentage of StrafeTicks that were PerfectSyncTicks.
	StrafeSync float32
	// AccelSync is the percentage of StrafeTicks that were AccelTicks.
	AccelSync float32

	Jumps   int
	Strafes int

	LastJumpVelocity float32
	LastJumpTime     time.Duration

	LastYaw          float32
	LastSyncVelocity float32
	LastButtons      uint32
}

// Sample is the input of a single statistics update.
type Sample struct {
	// Frame is the frame being played back.
	Frame replay.Frame
	// Velocity is the velocity of the ghost during the frame.
	Velocity mgl32.Vec3
	// OnGround is true if the ghost touches the ground.
	OnGround bool
	// Now is the simulation time of the update.
	Now time.Duration
}

// jumpHistorySize is the amount of recent jumps kept for the average jump velocity.
const jumpHistorySize = 10

// Accumulator updates RunStats incrementally, one tick at a time. The zero value is ready for use.
type Accumulator struct {
	stats     RunStats
	hasJumped bool
	jumps     *utils.Ring[float32]
}

// Stats returns a copy of the accumulated statistics.
func (a *Accumulator) Stats() RunStats {
	return a.stats
}

// Reset clears all statistics, used when a run (re)starts.
func (a *Accumulator) Reset() {
	a.stats = RunStats{}
	a.hasJumped = false
	if a.jumps != nil {
		a.jumps.Clear()
	}
}

// RecentJumps returns the horizontal velocity of the last jumps, oldest first.
func (a *Accumulator) RecentJumps() []float32 {
	if a.jumps == nil {
		return nil
	}
	return slices.Collect(a.jumps.All())
}

// AverageJumpVelocity returns the mean horizontal velocity of the last jumps, or zero if there were none.
func (a *Accumulator) AverageJumpVelocity() float32 {
	if a.jumps == nil || a.jumps.Len() == 0 {
		return 0
	}
	var sum float32
	for v := range a.jumps.All() {
		sum += v
	}
	return sum / float32(a.jumps.Len())
}

// Update accounts for one tick of playback.
func (a *Accumulator) Update(s Sample) {
	st := &a.stats
	buttons := s.Frame.Buttons
	yaw := s.Frame.Yaw()
	syncVelocity := game.HzLenSqr(s.Velocity)

	// Yaw is compared without wrapping, so a turn across +-180 degrees counts in the opposite direction.
	if !s.OnGround {
		a.hasJumped = false

		if yaw > st.LastYaw {
			a.strafeTick(buttons, game.ButtonMoveLeft, game.ButtonMoveRight, syncVelocity)
		} else if yaw < st.LastYaw {
			a.strafeTick(buttons, game.ButtonMoveRight, game.ButtonMoveLeft, syncVelocity)
		}
	}
	if st.StrafeTicks > 0 {
		st.StrafeSync = float32(st.PerfectSyncTicks) / float32(st.StrafeTicks) * 100
		st.AccelSync = float32(st.AccelTicks) / float32(st.StrafeTicks) * 100
	}

	if !a.hasJumped && s.OnGround && utils.HasFlag(buttons, game.ButtonJump) {
		a.hasJumped = true
		st.LastJumpVelocity = game.HzLen(s.Velocity)
		st.LastJumpTime = s.Now
		st.Jumps++

		if a.jumps == nil {
			a.jumps = utils.NewRing[float32](jumpHistorySize)
		}
		a.jumps.Append(st.LastJumpVelocity)
	}

	if utils.JustPressed(st.LastButtons, buttons, game.ButtonMoveLeft) || utils.JustPressed(st.LastButtons, buttons, game.ButtonMoveRight) {
		st.Strafes++
	}

	st.LastSyncVelocity = syncVelocity
	st.LastYaw = yaw
	st.LastButtons = buttons
}

// strafeTick records a turning tick. The tick is in perfect sync if the move key towards the turn is held
// and the opposite one is not.
func (a *Accumulator) strafeTick(buttons, toward, away uint32, syncVelocity float32) {
	st := &a.stats
	st.StrafeTicks++
	if utils.HasFlag(buttons, toward) && !utils.HasFlag(buttons, away) {
		st.PerfectSyncTicks++
	}
	if syncVelocity > st.LastSyncVelocity {
		st.AccelTicks++
	}
}
