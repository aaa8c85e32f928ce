package view

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/ghostplay/game"
	"github.com/oomph-ac/ghostplay/replay"
)

// CollisionProbe is implemented by the host to answer collision queries for the ghost.
type CollisionProbe interface {
	// CanStand returns true if a standing hull fits at the origin given.
	CanStand(origin mgl32.Vec3) bool
}

// GroundProbe is implemented by the host to report ground contact of the ghost.
type GroundProbe interface {
	// OnGround returns true if a hull at the origin given rests on the ground.
	OnGround(origin mgl32.Vec3) bool
}

// Options configure a Sync.
type Options struct {
	// TickInterval is the live tick interval in seconds. Velocity is derived by dividing frame deltas by it.
	TickInterval float32
	// MaxVelocity is the per-axis velocity above which a frame delta is treated as a teleport.
	MaxVelocity float32

	Collision CollisionProbe
	Ground    GroundProbe
}

// Sync turns frames of a recording into the state of the ghost entity and what each viewer sees of it.
type Sync struct {
	opts Options
	body Body
}

// NewSync creates a Sync. Missing probes behave as open air: the ghost can always stand and never touches
// the ground.
func NewSync(opts Options) *Sync {
	if opts.TickInterval <= 0 {
		opts.TickInterval = game.DefaultTickInterval
	}
	if opts.MaxVelocity <= 0 {
		opts.MaxVelocity = game.DefaultMaxVelocity
	}
	if opts.Collision == nil || opts.Ground == nil {
		var air openAir
		if opts.Collision == nil {
			opts.Collision = air
		}
		if opts.Ground == nil {
			opts.Ground = air
		}
	}
	return &Sync{opts: opts}
}

// Body returns the current state of the ghost entity.
func (s *Sync) Body() Body {
	return s.body
}

// SetMaxVelocity ...
func (s *Sync) SetMaxVelocity(v float32) {
	if v > 0 {
		s.opts.MaxVelocity = v
	}
}

// Reset places the ghost standing and motionless at the frame given.
func (s *Sync) Reset(f replay.Frame) {
	s.body = Body{
		Origin:       f.Position,
		EyeAngles:    f.EyeAngles,
		RenderAngles: ChaseAngles(f.EyeAngles),
		ViewOffset:   mgl32.Vec3{0, game.DefaultViewHeight, 0},
	}
}

// Interpolate returns the per-axis speed needed to move between the two frames in one tick. The second
// return value is false if any axis exceeds the velocity cap, meaning the frames are separated by a
// teleport.
func (s *Sync) Interpolate(current, next replay.Frame) (mgl32.Vec3, bool) {
	vel := game.AbsVec3(current.Position.Sub(next.Position)).Mul(1 / s.opts.TickInterval)
	max := s.opts.MaxVelocity
	return vel, vel[0] <= max && vel[1] <= max && vel[2] <= max
}

// Observed moves the ghost to the current frame and presents it to each viewer given. Viewers watching in a
// mode other than in-eye or chase are forced into in-eye. The interpolated velocity is returned together
// with whether it was applied to the ghost.
func (s *Sync) Observed(viewers []Viewer, tick int, current, next replay.Frame) (mgl32.Vec3, bool) {
	s.body.Origin = current.Position
	s.body.EyeAngles = current.EyeAngles

	vel, ok := s.Interpolate(current, next)
	if ok {
		s.body.Velocity = vel
	}
	s.body.Buttons = current.Buttons
	s.body.ViewOffset = current.ViewOffset
	s.body.OnGround = s.opts.Ground.OnGround(s.body.Origin)
	s.updateDucking(current)

	for _, v := range viewers {
		mode := v.ObserverMode()
		if !mode.Allowed() {
			v.ForceObserverMode(ObserverInEye)
			mode = ObserverInEye
		}

		p := Presentation{
			Tick:       tick,
			Mode:       mode,
			Origin:     s.body.Origin,
			Velocity:   s.body.Velocity,
			ViewOffset: s.body.ViewOffset,
			Buttons:    s.body.Buttons,
			Ducking:    s.body.Ducking,
		}
		if mode == ObserverInEye {
			p.Angles, p.Hidden = current.EyeAngles, true
		} else {
			p.Angles = ChaseAngles(current.EyeAngles)
		}
		s.body.RenderAngles, s.body.Hidden = p.Angles, p.Hidden
		v.Present(p)
	}
	return vel, ok
}

// Unobserved moves the ghost to the current frame when nobody is watching it. Only the origin and the
// third-person angles are updated.
func (s *Sync) Unobserved(current replay.Frame) {
	s.body.Origin = current.Position
	s.body.EyeAngles = current.EyeAngles
	s.body.RenderAngles = ChaseAngles(current.EyeAngles)
	s.body.Hidden = false
	s.body.OnGround = s.opts.Ground.OnGround(s.body.Origin)
}

// Hold stops the ghost in place, used once the last frame is reached.
func (s *Sync) Hold() {
	s.body.Velocity = mgl32.Vec3{}
}

// updateDucking crouches the ghost as soon as the duck button is held, and only stands it back up once the
// collision probe reports there is room to do so.
func (s *Sync) updateDucking(current replay.Frame) {
	if current.Pressing(game.ButtonDuck) {
		s.body.Ducking = true
		return
	}
	if s.body.Ducking && s.opts.Collision.CanStand(game.UnduckOrigin(s.body.Origin, s.body.OnGround)) {
		s.body.Ducking = false
	}
}

type openAir struct{}

func (openAir) CanStand(mgl32.Vec3) bool { return true }
func (openAir) OnGround(mgl32.Vec3) bool { return false }
