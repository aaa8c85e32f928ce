package view

import (
	"testing"

	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"github.com/oomph-ac/ghostplay/game"
	"github.com/oomph-ac/ghostplay/replay"
	"github.com/oomph-ac/ghostplay/utils"
	"github.com/stretchr/testify/require"
)

type mockViewer struct {
	id        uuid.UUID
	mode      ObserverMode
	forced    int
	presented []Presentation
}

func newMockViewer(mode ObserverMode) *mockViewer {
	return &mockViewer{id: uuid.New(), mode: mode}
}

func (v *mockViewer) ID() uuid.UUID              { return v.id }
func (v *mockViewer) ObserverMode() ObserverMode { return v.mode }
func (v *mockViewer) StopSpectating()            {}
func (v *mockViewer) Present(p Presentation)     { v.presented = append(v.presented, p) }
func (v *mockViewer) ForceObserverMode(mode ObserverMode) {
	v.forced++
	v.mode = mode
}

type mockProbe struct {
	canStand bool
	onGround bool
	queries  int
}

func (p *mockProbe) CanStand(mgl32.Vec3) bool {
	p.queries++
	return p.canStand
}

func (p *mockProbe) OnGround(mgl32.Vec3) bool {
	return p.onGround
}

func frameAt(tick int, pos mgl32.Vec3, buttons uint32) replay.Frame {
	return replay.Frame{
		Tick:       tick,
		Position:   pos,
		EyeAngles:  mgl32.Vec3{30, 90, 0},
		Buttons:    buttons,
		ViewOffset: mgl32.Vec3{0, 64, 0},
	}
}

func TestObservedModes(t *testing.T) {
	s := NewSync(Options{TickInterval: 0.015})
	inEye, chase, roaming := newMockViewer(ObserverInEye), newMockViewer(ObserverChase), newMockViewer(ObserverRoaming)

	cur, next := frameAt(0, mgl32.Vec3{}, 0), frameAt(1, mgl32.Vec3{1.5, 0, 0}, 0)
	s.Observed([]Viewer{inEye, chase, roaming}, 0, cur, next)

	require.Len(t, inEye.presented, 1)
	p := inEye.presented[0]
	require.True(t, p.Hidden)
	require.Equal(t, mgl32.Vec3{30, 90, 0}, p.Angles)
	require.Equal(t, ObserverInEye, p.Mode)

	p = chase.presented[0]
	require.False(t, p.Hidden)
	require.Equal(t, mgl32.Vec3{3, 90, 0}, p.Angles)
	require.Equal(t, ObserverChase, p.Mode)

	require.Equal(t, 1, roaming.forced)
	require.Equal(t, ObserverInEye, roaming.mode)
	require.True(t, roaming.presented[0].Hidden)
	require.Zero(t, inEye.forced)
	require.Zero(t, chase.forced)
}

func TestInterpolatedVelocity(t *testing.T) {
	s := NewSync(Options{TickInterval: 0.015, MaxVelocity: 3500})

	cur, next := frameAt(0, mgl32.Vec3{10, 0, 0}, 0), frameAt(1, mgl32.Vec3{7, 1.5, 0}, 0)
	vel, ok := s.Observed(nil, 0, cur, next)
	require.True(t, ok)
	require.InDelta(t, 200, vel.X(), 1e-3, "velocity is the absolute delta")
	require.InDelta(t, 100, vel.Y(), 1e-3)
	require.Equal(t, vel, s.Body().Velocity)

	// Moving 100 units in one tick is well above the cap and must not be applied.
	far := frameAt(2, mgl32.Vec3{110, 0, 0}, 0)
	vel, ok = s.Observed(nil, 1, cur, far)
	require.False(t, ok)
	require.Greater(t, vel.X(), float32(3500))
	require.InDelta(t, 200, s.Body().Velocity.X(), 1e-3, "previous velocity is retained across a teleport")
}

func TestVelocityNeverExceedsCap(t *testing.T) {
	s := NewSync(Options{TickInterval: 0.015, MaxVelocity: 1000})
	prev := frameAt(0, mgl32.Vec3{}, 0)
	for i := 1; i < 200; i++ {
		step := float32(i%17) * 2.5
		cur := frameAt(i, prev.Position.Add(mgl32.Vec3{step, -step / 2, step / 3}), 0)
		s.Observed(nil, i, prev, cur)
		v := s.Body().Velocity
		for axis := range 3 {
			require.LessOrEqual(t, v[axis], float32(1000))
		}
		prev = cur
	}
}

func TestCrouchTransitions(t *testing.T) {
	probe := &mockProbe{canStand: false}
	s := NewSync(Options{TickInterval: 0.015, Collision: probe, Ground: probe})
	duck := utils.WithFlags(game.ButtonDuck)

	f := func(buttons uint32) replay.Frame { return frameAt(0, mgl32.Vec3{}, buttons) }

	s.Observed(nil, 0, f(duck), f(duck))
	require.True(t, s.Body().Ducking, "ducking is immediate")
	require.Zero(t, probe.queries)
	require.Equal(t, game.DuckingHull, s.Body().Hull())

	s.Observed(nil, 1, f(0), f(0))
	require.True(t, s.Body().Ducking, "stays crouched while there is no room")
	s.Observed(nil, 2, f(0), f(0))
	require.True(t, s.Body().Ducking)
	require.Equal(t, 2, probe.queries)

	probe.canStand = true
	s.Observed(nil, 3, f(0), f(0))
	require.False(t, s.Body().Ducking)
	require.Equal(t, game.StandingHull, s.Body().Hull())
}

func TestUnobserved(t *testing.T) {
	s := NewSync(Options{})
	s.Reset(frameAt(0, mgl32.Vec3{}, 0))

	s.Unobserved(frameAt(4, mgl32.Vec3{5, 6, 7}, utils.WithFlags(game.ButtonDuck)))
	b := s.Body()
	require.Equal(t, mgl32.Vec3{5, 6, 7}, b.Origin)
	require.Equal(t, mgl32.Vec3{3, 90, 0}, b.RenderAngles)
	require.False(t, b.Hidden)
	require.False(t, b.Ducking, "crouching is not simulated without viewers")
	require.Equal(t, mgl32.Vec3{}, b.Velocity)

	s.Hold()
	require.Equal(t, mgl32.Vec3{}, s.Body().Velocity)
}

func TestStaticWorld(t *testing.T) {
	w := StaticWorld{Solids: []cube.BBox{
		cube.Box(-100, -10, -100, 100, 0, 100),
		cube.Box(-100, 50, -100, 100, 60, 100),
	}}
	require.True(t, w.OnGround(mgl32.Vec3{0, 0, 0}))
	require.False(t, w.OnGround(mgl32.Vec3{0, 20, 0}))
	require.False(t, w.CanStand(mgl32.Vec3{0, 0.5, 0}), "ceiling at 50 blocks a 72 unit hull")
	require.True(t, w.CanStand(mgl32.Vec3{500, 0.5, 0}))
}

func TestBindings(t *testing.T) {
	b := NewBindings()
	v1, v2, v3 := newMockViewer(ObserverInEye), newMockViewer(ObserverChase), newMockViewer(ObserverInEye)
	require.True(t, b.Add(v1))
	require.True(t, b.Add(v2))
	require.True(t, b.Add(v3))
	require.False(t, b.Add(v2))
	require.Equal(t, 3, b.Len())

	snap := b.Snapshot()
	require.Equal(t, []Viewer{v1, v2, v3}, snap)
	for _, v := range snap {
		require.True(t, b.Remove(v))
	}
	require.Len(t, snap, 3)
	require.Zero(t, b.Len())
	require.False(t, b.Remove(v1))

	b.Add(v1)
	b.Clear()
	require.False(t, b.Has(v1))
}
