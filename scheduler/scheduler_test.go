package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"github.com/oomph-ac/ghostplay/ghost"
	"github.com/oomph-ac/ghostplay/replay"
	"github.com/oomph-ac/ghostplay/view"
	"github.com/stretchr/testify/require"
)

const tick = 15 * time.Millisecond

type hookViewer struct {
	id        uuid.UUID
	onPresent func(p view.Presentation)
}

func (v *hookViewer) ID() uuid.UUID                       { return v.id }
func (v *hookViewer) ObserverMode() view.ObserverMode     { return view.ObserverChase }
func (v *hookViewer) ForceObserverMode(view.ObserverMode) {}
func (v *hookViewer) StopSpectating()                     {}
func (v *hookViewer) Present(p view.Presentation) {
	if v.onPresent != nil {
		v.onPresent(p)
	}
}

func store(t *testing.T, n int) replay.Store {
	t.Helper()
	frames := make([]replay.Frame, n)
	for i := range frames {
		frames[i] = replay.Frame{Tick: i, Position: mgl32.Vec3{float32(i), 0, 0}}
	}
	s, err := replay.NewMemoryStore("tester", 0.015, frames)
	require.NoError(t, err)
	return s
}

func newGhost(t *testing.T, s *Scheduler, speed float32) *ghost.Ghost {
	t.Helper()
	g, err := ghost.New(ghost.Opts{Remover: s, Speed: speed})
	require.NoError(t, err)
	require.NoError(t, g.StartRun(store(t, 100), false))
	s.Add(g)
	return g
}

func TestTickHonoursNextThink(t *testing.T) {
	s := New(nil, 0.015)
	require.Equal(t, tick, s.Interval())

	normal := newGhost(t, s, 1)
	slow := newGhost(t, s, 0.5)

	for i := 0; i < 10; i++ {
		s.Tick(time.Duration(i) * tick)
	}
	require.Equal(t, 10, normal.CurrentTick())
	require.Equal(t, 5, slow.CurrentTick())
	require.Equal(t, 9*tick, s.Now())
}

func TestRemovalDeferredToEndOfTick(t *testing.T) {
	s := New(nil, 0.015)
	first := newGhost(t, s, 1)
	second := newGhost(t, s, 1)

	var lenDuringTick int
	v := &hookViewer{id: uuid.New()}
	v.onPresent = func(view.Presentation) {
		first.EndRun()
		lenDuringTick = s.Len()
	}
	first.BindViewer(v)

	s.Tick(0)
	require.True(t, first.Ended())
	require.Equal(t, 2, lenDuringTick)
	require.Equal(t, 1, second.CurrentTick(), "ghosts after an ended one are still updated")
	require.Equal(t, 1, s.Len())

	_, ok := s.Ghost(first.ID())
	require.False(t, ok)
	_, ok = s.Ghost(second.ID())
	require.True(t, ok)
}

func TestSubmitRunsBeforeTick(t *testing.T) {
	s := New(nil, 0.015)
	g := newGhost(t, s, 1)

	s.Submit(func() { g.Seek(50) })
	s.Submit(func() { g.SetPaused(true) })
	s.Tick(0)
	require.Equal(t, 50, g.CurrentTick())
	require.True(t, g.IsPaused())

	s.Submit(g.EndRun)
	s.Tick(tick)
	require.Zero(t, s.Len())
}

func TestRunUntilCancelled(t *testing.T) {
	s := New(nil, 0.005)
	g := newGhost(t, s, 1)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	require.ErrorIs(t, s.Run(ctx), context.DeadlineExceeded)
	require.False(t, s.Running())
	require.Positive(t, g.CurrentTick())
}

func TestRunReportsCrash(t *testing.T) {
	s := New(nil, 0.005)
	g := newGhost(t, s, 1)
	g.BindViewer(&hookViewer{id: uuid.New(), onPresent: func(view.Presentation) {
		panic("viewer went away")
	}})

	err := s.Run(context.Background())
	require.ErrorContains(t, err, "scheduler crashed: viewer went away")
	require.False(t, s.Running())
}
