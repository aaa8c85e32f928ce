// Package scheduler drives replay ghosts at the live tick rate.
package scheduler

import (
	"context"
	"io"
	"math"
	"time"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/getsentry/sentry-go"
	"github.com/google/uuid"
	"github.com/oomph-ac/ghostplay/game"
	"github.com/oomph-ac/ghostplay/ghost"
	"github.com/oomph-ac/ghostplay/oerror"
	"github.com/sirupsen/logrus"
	"go.uber.org/atomic"
)

// Scheduler owns a set of ghosts and updates each of them whenever its next think is due. Ghosts are
// updated in the order they were added. A Scheduler implements ghost.Remover: ghosts ending their run are
// released once the tick they ended in has finished.
type Scheduler struct {
	log      *logrus.Logger
	interval time.Duration

	ghosts  *orderedmap.OrderedMap[uuid.UUID, *ghost.Ghost]
	pending []*ghost.Ghost
	queue   chan func()

	now     time.Duration
	running atomic.Bool
}

// New creates a Scheduler ticking at the interval given, in seconds.
func New(log *logrus.Logger, tickInterval float32) *Scheduler {
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}
	if tickInterval <= 0 {
		tickInterval = game.DefaultTickInterval
	}
	return &Scheduler{
		log:      log,
		interval: time.Duration(math.Round(float64(tickInterval) * float64(time.Second))),
		ghosts:   orderedmap.NewOrderedMap[uuid.UUID, *ghost.Ghost](),
		queue:    make(chan func(), queueSize),
	}
}

// Add registers the ghost. It is updated from the next tick on.
func (s *Scheduler) Add(g *ghost.Ghost) {
	s.ghosts.Set(g.ID(), g)
}

// Remove releases the ghost at the end of the current tick. It is called by ghosts ending their run.
func (s *Scheduler) Remove(g *ghost.Ghost) {
	s.pending = append(s.pending, g)
}

// Ghost returns the ghost with the ID given, if it is registered.
func (s *Scheduler) Ghost(id uuid.UUID) (*ghost.Ghost, bool) {
	return s.ghosts.Get(id)
}

// Len returns the amount of registered ghosts.
func (s *Scheduler) Len() int {
	return s.ghosts.Len()
}

// Interval returns the duration of a tick.
func (s *Scheduler) Interval() time.Duration {
	return s.interval
}

// Now returns the time passed to the last tick.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Running returns true while Run is executing.
func (s *Scheduler) Running() bool {
	return s.running.Load()
}

// Tick runs the tasks submitted since the last tick, updates every ghost whose next think is due at now
// and finally releases the ghosts that ended their run.
func (s *Scheduler) Tick(now time.Duration) {
	s.now = now
	s.drain()

	for _, id := range s.ghosts.Keys() {
		g, ok := s.ghosts.Get(id)
		if !ok || g.Ended() || now < g.NextThink() {
			continue
		}
		g.Update(now)
	}
	s.release()
}

// release drops the ghosts whose removal was requested.
func (s *Scheduler) release() {
	for _, g := range s.pending {
		if s.ghosts.Delete(g.ID()) {
			s.log.Debugf("scheduler: released ghost %s", g.ID())
		}
	}
	s.pending = s.pending[:0]
}

// Run ticks the scheduler at its interval until ctx is cancelled, returning the context's error. A panic
// raised while ticking is reported to sentry and returned as an error.
func (s *Scheduler) Run(ctx context.Context) (err error) {
	if !s.running.CompareAndSwap(false, true) {
		return oerror.New("scheduler is already running")
	}
	defer s.running.Store(false)
	defer func() {
		if v := recover(); v != nil {
			err = oerror.New("scheduler crashed: %v", v)
			hub := sentry.CurrentHub().Clone()
			hub.Recover(err)
			hub.Flush(time.Second * 5)
		}
	}()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	start := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.Tick(time.Since(start))
		}
	}
}
