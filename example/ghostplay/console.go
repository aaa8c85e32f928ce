package main

import (
	"github.com/google/uuid"
	"github.com/oomph-ac/ghostplay/ghost"
	"github.com/oomph-ac/ghostplay/view"
	"github.com/sirupsen/logrus"
)

// hudInterval is the amount of ticks between two HUD lines.
const hudInterval = 66

// consoleViewer watches a ghost and prints its HUD to the log.
type consoleViewer struct {
	id   uuid.UUID
	log  *logrus.Logger
	mode view.ObserverMode

	g    *ghost.Ghost
	done func()
}

func (c *consoleViewer) ID() uuid.UUID {
	return c.id
}

func (c *consoleViewer) ObserverMode() view.ObserverMode {
	return c.mode
}

func (c *consoleViewer) ForceObserverMode(mode view.ObserverMode) {
	c.log.Infof("camera switched to %s", mode)
	c.mode = mode
}

func (c *consoleViewer) StopSpectating() {
	c.log.Info("stopped spectating")
	c.done()
}

func (c *consoleViewer) Present(p view.Presentation) {
	if p.Tick%hudInterval == 0 {
		c.log.Infof("[%s] tick %d/%d pos=(%.0f %.0f %.0f) ducking=%v", p.Mode, p.Tick, c.g.FrameCount()-1, p.Origin[0], p.Origin[1], p.Origin[2], p.Ducking)
		c.log.Info(c.g.Stats().Summary())
	}
	if p.Tick == c.g.FrameCount()-1 {
		c.g.FinishMap()
		c.g.HandleMapFinished(false)
	}
}

// consoleTimer logs timer state changes of the ghost.
type consoleTimer struct {
	log *logrus.Logger
}

func (t consoleTimer) NotifyTimerState(v view.Viewer, running bool) {
	t.log.Infof("timer running for %s: %v", v.ID(), running)
}
