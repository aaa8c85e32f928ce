package ghost

import (
	"github.com/oomph-ac/ghostplay/playback"
	"github.com/oomph-ac/ghostplay/view"
	"github.com/sirupsen/logrus"
)

// TimerBridge forwards the state of a ghost's run timer to the HUD of a viewer.
type TimerBridge interface {
	NotifyTimerState(v view.Viewer, running bool)
}

// Remover releases a ghost once the host reaches its next scheduling boundary. Remove is called from
// within the ghost's own methods, so implementations must not tear the ghost down synchronously.
type Remover interface {
	Remove(g *Ghost)
}

// Opts holds the collaborators and initial configuration of a Ghost.
type Opts struct {
	// Log is the logger of the ghost. A nil Log discards all output.
	Log *logrus.Logger

	// TickInterval is the live tick interval in seconds. Recordings made at another interval are refused.
	TickInterval float32
	// MaxVelocity is the per-axis velocity cap above which frame deltas are treated as teleports.
	MaxVelocity float32

	Collision view.CollisionProbe
	Ground    view.GroundProbe
	Timer     TimerBridge
	Remover   Remover

	// LocalViewer is bound in first person when a run is started with firstPerson set.
	LocalViewer view.Viewer

	Appearance Appearance
	// Speed is the initial playback speed. Zero plays at normal speed; use SetSpeed(0) to freeze playback.
	Speed      float32
	Scrub      playback.ScrubDirection
}

type nopTimer struct{}

func (nopTimer) NotifyTimerState(view.Viewer, bool) {}

type nopRemover struct{}

func (nopRemover) Remove(*Ghost) {}
