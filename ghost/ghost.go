// Package ghost implements the replay ghost: an entity that plays a recorded run back inside the live
// simulation, presents it to its viewers and derives run statistics from it as it goes.
package ghost

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"github.com/oomph-ac/ghostplay/game"
	"github.com/oomph-ac/ghostplay/oerror"
	"github.com/oomph-ac/ghostplay/playback"
	"github.com/oomph-ac/ghostplay/replay"
	"github.com/oomph-ac/ghostplay/stats"
	"github.com/oomph-ac/ghostplay/view"
	"github.com/sirupsen/logrus"
)

// RunData is the run information shown on the HUD of the ghost's viewers.
type RunData struct {
	// TimerRunning is true between StartTimer and StopTimer. Statistics are only gathered while it is set.
	TimerRunning bool
	// StartTick is the tick the run timer was started at.
	StartTick int
	// MapFinished is true once the recorded player reached the end of the map.
	MapFinished bool
	// PlayerName is the name of the player that made the recording.
	PlayerName string
	// Buttons holds the buttons of the frame last played, for key press displays.
	Buttons uint32
}

// Ghost plays back a single recording. A Ghost is not safe for concurrent use: all of its methods are
// expected to be called from the goroutine driving the simulation.
type Ghost struct {
	id  uuid.UUID
	log *logrus.Logger

	tickInterval float32
	tickDuration time.Duration
	timer        TimerBridge
	remover      Remover
	localViewer  view.Viewer

	state   playback.State
	stepper playback.Stepper
	speed   float32

	sync    *view.Sync
	viewers *view.Bindings
	acc     stats.Accumulator

	runData     RunData
	firstPerson bool

	appearance Appearance
	pending    Appearance

	nextThink time.Duration
	metrics   *metrics
}

// New creates an idle Ghost. StartRun must be called before it plays anything.
func New(opts Opts) (*Ghost, error) {
	if opts.Log == nil {
		opts.Log = logrus.New()
		opts.Log.SetOutput(io.Discard)
	}
	if opts.TickInterval <= 0 {
		opts.TickInterval = game.DefaultTickInterval
	}
	if opts.Timer == nil {
		opts.Timer = nopTimer{}
	}
	if opts.Remover == nil {
		opts.Remover = nopRemover{}
	}
	if opts.Speed == 0 {
		opts.Speed = 1
	}
	if opts.Appearance == (Appearance{}) {
		opts.Appearance = DefaultAppearance()
	}

	id := uuid.New()
	m, err := newMetrics(id.String())
	if err != nil {
		return nil, err
	}

	g := &Ghost{
		id:  id,
		log: opts.Log,

		tickInterval: opts.TickInterval,
		tickDuration: time.Duration(math.Round(float64(opts.TickInterval) * float64(time.Second))),
		timer:        opts.Timer,
		remover:      opts.Remover,
		localViewer:  opts.LocalViewer,

		speed: playback.ClampSpeed(opts.Speed),

		sync: view.NewSync(view.Options{
			TickInterval: opts.TickInterval,
			MaxVelocity:  opts.MaxVelocity,
			Collision:    opts.Collision,
			Ground:       opts.Ground,
		}),
		viewers: view.NewBindings(),

		appearance: opts.Appearance,
		pending:    opts.Appearance,

		metrics: m,
	}
	g.state.SetScrub(opts.Scrub)
	return g, nil
}

// ID returns the unique ID of the ghost.
func (g *Ghost) ID() uuid.UUID {
	return g.id
}

// Log ...
func (g *Ghost) Log() *logrus.Logger {
	return g.log
}

// StartRun starts playing the store given from its first frame. If firstPerson is set, the local viewer
// is made to watch the ghost in first person. If the recording cannot be played, the error is logged, the
// run is ended and the error is returned.
func (g *Ghost) StartRun(store replay.Store, firstPerson bool) error {
	if g.state.Ended() {
		return oerror.New("ghost %s: cannot restart an ended run", g.id)
	}
	g.firstPerson = firstPerson
	g.runData = RunData{}
	g.acc.Reset()
	g.stepper.Reset()

	if firstPerson && g.localViewer != nil {
		g.localViewer.ForceObserverMode(view.ObserverInEye)
		g.BindViewer(g.localViewer)
	}

	if err := g.state.Start(store, g.tickInterval); err != nil {
		g.log.Warnf("ghost %s: stopping replay: %v", g.id, err)
		g.EndRun()
		return fmt.Errorf("start run: %w", err)
	}

	g.runData.PlayerName = store.PlayerName()
	g.sync.Reset(g.state.Current())
	g.nextThink = 0
	g.log.Debugf("ghost %s: playing %d frames recorded by %s", g.id, store.FrameCount(), store.PlayerName())
	return nil
}

// EndRun stops the run timer for every viewer, makes every viewer stop spectating and asks the host to
// remove the ghost. The ghost is ended immediately; calling EndRun again has no effect.
func (g *Ghost) EndRun() {
	if g.state.Ended() {
		return
	}
	g.StopTimer()
	g.state.End()

	for _, v := range g.viewers.Snapshot() {
		v.StopSpectating()
	}
	g.viewers.Clear()

	g.remover.Remove(g)
	g.log.Debugf("ghost %s: run ended", g.id)
}

// BindViewer makes the viewer given watch the ghost. It has no effect on an ended ghost.
func (g *Ghost) BindViewer(v view.Viewer) {
	if g.state.Ended() {
		return
	}
	if g.viewers.Add(v) {
		g.log.Debugf("ghost %s: viewer %s bound", g.id, v.ID())
	}
}

// UnbindViewer stops the viewer given from watching the ghost. It has no effect on an ended ghost.
func (g *Ghost) UnbindViewer(v view.Viewer) {
	if g.state.Ended() {
		return
	}
	if g.viewers.Remove(v) {
		g.log.Debugf("ghost %s: viewer %s unbound", g.id, v.ID())
	}
}

// Viewers returns the viewers currently bound to the ghost.
func (g *Ghost) Viewers() []view.Viewer {
	return g.viewers.Snapshot()
}

// Update runs a single think of the ghost. It is called by the host whenever NextThink is reached.
func (g *Ghost) Update(now time.Duration) {
	if !g.state.Running() {
		return
	}
	g.applyAppearance()

	scale := float32(1)
	if g.state.AtEnd() {
		// Playback waits on the last frame until the run is ended or restarted.
		g.sync.Hold()
	} else {
		var frames int
		frames, scale = g.stepper.Step(g.speed)

		before := g.state.Index()
		g.state.Advance(frames)
		g.metrics.advanced(max(g.state.Index()-before, before-g.state.Index()))

		g.present(now)
	}
	g.nextThink = now + time.Duration(float64(g.tickDuration)*float64(scale))
}

// present hands the current frame to the viewers, or updates the ghost for nobody if there are none, and
// accounts for the frame in the run statistics.
func (g *Ghost) present(now time.Duration) {
	current, next := g.state.Current(), g.state.Next()
	g.runData.Buttons = current.Buttons

	var (
		vel mgl32.Vec3
		ok  bool
	)
	if viewers := g.viewers.Snapshot(); len(viewers) > 0 {
		vel, ok = g.sync.Observed(viewers, g.state.Index(), current, next)
	} else {
		g.sync.Unobserved(current)
		vel, ok = g.sync.Interpolate(current, next)
	}
	if !ok {
		g.metrics.teleported()
	}

	if g.runData.TimerRunning {
		g.acc.Update(stats.Sample{
			Frame:    current,
			Velocity: vel,
			OnGround: g.sync.Body().OnGround,
			Now:      now,
		})
	}
}

// StartTimer starts the run timer at the tick given and tells every viewer about it.
func (g *Ghost) StartTimer(startTick int) {
	if !g.state.Running() {
		return
	}
	g.runData.StartTick = startTick
	g.runData.TimerRunning = true
	for _, v := range g.viewers.Snapshot() {
		g.timer.NotifyTimerState(v, true)
	}
}

// StopTimer stops the run timer and tells every viewer about it.
func (g *Ghost) StopTimer() {
	if g.state.Ended() {
		return
	}
	g.runData.TimerRunning = false
	for _, v := range g.viewers.Snapshot() {
		g.timer.NotifyTimerState(v, false)
	}
}

// FinishMap marks the recorded player as having reached the end of the map and stops the timer.
func (g *Ghost) FinishMap() {
	if !g.state.Running() {
		return
	}
	g.StopTimer()
	g.runData.MapFinished = true
}

// HandleMapFinished handles the map finished panel being closed. If the viewer chose to restart, the
// ghost keeps playing, otherwise the run is ended.
func (g *Ghost) HandleMapFinished(restart bool) {
	if !restart {
		g.EndRun()
		return
	}
	g.runData.MapFinished = false
}

// SetPaused pauses or resumes playback. A paused ghost only moves in its scrub direction.
func (g *Ghost) SetPaused(paused bool) {
	g.state.SetPaused(paused)
}

// SetScrub sets the direction a paused ghost moves in.
func (g *Ghost) SetScrub(dir playback.ScrubDirection) {
	g.state.SetScrub(dir)
}

// SetSpeed sets the playback speed multiplier. Speeds of zero or less and NaN freeze playback; speeds above
// playback.MaxSpeed are lowered to it.
func (g *Ghost) SetSpeed(speed float32) {
	g.speed = playback.ClampSpeed(speed)
}

// Speed ...
func (g *Ghost) Speed() float32 {
	return g.speed
}

// Seek jumps to the tick given, clamped to the recording.
func (g *Ghost) Seek(tick int) {
	g.state.Seek(tick)
}

// SetMaxVelocity ...
func (g *Ghost) SetMaxVelocity(v float32) {
	g.sync.SetMaxVelocity(v)
}

// SetBodyGroup selects the model variant of the ghost. Groups out of range are refused with a warning. The
// change is applied on the next update.
func (g *Ghost) SetBodyGroup(group int) {
	if !ValidBodyGroup(group) {
		g.log.Warnf("ghost %s: could not set body group %d, expected %d-%d", g.id, group, game.MinBodyGroup, game.MaxBodyGroup)
		return
	}
	g.pending.BodyGroup = group
}

// SetColourHex sets the tint of the ghost from a colour formatted as RRGGBB. Colours that cannot be parsed
// are ignored. The change is applied on the next update.
func (g *Ghost) SetColourHex(s string) {
	c, ok := ParseColourHex(s)
	if !ok {
		return
	}
	c.A = g.pending.Colour.A
	g.pending.Colour = c
}

// SetAlpha sets the transparency of the ghost. The change is applied on the next update.
func (g *Ghost) SetAlpha(alpha uint8) {
	g.pending.Colour.A = alpha
}

func (g *Ghost) applyAppearance() {
	if g.pending == g.appearance {
		return
	}
	g.log.Debugf("ghost %s: body group %d, colour %s/%d", g.id, g.pending.BodyGroup, HexColour(g.pending.Colour), g.pending.Colour.A)
	g.appearance = g.pending
}

// Appearance returns the appearance the ghost is currently drawn with.
func (g *Ghost) Appearance() Appearance {
	return g.appearance
}

// CurrentFrame returns the frame currently played. The zero Frame is returned if no recording is bound.
func (g *Ghost) CurrentFrame() replay.Frame {
	if g.state.Store() == nil {
		return replay.Frame{}
	}
	return g.state.Current()
}

// CurrentTick returns the index of the frame currently played.
func (g *Ghost) CurrentTick() int {
	return g.state.Index()
}

// FrameCount returns the amount of frames in the recording played.
func (g *Ghost) FrameCount() int {
	return g.state.FrameCount()
}

// Stats returns the statistics gathered so far during the run.
func (g *Ghost) Stats() stats.RunStats {
	return g.acc.Stats()
}

// AverageJumpVelocity returns the mean horizontal velocity of the most recent jumps of the run.
func (g *Ghost) AverageJumpVelocity() float32 {
	return g.acc.AverageJumpVelocity()
}

// RunData ...
func (g *Ghost) RunData() RunData {
	return g.runData
}

// Body returns the current state of the ghost entity.
func (g *Ghost) Body() view.Body {
	return g.sync.Body()
}

// FirstPerson returns true if the run was started in first person.
func (g *Ghost) FirstPerson() bool {
	return g.firstPerson
}

// IsActive returns true if the ghost is playing a run, paused or not.
func (g *Ghost) IsActive() bool {
	return g.state.Running()
}

// IsPaused ...
func (g *Ghost) IsPaused() bool {
	return g.state.Paused()
}

// Ended returns true once EndRun was called.
func (g *Ghost) Ended() bool {
	return g.state.Ended()
}

// NextThink returns the simulation time at which Update should be called next.
func (g *Ghost) NextThink() time.Duration {
	return g.nextThink
}
