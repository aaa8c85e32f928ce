// Package playback holds the frame-index state machine of a replay run and the stepper that turns a
// fractional playback speed into whole-frame advances.
package playback

import (
	"fmt"
	"strings"

	"github.com/oomph-ac/ghostplay/assert"
	"github.com/oomph-ac/ghostplay/game"
	"github.com/oomph-ac/ghostplay/oerror"
	"github.com/oomph-ac/ghostplay/replay"
)

// Status is the lifecycle stage of a State.
type Status uint8

const (
	// StatusIdle is the status of a State that has no recording bound.
	StatusIdle Status = iota
	// StatusActive is the status of a State advancing forward every tick.
	StatusActive
	// StatusPaused is the status of a State that only moves when scrubbed.
	StatusPaused
	// StatusEnded is the terminal status. An ended State can no longer be mutated.
	StatusEnded
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusActive:
		return "active"
	case StatusPaused:
		return "paused"
	case StatusEnded:
		return "ended"
	}
	return fmt.Sprintf("Status(%d)", uint8(s))
}

// ScrubDirection is the direction a paused State moves in when it is advanced.
type ScrubDirection uint8

const (
	ScrubNone ScrubDirection = iota
	ScrubBackward
	ScrubForward
)

// ParseScrubDirection parses "none", "backward" or "forward".
func ParseScrubDirection(s string) (ScrubDirection, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return ScrubNone, nil
	case "backward", "back":
		return ScrubBackward, nil
	case "forward":
		return ScrubForward, nil
	}
	return ScrubNone, oerror.New("unknown scrub direction %q", s)
}

func (d ScrubDirection) String() string {
	switch d {
	case ScrubBackward:
		return "backward"
	case ScrubForward:
		return "forward"
	}
	return "none"
}

// Step returns the index reached by moving steps frames from index, given the pause and scrub state. The
// result is always within [0, totalTicks].
func Step(index, totalTicks, steps int, paused bool, dir ScrubDirection) int {
	if paused {
		switch dir {
		case ScrubBackward:
			index -= steps
		case ScrubForward:
			index += steps
		}
	} else {
		index += steps
	}
	return game.ClampInt(index, 0, totalTicks)
}

// State tracks the current frame of a run.
type State struct {
	store replay.Store

	status     Status
	index      int
	totalTicks int
	scrub      ScrubDirection
}

// Start binds the store to the State and rewinds it to the first frame. It fails with oerror.ErrNoRecording
// if there is nothing to play, and with oerror.ErrConfigMismatch if the recording was made at a different
// tick interval than liveInterval. A failed Start leaves the State untouched.
func (s *State) Start(store replay.Store, liveInterval float32) error {
	if s.status == StatusEnded {
		return oerror.New("cannot start an ended run")
	}
	if store == nil || store.FrameCount() == 0 {
		return oerror.ErrNoRecording
	}
	if !game.FloatEquals(store.TickInterval(), liveInterval, game.TickIntervalEpsilon) {
		return fmt.Errorf("%w (%f -> %f)", oerror.ErrConfigMismatch, store.TickInterval(), liveInterval)
	}

	s.store = store
	s.index = 0
	s.totalTicks = store.FrameCount() - 1
	s.status = StatusActive
	return nil
}

// Advance moves the State by steps frames. Active states move forward, paused states move in their scrub
// direction. Idle and ended states are not moved.
func (s *State) Advance(steps int) {
	if !s.Running() {
		return
	}
	assert.IsTrue(steps >= 0, "negative step count %d", steps)
	s.index = Step(s.index, s.totalTicks, steps, s.status == StatusPaused, s.scrub)
	assert.InRange(s.index, 0, s.totalTicks, "playback index")
}

// Seek moves the State to the tick given, clamped to the recording.
func (s *State) Seek(tick int) {
	if !s.Running() {
		return
	}
	s.index = game.ClampInt(tick, 0, s.totalTicks)
}

// End ends the run. Calling End more than once has no effect.
func (s *State) End() {
	s.status = StatusEnded
}

// SetPaused pauses or resumes a running State.
func (s *State) SetPaused(paused bool) {
	if !s.Running() {
		return
	}
	if paused {
		s.status = StatusPaused
	} else {
		s.status = StatusActive
	}
}

// SetScrub sets the direction the State moves in while paused.
func (s *State) SetScrub(dir ScrubDirection) {
	if s.status == StatusEnded {
		return
	}
	s.scrub = dir
}

// Scrub ...
func (s *State) Scrub() ScrubDirection {
	return s.scrub
}

// Status ...
func (s *State) Status() Status {
	return s.status
}

// Running returns true if the State is active or paused.
func (s *State) Running() bool {
	return s.status == StatusActive || s.status == StatusPaused
}

// Paused ...
func (s *State) Paused() bool {
	return s.status == StatusPaused
}

// Ended ...
func (s *State) Ended() bool {
	return s.status == StatusEnded
}

// Index returns the index of the current frame.
func (s *State) Index() int {
	return s.index
}

// TotalTicks returns the index of the last frame.
func (s *State) TotalTicks() int {
	return s.totalTicks
}

// FrameCount returns the amount of frames in the bound recording, or zero if none is bound.
func (s *State) FrameCount() int {
	if s.store == nil {
		return 0
	}
	return s.store.FrameCount()
}

// Store returns the bound recording, or nil.
func (s *State) Store() replay.Store {
	return s.store
}

// Backward returns true if the State currently moves towards the start of the recording.
func (s *State) Backward() bool {
	return s.status == StatusPaused && s.scrub == ScrubBackward
}

// AtEnd returns true if the State sits on the last frame and would move forward, meaning the last frame
// should be held.
func (s *State) AtEnd() bool {
	return s.index >= s.totalTicks && !s.Backward()
}

// NextIndex returns the index adjacent to the current one in the direction of travel.
func (s *State) NextIndex() int {
	if s.Backward() {
		return max(s.index-1, 0)
	}
	return min(s.index+1, s.totalTicks)
}

// Current returns the current frame. It must only be called on a State with a recording bound.
func (s *State) Current() replay.Frame {
	assert.IsTrue(s.store != nil, "no recording bound")
	return s.store.Frame(s.index)
}

// Next returns the frame at NextIndex.
func (s *State) Next() replay.Frame {
	return s.store.Frame(s.NextIndex())
}
