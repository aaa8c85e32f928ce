package replay

import (
	"fmt"

	"github.com/oomph-ac/ghostplay/game"
	"github.com/oomph-ac/ghostplay/oerror"
)

// Store gives read-only random access to the frames of a recording. Implementations must be immutable
// for as long as a run is playing them back.
type Store interface {
	// FrameCount returns the number of frames in the recording.
	FrameCount() int
	// Frame returns the frame at index. Index is always within [0, FrameCount()).
	Frame(index int) Frame
	// TickInterval returns the duration of a tick, in seconds, at the time of recording.
	TickInterval() float32
	// PlayerName returns the name of the player that made the recording.
	PlayerName() string
}

// MemoryStore is a Store backed by a slice of frames.
type MemoryStore struct {
	playerName   string
	tickInterval float32
	frames       []Frame
}

// NewMemoryStore creates a MemoryStore from the frames given. The frames must be ordered by tick, starting
// at zero and without gaps.
func NewMemoryStore(playerName string, tickInterval float32, frames []Frame) (*MemoryStore, error) {
	if tickInterval <= 0 {
		return nil, oerror.New("tick interval must be positive, got %v", tickInterval)
	}
	for i, f := range frames {
		if f.Tick != i {
			return nil, fmt.Errorf("frame %d: %w (tick %d out of order)", i, oerror.ErrCorruptRecording, f.Tick)
		}
	}
	return &MemoryStore{
		playerName:   playerName,
		tickInterval: tickInterval,
		frames:       frames,
	}, nil
}

// FrameCount ...
func (s *MemoryStore) FrameCount() int {
	return len(s.frames)
}

// Frame ...
func (s *MemoryStore) Frame(index int) Frame {
	return s.frames[game.ClampInt(index, 0, len(s.frames)-1)]
}

// TickInterval ...
func (s *MemoryStore) TickInterval() float32 {
	return s.tickInterval
}

// PlayerName ...
func (s *MemoryStore) PlayerName() string {
	return s.playerName
}

// Frames returns every frame of the store.
func Frames(s Store) []Frame {
	frames := make([]Frame, s.FrameCount())
	for i := range frames {
		frames[i] = s.Frame(i)
	}
	return frames
}
