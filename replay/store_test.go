package replay

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/ghostplay/oerror"
	"github.com/stretchr/testify/require"
)

func testFrames(n int) []Frame {
	frames := make([]Frame, n)
	for i := range frames {
		frames[i] = Frame{
			Tick:       i,
			Position:   mgl32.Vec3{float32(i), 0, 0},
			EyeAngles:  mgl32.Vec3{0, float32(i * 2), 0},
			ViewOffset: mgl32.Vec3{0, 64, 0},
		}
	}
	return frames
}

func TestMemoryStore(t *testing.T) {
	s, err := NewMemoryStore("ghost", 0.015, testFrames(3))
	require.NoError(t, err)
	require.Equal(t, 3, s.FrameCount())
	require.Equal(t, float32(0.015), s.TickInterval())
	require.Equal(t, "ghost", s.PlayerName())
	require.Equal(t, float32(2), s.Frame(2).Position.X())
	require.Equal(t, float32(2), s.Frame(99).Position.X(), "out of range reads clamp")
	require.Len(t, Frames(s), 3)
}

func TestMemoryStoreRejectsGaps(t *testing.T) {
	frames := testFrames(3)
	frames[2].Tick = 5
	_, err := NewMemoryStore("ghost", 0.015, frames)
	require.ErrorIs(t, err, oerror.ErrCorruptRecording)

	_, err = NewMemoryStore("ghost", 0, testFrames(1))
	require.Error(t, err)
}

func TestDigest(t *testing.T) {
	a, _ := NewMemoryStore("a", 0.015, testFrames(10))
	b, _ := NewMemoryStore("b", 0.015, testFrames(10))
	require.Equal(t, Digest(a), Digest(b), "player name is not part of the digest")

	frames := testFrames(10)
	frames[4].Buttons = 1
	c, _ := NewMemoryStore("a", 0.015, frames)
	require.NotEqual(t, Digest(a), Digest(c))

	d, _ := NewMemoryStore("a", 0.01, testFrames(10))
	require.NotEqual(t, Digest(a), Digest(d))
}
