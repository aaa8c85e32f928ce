package sqlstore

import (
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/ghostplay/oerror"
	"github.com/oomph-ac/ghostplay/replay"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func openTestArchive(t *testing.T) *Archive {
	t.Helper()
	log := logrus.New()
	log.SetLevel(logrus.WarnLevel)

	a, err := Open(filepath.Join(t.TempDir(), "recordings.db"), log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	return a
}

func testStore(t *testing.T, n int) *replay.MemoryStore {
	t.Helper()
	frames := make([]replay.Frame, n)
	for i := range frames {
		frames[i] = replay.Frame{
			Tick:       i,
			Position:   mgl32.Vec3{float32(i) * 1.5, 10, -float32(i)},
			EyeAngles:  mgl32.Vec3{12.5, float32(i) * 0.75, 0},
			Buttons:    uint32(i % 4),
			ViewOffset: mgl32.Vec3{0, 64, 0},
		}
	}
	s, err := replay.NewMemoryStore("runner", 0.015, frames)
	require.NoError(t, err)
	return s
}

func TestArchiveRoundTrip(t *testing.T) {
	a := openTestArchive(t)
	s := testStore(t, 250)

	require.NoError(t, a.Save("bhop_run", s))
	loaded, err := a.Load("bhop_run")
	require.NoError(t, err)

	require.Equal(t, s.FrameCount(), loaded.FrameCount())
	require.Equal(t, s.PlayerName(), loaded.PlayerName())
	require.Equal(t, s.TickInterval(), loaded.TickInterval())
	require.Equal(t, replay.Frames(s), replay.Frames(loaded))
	require.Equal(t, replay.Digest(s), replay.Digest(loaded))
}

func TestArchiveReplaceAndDelete(t *testing.T) {
	a := openTestArchive(t)
	require.NoError(t, a.Save("b", testStore(t, 5)))
	require.NoError(t, a.Save("a", testStore(t, 5)))
	require.NoError(t, a.Save("a", testStore(t, 8)))

	names, err := a.Names()
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, names)

	loaded, err := a.Load("a")
	require.NoError(t, err)
	require.Equal(t, 8, loaded.FrameCount())

	require.NoError(t, a.Delete("a"))
	require.NoError(t, a.Delete("a"))
	_, err = a.Load("a")
	require.ErrorIs(t, err, oerror.ErrNoRecording)
}

func TestArchiveDetectsTampering(t *testing.T) {
	a := openTestArchive(t)
	require.NoError(t, a.Save("run", testStore(t, 20)))

	require.NoError(t, a.db.Model(&frameRow{}).Where("tick = ?", 7).Update("buttons", 1<<9).Error)
	_, err := a.Load("run")
	require.ErrorIs(t, err, oerror.ErrCorruptRecording)
}
