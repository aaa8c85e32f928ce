package ghost

import (
	"image/color"
	"testing"

	"github.com/oomph-ac/ghostplay/game"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

func TestParseColourHex(t *testing.T) {
	for in, want := range map[string]color.RGBA{
		"FF8000":  {R: 0xff, G: 0x80, A: 0xff},
		"#00ff00": {G: 0xff, A: 0xff},
		" 123abc": {R: 0x12, G: 0x3a, B: 0xbc, A: 0xff},
	} {
		c, ok := ParseColourHex(in)
		require.True(t, ok, in)
		require.Equal(t, want, c, in)
	}

	for _, in := range []string{"", "fff", "GG0000", "#1234567", "12 456"} {
		_, ok := ParseColourHex(in)
		require.False(t, ok, in)
	}
	require.Equal(t, "123ABC", HexColour(color.RGBA{R: 0x12, G: 0x3a, B: 0xbc}))
}

func TestAppearanceAppliedOnUpdate(t *testing.T) {
	log, hook := test.NewNullLogger()
	f := newFixture(t, Opts{Log: log})
	require.NoError(t, f.g.StartRun(lineStore(t, 5, 0.015), false))
	require.Equal(t, DefaultAppearance(), f.g.Appearance())

	f.g.SetBodyGroup(game.MaxBodyGroup + 1)
	require.Len(t, hook.AllEntries(), 1)
	require.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	require.Contains(t, hook.LastEntry().Message, "could not set body group 15")

	f.g.SetBodyGroup(-1)
	require.Len(t, hook.AllEntries(), 2)
	require.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)

	f.g.SetColourHex("not a colour")
	f.g.Update(0)
	require.Equal(t, DefaultAppearance(), f.g.Appearance())

	f.g.SetBodyGroup(3)
	f.g.SetColourHex("#FF0000")
	f.g.SetAlpha(200)
	require.Equal(t, DefaultAppearance(), f.g.Appearance(), "changes must wait for the next update")

	f.g.Update(tick)
	require.Equal(t, Appearance{BodyGroup: 3, Colour: color.RGBA{R: 0xff, A: 200}}, f.g.Appearance())

	// The alpha channel survives a colour change.
	f.g.SetColourHex("0000FF")
	f.g.Update(2 * tick)
	require.Equal(t, color.RGBA{B: 0xff, A: 200}, f.g.Appearance().Colour)
}
