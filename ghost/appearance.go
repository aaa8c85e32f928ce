package ghost

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/oomph-ac/ghostplay/game"
)

// Appearance holds the visual settings of a ghost model.
type Appearance struct {
	// BodyGroup selects the variant of the ghost model.
	BodyGroup int
	// Colour is the tint of the model. Its alpha channel is the transparency of the ghost.
	Colour color.RGBA
}

// DefaultAppearance returns a translucent green ghost using the default body group.
func DefaultAppearance() Appearance {
	return Appearance{
		BodyGroup: game.DefaultBodyGroup,
		Colour:    color.RGBA{G: 0xff, A: game.DefaultGhostAlpha},
	}
}

// ValidBodyGroup ...
func ValidBodyGroup(group int) bool {
	return group >= game.MinBodyGroup && group <= game.MaxBodyGroup
}

// ParseColourHex parses a colour in the RRGGBB format, optionally prefixed with '#'. The alpha channel of
// the colour returned is always opaque.
func ParseColourHex(s string) (color.RGBA, bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return color.RGBA{}, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, false
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, true
}

// HexColour formats the RGB channels of c as RRGGBB.
func HexColour(c color.RGBA) string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}
