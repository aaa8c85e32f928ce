package stats

import "github.com/sandertv/gophertunnel/minecraft/text"

// Summary formats the statistics as a single coloured line for a viewer's HUD.
func (s RunStats) Summary() string {
	return text.Colourf(
		"<aqua>Sync</aqua> %.1f%% <grey>|</grey> <aqua>Accel</aqua> %.1f%% <grey>|</grey> <yellow>Jumps</yellow> %d <grey>|</grey> <yellow>Strafes</yellow> %d <grey>|</grey> <green>Last jump</green> %.0f u/s",
		s.StrafeSync, s.AccelSync, s.Jumps, s.Strafes, s.LastJumpVelocity,
	)
}
