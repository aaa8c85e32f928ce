package game

const (
	// DefaultTickInterval is the live simulation tick duration in seconds (66 ticks per second).
	DefaultTickInterval = float32(0.015)
	// TickIntervalEpsilon is the largest difference tolerated between a recorded and live tick interval.
	TickIntervalEpsilon = float32(1e-4)

	// DefaultMaxVelocity is the per-axis velocity cap used to detect teleports during playback.
	DefaultMaxVelocity = float32(3500)
	// ChasePitchDamping divides the recorded pitch when the ghost is drawn in third person.
	ChasePitchDamping = float32(10)

	// DefaultViewHeight is the first-person camera height of a standing player.
	DefaultViewHeight = float32(64)
)

// Input buttons, expressed as bit indexes into a frame's button mask.
const (
	ButtonAttack uint32 = iota
	ButtonJump
	ButtonDuck
	ButtonForward
	ButtonBack
	ButtonUse
	ButtonCancel
	ButtonLeft
	ButtonRight
	ButtonMoveLeft
	ButtonMoveRight
	ButtonAttack2
	ButtonRun
	ButtonReload
	ButtonSpeed
	ButtonWalk
)

const (
	MinBodyGroup     = 0
	MaxBodyGroup     = 14
	DefaultBodyGroup = 11

	DefaultGhostAlpha = uint8(75)
)
