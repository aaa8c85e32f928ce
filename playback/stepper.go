package playback

import "github.com/chewxy/math32"

// MaxSpeed is the highest playback speed a Stepper honours. Faster speeds are treated as MaxSpeed.
const MaxSpeed float32 = 1 << 16

// ClampSpeed limits speed to the range 0 to MaxSpeed. NaN is treated as zero.
func ClampSpeed(speed float32) float32 {
	if !(speed > 0) {
		return 0
	}
	return min(speed, MaxSpeed)
}

// Stepper approximates a fractional playback speed with whole-frame advances. Speeds at or below one
// advance a single frame per update and stretch the update interval instead; faster speeds alternate
// between the two integers surrounding the speed so that the average advance matches it.
//
// A Stepper keeps state between updates and must not be shared between runs.
type Stepper struct {
	elapsed int
}

// Step returns the number of frames to advance for this update, and the factor the interval until the
// next update should be multiplied by. A speed of zero or less, or NaN, freezes playback.
func (st *Stepper) Step(speed float32) (frames int, intervalScale float32) {
	speed = ClampSpeed(speed)
	if speed == 0 {
		return 0, 1
	}
	if speed <= 1 {
		return 1, 1 / speed
	}

	next := int(math32.Floor(speed)) + 1
	cur := next - 1
	avg := 1 - (float32(next) - speed)
	switch avg {
	case 0:
		return cur, 1
	case 1:
		return next, 1
	}

	// The dominant step is the one emitted once every threshold updates. Mirroring around one half keeps
	// the threshold large enough to be meaningful.
	dominant, recessive := next, cur
	if avg > 0.5 {
		avg = 1 - avg
		dominant, recessive = cur, next
	}
	threshold := int(math32.Round(1 / avg))

	st.elapsed++
	if st.elapsed >= threshold {
		st.elapsed = 0
		return dominant, 1
	}
	return recessive, 1
}

// Reset clears the accumulated update count.
func (st *Stepper) Reset() {
	st.elapsed = 0
}
