package game

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// FloatEquals determines whether two floats are within epsilon of each other.
func FloatEquals(a, b, epsilon float32) bool {
	return math32.Abs(a-b) <= epsilon
}

// HzLenSqr returns the squared horizontal length of a vector. Y is the vertical axis.
func HzLenSqr(vec mgl32.Vec3) float32 {
	return vec[0]*vec[0] + vec[2]*vec[2]
}

// HzLen returns the horizontal length of a vector.
func HzLen(vec mgl32.Vec3) float32 {
	return math32.Sqrt(HzLenSqr(vec))
}

// AbsVec3 returns the vector with the absolute value of every component.
func AbsVec3(vec mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{math32.Abs(vec[0]), math32.Abs(vec[1]), math32.Abs(vec[2])}
}

// ClampInt clamps num to the inclusive range [min, max].
func ClampInt(num, min, max int) int {
	if num < min {
		return min
	}
	if num > max {
		return max
	}
	return num
}
