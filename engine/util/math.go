package util

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

func Abs(x float32) float32 {
	return float32(math.Abs(float64(x)))
}

func Sqrt(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}

func Max(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func Min(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func Mix(a, b, factor float32) float32 {
	return a*(1-factor) + factor*b
}

func Clamp(value, min, max float64) float64 {
	return math.Min(math.Max(value, min), max)
}

func ToDegree(angle float32) float32 {
	return mgl32.RadToDeg(angle)
}

func HorizontalLen(v mgl32.Vec3) float32 {
	return float32(math.Sqrt(float64(v.X()*v.X() + v.Z()*v.Z())))
}

// IsFinite reports whether x is neither NaN nor an infinity.
func IsFinite(x float32) bool {
	f := float64(x)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
