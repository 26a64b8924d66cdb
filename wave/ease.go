package wave

import "math"

// EaseFunc shapes a sample value before it is amplified.
// Input and output are in [-1, 1].
type EaseFunc func(float64) float64

// Linear leaves the value as is.
func Linear() EaseFunc {
	return func(t float64) float64 {
		return t
	}
}

// Cubic raises the value to the third power. Being odd, it keeps the sign of
// samples taken from the negative half of the sine.
func Cubic() EaseFunc {
	return func(t float64) float64 {
		return t * t * t
	}
}

// CubicInOut is the cubic ease-in-out curve, mirrored for negative values.
func CubicInOut() EaseFunc {
	return func(t float64) float64 {
		if t < 0 {
			return -cubicInOut(-t)
		}
		return cubicInOut(t)
	}
}

func cubicInOut(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}

	return 1 - 4*math.Pow(1-t, 3)
}

// EaseByName returns the easing function registered under name.
func EaseByName(name string) (EaseFunc, bool) {
	switch name {
	case "", "cubic":
		return Cubic(), true
	case "cubic-in-out":
		return CubicInOut(), true
	case "linear":
		return Linear(), true
	default:
		return nil, false
	}
}

// EaseNames lists the names accepted by EaseByName.
func EaseNames() []string {
	return []string{"cubic", "cubic-in-out", "linear"}
}
