package gamemath

import "math"

// approximatelyEpsilon is the relative tolerance used by Approximately.
const approximatelyEpsilon = 1e-6

// Clamp01 clamps t to [0, 1].
func Clamp01(t float64) float64 {
	return Clamp(t, 0, 1)
}

// Clamp clamps v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp interpolates from a toward b. t is clamped to [0, 1] so a single
// step can never pass b.
func Lerp(a, b, t float64) float64 {
	t = Clamp01(t)
	if t == 1 {
		return b
	}
	return a + (b-a)*t
}

// Accelerate raises speed by rate*dt without passing target.
func Accelerate(speed, target, rate, dt float64) float64 {
	speed += rate * dt
	return math.Min(speed, target)
}

// Decelerate lowers speed by rate*dt without dropping below target.
func Decelerate(speed, target, rate, dt float64) float64 {
	speed -= rate * dt
	return math.Max(speed, target)
}

// Approximately reports whether a and b are equal within a small relative
// tolerance.
func Approximately(a, b float64) bool {
	tolerance := math.Max(approximatelyEpsilon*math.Max(math.Abs(a), math.Abs(b)), approximatelyEpsilon*8)
	return math.Abs(b-a) < tolerance
}
