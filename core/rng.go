package core

import "math"

// Source supplies uniform floats in [0, 1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// RandomInt returns an integer uniformly distributed in [ceil(min), floor(max)].
func RandomInt(src Source, min, max float64) int {
	lo := math.Ceil(min)
	hi := math.Floor(max)
	return int(math.Floor(src.Float64()*(hi-lo+1)) + lo)
}

// RandomSpeed draws an enemy speed in [SpeedMin, SpeedMin+SpeedRange).
func RandomSpeed(src Source, r *Rules) float64 {
	return src.Float64()*r.SpeedRange + r.SpeedMin
}

func randomLane(src Source, r *Rules) float64 {
	return r.LaneY(RandomInt(src, 0, float64(r.LaneCount-1)))
}
