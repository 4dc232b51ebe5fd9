package thermo

import (
	"fmt"
	"math"
)

// TemperatureAt evaluates Newton's law of cooling at elapsed time t:
//
//	T(t) = Ta + (T0 − Ta)·e^(−k·t)
//
// The curve approaches ambient monotonically regardless of the sign of
// (T0 − Ta) and returns exactly t0 at t = 0. Callers guarantee t ≥ 0.
func TemperatureAt(t0, ambient, k, t float64) float64 {
	return ambient + (t0-ambient)*math.Exp(-k*t)
}

// TimeToReach inverts the cooling curve, returning the elapsed time at
// which the body reaches target:
//
//	t = −ln((Tt − Ta)/(T0 − Ta)) / k
//
// It fails with ErrUnreachableTarget when the target lies on the wrong
// side of ambient, sits exactly on the ambient asymptote, or is farther
// from ambient than the starting temperature. A NaN is never returned.
func TimeToReach(t0, ambient, k, target float64) (float64, error) {
	if k <= 0 {
		return 0, fmt.Errorf("decay constant %g: %w", k, ErrInvalidConfiguration)
	}
	num := target - ambient
	den := t0 - ambient
	if den == 0 {
		if num == 0 {
			// Both at ambient: log(0/0). Already there in the limit, but
			// the ratio is undefined so the contract rejects it.
			return 0, fmt.Errorf("start and target both at ambient %g: %w", ambient, ErrUnreachableTarget)
		}
		return 0, fmt.Errorf("start at ambient, target %g: %w", target, ErrUnreachableTarget)
	}
	ratio := num / den
	if ratio <= 0 || ratio > 1 {
		return 0, fmt.Errorf("target %g from start %g toward ambient %g: %w", target, t0, ambient, ErrUnreachableTarget)
	}
	return -math.Log(ratio) / k, nil
}
