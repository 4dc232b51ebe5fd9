// Package sim turns cooling parameters and an optional mixing event
// into a sampled temperature trajectory, and answers sample-resolution
// crossing queries against it.
package sim

import (
	"fmt"

	"github.com/kmoray/brewsim/internal/thermo"
)

// TimeGrid returns n evenly spaced samples covering [0, tMax],
// inclusive of both endpoints. n must be at least 2.
func TimeGrid(tMax float64, n int) []float64 {
	if n < 2 || tMax <= 0 {
		return nil
	}
	grid := make([]float64, n)
	step := tMax / float64(n-1)
	for i := range grid {
		grid[i] = float64(i) * step
	}
	return grid
}

// Simulate evaluates the cooling curve at every sample time, applying
// at most one mixing discontinuity. The output has exactly one
// temperature per input sample, in input order.
//
// When the event falls at or before the first sample, the mix is
// applied at t=0 to the initial temperature and the whole window cools
// from the mixed start. Otherwise the mix boundary is the last sample
// at or before the event time; no extra sample is inserted at the event
// itself, so accuracy near the event is bounded by sample spacing.
func Simulate(p Params, ev *MixEvent, times []float64) (Trajectory, error) {
	if err := p.Validate(); err != nil {
		return Trajectory{}, err
	}
	if ev != nil {
		if err := ev.Validate(); err != nil {
			return Trajectory{}, err
		}
	}
	for i, t := range times {
		if t < 0 {
			return Trajectory{}, fmt.Errorf("sample %d at t=%g: %w", i, t, thermo.ErrInvalidArgument)
		}
		if i > 0 && t <= times[i-1] {
			return Trajectory{}, fmt.Errorf("sample %d at t=%g not increasing: %w", i, t, thermo.ErrInvalidArgument)
		}
	}

	tr := Trajectory{
		Times: append([]float64(nil), times...),
		Temps: make([]float64, len(times)),
	}
	if len(times) == 0 {
		return tr, nil
	}

	if ev == nil {
		for i, t := range times {
			tr.Temps[i] = thermo.TemperatureAt(p.InitialTemp, p.AmbientTemp, p.DecayConst, t)
		}
		return tr, nil
	}

	if ev.Time <= times[0] {
		// Event at or before the window start: mix the initial
		// temperature at t=0 and cool the entire window from it.
		mixed, err := thermo.MixUniform(p.InitialTemp, ev.HostVolume, ev.AdditiveTemp, ev.AdditiveVolume)
		if err != nil {
			return Trajectory{}, err
		}
		for i, t := range times {
			tr.Temps[i] = thermo.TemperatureAt(mixed, p.AmbientTemp, p.DecayConst, t)
		}
		return tr, nil
	}

	boundary := 0
	for i, t := range times {
		if t > ev.Time {
			break
		}
		boundary = i
		tr.Temps[i] = thermo.TemperatureAt(p.InitialTemp, p.AmbientTemp, p.DecayConst, t)
	}

	if boundary == len(times)-1 {
		// Event beyond the window; nothing mixes.
		return tr, nil
	}

	preMix := tr.Temps[boundary]
	mixed, err := thermo.MixUniform(preMix, ev.HostVolume, ev.AdditiveTemp, ev.AdditiveVolume)
	if err != nil {
		return Trajectory{}, err
	}
	for i := boundary + 1; i < len(times); i++ {
		tr.Temps[i] = thermo.TemperatureAt(mixed, p.AmbientTemp, p.DecayConst, times[i]-ev.Time)
	}
	return tr, nil
}

// FirstCrossing scans the trajectory in time order and returns the time
// of the first sample on the target side of the starting value. The
// second return is false when the window never reaches the target.
// This is a sample-resolution query; use thermo.TimeToReach for the
// exact analytic answer.
func FirstCrossing(tr Trajectory, target float64) (float64, bool) {
	if tr.Len() == 0 {
		return 0, false
	}
	cooling := tr.Temps[0] >= target
	for i, temp := range tr.Temps {
		if cooling && temp <= target {
			return tr.Times[i], true
		}
		if !cooling && temp >= target {
			return tr.Times[i], true
		}
	}
	return 0, false
}
