package sim

import (
	"fmt"

	"github.com/kmoray/brewsim/internal/thermo"
)

// Params describes one cooling scenario: a starting temperature
// relaxing toward ambient with decay constant k, watched against a
// target temperature. Temperatures in °C, k in 1/min.
type Params struct {
	InitialTemp float64
	AmbientTemp float64
	DecayConst  float64
	TargetTemp  float64
}

func (p Params) Validate() error {
	if p.DecayConst <= 0 {
		return fmt.Errorf("decay constant %g must be positive: %w", p.DecayConst, thermo.ErrInvalidConfiguration)
	}
	return nil
}

// MixEvent is a single instantaneous, fully-mixed blending of an
// additive into the host liquid at a chosen moment. Volumes in liters,
// time in minutes.
type MixEvent struct {
	AdditiveTemp   float64
	AdditiveVolume float64
	HostVolume     float64
	Time           float64
}

func (e MixEvent) Validate() error {
	if e.AdditiveVolume < 0 {
		return fmt.Errorf("additive volume %g: %w", e.AdditiveVolume, thermo.ErrInvalidConfiguration)
	}
	if e.HostVolume <= 0 {
		return fmt.Errorf("host volume %g must be positive: %w", e.HostVolume, thermo.ErrInvalidConfiguration)
	}
	if e.Time < 0 {
		return fmt.Errorf("event time %g: %w", e.Time, thermo.ErrInvalidArgument)
	}
	return nil
}

// Trajectory is an ordered sequence of (time, temperature) samples.
// Times are minutes, strictly increasing; temperatures °C. A trajectory
// is produced once per run and never mutated afterward.
type Trajectory struct {
	Times []float64
	Temps []float64
}

func (tr Trajectory) Len() int {
	return len(tr.Times)
}
