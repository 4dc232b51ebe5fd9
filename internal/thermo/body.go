package thermo

import "fmt"

// Body is an immutable thermal mass: a liquid, a cup wall, or an
// additive parcel.
type Body struct {
	Temp         float64 // °C
	Mass         float64 // kg
	SpecificHeat float64 // J/(kg·°C)
}

// HeatCapacity returns mass · specific heat, in J/°C.
func (b Body) HeatCapacity() float64 {
	return b.Mass * b.SpecificHeat
}

// Equilibrium returns the common temperature two bodies reach when
// combined with no external heat exchange, weighted by heat capacity:
//
//	T = (Ta·Ca + Tb·Cb) / (Ca + Cb)
//
// It fails with ErrInvalidConfiguration when the combined heat capacity
// is not positive.
func Equilibrium(a, b Body) (float64, error) {
	ca := a.HeatCapacity()
	cb := b.HeatCapacity()
	if ca < 0 || cb < 0 || ca+cb <= 0 {
		return 0, fmt.Errorf("equilibrium with heat capacities %g and %g J/°C: %w", ca, cb, ErrInvalidConfiguration)
	}
	return (a.Temp*ca + b.Temp*cb) / (ca + cb), nil
}

// MixUniform blends two parcels of the same fluid. Density and specific
// heat cancel out of the equilibrium formula, leaving pure volume
// weighting. Volumes are in liters.
func MixUniform(tempA, volumeA, tempB, volumeB float64) (float64, error) {
	return Equilibrium(
		Body{Temp: tempA, Mass: volumeA, SpecificHeat: 1},
		Body{Temp: tempB, Mass: volumeB, SpecificHeat: 1},
	)
}
