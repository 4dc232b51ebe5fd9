// Package thermo provides the closed-form thermal physics for the
// beverage cooling model.
//
// The package defines the fundamental types and operations:
//
//   - [Body]: a thermal mass (liquid, cup wall, or additive)
//   - [Equilibrium]: heat-capacity-weighted mixing temperature
//   - [TemperatureAt]: Newton's law of cooling, T(t) = Ta + (T0−Ta)·e^(−kt)
//   - [TimeToReach]: the closed-form inverse of the cooling curve
//   - [Cup]: cylindrical cup geometry producing wall and cavity bodies
//
// # Units
//
// All temperatures are Celsius, masses kilograms, volumes liters unless
// a field says otherwise. Conversion from display units happens at the
// configuration boundary, never here.
//
// # Errors
//
// Operations return the package sentinels [ErrInvalidConfiguration],
// [ErrUnreachableTarget] and [ErrInvalidArgument]; NaN never escapes a
// successful return.
package thermo
