// Package units converts boundary inputs (Fahrenheit, milliliters,
// inches) into the core units the physics is defined in: Celsius,
// liters, meters. The core never sees a display unit.
package units

import "fmt"

type TempScale string

const (
	Celsius    TempScale = "celsius"
	Fahrenheit TempScale = "fahrenheit"
	Kelvin     TempScale = "kelvin"
)

type VolumeUnit string

const (
	Liters      VolumeUnit = "liters"
	Milliliters VolumeUnit = "milliliters"
	CubicMeters VolumeUnit = "cubic_meters"
)

const metersPerInch = 0.0254

// ToCelsius converts a temperature from the given scale to Celsius.
func ToCelsius(v float64, from TempScale) (float64, error) {
	switch from {
	case Celsius:
		return v, nil
	case Fahrenheit:
		return (v - 32) * 5 / 9, nil
	case Kelvin:
		return v - 273.15, nil
	default:
		return 0, fmt.Errorf("unknown temperature scale: %s", from)
	}
}

// FromCelsius converts a Celsius temperature to the given scale.
func FromCelsius(v float64, to TempScale) (float64, error) {
	switch to {
	case Celsius:
		return v, nil
	case Fahrenheit:
		return v*9/5 + 32, nil
	case Kelvin:
		return v + 273.15, nil
	default:
		return 0, fmt.Errorf("unknown temperature scale: %s", to)
	}
}

// ToLiters converts a volume from the given unit to liters.
func ToLiters(v float64, from VolumeUnit) (float64, error) {
	switch from {
	case Liters:
		return v, nil
	case Milliliters:
		return v / 1000, nil
	case CubicMeters:
		return v * 1000, nil
	default:
		return 0, fmt.Errorf("unknown volume unit: %s", from)
	}
}

// FromLiters converts a volume in liters to the given unit.
func FromLiters(v float64, to VolumeUnit) (float64, error) {
	switch to {
	case Liters:
		return v, nil
	case Milliliters:
		return v * 1000, nil
	case CubicMeters:
		return v / 1000, nil
	default:
		return 0, fmt.Errorf("unknown volume unit: %s", to)
	}
}

// InchesToMeters converts cup geometry measurements to meters.
func InchesToMeters(in float64) float64 {
	return in * metersPerInch
}

// Symbol returns the display suffix for a temperature scale.
func Symbol(s TempScale) string {
	switch s {
	case Fahrenheit:
		return "°F"
	case Kelvin:
		return "K"
	default:
		return "°C"
	}
}
