package thermo

import "math"

// Cup is a cylindrical cup. Geometry is in meters, density in kg/m³,
// specific heat in J/(kg·°C). The cavity is treated as a full cylinder
// and the wall as the annulus between outer and inner diameter.
type Cup struct {
	Height        float64
	Diameter      float64
	WallThickness float64
	Density       float64
	SpecificHeat  float64
}

// CavityVolume returns the liquid-holding volume in m³.
func (c Cup) CavityVolume() float64 {
	r := c.Diameter / 2
	return math.Pi * r * r * c.Height
}

// CavityLiters returns the liquid-holding volume in liters.
func (c Cup) CavityLiters() float64 {
	return c.CavityVolume() * 1000
}

// WallVolume returns the ceramic wall volume in m³.
func (c Cup) WallVolume() float64 {
	ro := c.Diameter / 2
	ri := (c.Diameter - 2*c.WallThickness) / 2
	return math.Pi * (ro*ro - ri*ri) * c.Height
}

// Mass returns the cup wall mass in kg.
func (c Cup) Mass() float64 {
	return c.Density * c.WallVolume()
}

// Body returns the cup wall as a thermal body at the given temperature.
func (c Cup) Body(temp float64) Body {
	return Body{Temp: temp, Mass: c.Mass(), SpecificHeat: c.SpecificHeat}
}

// LiquidBody returns a cavity-filling liquid as a thermal body.
func (c Cup) LiquidBody(temp, density, specificHeat float64) Body {
	return Body{
		Temp:         temp,
		Mass:         density * c.CavityVolume(),
		SpecificHeat: specificHeat,
	}
}
